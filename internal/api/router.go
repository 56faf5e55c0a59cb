package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/charcroft19/4hire3/internal/api/handler"
	"github.com/charcroft19/4hire3/internal/api/middleware"
	"github.com/charcroft19/4hire3/internal/core/ports"
)

// Services groups the domain services the router wires into handlers.
type Services struct {
	Auth          ports.AuthService
	Jobs          ports.JobService
	Messages      ports.MessageService
	Reviews       ports.ReviewService
	Safety        ports.SafetyService
	Notifications ports.NotificationService
	Analytics     ports.AnalyticsService
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(svcs Services, db *mongo.Database, rdb *redis.Client, denylist ports.TokenDenylist, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("fourhire"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(svcs.Auth)
	jobHandler := handler.NewJobHandler(svcs.Jobs)
	messageHandler := handler.NewMessageHandler(svcs.Messages, svcs.Safety)
	reviewHandler := handler.NewReviewHandler(svcs.Reviews, svcs.Auth)
	safetyHandler := handler.NewSafetyHandler(svcs.Safety)
	notificationHandler := handler.NewNotificationHandler(svcs.Notifications)
	analyticsHandler := handler.NewAnalyticsHandler(svcs.Analytics)

	authRequired := middleware.Auth(jwtSecret, denylist)
	employerOnly := middleware.RequireType("employer")
	studentOnly := middleware.RequireType("student")

	// --- Public routes ---
	e.POST("/v1/auth/signup", authHandler.Signup)
	e.POST("/v1/auth/login", authHandler.Login)

	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Authenticated routes ---
	v1 := e.Group("/v1", authRequired)

	v1.POST("/auth/logout", authHandler.Logout)
	v1.GET("/auth/me", authHandler.Me)
	v1.PATCH("/auth/profile", authHandler.UpdateProfile)

	v1.GET("/jobs", jobHandler.List)
	v1.POST("/jobs", jobHandler.Create, employerOnly)
	v1.GET("/jobs/mine", jobHandler.Mine, employerOnly)
	v1.GET("/jobs/applied", jobHandler.Applied, studentOnly)
	v1.GET("/jobs/:id", jobHandler.Get)
	v1.POST("/jobs/:id/apply", jobHandler.Apply, studentOnly)
	v1.PATCH("/jobs/:id/status", jobHandler.UpdateStatus, employerOnly)

	v1.GET("/analytics", analyticsHandler.ForEmployer, employerOnly)

	v1.GET("/conversations", messageHandler.Conversations)
	v1.GET("/conversations/:id/messages", messageHandler.Messages)
	v1.POST("/messages", messageHandler.Send)
	v1.POST("/messages/:id/read", messageHandler.MarkRead)

	v1.GET("/users/:id/reviews", reviewHandler.ForUser)
	v1.POST("/reviews", reviewHandler.Create)

	v1.POST("/safety/reports", safetyHandler.Report)
	v1.GET("/safety/reports/:userId", safetyHandler.ReportStatus)
	v1.GET("/safety/contacts", safetyHandler.Contacts)
	v1.POST("/safety/contacts", safetyHandler.AddContact)
	v1.DELETE("/safety/contacts/:id", safetyHandler.RemoveContact)

	v1.GET("/notifications", notificationHandler.Feed)
	v1.POST("/notifications/:id/read", notificationHandler.MarkRead)
	v1.DELETE("/notifications", notificationHandler.Clear)

	return e
}
