package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/charcroft19/4hire3/internal/api"
	"github.com/charcroft19/4hire3/internal/core/service"
	"github.com/charcroft19/4hire3/internal/infrastructure/config"
	mongodb "github.com/charcroft19/4hire3/internal/infrastructure/db/mongo"
	redisdb "github.com/charcroft19/4hire3/internal/infrastructure/db/redis"
	"github.com/charcroft19/4hire3/internal/infrastructure/queue"
	"github.com/charcroft19/4hire3/pkg/logger"

	_ "github.com/charcroft19/4hire3/docs"
)

// @title        4hire API
// @version      1.0
// @description  Two-sided student gig marketplace: job catalog, 1:1 chat, reviews, safety tools and employer analytics.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the JWT.
func main() {
	cfg := config.Load(slog.Default())

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	profiles := mongodb.NewProfileRepository(db)
	if err := profiles.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("mongodb index creation failed")
	}

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	store := redisdb.NewSnapshotStore(rdb)
	denylist := redisdb.NewTokenDenylist(rdb)

	// --- Services ---
	notificationService := service.NewNotificationService(store, log)
	dispatcher := queue.NewDispatcher(0, notificationService, log)
	dispatcher.Start(ctx)

	authService := service.NewAuthService(profiles, denylist, cfg.JWTSecret, cfg.TokenTTL, log)
	jobService := service.NewJobService(store, dispatcher, log)
	messageService := service.NewMessageService(store, dispatcher, log)
	reviewService := service.NewReviewService(store, dispatcher, log)
	safetyService := service.NewSafetyService(store, log)
	analyticsService := service.NewAnalyticsService(jobService)

	// Warm the in-memory state from the previous run's snapshots.
	jobService.Restore(ctx)
	messageService.Restore(ctx)
	reviewService.Restore(ctx)
	safetyService.Restore(ctx)
	notificationService.Restore(ctx)

	// --- HTTP ---
	e := api.NewRouter(api.Services{
		Auth:          authService,
		Jobs:          jobService,
		Messages:      messageService,
		Reviews:       reviewService,
		Safety:        safetyService,
		Notifications: notificationService,
		Analytics:     analyticsService,
	}, db, rdb, denylist, cfg.JWTSecret, log)

	go func() {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		_ = e.Shutdown(context.Background())
	}()

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Info().Err(err).Msg("server stopped")
	}
}
