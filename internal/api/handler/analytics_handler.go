package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/charcroft19/4hire3/internal/core/ports"
)

// AnalyticsHandler serves the employer dashboard read-model.
type AnalyticsHandler struct {
	analytics ports.AnalyticsService
}

func NewAnalyticsHandler(analytics ports.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// ForEmployer handles GET /v1/analytics — numbers for the authenticated
// employer's postings.
//
// @Summary      Employer dashboard analytics
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.EmployerAnalytics
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/analytics [get]
func (h *AnalyticsHandler) ForEmployer(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.analytics.ForEmployer(c.Request().Context(), userID))
}
