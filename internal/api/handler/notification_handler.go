package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/charcroft19/4hire3/internal/core/domain"
	"github.com/charcroft19/4hire3/internal/core/ports"
)

// NotificationHandler serves the per-user notification feed.
type NotificationHandler struct {
	notifications ports.NotificationService
}

func NewNotificationHandler(notifications ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

type notificationFeedResponse struct {
	Data        []*domain.Notification `json:"data"`
	UnreadCount int                    `json:"unread_count"`
}

// Feed handles GET /v1/notifications — newest first.
//
// @Summary      List my notifications
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  notificationFeedResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/notifications [get]
func (h *NotificationHandler) Feed(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notificationFeedResponse{
		Data:        h.notifications.For(c.Request().Context(), userID),
		UnreadCount: h.notifications.UnreadCount(c.Request().Context(), userID),
	})
}

// MarkRead handles POST /v1/notifications/:id/read.
//
// @Summary      Mark a notification as read
// @Tags         notifications
// @Security     BearerAuth
// @Param        id  path  string  true  "Notification id"
// @Success      204  "marked"
// @Failure      401  {object}  errorResponse
// @Router       /v1/notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	if _, _, err := ctxClaims(c); err != nil {
		return err
	}
	h.notifications.MarkRead(c.Request().Context(), c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}

// Clear handles DELETE /v1/notifications — empties the feed.
//
// @Summary      Clear my notifications
// @Tags         notifications
// @Security     BearerAuth
// @Success      204  "cleared"
// @Failure      401  {object}  errorResponse
// @Router       /v1/notifications [delete]
func (h *NotificationHandler) Clear(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}
	h.notifications.Clear(c.Request().Context(), userID)
	return c.NoContent(http.StatusNoContent)
}
