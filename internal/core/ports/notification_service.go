package ports

import (
	"context"

	"github.com/charcroft19/4hire3/internal/core/domain"
)

// NotificationInput is the DTO handed from domain services to the
// notification pipeline.
type NotificationInput struct {
	UserID  string
	Type    domain.NotificationType
	Title   string
	Message string
}

// NotificationPublisher enqueues a notification for asynchronous
// delivery. Implemented by the queue dispatcher.
type NotificationPublisher interface {
	Publish(n NotificationInput)
}

// NotificationService owns the per-user notification feeds.
type NotificationService interface {
	// Deliver appends the notification to the recipient's feed. Called by
	// dispatcher workers.
	Deliver(ctx context.Context, in NotificationInput) error
	For(ctx context.Context, userID string) []*domain.Notification
	UnreadCount(ctx context.Context, userID string) int
	MarkRead(ctx context.Context, notificationID string)
	Clear(ctx context.Context, userID string)
}
