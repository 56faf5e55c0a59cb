package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/charcroft19/4hire3/internal/core/domain"
	"github.com/charcroft19/4hire3/internal/core/ports"
)

const collectionNotifications = "notifications"

// NotificationService owns the per-user notification feeds. Deliver is
// invoked by dispatcher workers, everything else by HTTP handlers.
type NotificationService struct {
	mu            sync.RWMutex
	notifications []*domain.Notification
	store         ports.CollectionStore
	logger        zerolog.Logger
}

func NewNotificationService(store ports.CollectionStore, logger zerolog.Logger) *NotificationService {
	return &NotificationService{store: store, logger: logger}
}

// Restore loads cached notification feeds from a previous run.
func (s *NotificationService) Restore(ctx context.Context) {
	var notifications []*domain.Notification
	if err := s.store.Load(ctx, collectionNotifications, &notifications); err != nil {
		if !errors.Is(err, ports.ErrCacheMiss) {
			s.logger.Warn().Err(err).Msg("failed to restore notifications")
		}
		return
	}
	s.mu.Lock()
	s.notifications = notifications
	s.mu.Unlock()
}

// Deliver appends the notification to the recipient's feed.
func (s *NotificationService) Deliver(ctx context.Context, in ports.NotificationInput) error {
	n := &domain.Notification{
		ID:        newID("NTF"),
		UserID:    in.UserID,
		Type:      in.Type,
		Title:     in.Title,
		Message:   in.Message,
		Timestamp: time.Now().UTC(),
	}

	s.mu.Lock()
	s.notifications = append(s.notifications, n)
	s.persist(ctx)
	s.mu.Unlock()

	s.logger.Debug().Str("notification_id", n.ID).Str("user_id", n.UserID).Msg("notification delivered")
	return nil
}

// For returns userID's feed, newest first.
func (s *NotificationService) For(_ context.Context, userID string) []*domain.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*domain.Notification
	for i := len(s.notifications) - 1; i >= 0; i-- {
		if s.notifications[i].UserID == userID {
			clone := *s.notifications[i]
			out = append(out, &clone)
		}
	}
	return out
}

// UnreadCount returns how many of userID's notifications are unread.
func (s *NotificationService) UnreadCount(_ context.Context, userID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, n := range s.notifications {
		if n.UserID == userID && !n.Read {
			count++
		}
	}
	return count
}

// MarkRead flips the read flag. No-op when the notification is missing.
func (s *NotificationService) MarkRead(ctx context.Context, notificationID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, n := range s.notifications {
		if n.ID == notificationID {
			n.Read = true
			s.persist(ctx)
			return
		}
	}
}

// Clear removes every notification belonging to userID.
func (s *NotificationService) Clear(ctx context.Context, userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.notifications[:0]
	for _, n := range s.notifications {
		if n.UserID != userID {
			kept = append(kept, n)
		}
	}
	s.notifications = kept
	s.persist(ctx)
}

// persist snapshots the feeds. Best-effort. Caller holds the lock.
func (s *NotificationService) persist(ctx context.Context) {
	if err := s.store.Save(ctx, collectionNotifications, s.notifications); err != nil {
		s.logger.Warn().Err(err).Msg("failed to cache notifications")
	}
}
