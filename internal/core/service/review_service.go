package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/charcroft19/4hire3/internal/core/domain"
	"github.com/charcroft19/4hire3/internal/core/ports"
)

const collectionReviews = "reviews"

// ReviewService owns the review log and rating aggregation.
type ReviewService struct {
	mu       sync.RWMutex
	reviews  []*domain.Review
	store    ports.CollectionStore
	notifier ports.NotificationPublisher
	logger   zerolog.Logger
}

func NewReviewService(store ports.CollectionStore, notifier ports.NotificationPublisher, logger zerolog.Logger) *ReviewService {
	return &ReviewService{store: store, notifier: notifier, logger: logger}
}

// Restore loads the cached review log from a previous run.
func (s *ReviewService) Restore(ctx context.Context) {
	var reviews []*domain.Review
	if err := s.store.Load(ctx, collectionReviews, &reviews); err != nil {
		if !errors.Is(err, ports.ErrCacheMiss) {
			s.logger.Warn().Err(err).Msg("failed to restore reviews")
		}
		return
	}
	s.mu.Lock()
	s.reviews = reviews
	s.mu.Unlock()
}

// AddReview assigns an id and timestamp and appends the review. Reviews
// are immutable afterwards.
func (s *ReviewService) AddReview(ctx context.Context, in ports.CreateReviewInput) (*domain.Review, error) {
	review := &domain.Review{
		ID:             newID("REV"),
		UserID:         in.UserID,
		ReviewerID:     in.ReviewerID,
		ReviewerName:   in.ReviewerName,
		ReviewerAvatar: in.ReviewerAvatar,
		Rating:         in.Rating,
		Comment:        in.Comment,
		CreatedAt:      time.Now().UTC(),
	}

	s.mu.Lock()
	s.reviews = append(s.reviews, review)
	s.persist(ctx)
	s.mu.Unlock()

	s.logger.Info().Str("review_id", review.ID).Str("user_id", in.UserID).Int("rating", in.Rating).Msg("review submitted")

	if s.notifier != nil {
		s.notifier.Publish(ports.NotificationInput{
			UserID:  in.UserID,
			Type:    domain.NotificationInfo,
			Title:   "New review",
			Message: fmt.Sprintf("%s left you a %d-star review", in.ReviewerName, in.Rating),
		})
	}

	clone := *review
	return &clone, nil
}

// ReviewsFor returns all reviews written about userID.
func (s *ReviewService) ReviewsFor(_ context.Context, userID string) []*domain.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*domain.Review
	for _, r := range s.reviews {
		if r.UserID == userID {
			clone := *r
			out = append(out, &clone)
		}
	}
	return out
}

// AverageRating returns the arithmetic mean of the user's ratings, or
// exactly 0 when the user has no reviews.
func (s *ReviewService) AverageRating(ctx context.Context, userID string) float64 {
	reviews := s.ReviewsFor(ctx, userID)
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(reviews))
}

// persist snapshots the review log. Best-effort. Caller holds the lock.
func (s *ReviewService) persist(ctx context.Context) {
	if err := s.store.Save(ctx, collectionReviews, s.reviews); err != nil {
		s.logger.Warn().Err(err).Msg("failed to cache reviews")
	}
}
