package ports

import (
	"context"

	"github.com/charcroft19/4hire3/internal/core/domain"
)

// CreateReviewInput carries a new review submission.
type CreateReviewInput struct {
	UserID         string // the user being reviewed
	ReviewerID     string
	ReviewerName   string
	ReviewerAvatar string
	Rating         int // 1..5, validated at the transport layer
	Comment        string
}

// ReviewService owns the review log and rating aggregation.
type ReviewService interface {
	AddReview(ctx context.Context, in CreateReviewInput) (*domain.Review, error)
	ReviewsFor(ctx context.Context, userID string) []*domain.Review
	// AverageRating returns the arithmetic mean of the user's ratings, or
	// exactly 0 when the user has no reviews.
	AverageRating(ctx context.Context, userID string) float64
}
