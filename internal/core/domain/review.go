package domain

import "time"

// Review is a directed rating edge from reviewer to reviewed user.
// Reviews are immutable once submitted.
type Review struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"` // the user being reviewed
	ReviewerID     string    `json:"reviewer_id"`
	ReviewerName   string    `json:"reviewer_name"`
	ReviewerAvatar string    `json:"reviewer_avatar,omitempty"`
	Rating         int       `json:"rating"` // 1..5
	Comment        string    `json:"comment"`
	CreatedAt      time.Time `json:"created_at"`
}
