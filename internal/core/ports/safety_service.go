package ports

import (
	"context"

	"github.com/charcroft19/4hire3/internal/core/domain"
)

// EmergencyContactInput carries a new emergency contact.
type EmergencyContactInput struct {
	Name         string
	Phone        string
	Relationship string
}

// SafetyService owns content moderation and the reported-user registry.
type SafetyService interface {
	// FilterContent rewrites inappropriate words in text. Fail-open: any
	// internal failure returns the original text unchanged.
	FilterContent(text string) string
	ReportUser(ctx context.Context, reporterID, userID, reason string) (*domain.ReportedUser, error)
	IsReported(ctx context.Context, userID string) bool
	Reports(ctx context.Context) []*domain.ReportedUser
	AddEmergencyContact(ctx context.Context, ownerID string, in EmergencyContactInput) (*domain.EmergencyContact, error)
	RemoveEmergencyContact(ctx context.Context, ownerID, contactID string)
	EmergencyContacts(ctx context.Context, ownerID string) []*domain.EmergencyContact
}
