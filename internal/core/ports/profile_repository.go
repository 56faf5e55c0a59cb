package ports

import (
	"context"

	"github.com/charcroft19/4hire3/internal/core/domain"
)

// ProfileUpdate is the merge applied by ProfileRepository.Update. Nil
// fields are not written.
type ProfileUpdate struct {
	Username *string
	Avatar   *string
	Bio      *string
}

// ProfileRepository is the one concrete identity/profile backend: a
// remote profile store keyed by account id plus lookup by email for the
// credential check. The core never depends on the vendor's API shape.
type ProfileRepository interface {
	Create(ctx context.Context, p *domain.Profile) (*domain.Profile, error)
	FindByEmail(ctx context.Context, email string) (*domain.Profile, error)
	FindByID(ctx context.Context, id string) (*domain.Profile, error)
	// Update merges the non-nil fields into the stored profile and returns
	// the merged record.
	Update(ctx context.Context, id string, u ProfileUpdate) (*domain.Profile, error)
}
