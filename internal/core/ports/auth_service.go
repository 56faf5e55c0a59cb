package ports

import (
	"context"

	"github.com/charcroft19/4hire3/internal/core/domain"
)

// SignupInput carries everything needed to create an account.
type SignupInput struct {
	Email    string
	Password string
	Username string
	Type     domain.UserType
}

// ProfileUpdateInput carries a partial profile update. Nil fields are
// left untouched.
type ProfileUpdateInput struct {
	Username *string
	Avatar   *string
	Bio      *string
}

// Session is returned on successful signup or login.
type Session struct {
	Token string
	User  *domain.Profile
}

// AuthService wraps the identity/profile backend: credential checks,
// session issuance and the profile record keyed by account id.
type AuthService interface {
	Signup(ctx context.Context, in SignupInput) (*Session, error)
	// Login authenticates and verifies the stored account type matches the
	// requested one; on mismatch no session is issued.
	Login(ctx context.Context, email, password string, userType domain.UserType) (*Session, error)
	// Logout revokes the presented token for its remaining lifetime.
	Logout(ctx context.Context, token string) error
	UpdateProfile(ctx context.Context, userID string, in ProfileUpdateInput) (*domain.Profile, error)
	CurrentUser(ctx context.Context, userID string) (*domain.Profile, error)
}
