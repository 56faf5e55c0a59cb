package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/charcroft19/4hire3/internal/core/domain"
	"github.com/charcroft19/4hire3/internal/core/ports"
)

// AuthService implements signup, login, logout and profile updates on
// top of the profile backend.
type AuthService struct {
	profiles  ports.ProfileRepository
	denylist  ports.TokenDenylist
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(profiles ports.ProfileRepository, denylist ports.TokenDenylist, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		profiles:  profiles,
		denylist:  denylist,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

// Signup creates an account and returns a fresh session. Student emails
// must belong to the university allow-list; the check runs before any
// account is created.
func (s *AuthService) Signup(ctx context.Context, in ports.SignupInput) (*ports.Session, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if in.Type != domain.UserTypeStudent && in.Type != domain.UserTypeEmployer {
		return nil, domain.ErrInvalidCredentials
	}

	var university string
	if in.Type == domain.UserTypeStudent {
		uni, ok := domain.UniversityDomain(in.Email)
		if !ok {
			return nil, domain.ErrUniversityDomain
		}
		university = uni
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	profile := &domain.Profile{
		Email:        in.Email,
		Username:     in.Username,
		University:   university,
		Type:         in.Type,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.profiles.Create(ctx, profile)
	if err != nil {
		return nil, err
	}

	token, err := s.generateToken(created)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("type", string(created.Type)).Msg("account created")
	return &ports.Session{Token: token, User: created}, nil
}

// Login authenticates and verifies the stored account type matches the
// requested one. On mismatch no session token is issued, so there is
// nothing to sign back out of.
func (s *AuthService) Login(ctx context.Context, email, password string, userType domain.UserType) (*ports.Session, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.profiles.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if user.Type != userType {
		s.logger.Warn().Str("user_id", user.ID).Str("requested", string(userType)).Str("stored", string(user.Type)).Msg("login type mismatch")
		return nil, domain.ErrTypeMismatch
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &ports.Session{Token: token, User: user}, nil
}

// Logout revokes the presented token for its remaining lifetime.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return domain.ErrInvalidCredentials
	}

	tokenID, _ := claims["jti"].(string)
	exp, err := claims.GetExpirationTime()
	if tokenID == "" || err != nil || exp == nil {
		return nil
	}
	ttl := time.Until(exp.Time)
	if ttl <= 0 {
		return nil
	}
	return s.denylist.Revoke(ctx, tokenID, ttl)
}

// UpdateProfile merges the partial update into the stored profile.
func (s *AuthService) UpdateProfile(ctx context.Context, userID string, in ports.ProfileUpdateInput) (*domain.Profile, error) {
	if userID == "" {
		return nil, domain.ErrUserNotFound
	}
	updated, err := s.profiles.Update(ctx, userID, ports.ProfileUpdate{
		Username: in.Username,
		Avatar:   in.Avatar,
		Bio:      in.Bio,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("user_id", userID).Msg("profile updated")
	return updated, nil
}

// CurrentUser resolves the profile for an authenticated session.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*domain.Profile, error) {
	return s.profiles.FindByID(ctx, userID)
}

func (s *AuthService) generateToken(user *domain.Profile) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"type":  string(user.Type),
		"jti":   newID("SES"),
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
