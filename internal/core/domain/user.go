package domain

import (
	"errors"
	"strings"
	"time"
)

// UserType distinguishes the two sides of the marketplace. It is assigned
// at signup and never changes afterwards.
type UserType string

const (
	UserTypeStudent  UserType = "student"
	UserTypeEmployer UserType = "employer"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrTypeMismatch = errors.New("account type mismatch")
var ErrUniversityDomain = errors.New("university email required")

// AllowedUniversityDomains is the fixed allow-list gating student signup.
var AllowedUniversityDomains = []string{
	"colorado.edu",
	"colostate.edu",
	"sdsu.edu",
}

// UniversityDomain extracts the domain part of email and reports whether
// it is on the allow-list.
func UniversityDomain(email string) (string, bool) {
	_, domain, found := strings.Cut(email, "@")
	if !found {
		return "", false
	}
	for _, allowed := range AllowedUniversityDomains {
		if domain == allowed {
			return domain, true
		}
	}
	return domain, false
}

// Profile models an account on the platform: the credential record plus
// the public profile fields shown on dashboards.
type Profile struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username,omitempty"`
	Avatar       string    `json:"avatar,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	University   string    `json:"university,omitempty"`
	Type         UserType  `json:"type"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
