package ports

import (
	"context"
	"time"
)

// TokenDenylist records revoked session tokens until they would have
// expired anyway.
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
