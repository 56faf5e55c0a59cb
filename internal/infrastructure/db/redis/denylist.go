package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenDenylist tracks revoked session tokens until they expire on their
// own. Key format: denylist:<token_id>. The TTL matches the remaining
// token lifetime, so the set never grows past the live-token horizon.
type TokenDenylist struct {
	client *redis.Client
}

// NewTokenDenylist creates a TokenDenylist wrapping the given Redis client.
func NewTokenDenylist(client *redis.Client) *TokenDenylist {
	return &TokenDenylist{client: client}
}

// Revoke marks a token as revoked for the given duration.
func (d *TokenDenylist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if err := d.client.Set(ctx, d.key(tokenID), "1", ttl).Err(); err != nil {
		return fmt.Errorf("denylist revoke: %w", err)
	}
	return nil
}

// IsRevoked reports whether a token has been revoked.
func (d *TokenDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("denylist check: %w", err)
	}
	return n > 0, nil
}

func (d *TokenDenylist) key(tokenID string) string {
	return "denylist:" + tokenID
}
