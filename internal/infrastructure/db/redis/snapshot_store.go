package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/charcroft19/4hire3/internal/core/ports"
)

// SnapshotStore caches named collections as JSON blobs in Redis.
// Key format: cache:<collection>. Timestamps survive the round trip as
// RFC 3339 strings via encoding/json. The store is a warm cache, never a
// source of truth, so entries carry no TTL and losing them is harmless.
type SnapshotStore struct {
	client *redis.Client
}

// NewSnapshotStore creates a SnapshotStore wrapping the given Redis client.
func NewSnapshotStore(client *redis.Client) *SnapshotStore {
	return &SnapshotStore{client: client}
}

// Load unmarshals the snapshot stored under name into v. Returns
// ports.ErrCacheMiss when the collection has never been saved.
func (s *SnapshotStore) Load(ctx context.Context, name string, v any) error {
	raw, err := s.client.Get(ctx, s.key(name)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ports.ErrCacheMiss
		}
		return fmt.Errorf("load %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("load %s: %w", name, err)
	}
	return nil
}

// Save marshals v and overwrites the snapshot stored under name.
func (s *SnapshotStore) Save(ctx context.Context, name string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	if err := s.client.Set(ctx, s.key(name), raw, 0).Err(); err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	return nil
}

func (s *SnapshotStore) key(name string) string {
	return "cache:" + name
}
