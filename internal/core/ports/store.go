package ports

import (
	"context"
	"errors"
)

// ErrCacheMiss is returned by Load when no snapshot exists under the
// given name.
var ErrCacheMiss = errors.New("cache miss")

// CollectionStore is a string-keyed warm cache for named collections
// (jobs, messages, conversations, reviews, reports, ...). It is never a
// source of truth: services hold authoritative state in memory, restore
// from the store at startup and write through best-effort.
type CollectionStore interface {
	// Load unmarshals the snapshot stored under name into v. Returns
	// ErrCacheMiss when the name has never been saved.
	Load(ctx context.Context, name string, v any) error
	Save(ctx context.Context, name string, v any) error
}
