package repository

import (
	"context"
	"time"
)

// KVRepository - durable string-keyed store for locally owned state
type KVRepository interface {
	// Get returns the stored value, or nil when the key is absent
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value; ttl 0 means no expiry
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes the key
	Delete(ctx context.Context, key string) error

	// Exists reports whether the key is present
	Exists(ctx context.Context, key string) (bool, error)
}
