package ports

import (
	"context"
	"time"
)

// CacheStore is a byte-oriented cache with per-entry expiry. Query handlers
// use it to serve aggregated state without recomputing on every request.
type CacheStore interface {
	// Get returns the cached value for key. The second return value is
	// false when the key is absent or expired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// SetWithTTL stores value under key, expiring after ttl.
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// DeletePrefix removes every entry whose key starts with prefix.
	DeletePrefix(ctx context.Context, prefix string) error
}
