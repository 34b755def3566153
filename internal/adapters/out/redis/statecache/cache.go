// Package statecache implements the TTL cache for aggregated state
// views on Redis. Entries expire on their own; DeletePrefix exists for
// explicit invalidation of a whole namespace.
package statecache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const scanBatchSize = 100

// RedisCacheStore implements ports.CacheStore.
type RedisCacheStore struct {
	client *redis.Client
}

// NewRedisCacheStore creates a cache store on the given client.
func NewRedisCacheStore(client *redis.Client) *RedisCacheStore {
	return &RedisCacheStore{client: client}
}

// Get returns the cached value, reporting absent or expired keys as a
// plain miss.
func (s *RedisCacheStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	payload, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get %s: %w", key, err)
	}

	return payload, true, nil
}

// SetWithTTL stores the value with the given expiry.
func (s *RedisCacheStore) SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}

	return nil
}

// DeletePrefix removes every key under the prefix.
func (s *RedisCacheStore) DeletePrefix(ctx context.Context, prefix string) error {
	var keys []string

	iter := s.client.Scan(ctx, 0, prefix+"*", scanBatchSize).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("cache scan %s: %w", prefix, err)
	}

	if len(keys) == 0 {
		return nil
	}

	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("cache delete %s: %w", prefix, err)
	}

	return nil
}
