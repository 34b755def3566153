package queries

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"pizzeria/internal/core/ports"
)

// CacheKeyPrefix namespaces every aggregated-state cache entry so the
// whole family can be dropped in one sweep.
const CacheKeyPrefix = "state_cache:"

// DefaultCacheTTL bounds how stale an aggregated view can get.
const DefaultCacheTTL = 5 * time.Second

// CachedSystemStateQueryHandler serves the dashboard view from a short
// lived cache. Corrupt or unreadable cache entries count as misses, and
// a failing cache never fails the query; it only costs a recompute.
// There is no write-path invalidation, staleness is bounded by the TTL.
type CachedSystemStateQueryHandler struct {
	inner GetSystemStateQueryHandler
	cache ports.CacheStore
	ttl   time.Duration
}

// NewCachedSystemStateQueryHandler wraps a system state handler with a
// TTL cache. A non-positive ttl falls back to DefaultCacheTTL.
func NewCachedSystemStateQueryHandler(
	inner GetSystemStateQueryHandler,
	cache ports.CacheStore,
	ttl time.Duration,
) CachedSystemStateQueryHandler {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}

	return CachedSystemStateQueryHandler{
		inner: inner,
		cache: cache,
		ttl:   ttl,
	}
}

// Handle returns the cached view when a fresh entry exists for the exact
// parameter set, recomputing and re-caching otherwise.
func (h CachedSystemStateQueryHandler) Handle(
	ctx context.Context,
	query GetSystemStateQuery,
) (SystemStateResponse, error) {
	if err := query.Validate(); err != nil {
		return SystemStateResponse{}, err
	}

	key := fmt.Sprintf("%ssystem_state:%t:%d",
		CacheKeyPrefix, query.IncludeCompleted(), query.Limit())

	var cached SystemStateResponse
	if cacheLookup(ctx, h.cache, key, &cached) {
		return cached, nil
	}

	state, err := h.inner.Handle(ctx, query)
	if err != nil {
		return SystemStateResponse{}, err
	}

	cacheStore(ctx, h.cache, key, state, h.ttl)

	return state, nil
}

// InvalidateAll drops every cached aggregate, statistics included.
func (h CachedSystemStateQueryHandler) InvalidateAll(ctx context.Context) error {
	return h.cache.DeletePrefix(ctx, CacheKeyPrefix)
}

// CachedStatisticsQueryHandler is the statistics-only counterpart of
// CachedSystemStateQueryHandler, sharing the same namespace and TTL
// policy.
type CachedStatisticsQueryHandler struct {
	inner GetStatisticsQueryHandler
	cache ports.CacheStore
	ttl   time.Duration
}

// NewCachedStatisticsQueryHandler wraps a statistics handler with a TTL
// cache. A non-positive ttl falls back to DefaultCacheTTL.
func NewCachedStatisticsQueryHandler(
	inner GetStatisticsQueryHandler,
	cache ports.CacheStore,
	ttl time.Duration,
) CachedStatisticsQueryHandler {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}

	return CachedStatisticsQueryHandler{
		inner: inner,
		cache: cache,
		ttl:   ttl,
	}
}

// Handle returns cached statistics when available, recomputing otherwise.
func (h CachedStatisticsQueryHandler) Handle(
	ctx context.Context,
	query GetStatisticsQuery,
) (StatisticsResponse, error) {
	if err := query.Validate(); err != nil {
		return StatisticsResponse{}, err
	}

	key := CacheKeyPrefix + "statistics"

	var cached StatisticsResponse
	if cacheLookup(ctx, h.cache, key, &cached) {
		return cached, nil
	}

	stats, err := h.inner.Handle(ctx, query)
	if err != nil {
		return StatisticsResponse{}, err
	}

	cacheStore(ctx, h.cache, key, stats, h.ttl)

	return stats, nil
}

func cacheLookup(ctx context.Context, cache ports.CacheStore, key string, out any) bool {
	payload, found, err := cache.Get(ctx, key)
	if err != nil {
		slog.WarnContext(ctx, "cache read failed", "key", key, "error", err)
		return false
	}
	if !found {
		return false
	}

	if err = json.Unmarshal(payload, out); err != nil {
		slog.WarnContext(ctx, "corrupt cache entry treated as miss", "key", key, "error", err)
		return false
	}

	return true
}

func cacheStore(ctx context.Context, cache ports.CacheStore, key string, value any, ttl time.Duration) {
	payload, err := json.Marshal(value)
	if err != nil {
		slog.WarnContext(ctx, "cache encode failed", "key", key, "error", err)
		return
	}

	if err = cache.SetWithTTL(ctx, key, payload, ttl); err != nil {
		slog.WarnContext(ctx, "cache write failed", "key", key, "error", err)
	}
}
