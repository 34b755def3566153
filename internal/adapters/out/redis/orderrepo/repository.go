// Package orderrepo persists order aggregates as JSON snapshots in Redis.
// Each order lives under its own `order:<uuid>` key; there are no
// secondary indexes, so listing is a key scan and tracking lookups are
// linear scans on the read side.
package orderrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"
)

const keyPrefix = "order:"

// scanBatchSize bounds how many keys one SCAN round trip asks for.
const scanBatchSize = 100

// RedisOrderRepository implements ports.OrderRepository on a Redis KV
// store. Records never expire; writes are plain overwrites.
type RedisOrderRepository struct {
	client *redis.Client
}

// NewRedisOrderRepository creates a repository on the given client.
func NewRedisOrderRepository(client *redis.Client) *RedisOrderRepository {
	return &RedisOrderRepository{client: client}
}

// Add persists a new order snapshot.
func (r *RedisOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.write(ctx, aggregate)
}

// Update overwrites the stored snapshot with the aggregate's current
// state. The store keeps no history; the last write wins.
func (r *RedisOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.write(ctx, aggregate)
}

// Get retrieves an order aggregate by id.
func (r *RedisOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	payload, err := r.client.Get(ctx, keyPrefix+id.String()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	if err != nil {
		return nil, fmt.Errorf("get order %s: %w", id, err)
	}

	var snapshot order.Snapshot
	if err = json.Unmarshal(payload, &snapshot); err != nil {
		return nil, fmt.Errorf("decode order %s: %w", id, err)
	}

	return snapshot.ToOrder()
}

// GetAll scans every order key and returns the decodable snapshots.
// Records that vanish mid-scan or fail to decode are skipped, so one
// corrupt entry cannot poison a full listing.
func (r *RedisOrderRepository) GetAll(ctx context.Context) ([]order.Snapshot, error) {
	var snapshots []order.Snapshot

	iter := r.client.Scan(ctx, 0, keyPrefix+"*", scanBatchSize).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()

		payload, err := r.client.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("get %s: %w", key, err)
		}

		var snapshot order.Snapshot
		if err = json.Unmarshal(payload, &snapshot); err != nil {
			slog.WarnContext(ctx, "skipping undecodable order record", "key", key, "error", err)
			continue
		}
		snapshots = append(snapshots, snapshot)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("scan orders: %w", err)
	}

	return snapshots, nil
}

func (r *RedisOrderRepository) write(ctx context.Context, aggregate *order.Order) error {
	snapshot := order.NewSnapshot(aggregate)
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode order %s: %w", aggregate.ID(), err)
	}

	if err = r.client.Set(ctx, keyPrefix+aggregate.ID().String(), payload, 0).Err(); err != nil {
		return fmt.Errorf("set order %s: %w", aggregate.ID(), err)
	}

	return nil
}
