// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS
// architecture. The read side always rescans the record store; it never
// folds the event stream, so a missed event cannot skew the aggregates.
package queries

import (
	"context"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
)

// OrderReader is the read-side slice of the order repository.
// ports.OrderRepository satisfies it.
type OrderReader interface {
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
	GetAll(ctx context.Context) ([]order.Snapshot, error)
}
