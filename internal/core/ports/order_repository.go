// Package ports defines the contracts between the application core and
// infrastructure. Adapters implement these interfaces, enabling dependency
// inversion and testability.
package ports

import (
	"context"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are stored as JSON snapshots keyed by their identifier.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no order exists for the id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves every stored order snapshot. Reads that tolerate
	// partially invalid records work on snapshots rather than aggregates,
	// so a single corrupt entry does not poison the whole listing.
	GetAll(ctx context.Context) ([]order.Snapshot, error)
}
