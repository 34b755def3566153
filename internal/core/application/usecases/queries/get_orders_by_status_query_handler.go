package queries

import (
	"context"

	"pizzeria/internal/core/domain/model/order"
)

// GetOrdersByStatusQueryHandler groups stored orders by status. Buckets
// are sorted newest first before the per-status limit is applied, so a
// limited view always shows the most recent orders.
type GetOrdersByStatusQueryHandler struct {
	orders OrderReader
}

// NewGetOrdersByStatusQueryHandler creates a handler for grouping queries.
func NewGetOrdersByStatusQueryHandler(orders OrderReader) GetOrdersByStatusQueryHandler {
	return GetOrdersByStatusQueryHandler{orders: orders}
}

// Handle scans the store and returns the grouped view. Statuses with no
// orders have no key in the result.
func (h GetOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByStatusQuery,
) (map[string][]order.Snapshot, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	snapshots, err := h.orders.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return groupOrdersByStatus(snapshots, query.IncludeCompleted(), query.Limit()), nil
}
