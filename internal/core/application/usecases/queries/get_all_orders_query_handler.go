package queries

import (
	"context"
	"sort"

	"pizzeria/internal/core/domain/model/order"
)

// GetAllOrdersQueryHandler lists every order, newest first.
type GetAllOrdersQueryHandler struct {
	orders OrderReader
}

// NewGetAllOrdersQueryHandler creates a handler over the given reader.
func NewGetAllOrdersQueryHandler(orders OrderReader) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{orders: orders}
}

// Handle scans the record store and returns the snapshots sorted by
// creation time descending.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]order.Snapshot, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	snapshots, err := h.orders.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(snapshots, func(i, j int) bool {
		return snapshots[i].CreatedAt.After(snapshots[j].CreatedAt)
	})

	return snapshots, nil
}
