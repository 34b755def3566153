package queries

import (
	"context"
)

// GetActiveCouriersQueryHandler lists drivers on dispatched or in_transit
// orders, one entry per driver.
type GetActiveCouriersQueryHandler struct {
	orders OrderReader
}

// NewGetActiveCouriersQueryHandler creates a handler for courier queries.
func NewGetActiveCouriersQueryHandler(orders OrderReader) GetActiveCouriersQueryHandler {
	return GetActiveCouriersQueryHandler{orders: orders}
}

// Handle scans the store and returns active drivers sorted by name.
func (h GetActiveCouriersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveCouriersQuery,
) ([]ActiveCourierResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	snapshots, err := h.orders.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return collectActiveCouriers(snapshots), nil
}
