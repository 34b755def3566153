package queries

import (
	"context"
	"time"
)

// GetSystemStateQueryHandler assembles the composite dashboard view from
// a single record-store scan shared by all three sections.
type GetSystemStateQueryHandler struct {
	orders OrderReader
}

// NewGetSystemStateQueryHandler creates a handler for system state queries.
func NewGetSystemStateQueryHandler(orders OrderReader) GetSystemStateQueryHandler {
	return GetSystemStateQueryHandler{orders: orders}
}

// Handle scans the store once and derives statistics, grouped orders and
// active drivers from the same snapshot set.
func (h GetSystemStateQueryHandler) Handle(
	ctx context.Context,
	query GetSystemStateQuery,
) (SystemStateResponse, error) {
	if err := query.Validate(); err != nil {
		return SystemStateResponse{}, err
	}

	snapshots, err := h.orders.GetAll(ctx)
	if err != nil {
		return SystemStateResponse{}, err
	}

	now := time.Now().UTC()

	return SystemStateResponse{
		Statistics:     computeStatistics(snapshots, now),
		OrdersByStatus: groupOrdersByStatus(snapshots, query.IncludeCompleted(), query.Limit()),
		ActiveCouriers: collectActiveCouriers(snapshots),
		LastUpdated:    now,
	}, nil
}
