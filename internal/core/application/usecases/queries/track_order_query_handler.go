package queries

import (
	"context"

	"pizzeria/internal/core/domain/model/order"
)

// TrackOrderQueryHandler resolves a public tracking identifier to an
// order snapshot with a linear scan over the store. Tracking codes are
// not indexed; the store only keys by order id.
type TrackOrderQueryHandler struct {
	orders OrderReader
}

// NewTrackOrderQueryHandler creates a handler for tracking lookups.
func NewTrackOrderQueryHandler(orders OrderReader) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{orders: orders}
}

// Handle returns the first order whose marketplace code or supplier
// reference matches. An unknown code yields a nil snapshot, not an
// error; callers render that as "not found".
func (h TrackOrderQueryHandler) Handle(
	ctx context.Context,
	query TrackOrderQuery,
) (*order.Snapshot, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	snapshots, err := h.orders.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range snapshots {
		if snapshots[i].TrackingCode == query.Code() ||
			snapshots[i].SupplierReference == query.Code() {
			return &snapshots[i], nil
		}
	}

	return nil, nil
}
