package queries

import (
	"context"
	"time"

	"pizzeria/internal/core/domain/model/order"
)

// GetDeliveryInfoQueryHandler builds the delivery tracking view. Only
// orders that have reached dispatch are trackable; everything earlier in
// the lifecycle fails with ErrOrderNotDispatched.
type GetDeliveryInfoQueryHandler struct {
	orders OrderReader
}

// NewGetDeliveryInfoQueryHandler creates a handler for delivery tracking.
func NewGetDeliveryInfoQueryHandler(orders OrderReader) GetDeliveryInfoQueryHandler {
	return GetDeliveryInfoQueryHandler{orders: orders}
}

// Handle loads the order and derives progress, arrival estimate, stage
// timeline and the human-readable current stage.
func (h GetDeliveryInfoQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryInfoQuery,
) (DeliveryInfoResponse, error) {
	if err := query.Validate(); err != nil {
		return DeliveryInfoResponse{}, err
	}

	aggregate, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return DeliveryInfoResponse{}, err
	}

	status := aggregate.Status()
	if !status.IsActiveDelivery() && status != order.Delivered {
		return DeliveryInfoResponse{}, ErrOrderNotDispatched
	}

	snapshot := order.NewSnapshot(aggregate)

	return DeliveryInfoResponse{
		OrderID:                 snapshot.ID,
		TrackingCode:            snapshot.TrackingCode,
		SupplierReference:       snapshot.SupplierReference,
		Status:                  snapshot.Status,
		DriverName:              snapshot.DriverName,
		DeliveryAddress:         snapshot.DeliveryAddress,
		CustomerName:            snapshot.CustomerName,
		SupplierName:            snapshot.SupplierName,
		PizzaName:               snapshot.PizzaName,
		ProgressPercentage:      deliveryProgress(status),
		EstimatedArrivalMinutes: estimateArrival(status, snapshot.EstimatedMinutes),
		Timeline:                deliveryTimeline(status, snapshot.CreatedAt, snapshot.UpdatedAt),
		CurrentStage:            currentStage(status),
	}, nil
}

func deliveryProgress(status order.Status) int {
	switch status {
	case order.Dispatched:
		return 33
	case order.InTransit:
		return 66
	case order.Delivered:
		return 100
	default:
		return 0
	}
}

// estimateArrival returns the remaining minutes: the full estimate right
// after dispatch, half of it mid-route, zero once delivered.
func estimateArrival(status order.Status, estimatedMinutes *int) *int {
	base := order.DefaultEstimatedMinutes
	if estimatedMinutes != nil {
		base = *estimatedMinutes
	}

	var remaining int
	switch status {
	case order.Delivered:
		remaining = 0
	case order.Dispatched:
		remaining = base
	case order.InTransit:
		remaining = base / 2
	default:
		return nil
	}

	return &remaining
}

func deliveryTimeline(status order.Status, createdAt, updatedAt time.Time) []TimelineEntry {
	stageTime := func(reached bool) *time.Time {
		if !reached {
			return nil
		}
		t := updatedAt
		return &t
	}

	return []TimelineEntry{
		{
			Stage:     "created",
			Timestamp: &createdAt,
			Completed: true,
		},
		{
			Stage:     "dispatched",
			Timestamp: stageTime(status != order.Dispatched),
			Completed: status == order.Dispatched || status == order.InTransit || status == order.Delivered,
		},
		{
			Stage:     "in_transit",
			Timestamp: stageTime(status == order.InTransit),
			Completed: status == order.InTransit || status == order.Delivered,
		},
		{
			Stage:     "delivered",
			Timestamp: stageTime(status == order.Delivered),
			Completed: status == order.Delivered,
		},
	}
}

func currentStage(status order.Status) string {
	switch status {
	case order.Dispatched:
		return "Driver assigned - preparing for pickup"
	case order.InTransit:
		return "On the way to your location"
	case order.Delivered:
		return "Delivered successfully"
	default:
		return "Unknown"
	}
}
