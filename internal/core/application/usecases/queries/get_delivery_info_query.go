package queries

import (
	"errors"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/guard"
)

var (
	ErrGetDeliveryInfoQueryIsNotConstructed = errors.New(
		"GetDeliveryInfoQuery must be created via NewGetDeliveryInfoQuery constructor",
	)

	// ErrOrderNotDispatched is returned when delivery tracking is
	// requested for an order that has never left the supplier.
	ErrOrderNotDispatched = errors.New("order has not been dispatched yet")
)

// GetDeliveryInfoQuery retrieves the delivery tracking view for an order.
type GetDeliveryInfoQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveryInfoQuery creates a delivery tracking query.
func NewGetDeliveryInfoQuery(orderID kernel.UUID) (GetDeliveryInfoQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetDeliveryInfoQuery{}, err
	}

	return GetDeliveryInfoQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryInfoQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryInfoQueryIsNotConstructed)
}

// OrderID returns the tracked order's identifier.
func (q GetDeliveryInfoQuery) OrderID() kernel.UUID {
	return q.orderID
}

// TimelineEntry is one stage of the delivery timeline. Timestamp is nil
// for stages the order has not reached.
type TimelineEntry struct {
	Stage     string     `json:"stage"`
	Timestamp *time.Time `json:"timestamp"`
	Completed bool       `json:"completed"`
}

// DeliveryInfoResponse is the customer-facing tracking view: identity,
// progress percentage, arrival estimate and the stage timeline.
type DeliveryInfoResponse struct {
	OrderID                 string          `json:"order_id"`
	TrackingCode            string          `json:"tracking_id"`
	SupplierReference       string          `json:"supplier_tracking_id"`
	Status                  string          `json:"status"`
	DriverName              *string         `json:"driver_name"`
	DeliveryAddress         *string         `json:"delivery_address"`
	CustomerName            *string         `json:"customer_name"`
	SupplierName            string          `json:"supplier_name"`
	PizzaName               string          `json:"pizza_name"`
	ProgressPercentage      int             `json:"progress_percentage"`
	EstimatedArrivalMinutes *int            `json:"estimated_arrival_minutes"`
	Timeline                []TimelineEntry `json:"timeline"`
	CurrentStage            string          `json:"current_stage"`
}
