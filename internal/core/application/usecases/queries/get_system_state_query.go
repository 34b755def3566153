package queries

import (
	"errors"
	"time"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/guard"
)

var ErrGetSystemStateQueryIsNotConstructed = errors.New(
	"GetSystemStateQuery must be created via NewGetSystemStateQuery constructor",
)

// GetSystemStateQuery retrieves the full dashboard view: statistics,
// grouped orders and active drivers in one shot.
type GetSystemStateQuery struct {
	includeCompleted bool
	limit            int

	guard guard.ConstructorGuard
}

// NewGetSystemStateQuery creates a system state query. The parameters
// mirror GetOrdersByStatusQuery and apply to the grouped-orders section.
func NewGetSystemStateQuery(includeCompleted bool, limit int) (GetSystemStateQuery, error) {
	if limit < 0 {
		return GetSystemStateQuery{}, ErrLimitIsInvalid
	}

	return GetSystemStateQuery{
		includeCompleted: includeCompleted,
		limit:            limit,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSystemStateQuery) Validate() error {
	return q.guard.Validate(ErrGetSystemStateQueryIsNotConstructed)
}

// IncludeCompleted reports whether delivered/cancelled orders are wanted.
func (q GetSystemStateQuery) IncludeCompleted() bool {
	return q.includeCompleted
}

// Limit returns the per-status cap, zero meaning unlimited.
func (q GetSystemStateQuery) Limit() int {
	return q.limit
}

// SystemStateResponse is the composite dashboard read model.
type SystemStateResponse struct {
	Statistics     StatisticsResponse          `json:"statistics"`
	OrdersByStatus map[string][]order.Snapshot `json:"orders_by_status"`
	ActiveCouriers []ActiveCourierResponse     `json:"active_drivers"`
	LastUpdated    time.Time                   `json:"last_updated"`
}
