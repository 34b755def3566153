package queries

import (
	"errors"
	"time"

	"pizzeria/internal/pkg/guard"
)

var ErrGetActiveCouriersQueryIsNotConstructed = errors.New(
	"GetActiveCouriersQuery must be created via NewGetActiveCouriersQuery constructor",
)

// GetActiveCouriersQuery retrieves the drivers currently out delivering.
type GetActiveCouriersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveCouriersQuery creates a parameterless active-courier query.
func NewGetActiveCouriersQuery() GetActiveCouriersQuery {
	return GetActiveCouriersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveCouriersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveCouriersQueryIsNotConstructed)
}

// ActiveCourierResponse describes one driver and their current order.
type ActiveCourierResponse struct {
	DriverName string    `json:"driver_name"`
	OrderID    string    `json:"order_id"`
	Status     string    `json:"status"`
	AssignedAt time.Time `json:"assigned_at"`
}
