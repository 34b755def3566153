package queries

import (
	"errors"

	"pizzeria/internal/pkg/guard"
)

var (
	ErrGetOrdersByStatusQueryIsNotConstructed = errors.New(
		"GetOrdersByStatusQuery must be created via NewGetOrdersByStatusQuery constructor",
	)
	ErrLimitIsInvalid = errors.New("limit must not be negative")
)

// GetOrdersByStatusQuery retrieves orders grouped by their status.
// A zero limit means unlimited.
type GetOrdersByStatusQuery struct {
	includeCompleted bool
	limit            int

	guard guard.ConstructorGuard
}

// NewGetOrdersByStatusQuery creates a grouping query. When
// includeCompleted is false, delivered and cancelled orders are left out.
func NewGetOrdersByStatusQuery(includeCompleted bool, limit int) (GetOrdersByStatusQuery, error) {
	if limit < 0 {
		return GetOrdersByStatusQuery{}, ErrLimitIsInvalid
	}

	return GetOrdersByStatusQuery{
		includeCompleted: includeCompleted,
		limit:            limit,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByStatusQueryIsNotConstructed)
}

// IncludeCompleted reports whether delivered/cancelled orders are wanted.
func (q GetOrdersByStatusQuery) IncludeCompleted() bool {
	return q.includeCompleted
}

// Limit returns the per-status cap, zero meaning unlimited.
func (q GetOrdersByStatusQuery) Limit() int {
	return q.limit
}
