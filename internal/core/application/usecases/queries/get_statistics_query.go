package queries

import (
	"errors"

	"pizzeria/internal/pkg/guard"
)

var ErrGetStatisticsQueryIsNotConstructed = errors.New(
	"GetStatisticsQuery must be created via NewGetStatisticsQuery constructor",
)

// GetStatisticsQuery retrieves system-wide order statistics.
type GetStatisticsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetStatisticsQuery creates a parameterless statistics query.
func NewGetStatisticsQuery() GetStatisticsQuery {
	return GetStatisticsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetStatisticsQueryIsNotConstructed)
}

// StatisticsResponse is the aggregated view over every stored order.
// ByStatus carries an entry for every known status, zero included, so
// consumers never have to guess whether a missing key means zero.
type StatisticsResponse struct {
	TotalOrders      int            `json:"total_orders"`
	ActiveDeliveries int            `json:"active_deliveries"`
	CompletedToday   int            `json:"completed_today"`
	ByStatus         map[string]int `json:"by_status"`
}
