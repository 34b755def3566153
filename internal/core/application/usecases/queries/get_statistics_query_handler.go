package queries

import (
	"context"
	"time"
)

// GetStatisticsQueryHandler computes order statistics from a full scan
// of the record store.
type GetStatisticsQueryHandler struct {
	orders OrderReader
}

// NewGetStatisticsQueryHandler creates a handler for statistics queries.
func NewGetStatisticsQueryHandler(orders OrderReader) GetStatisticsQueryHandler {
	return GetStatisticsQueryHandler{orders: orders}
}

// Handle scans every stored order and folds it into totals, per-status
// counts, active deliveries and today's completions (UTC day).
func (h GetStatisticsQueryHandler) Handle(
	ctx context.Context,
	query GetStatisticsQuery,
) (StatisticsResponse, error) {
	if err := query.Validate(); err != nil {
		return StatisticsResponse{}, err
	}

	snapshots, err := h.orders.GetAll(ctx)
	if err != nil {
		return StatisticsResponse{}, err
	}

	return computeStatistics(snapshots, time.Now()), nil
}
