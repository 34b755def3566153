package commands

import (
	"context"
	"log/slog"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/ports"
)

// RollbackEventType marks the notification sent to subscribers when a
// batch is abandoned mid-way.
const RollbackEventType = "batch.rollback"

// BatchResult reports the outcome of a batch dispatch. FailedCount covers
// every event that was not delivered, the failing one included.
type BatchResult struct {
	Success        bool     `json:"success"`
	CorrelationID  string   `json:"correlation_id"`
	ProcessedCount int      `json:"processed_count"`
	FailedCount    int      `json:"failed_count"`
	Errors         []string `json:"errors,omitempty"`
}

// rollbackNotice tells subscribers to discard everything they received
// under the given correlation id.
type rollbackNotice struct {
	EventType     string    `json:"event_type"`
	CorrelationID string    `json:"correlation_id"`
	Errors        []string  `json:"errors"`
	Timestamp     time.Time `json:"timestamp"`
}

// DispatchEventBatchCommandHandler publishes event batches with
// all-or-nothing intent. Delivery is not transactional: events already
// published before a failure stay published, and the rollback notice is
// how subscribers learn to disregard them.
type DispatchEventBatchCommandHandler struct {
	channel ports.NotificationChannel
}

// NewDispatchEventBatchCommandHandler creates a handler for batch dispatch.
func NewDispatchEventBatchCommandHandler(
	channel ports.NotificationChannel,
) DispatchEventBatchCommandHandler {
	return DispatchEventBatchCommandHandler{
		channel: channel,
	}
}

// Handle stamps every event with the batch correlation id and publishes
// them in submission order. The first publish failure stops the batch:
// a single "batch.rollback" notice goes out (best effort) and the result
// reports the failure. An empty batch succeeds with zero counts.
func (h *DispatchEventBatchCommandHandler) Handle(
	ctx context.Context,
	cmd DispatchEventBatchCommand,
) (BatchResult, error) {
	if err := cmd.Validate(); err != nil {
		return BatchResult{}, err
	}

	correlationID := cmd.CorrelationID()
	if correlationID == "" {
		correlationID = kernel.NewUUID().String()
	}

	events := cmd.Events()
	for i, event := range events {
		event.CorrelationID = correlationID

		if err := h.channel.Publish(ctx, ports.OrderTopic, event); err != nil {
			dispatchErrors := []string{err.Error()}
			h.publishRollback(ctx, correlationID, dispatchErrors)

			return BatchResult{
				Success:        false,
				CorrelationID:  correlationID,
				ProcessedCount: i,
				FailedCount:    len(events) - i,
				Errors:         dispatchErrors,
			}, nil
		}
	}

	return BatchResult{
		Success:        true,
		CorrelationID:  correlationID,
		ProcessedCount: len(events),
		FailedCount:    0,
	}, nil
}

func (h *DispatchEventBatchCommandHandler) publishRollback(
	ctx context.Context,
	correlationID string,
	dispatchErrors []string,
) {
	notice := rollbackNotice{
		EventType:     RollbackEventType,
		CorrelationID: correlationID,
		Errors:        dispatchErrors,
		Timestamp:     time.Now().UTC(),
	}

	if err := h.channel.Publish(ctx, ports.OrderTopic, notice); err != nil {
		slog.WarnContext(ctx, "rollback notice publish failed",
			"correlation_id", correlationID,
			"error", err,
		)
	}
}
