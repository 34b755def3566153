// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// per-order serialization, persistence, event publication.
package commands

import (
	"context"
	"log/slog"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/ports"
)

// publishEvent broadcasts an order lifecycle event on the shared topic.
// Publish failures are logged and swallowed: the persisted record is the
// source of truth and subscribers are best-effort consumers, so a broken
// channel must not roll back a committed write.
func publishEvent(ctx context.Context, channel ports.NotificationChannel, eventType string, o *order.Order) {
	event := order.NewEvent(eventType, o)
	if err := channel.Publish(ctx, ports.OrderTopic, event); err != nil {
		slog.WarnContext(ctx, "event publish failed",
			"topic", ports.OrderTopic,
			"event_type", eventType,
			"order_id", o.ID().String(),
			"error", err,
		)
	}
}
