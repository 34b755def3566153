package ports

import (
	"context"
)

// OrderTopic is the channel all order lifecycle events are published to.
const OrderTopic = "pizza_orders"

// NotificationChannel is the outbound contract for broadcasting order
// lifecycle events to interested consumers (dashboards, supplier apps,
// customer trackers). Payloads are JSON-serialized by the adapter; both
// order events and batch rollback notices travel through the same topic.
type NotificationChannel interface {
	// Publish sends a single payload to the given topic. A failed publish
	// returns errs.PublishFailedError; the caller decides whether the
	// failure is fatal for its operation.
	Publish(ctx context.Context, topic string, payload any) error

	// Subscribe opens a stream of raw messages for the given topic.
	// The returned channel is closed when ctx is cancelled.
	Subscribe(ctx context.Context, topic string) (<-chan []byte, error)
}
