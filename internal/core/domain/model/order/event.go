package order

import "time"

// Event is the notification emitted after every successful mutation:
// an event type, a full snapshot of the order at emission time, and the
// emission timestamp. Events are published to the notification channel
// and never persisted independently; state is always read by re-fetching
// the order record, not by replaying events.
//
// CorrelationID is empty for single-operation events and stamped by the
// batch dispatcher when the event travels as part of a batch.
type Event struct {
	EventType     string    `json:"event_type"`
	Order         Snapshot  `json:"order"`
	Timestamp     time.Time `json:"timestamp"`
	CorrelationID string    `json:"correlation_id,omitempty"`
}

// NewEvent builds an event carrying the order's current snapshot.
func NewEvent(eventType string, o *Order) Event {
	return Event{
		EventType: eventType,
		Order:     NewSnapshot(o),
		Timestamp: time.Now().UTC(),
	}
}
