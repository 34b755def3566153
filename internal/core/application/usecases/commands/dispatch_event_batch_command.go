package commands

import (
	"encoding/json"
	"errors"
	"time"

	"pizzeria/internal/pkg/guard"
)

var ErrDispatchEventBatchCommandIsNotConstructed = errors.New(
	"DispatchEventBatchCommand must be created via NewDispatchEventBatchCommand constructor",
)

// BatchEvent is one event in a dispatch batch. Callers supply the event
// type and an opaque payload; the dispatcher stamps the correlation id
// and passes Data through to the channel untouched, so batches are not
// limited to order-derived events.
type BatchEvent struct {
	EventType     string          `json:"event_type"`
	Data          json.RawMessage `json:"data,omitempty"`
	Timestamp     time.Time       `json:"timestamp"`
	CorrelationID string          `json:"correlation_id,omitempty"`
}

// DispatchEventBatchCommand represents a request to publish a group of
// events under a single correlation identifier. An empty batch is
// valid and dispatches successfully without publishing anything.
type DispatchEventBatchCommand struct { //nolint:recvcheck //using for validation
	events        []BatchEvent
	correlationID string

	guard guard.ConstructorGuard
}

// NewDispatchEventBatchCommand creates a batch dispatch command.
// correlationID may be empty; the handler generates one in that case.
func NewDispatchEventBatchCommand(
	events []BatchEvent,
	correlationID string,
) (DispatchEventBatchCommand, error) {
	batchCommand := DispatchEventBatchCommand{
		events:        events,
		correlationID: correlationID,
		guard:         guard.NewConstructorGuard(),
	}

	return batchCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchEventBatchCommand) Validate() error {
	return c.guard.Validate(ErrDispatchEventBatchCommandIsNotConstructed)
}

// Events returns the events to dispatch, in submission order.
func (c DispatchEventBatchCommand) Events() []BatchEvent {
	return c.events
}

// CorrelationID returns the caller-supplied correlation id, or an empty
// string when the handler should generate one.
func (c DispatchEventBatchCommand) CorrelationID() string {
	return c.correlationID
}
