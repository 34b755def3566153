package order

import (
	"fmt"

	"pizzeria/internal/pkg/errs"
)

// Status represents the lifecycle state of a pizza order.
//
// Lifecycle order:
//
//	created ──> pending_supplier ──┬──> supplier_accepted ──> customer_accepted
//	                               └──> supplier_rejected (terminal)
//	customer_accepted ──> preparing ──> ready ──> dispatched ──> in_transit ──> delivered (terminal)
//	cancelled is reserved and reachable from any state.
//
// Status is a closed enum; the event type for every state is derived
// through the total EventType mapping, so adding a state is a
// compile-time-checked change rather than an ad-hoc string format.
type Status int

const (
	// Unknown represents an invalid or undefined status. The zero value
	// helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the nominal initial state. Persisted orders never carry
	// it: creation immediately moves to PendingSupplier.
	Created

	// PendingSupplier means the order awaits the supplier's decision.
	PendingSupplier

	// SupplierAccepted means the supplier took the order and provided an
	// estimated delivery time.
	SupplierAccepted

	// SupplierRejected is terminal; the supplier declined the order.
	SupplierRejected

	// CustomerAccepted means the customer confirmed name, address, and the
	// derived customer price.
	CustomerAccepted

	// Preparing, Ready, Dispatched, InTransit track fulfillment progress.
	Preparing
	Ready
	Dispatched
	InTransit

	// Delivered is the terminal success state.
	Delivered

	// Cancelled is reserved; no lifecycle operation produces it today, but
	// it stays in the enum so aggregation and status updates handle it.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:          "unknown",
		Created:          "created",
		PendingSupplier:  "pending_supplier",
		SupplierAccepted: "supplier_accepted",
		SupplierRejected: "supplier_rejected",
		CustomerAccepted: "customer_accepted",
		Preparing:        "preparing",
		Ready:            "ready",
		Dispatched:       "dispatched",
		InTransit:        "in_transit",
		Delivered:        "delivered",
		Cancelled:        "cancelled",
	}
}

// AllStatuses returns every valid status in lifecycle order. Aggregation
// uses it so per-status counts cover the whole enum with zero defaults.
func AllStatuses() []Status {
	return []Status{
		Created,
		PendingSupplier,
		SupplierAccepted,
		SupplierRejected,
		CustomerAccepted,
		Preparing,
		Ready,
		Dispatched,
		InTransit,
		Delivered,
		Cancelled,
	}
}

// ParseStatus converts the snake_case wire form back into a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status value is a member of the enum.
// Unknown (the zero value) is invalid.
func (s Status) Validate() error {
	if s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the snake_case wire representation used in persisted
// records and API payloads, e.g. "pending_supplier".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// EventType returns the notification event type for the status. The
// mapping is total over the enum: "order." + the wire representation,
// e.g. Dispatched -> "order.dispatched".
func (s Status) EventType() string {
	return "order." + s.String()
}

// IsTerminal reports whether no further lifecycle transitions are
// expected. SupplierRejected and Delivered are terminal.
func (s Status) IsTerminal() bool {
	return s == SupplierRejected || s == Delivered
}

// IsActiveDelivery reports whether the order is currently out with a
// driver. Active couriers and the active_deliveries statistic are
// derived from this predicate.
func (s Status) IsActiveDelivery() bool {
	return s == Dispatched || s == InTransit
}

// IsCompleted reports whether the order left the active workflow.
// Completed groups are the ones excluded by includeCompleted=false.
func (s Status) IsCompleted() bool {
	return s == Delivered || s == Cancelled
}

// AcceptByCustomer transitions to CustomerAccepted. The only status that
// allows customer acceptance is SupplierAccepted; every other status
// yields an InvalidTransitionError.
func (s Status) AcceptByCustomer() (Status, error) {
	if s != SupplierAccepted {
		return Unknown, errs.NewInvalidTransitionError(s.String(), "accept by customer")
	}
	return CustomerAccepted, nil
}
