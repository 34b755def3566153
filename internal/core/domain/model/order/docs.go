// Package order provides domain entities and business logic for the pizza
// order lifecycle. It implements the Order aggregate root with state
// transitions, derived pricing, and the snapshot/event shapes shared by
// persistence and notification.
//
// The package includes:
//   - Order: The aggregate root owning identity, commercial data, and lifecycle
//   - Status: The closed status enum with a total event-type mapping
//   - Snapshot: The serialized order shape used by storage, events, and queries
//   - Event: The notification envelope published after every mutation
//
// Key business rules:
//   - Tracking identifiers are assigned once at creation and never change
//   - Customer price is derived exactly once, at customer acceptance,
//     with half-to-even rounding to two decimal places
//   - Customer acceptance requires supplier_accepted; supplier responses,
//     dispatch, and raw status updates are deliberately permissive
//   - supplier_rejected and delivered are terminal states
package order
