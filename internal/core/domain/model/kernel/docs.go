// Package kernel provides core domain primitives for the pizzeria system.
// It implements the identity building blocks used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for internal order identifiers with validation and comparison
//   - TrackingCode: The human-facing PIZZA-<year>-<6 digits> lookup code
//   - SupplierReference: The supplier-side <prefix>-<4 digits> code derived from the supplier name
//
// All three identifiers are assigned once at order creation and immutable for
// the lifetime of the record. They are value objects: immutable, comparable,
// and safe for concurrent use. The random tracking identifiers are not checked
// for uniqueness against the record store.
package kernel
