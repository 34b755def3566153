// Package errs provides standardized error types for the pizzeria application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package defines the error taxonomy of the order lifecycle:
//   - ObjectNotFoundError: For when an operation references a non-existent order
//   - InvalidTransitionError: For when a lifecycle operation is attempted from a
//     status that does not allow it
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - PublishFailedError: For when a payload cannot reach the notification channel
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Retry policy is deliberately absent: no error in this package is retried by
// the core. Cache corruption never appears here at all; the cache wrapper
// absorbs it and treats the entry as a miss.
package errs
