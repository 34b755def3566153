// Package guard provides a small defensive-construction helper used by
// commands and value objects throughout the application.
//
// Embedding a ConstructorGuard in a struct makes it possible to detect
// whether the struct was produced by its designated constructor or is a
// zero value that bypassed validation. Domain objects call
// guard.Validate in their own Validate methods before any operation.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded
// object is a zero value and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its constructor.
// The zero value reports the object as not constructed.
//
// Example:
//
//	type TrackOrderQuery struct {
//	    code  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewTrackOrderQuery(code string) (TrackOrderQuery, error) {
//	    if code == "" {
//	        return TrackOrderQuery{}, errors.New("code is required")
//	    }
//	    return TrackOrderQuery{code: code, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (q TrackOrderQuery) Validate() error {
//	    return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking the enclosing object as
// properly constructed. Call it in every constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was created through its
// constructor. For a zero-value guard it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
