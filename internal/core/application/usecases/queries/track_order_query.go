package queries

import (
	"errors"

	"pizzeria/internal/pkg/guard"
)

var (
	ErrTrackOrderQueryIsNotConstructed = errors.New(
		"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
	)
	ErrTrackingCodeIsRequired = errors.New("tracking code is required")
)

// TrackOrderQuery looks an order up by either of its public tracking
// identifiers: the marketplace code or the supplier reference.
type TrackOrderQuery struct {
	code string

	guard guard.ConstructorGuard
}

// NewTrackOrderQuery creates a tracking lookup for the given code.
func NewTrackOrderQuery(code string) (TrackOrderQuery, error) {
	if code == "" {
		return TrackOrderQuery{}, ErrTrackingCodeIsRequired
	}

	return TrackOrderQuery{
		code:  code,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

// Code returns the tracking identifier being searched for.
func (q TrackOrderQuery) Code() string {
	return q.code
}
