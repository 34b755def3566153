package kernel

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"
	"time"
	"unicode"

	"pizzeria/internal/pkg/errs"
)

var (
	trackingCodePattern      = regexp.MustCompile(`^PIZZA-\d{4}-\d{6}$`)
	supplierReferencePattern = regexp.MustCompile(`^[A-Z]{1,3}-\d{4}$`)
)

// ErrTrackingCodeIsNotConstructed indicates a zero-value TrackingCode.
var ErrTrackingCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"TrackingCode must be created via NewTrackingCode or TrackingCodeFromString")

// ErrSupplierReferenceIsNotConstructed indicates a zero-value SupplierReference.
var ErrSupplierReferenceIsNotConstructed = errs.NewValueIsRequiredError(
	"SupplierReference must be created via NewSupplierReference or SupplierReferenceFromString")

// TrackingCode is the human-facing code customers use to look up an
// order, distinct from the internal UUID. The format is
// PIZZA-<year>-<6 digits>, e.g. PIZZA-2026-001234.
//
// The six digits are random and not checked for uniqueness against the
// record store; collisions are accepted risk at this scale (decision
// recorded in DESIGN.md).
type TrackingCode struct {
	value string
}

// NewTrackingCode generates a tracking code stamped with the year of the
// given time and a random zero-padded six-digit number.
func NewTrackingCode(at time.Time) TrackingCode {
	return TrackingCode{
		value: fmt.Sprintf("PIZZA-%d-%06d", at.UTC().Year(), rand.IntN(1_000_000)),
	}
}

// TrackingCodeFromString parses and validates a tracking code, typically
// when reconstructing an order from the record store or handling a
// customer lookup.
func TrackingCodeFromString(s string) (TrackingCode, error) {
	if !trackingCodePattern.MatchString(s) {
		return TrackingCode{}, errs.NewValueIsInvalidErrorWithCause("trackingCode",
			fmt.Errorf("%q does not match PIZZA-<year>-<6 digits>", s))
	}
	return TrackingCode{value: s}, nil
}

// String returns the code, e.g. "PIZZA-2026-001234".
func (c TrackingCode) String() string {
	return c.value
}

// IsEqual reports whether two tracking codes are the same.
func (c TrackingCode) IsEqual(other TrackingCode) bool {
	return c.value == other.value
}

// Validate returns ErrTrackingCodeIsNotConstructed for the zero value.
func (c TrackingCode) Validate() error {
	if c.value == "" {
		return ErrTrackingCodeIsNotConstructed
	}
	return nil
}

// SupplierReference is the supplier-side code printed on the box. The
// prefix is the upper-cased first ASCII letter of up to the first three
// words of the supplier name, the suffix a random four-digit number:
// "Mario's Pizza Palace" yields MPP-xxxx, "Luigi" yields L-xxxx.
// Non-ASCII letters are skipped when building the prefix, so the
// reference always stays within its <1-3 letters>-<4 digits> format.
//
// Like TrackingCode, the digits are random with no uniqueness check.
type SupplierReference struct {
	value string
}

// NewSupplierReference derives a supplier reference from the supplier
// name. It fails when the name yields no letters to build a prefix from.
func NewSupplierReference(supplierName string) (SupplierReference, error) {
	prefix := supplierPrefix(supplierName)
	if prefix == "" {
		return SupplierReference{}, errs.NewValueIsInvalidErrorWithCause("supplierName",
			fmt.Errorf("%q yields no reference prefix", supplierName))
	}

	return SupplierReference{
		value: fmt.Sprintf("%s-%04d", prefix, rand.IntN(10_000)),
	}, nil
}

// SupplierReferenceFromString parses and validates a supplier reference.
func SupplierReferenceFromString(s string) (SupplierReference, error) {
	if !supplierReferencePattern.MatchString(s) {
		return SupplierReference{}, errs.NewValueIsInvalidErrorWithCause("supplierReference",
			fmt.Errorf("%q does not match <1-3 letters>-<4 digits>", s))
	}
	return SupplierReference{value: s}, nil
}

// String returns the reference, e.g. "MPP-0042".
func (r SupplierReference) String() string {
	return r.value
}

// IsEqual reports whether two supplier references are the same.
func (r SupplierReference) IsEqual(other SupplierReference) bool {
	return r.value == other.value
}

// Validate returns ErrSupplierReferenceIsNotConstructed for the zero value.
func (r SupplierReference) Validate() error {
	if r.value == "" {
		return ErrSupplierReferenceIsNotConstructed
	}
	return nil
}

// supplierPrefix keeps the first ASCII letter of up to the first three
// words, upper-cased. The prefix must stay within A-Z so every generated
// reference round-trips through SupplierReferenceFromString; a word
// whose letters are all non-ASCII contributes nothing.
func supplierPrefix(name string) string {
	var b strings.Builder
	words := strings.Fields(name)
	if len(words) > 3 {
		words = words[:3]
	}

	for _, w := range words {
		for _, r := range w {
			upper := unicode.ToUpper(r)
			if upper >= 'A' && upper <= 'Z' {
				b.WriteRune(upper)
				break
			}
		}
	}
	return b.String()
}
