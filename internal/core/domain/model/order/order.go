package order

import (
	"errors"
	"fmt"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"

	"github.com/govalues/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or a snapshot restore.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or Snapshot.ToOrder")
)

// DefaultEstimatedMinutes is the delivery estimate recorded when a
// supplier accepts without naming one.
const DefaultEstimatedMinutes = 30

// DefaultRejectionNote is recorded when a supplier rejects without notes.
const DefaultRejectionNote = "Supplier declined"

// DefaultMarkupPercentage is the markup applied when creation input does
// not specify one.
var DefaultMarkupPercentage = decimal.MustParse("30")

// Order is the aggregate root of the marketplace: one pizza order tracked
// from creation through delivery.
//
// Invariants:
//   - id, tracking code, and supplier reference are assigned at creation
//     and immutable for the lifetime of the record
//   - supplier price is positive; markup is non-negative
//   - customer price is nil until the customer accepts, then computed
//     exactly once and never recomputed
//   - driver name is nil until dispatch
//   - updated_at never precedes created_at
//
// Transition guards are deliberately uneven, matching the marketplace
// workflow: customer acceptance requires supplier_accepted, while
// supplier responses, dispatch, and raw status updates are permissive
// (a supplier may re-accept; dispatch does not require ready).
type Order struct {
	id                kernel.UUID
	trackingCode      kernel.TrackingCode
	supplierReference kernel.SupplierReference

	supplierName string
	pizzaName    string

	supplierPrice    decimal.Decimal
	markupPercentage decimal.Decimal
	customerPrice    *decimal.Decimal

	status Status

	customerName     *string
	deliveryAddress  *string
	driverName       *string
	estimatedMinutes *int
	supplierNotes    *string

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewOrder creates an order in PendingSupplier status with freshly
// generated tracking identifiers. supplierPrice must be positive and
// markupPercentage non-negative.
func NewOrder(
	id kernel.UUID,
	supplierName string,
	pizzaName string,
	supplierPrice decimal.Decimal,
	markupPercentage decimal.Decimal,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if supplierName == "" {
		return nil, errs.NewValueIsRequiredError("supplierName")
	}
	if pizzaName == "" {
		return nil, errs.NewValueIsRequiredError("pizzaName")
	}
	if !supplierPrice.IsPos() {
		return nil, errs.NewValueIsInvalidErrorWithCause("supplierPrice",
			fmt.Errorf("%s is not greater than 0", supplierPrice))
	}
	if markupPercentage.IsNeg() {
		return nil, errs.NewValueIsInvalidErrorWithCause("markupPercentage",
			fmt.Errorf("%s is negative", markupPercentage))
	}

	now := time.Now().UTC()

	supplierReference, err := kernel.NewSupplierReference(supplierName)
	if err != nil {
		return nil, err
	}

	return &Order{
		id:                id,
		trackingCode:      kernel.NewTrackingCode(now),
		supplierReference: supplierReference,
		supplierName:      supplierName,
		pizzaName:         pizzaName,
		supplierPrice:     supplierPrice,
		markupPercentage:  markupPercentage,
		status:            PendingSupplier,
		createdAt:         now,
		updatedAt:         now,
		isConstructed:     true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their internal identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the internal identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// TrackingCode returns the human-facing lookup code.
func (o *Order) TrackingCode() kernel.TrackingCode { return o.trackingCode }

// SupplierReference returns the supplier-side code.
func (o *Order) SupplierReference() kernel.SupplierReference { return o.supplierReference }

// SupplierName returns the supplier the order was placed with.
func (o *Order) SupplierName() string { return o.supplierName }

// PizzaName returns the ordered item.
func (o *Order) PizzaName() string { return o.pizzaName }

// SupplierPrice returns the supplier's asking price.
func (o *Order) SupplierPrice() decimal.Decimal { return o.supplierPrice }

// MarkupPercentage returns the marketplace markup.
func (o *Order) MarkupPercentage() decimal.Decimal { return o.markupPercentage }

// CustomerPrice returns the derived customer price, or nil before the
// customer accepted.
func (o *Order) CustomerPrice() *decimal.Decimal { return o.customerPrice }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// CustomerName returns the accepting customer, or nil before acceptance.
func (o *Order) CustomerName() *string { return o.customerName }

// DeliveryAddress returns the delivery address, or nil before acceptance.
func (o *Order) DeliveryAddress() *string { return o.deliveryAddress }

// DriverName returns the assigned driver, or nil before dispatch.
func (o *Order) DriverName() *string { return o.driverName }

// EstimatedMinutes returns the supplier's delivery estimate in minutes,
// or nil before supplier acceptance.
func (o *Order) EstimatedMinutes() *int { return o.estimatedMinutes }

// SupplierNotes returns the supplier's notes, or nil if none were given.
func (o *Order) SupplierNotes() *string { return o.supplierNotes }

// CreatedAt returns the creation timestamp (UTC).
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// UpdatedAt returns the timestamp of the last mutation (UTC).
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// AcceptBySupplier records the supplier taking the order: status moves to
// SupplierAccepted, notes are stored as given, and the estimate defaults
// to DefaultEstimatedMinutes when absent. There is no precondition on the
// current status; a supplier accepting twice simply re-accepts.
func (o *Order) AcceptBySupplier(notes *string, estimatedMinutes *int) error {
	if err := o.Validate(); err != nil {
		return err
	}

	minutes := DefaultEstimatedMinutes
	if estimatedMinutes != nil {
		minutes = *estimatedMinutes
	}

	o.status = SupplierAccepted
	o.supplierNotes = notes
	o.estimatedMinutes = &minutes
	o.touch()
	return nil
}

// RejectBySupplier records the supplier declining the order: status moves
// to the terminal SupplierRejected, notes default to DefaultRejectionNote.
// Like acceptance, there is no precondition on the current status.
func (o *Order) RejectBySupplier(notes *string) error {
	if err := o.Validate(); err != nil {
		return err
	}

	note := DefaultRejectionNote
	if notes != nil {
		note = *notes
	}

	o.status = SupplierRejected
	o.supplierNotes = &note
	o.touch()
	return nil
}

// AcceptByCustomer records the customer confirming the order. The order
// must be in SupplierAccepted status; the customer price is derived here,
// exactly once, from the supplier price and markup.
func (o *Order) AcceptByCustomer(customerName string, deliveryAddress string) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if customerName == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	if deliveryAddress == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}

	newStatus, err := o.status.AcceptByCustomer()
	if err != nil {
		return err
	}

	price, err := CustomerPrice(o.supplierPrice, o.markupPercentage)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.customerPrice = &price
	o.customerName = &customerName
	o.deliveryAddress = &deliveryAddress
	o.touch()
	return nil
}

// Dispatch assigns a driver and moves the order to Dispatched. The
// transition is unconditional: the workflow does not require Ready first
// (permissive on purpose, see the aggregate doc).
func (o *Order) Dispatch(driverName string) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if driverName == "" {
		return errs.NewValueIsRequiredError("driverName")
	}

	o.status = Dispatched
	o.driverName = &driverName
	o.touch()
	return nil
}

// ChangeStatus overwrites the status with any valid enum value. This is
// the only entry point for Preparing, Ready, InTransit, Delivered, and
// Cancelled.
func (o *Order) ChangeStatus(newStatus Status) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := newStatus.Validate(); err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

// CustomerPrice derives the price charged to the customer:
// supplier price × (1 + markup/100), rounded to two decimal places using
// half-to-even rounding (12.50 at 25% markup yields 15.62, not 15.63).
func CustomerPrice(supplierPrice, markupPercentage decimal.Decimal) (decimal.Decimal, error) {
	factor, err := markupPercentage.Quo(decimal.Hundred)
	if err != nil {
		return decimal.Decimal{}, err
	}

	factor, err = decimal.One.Add(factor)
	if err != nil {
		return decimal.Decimal{}, err
	}

	price, err := supplierPrice.Mul(factor)
	if err != nil {
		return decimal.Decimal{}, err
	}

	return price.Round(2), nil
}
