package order

import (
	"time"

	"pizzeria/internal/core/domain/model/kernel"

	"github.com/govalues/decimal"
)

// Snapshot is the serialized form of an order: the shape persisted under
// `order:<id>` in the record store, embedded in every published event,
// and returned by the read-side queries. Field names mirror the public
// API of the system.
//
// A Snapshot is plain data with no invariants of its own; ToOrder
// re-validates everything when an aggregate is reconstructed from it.
type Snapshot struct {
	ID                string           `json:"id"`
	TrackingCode      string           `json:"tracking_id"`
	SupplierReference string           `json:"supplier_tracking_id"`
	SupplierName      string           `json:"supplier_name"`
	PizzaName         string           `json:"pizza_name"`
	SupplierPrice     decimal.Decimal  `json:"supplier_price"`
	MarkupPercentage  decimal.Decimal  `json:"markup_percentage"`
	CustomerPrice     *decimal.Decimal `json:"customer_price,omitempty"`
	Status            string           `json:"status"`
	CustomerName      *string          `json:"customer_name,omitempty"`
	DeliveryAddress   *string          `json:"delivery_address,omitempty"`
	DriverName        *string          `json:"driver_name,omitempty"`
	EstimatedMinutes  *int             `json:"estimated_delivery_time,omitempty"`
	SupplierNotes     *string          `json:"supplier_notes,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// NewSnapshot captures the current state of an order.
func NewSnapshot(o *Order) Snapshot {
	return Snapshot{
		ID:                o.ID().String(),
		TrackingCode:      o.TrackingCode().String(),
		SupplierReference: o.SupplierReference().String(),
		SupplierName:      o.SupplierName(),
		PizzaName:         o.PizzaName(),
		SupplierPrice:     o.SupplierPrice(),
		MarkupPercentage:  o.MarkupPercentage(),
		CustomerPrice:     o.CustomerPrice(),
		Status:            o.Status().String(),
		CustomerName:      o.CustomerName(),
		DeliveryAddress:   o.DeliveryAddress(),
		DriverName:        o.DriverName(),
		EstimatedMinutes:  o.EstimatedMinutes(),
		SupplierNotes:     o.SupplierNotes(),
		CreatedAt:         o.CreatedAt(),
		UpdatedAt:         o.UpdatedAt(),
	}
}

// OrderStatus parses the snapshot's status string. Records with an
// unrecognized status come back as Unknown, which the read side skips
// rather than failing a whole scan.
func (s Snapshot) OrderStatus() Status {
	status, err := ParseStatus(s.Status)
	if err != nil {
		return Unknown
	}
	return status
}

// ToOrder reconstructs the aggregate from a persisted snapshot,
// re-validating the identifiers and the status.
func (s Snapshot) ToOrder() (*Order, error) {
	id, err := kernel.UUIDFromString(s.ID)
	if err != nil {
		return nil, err
	}

	trackingCode, err := kernel.TrackingCodeFromString(s.TrackingCode)
	if err != nil {
		return nil, err
	}

	supplierReference, err := kernel.SupplierReferenceFromString(s.SupplierReference)
	if err != nil {
		return nil, err
	}

	status, err := ParseStatus(s.Status)
	if err != nil {
		return nil, err
	}

	return &Order{
		id:                id,
		trackingCode:      trackingCode,
		supplierReference: supplierReference,
		supplierName:      s.SupplierName,
		pizzaName:         s.PizzaName,
		supplierPrice:     s.SupplierPrice,
		markupPercentage:  s.MarkupPercentage,
		customerPrice:     s.CustomerPrice,
		status:            status,
		customerName:      s.CustomerName,
		deliveryAddress:   s.DeliveryAddress,
		driverName:        s.DriverName,
		estimatedMinutes:  s.EstimatedMinutes,
		supplierNotes:     s.SupplierNotes,
		createdAt:         s.CreatedAt,
		updatedAt:         s.UpdatedAt,
		isConstructed:     true,
	}, nil
}
