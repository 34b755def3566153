package commands

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/guard"
)

var (
	ErrSupplierRespondCommandIsNotConstructed = errors.New(
		"SupplierRespondCommand must be created via NewSupplierRespondCommand constructor",
	)
	ErrEstimatedMinutesIsInvalid = errors.New("estimated minutes must be greater than 0")
)

// SupplierRespondCommand represents a supplier's answer to a pending order:
// accept with an optional note and preparation estimate, or reject with an
// optional reason. Notes and estimate are optional; the aggregate supplies
// defaults when they are absent.
type SupplierRespondCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	accept           bool
	notes            *string
	estimatedMinutes *int

	guard guard.ConstructorGuard
}

// NewSupplierRespondCommand creates a command carrying a supplier response.
// estimatedMinutes, when present, must be positive.
func NewSupplierRespondCommand(
	orderID kernel.UUID,
	accept bool,
	notes *string,
	estimatedMinutes *int,
) (SupplierRespondCommand, error) {
	respondCommand := SupplierRespondCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		respondCommand.setOrderID(orderID),
		respondCommand.setEstimatedMinutes(estimatedMinutes),
	); err != nil {
		return SupplierRespondCommand{}, err
	}

	respondCommand.accept = accept
	respondCommand.notes = notes

	return respondCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SupplierRespondCommand) Validate() error {
	return c.guard.Validate(ErrSupplierRespondCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being answered.
func (c SupplierRespondCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Accept reports whether the supplier accepted the order.
func (c SupplierRespondCommand) Accept() bool {
	return c.accept
}

// Notes returns the supplier's optional free-form note.
func (c SupplierRespondCommand) Notes() *string {
	return c.notes
}

// EstimatedMinutes returns the optional preparation estimate.
func (c SupplierRespondCommand) EstimatedMinutes() *int {
	return c.estimatedMinutes
}

func (c *SupplierRespondCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SupplierRespondCommand) setEstimatedMinutes(estimatedMinutes *int) error {
	if estimatedMinutes != nil && *estimatedMinutes <= 0 {
		return ErrEstimatedMinutesIsInvalid
	}

	c.estimatedMinutes = estimatedMinutes
	return nil
}
