package commands

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/guard"
)

var (
	ErrDispatchOrderCommandIsNotConstructed = errors.New(
		"DispatchOrderCommand must be created via NewDispatchOrderCommand constructor",
	)
	ErrDriverNameIsRequired = errors.New("driver name is required")
)

// DispatchOrderCommand represents handing an order to a delivery driver.
// Dispatch carries no status precondition; assigning a driver to an order
// in any state is allowed and simply moves it to dispatched.
type DispatchOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	driverName string

	guard guard.ConstructorGuard
}

// NewDispatchOrderCommand creates a command assigning a driver to an order.
func NewDispatchOrderCommand(orderID kernel.UUID, driverName string) (DispatchOrderCommand, error) {
	dispatchCommand := DispatchOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		dispatchCommand.setOrderID(orderID),
		dispatchCommand.setDriverName(driverName),
	); err != nil {
		return DispatchOrderCommand{}, err
	}

	return dispatchCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchOrderCommand) Validate() error {
	return c.guard.Validate(ErrDispatchOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being dispatched.
func (c DispatchOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverName returns the assigned driver.
func (c DispatchOrderCommand) DriverName() string {
	return c.driverName
}

func (c *DispatchOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *DispatchOrderCommand) setDriverName(driverName string) error {
	if driverName == "" {
		return ErrDriverNameIsRequired
	}

	c.driverName = driverName
	return nil
}
