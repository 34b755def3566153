package commands

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/guard"
)

var (
	ErrCustomerAcceptCommandIsNotConstructed = errors.New(
		"CustomerAcceptCommand must be created via NewCustomerAcceptCommand constructor",
	)
	ErrCustomerNameIsRequired    = errors.New("customer name is required")
	ErrDeliveryAddressIsRequired = errors.New("delivery address is required")
)

// CustomerAcceptCommand represents a customer committing to a supplier
// offer. It is the only lifecycle step with a strict status precondition:
// the order must currently be supplier_accepted.
type CustomerAcceptCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customerName    string
	deliveryAddress string

	guard guard.ConstructorGuard
}

// NewCustomerAcceptCommand creates a command for a customer acceptance.
// Customer name and delivery address are both required.
func NewCustomerAcceptCommand(
	orderID kernel.UUID,
	customerName string,
	deliveryAddress string,
) (CustomerAcceptCommand, error) {
	acceptCommand := CustomerAcceptCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		acceptCommand.setOrderID(orderID),
		acceptCommand.setCustomerName(customerName),
		acceptCommand.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return CustomerAcceptCommand{}, err
	}

	return acceptCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CustomerAcceptCommand) Validate() error {
	return c.guard.Validate(ErrCustomerAcceptCommandIsNotConstructed)
}

// OrderID returns the identifier of the accepted order.
func (c CustomerAcceptCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerName returns the accepting customer's name.
func (c CustomerAcceptCommand) CustomerName() string {
	return c.customerName
}

// DeliveryAddress returns where the order should be delivered.
func (c CustomerAcceptCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

func (c *CustomerAcceptCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CustomerAcceptCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return ErrCustomerNameIsRequired
	}

	c.customerName = customerName
	return nil
}

func (c *CustomerAcceptCommand) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return ErrDeliveryAddressIsRequired
	}

	c.deliveryAddress = deliveryAddress
	return nil
}
