package commands

import (
	"errors"

	"github.com/govalues/decimal"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrSupplierNameIsRequired = errors.New("supplier name is required")
	ErrPizzaNameIsRequired    = errors.New("pizza name is required")
	ErrSupplierPriceIsInvalid = errors.New("supplier price must be greater than 0")
	ErrMarkupIsInvalid        = errors.New("markup percentage must not be negative")
)

// CreateOrderCommand represents a request to place a new pizza order with
// a supplier. The customer price is not known yet; it is computed later,
// when the customer accepts the supplier's offer.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	price := decimal.MustParse("12.50")
//	markup := decimal.MustParse("30")
//	cmd, err := NewCreateOrderCommand(orderID, "Mario's Pizza Palace", "Margherita", price, markup)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	snapshot, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	supplierName     string
	pizzaName        string
	supplierPrice    decimal.Decimal
	markupPercentage decimal.Decimal

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that the order ID is valid, names are not empty, the supplier
// price is positive and the markup percentage is not negative.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	supplierName string,
	pizzaName string,
	supplierPrice decimal.Decimal,
	markupPercentage decimal.Decimal,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setSupplierName(supplierName),
		orderCommand.setPizzaName(pizzaName),
		orderCommand.setSupplierPrice(supplierPrice),
		orderCommand.setMarkupPercentage(markupPercentage),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// SupplierName returns the name of the supplier the order is placed with.
func (c CreateOrderCommand) SupplierName() string {
	return c.supplierName
}

// PizzaName returns the ordered pizza.
func (c CreateOrderCommand) PizzaName() string {
	return c.pizzaName
}

// SupplierPrice returns the supplier's base price.
func (c CreateOrderCommand) SupplierPrice() decimal.Decimal {
	return c.supplierPrice
}

// MarkupPercentage returns the marketplace markup applied on acceptance.
func (c CreateOrderCommand) MarkupPercentage() decimal.Decimal {
	return c.markupPercentage
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setSupplierName(supplierName string) error {
	if supplierName == "" {
		return ErrSupplierNameIsRequired
	}

	c.supplierName = supplierName
	return nil
}

func (c *CreateOrderCommand) setPizzaName(pizzaName string) error {
	if pizzaName == "" {
		return ErrPizzaNameIsRequired
	}

	c.pizzaName = pizzaName
	return nil
}

func (c *CreateOrderCommand) setSupplierPrice(supplierPrice decimal.Decimal) error {
	if !supplierPrice.IsPos() {
		return ErrSupplierPriceIsInvalid
	}

	c.supplierPrice = supplierPrice
	return nil
}

func (c *CreateOrderCommand) setMarkupPercentage(markupPercentage decimal.Decimal) error {
	if markupPercentage.IsNeg() {
		return ErrMarkupIsInvalid
	}

	c.markupPercentage = markupPercentage
	return nil
}
