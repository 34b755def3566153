package commands

import (
	"context"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/ports"
)

// CreateOrderCommandHandler handles order placement. Creates the aggregate
// with fresh tracking identifiers, persists it and announces it with an
// "order.created" event.
type CreateOrderCommandHandler struct {
	orderRepo ports.OrderRepository
	channel   ports.NotificationChannel
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(
	orderRepo ports.OrderRepository,
	channel ports.NotificationChannel,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		orderRepo: orderRepo,
		channel:   channel,
	}
}

// Handle processes the order creation command and returns the snapshot of
// the newly persisted order. The creation announcement uses the
// "order.created" event type while the order itself already waits in
// pending_supplier status.
func (h *CreateOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateOrderCommand,
) (order.Snapshot, error) {
	if err := cmd.Validate(); err != nil {
		return order.Snapshot{}, err
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.SupplierName(),
		cmd.PizzaName(),
		cmd.SupplierPrice(),
		cmd.MarkupPercentage(),
	)
	if err != nil {
		return order.Snapshot{}, err
	}

	if err = h.orderRepo.Add(ctx, aggregate); err != nil {
		return order.Snapshot{}, err
	}

	publishEvent(ctx, h.channel, order.Created.EventType(), aggregate)

	return order.NewSnapshot(aggregate), nil
}
