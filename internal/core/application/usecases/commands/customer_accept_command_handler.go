package commands

import (
	"context"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/ports"
	"pizzeria/internal/pkg/keymutex"
)

// CustomerAcceptCommandHandler finalizes an order on the customer side.
// Acceptance fixes the customer price: it is computed exactly once here
// and never recomputed afterwards.
type CustomerAcceptCommandHandler struct {
	orderRepo ports.OrderRepository
	channel   ports.NotificationChannel
	locks     *keymutex.KeyedMutex
}

// NewCustomerAcceptCommandHandler creates a handler for customer acceptance.
func NewCustomerAcceptCommandHandler(
	orderRepo ports.OrderRepository,
	channel ports.NotificationChannel,
	locks *keymutex.KeyedMutex,
) CustomerAcceptCommandHandler {
	return CustomerAcceptCommandHandler{
		orderRepo: orderRepo,
		channel:   channel,
		locks:     locks,
	}
}

// Handle loads the order, applies the customer acceptance and persists it.
// Returns errs.InvalidTransitionError when the order is not currently in
// supplier_accepted status.
func (h *CustomerAcceptCommandHandler) Handle(
	ctx context.Context,
	cmd CustomerAcceptCommand,
) (order.Snapshot, error) {
	if err := cmd.Validate(); err != nil {
		return order.Snapshot{}, err
	}

	key := cmd.OrderID().String()
	h.locks.Lock(key)
	defer h.locks.Unlock(key)

	aggregate, err := h.orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return order.Snapshot{}, err
	}

	if err = aggregate.AcceptByCustomer(cmd.CustomerName(), cmd.DeliveryAddress()); err != nil {
		return order.Snapshot{}, err
	}

	if err = h.orderRepo.Update(ctx, aggregate); err != nil {
		return order.Snapshot{}, err
	}

	publishEvent(ctx, h.channel, aggregate.Status().EventType(), aggregate)

	return order.NewSnapshot(aggregate), nil
}
