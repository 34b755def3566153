package commands

import (
	"context"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/ports"
	"pizzeria/internal/pkg/keymutex"
)

// DispatchOrderCommandHandler assigns a driver and moves the order to
// dispatched status.
type DispatchOrderCommandHandler struct {
	orderRepo ports.OrderRepository
	channel   ports.NotificationChannel
	locks     *keymutex.KeyedMutex
}

// NewDispatchOrderCommandHandler creates a handler for order dispatch.
func NewDispatchOrderCommandHandler(
	orderRepo ports.OrderRepository,
	channel ports.NotificationChannel,
	locks *keymutex.KeyedMutex,
) DispatchOrderCommandHandler {
	return DispatchOrderCommandHandler{
		orderRepo: orderRepo,
		channel:   channel,
		locks:     locks,
	}
}

// Handle loads the order, assigns the driver, persists the change and
// emits an "order.dispatched" event.
func (h *DispatchOrderCommandHandler) Handle(
	ctx context.Context,
	cmd DispatchOrderCommand,
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

	if err = aggregate.Dispatch(cmd.DriverName()); err != nil {
		return order.Snapshot{}, err
	}

	if err = h.orderRepo.Update(ctx, aggregate); err != nil {
		return order.Snapshot{}, err
	}

	publishEvent(ctx, h.channel, aggregate.Status().EventType(), aggregate)

	return order.NewSnapshot(aggregate), nil
}
