package commands

import (
	"context"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/ports"
	"pizzeria/internal/pkg/keymutex"
)

// UpdateOrderStatusCommandHandler overwrites an order's status and emits
// the lifecycle event named after the new status.
type UpdateOrderStatusCommandHandler struct {
	orderRepo ports.OrderRepository
	channel   ports.NotificationChannel
	locks     *keymutex.KeyedMutex
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
func NewUpdateOrderStatusCommandHandler(
	orderRepo ports.OrderRepository,
	channel ports.NotificationChannel,
	locks *keymutex.KeyedMutex,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		orderRepo: orderRepo,
		channel:   channel,
		locks:     locks,
	}
}

// Handle loads the order, overwrites its status, persists the change and
// emits the "order.<status>" event.
func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
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

	if err = aggregate.ChangeStatus(cmd.Status()); err != nil {
		return order.Snapshot{}, err
	}

	if err = h.orderRepo.Update(ctx, aggregate); err != nil {
		return order.Snapshot{}, err
	}

	publishEvent(ctx, h.channel, aggregate.Status().EventType(), aggregate)

	return order.NewSnapshot(aggregate), nil
}
