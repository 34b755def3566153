package commands

import (
	"context"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/ports"
	"pizzeria/internal/pkg/keymutex"
)

// SupplierRespondCommandHandler applies a supplier's accept or reject
// decision to an order. The read-modify-write cycle is serialized per
// order id so concurrent responses cannot silently overwrite each other.
type SupplierRespondCommandHandler struct {
	orderRepo ports.OrderRepository
	channel   ports.NotificationChannel
	locks     *keymutex.KeyedMutex
}

// NewSupplierRespondCommandHandler creates a handler for supplier responses.
func NewSupplierRespondCommandHandler(
	orderRepo ports.OrderRepository,
	channel ports.NotificationChannel,
	locks *keymutex.KeyedMutex,
) SupplierRespondCommandHandler {
	return SupplierRespondCommandHandler{
		orderRepo: orderRepo,
		channel:   channel,
		locks:     locks,
	}
}

// Handle loads the order, applies the supplier decision, persists the
// result and emits the matching lifecycle event. Both branches work from
// any current status; a supplier may answer an already answered order.
func (h *SupplierRespondCommandHandler) Handle(
	ctx context.Context,
	cmd SupplierRespondCommand,
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

	if cmd.Accept() {
		err = aggregate.AcceptBySupplier(cmd.Notes(), cmd.EstimatedMinutes())
	} else {
		err = aggregate.RejectBySupplier(cmd.Notes())
	}
	if err != nil {
		return order.Snapshot{}, err
	}

	if err = h.orderRepo.Update(ctx, aggregate); err != nil {
		return order.Snapshot{}, err
	}

	publishEvent(ctx, h.channel, aggregate.Status().EventType(), aggregate)

	return order.NewSnapshot(aggregate), nil
}
