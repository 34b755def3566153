package queries_test

import (
	"testing"

	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"
)

func newTrackedOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		"Mario's Pizza Palace",
		"Margherita",
		decimal.MustParse("12.50"),
		decimal.MustParse("30"),
	)
	require.NoError(t, err)
	return o
}

func readerFor(orders ...*order.Order) *fakeOrderReader {
	byID := make(map[string]*order.Order, len(orders))
	for _, o := range orders {
		byID[o.ID().String()] = o
	}
	return &fakeOrderReader{orders: byID}
}

func TestGetDeliveryInfoQueryHandler_Handle_Dispatched(t *testing.T) {
	o := newTrackedOrder(t)
	minutes := 40
	require.NoError(t, o.AcceptBySupplier(nil, &minutes))
	require.NoError(t, o.Dispatch("Dave"))

	h := queries.NewGetDeliveryInfoQueryHandler(readerFor(o))
	query, err := queries.NewGetDeliveryInfoQuery(o.ID())
	require.NoError(t, err)

	info, err := h.Handle(t.Context(), query)
	require.NoError(t, err)

	assert.Equal(t, o.ID().String(), info.OrderID)
	assert.Equal(t, "dispatched", info.Status)
	assert.Equal(t, 33, info.ProgressPercentage)
	require.NotNil(t, info.EstimatedArrivalMinutes)
	assert.Equal(t, 40, *info.EstimatedArrivalMinutes)
	assert.Equal(t, "Driver assigned - preparing for pickup", info.CurrentStage)

	require.Len(t, info.Timeline, 4)
	assert.Equal(t, "created", info.Timeline[0].Stage)
	assert.True(t, info.Timeline[0].Completed)
	assert.True(t, info.Timeline[1].Completed)
	assert.False(t, info.Timeline[2].Completed)
	assert.False(t, info.Timeline[3].Completed)
	assert.Nil(t, info.Timeline[2].Timestamp)
}

func TestGetDeliveryInfoQueryHandler_Handle_InTransitHalvesEstimate(t *testing.T) {
	o := newTrackedOrder(t)
	require.NoError(t, o.Dispatch("Dave"))
	require.NoError(t, o.ChangeStatus(order.InTransit))

	h := queries.NewGetDeliveryInfoQueryHandler(readerFor(o))
	query, err := queries.NewGetDeliveryInfoQuery(o.ID())
	require.NoError(t, err)

	info, err := h.Handle(t.Context(), query)
	require.NoError(t, err)
	assert.Equal(t, 66, info.ProgressPercentage)
	require.NotNil(t, info.EstimatedArrivalMinutes)
	// no supplier estimate was given; half of the 30 minute default
	assert.Equal(t, 15, *info.EstimatedArrivalMinutes)
	assert.Equal(t, "On the way to your location", info.CurrentStage)
	assert.True(t, info.Timeline[2].Completed)
	require.NotNil(t, info.Timeline[2].Timestamp)
}

func TestGetDeliveryInfoQueryHandler_Handle_Delivered(t *testing.T) {
	o := newTrackedOrder(t)
	require.NoError(t, o.Dispatch("Dave"))
	require.NoError(t, o.ChangeStatus(order.Delivered))

	h := queries.NewGetDeliveryInfoQueryHandler(readerFor(o))
	query, err := queries.NewGetDeliveryInfoQuery(o.ID())
	require.NoError(t, err)

	info, err := h.Handle(t.Context(), query)
	require.NoError(t, err)
	assert.Equal(t, 100, info.ProgressPercentage)
	require.NotNil(t, info.EstimatedArrivalMinutes)
	assert.Zero(t, *info.EstimatedArrivalMinutes)
	assert.Equal(t, "Delivered successfully", info.CurrentStage)
	assert.True(t, info.Timeline[3].Completed)
}

func TestGetDeliveryInfoQueryHandler_Handle_NotDispatched(t *testing.T) {
	o := newTrackedOrder(t) // pending_supplier

	h := queries.NewGetDeliveryInfoQueryHandler(readerFor(o))
	query, err := queries.NewGetDeliveryInfoQuery(o.ID())
	require.NoError(t, err)

	_, err = h.Handle(t.Context(), query)
	require.ErrorIs(t, err, queries.ErrOrderNotDispatched)
}

func TestGetDeliveryInfoQueryHandler_Handle_NotFound(t *testing.T) {
	h := queries.NewGetDeliveryInfoQueryHandler(readerFor())
	query, err := queries.NewGetDeliveryInfoQuery(kernel.NewUUID())
	require.NoError(t, err)

	_, err = h.Handle(t.Context(), query)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
