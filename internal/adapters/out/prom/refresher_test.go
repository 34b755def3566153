package prom_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/govalues/decimal"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizzeria/internal/adapters/out/prom"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
)

type fakeScanner struct {
	snapshots []order.Snapshot
	err       error
}

func (f *fakeScanner) GetAll(_ context.Context) ([]order.Snapshot, error) {
	return f.snapshots, f.err
}

func snapshot(status, supplier string, driver *string, updatedAt time.Time) order.Snapshot {
	return order.Snapshot{
		ID:               kernel.NewUUID().String(),
		SupplierName:     supplier,
		PizzaName:        "Margherita",
		SupplierPrice:    decimal.MustParse("10"),
		MarkupPercentage: decimal.MustParse("30"),
		Status:           status,
		DriverName:       driver,
		CreatedAt:        updatedAt,
		UpdatedAt:        updatedAt,
	}
}

func TestRefresher_Refresh(t *testing.T) {
	now := time.Now().UTC()
	dave := "Dave"
	eve := "Eve"

	scanner := &fakeScanner{snapshots: []order.Snapshot{
		snapshot("pending_supplier", "Mario's", nil, now),
		snapshot("dispatched", "Mario's", &dave, now),
		snapshot("in_transit", "Luigi", &eve, now),
		snapshot("delivered", "Mario's", &dave, now.Add(-2*time.Hour)),
		snapshot("delivered", "Luigi", &eve, now.Add(-10*24*time.Hour)),
	}}

	r := prom.NewRefresher(scanner)
	require.NoError(t, r.Refresh(t.Context()))

	assert.Equal(t, 5.0, testutil.ToFloat64(prom.OrdersTotal))
	assert.Equal(t, 2.0, testutil.ToFloat64(prom.OrdersDelivered))
	assert.Equal(t, 1.0, testutil.ToFloat64(prom.OrdersInTransit))
	assert.Equal(t, 1.0, testutil.ToFloat64(prom.OrdersDispatched))
	assert.Equal(t, 40.0, testutil.ToFloat64(prom.DeliveryRatePercent))
	assert.Equal(t, 1.0, testutil.ToFloat64(prom.DeliveredToday))
	assert.Equal(t, 1.0, testutil.ToFloat64(prom.DeliveredWeek))
	assert.Equal(t, 2.0, testutil.ToFloat64(prom.DeliveredMonth))
	assert.Equal(t, 1.0, testutil.ToFloat64(prom.DeliveredBySupplier.WithLabelValues("Mario's")))
	assert.Equal(t, 1.0, testutil.ToFloat64(prom.DeliveredByDriver.WithLabelValues("Eve")))
}

func TestRefresher_Refresh_EmptyStore(t *testing.T) {
	r := prom.NewRefresher(&fakeScanner{})
	require.NoError(t, r.Refresh(t.Context()))

	assert.Zero(t, testutil.ToFloat64(prom.OrdersTotal))
	assert.Zero(t, testutil.ToFloat64(prom.DeliveryRatePercent), "no division by zero")
}

func TestRefresher_Refresh_ScanError(t *testing.T) {
	r := prom.NewRefresher(&fakeScanner{err: errors.New("store down")})
	require.Error(t, r.Refresh(t.Context()))
}

func TestRefresher_Refresh_DropsStaleLabels(t *testing.T) {
	now := time.Now().UTC()
	dave := "Dave"

	scanner := &fakeScanner{snapshots: []order.Snapshot{
		snapshot("delivered", "Mario's", &dave, now),
	}}
	r := prom.NewRefresher(scanner)
	require.NoError(t, r.Refresh(t.Context()))
	require.Equal(t, 1.0, testutil.ToFloat64(prom.DeliveredBySupplier.WithLabelValues("Mario's")))

	scanner.snapshots = nil
	require.NoError(t, r.Refresh(t.Context()))
	assert.Zero(t, testutil.ToFloat64(prom.DeliveredBySupplier.WithLabelValues("Mario's")))
}
