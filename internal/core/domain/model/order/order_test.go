package order_test

import (
	"regexp"
	"testing"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"

	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T) *order.Order {
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

func TestNewOrder(t *testing.T) {
	t.Run("creates order in pending_supplier with tracking identifiers", func(t *testing.T) {
		o := newTestOrder(t)

		assert.Equal(t, order.PendingSupplier, o.Status())
		assert.Regexp(t, regexp.MustCompile(`^PIZZA-\d{4}-\d{6}$`), o.TrackingCode().String())
		assert.Regexp(t, regexp.MustCompile(`^[A-Z]{1,3}-\d{4}$`), o.SupplierReference().String())
		assert.Equal(t, "MPP", o.SupplierReference().String()[:3])
		assert.Nil(t, o.CustomerPrice())
		assert.Nil(t, o.DriverName())
		assert.Nil(t, o.CustomerName())
		assert.False(t, o.UpdatedAt().Before(o.CreatedAt()))
	})

	t.Run("generated identifiers are distinct across orders", func(t *testing.T) {
		trackingCodes := make(map[string]bool)
		references := make(map[string]bool)
		for range 20 {
			o := newTestOrder(t)
			trackingCodes[o.TrackingCode().String()] = true
			references[o.SupplierReference().String()] = true
		}

		// Uniqueness is probabilistic (no store-level check); a run of 20
		// colliding would indicate a broken generator, not bad luck.
		assert.Len(t, trackingCodes, 20)
		assert.Greater(t, len(references), 15)
	})

	t.Run("validation failures", func(t *testing.T) {
		id := kernel.NewUUID()
		price := decimal.MustParse("10")
		markup := decimal.MustParse("30")

		_, err := order.NewOrder(kernel.UUID{}, "Mario", "Margherita", price, markup)
		require.Error(t, err)

		_, err = order.NewOrder(id, "", "Margherita", price, markup)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = order.NewOrder(id, "Mario", "", price, markup)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = order.NewOrder(id, "Mario", "Margherita", decimal.Zero, markup)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = order.NewOrder(id, "Mario", "Margherita", price, decimal.MustParse("-1"))
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var o order.Order
		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_AcceptBySupplier(t *testing.T) {
	t.Run("stores notes and estimate", func(t *testing.T) {
		o := newTestOrder(t)
		notes := "extra cheese on the house"
		minutes := 45

		require.NoError(t, o.AcceptBySupplier(&notes, &minutes))

		assert.Equal(t, order.SupplierAccepted, o.Status())
		assert.Equal(t, "extra cheese on the house", *o.SupplierNotes())
		assert.Equal(t, 45, *o.EstimatedMinutes())
	})

	t.Run("estimate defaults to 30 minutes", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.AcceptBySupplier(nil, nil))

		assert.Equal(t, order.DefaultEstimatedMinutes, *o.EstimatedMinutes())
		assert.Nil(t, o.SupplierNotes())
	})

	t.Run("accepting twice re-accepts without error", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.AcceptBySupplier(nil, nil))

		minutes := 15
		require.NoError(t, o.AcceptBySupplier(nil, &minutes))

		assert.Equal(t, order.SupplierAccepted, o.Status())
		assert.Equal(t, 15, *o.EstimatedMinutes())
	})
}

func TestOrder_RejectBySupplier(t *testing.T) {
	t.Run("moves to terminal supplier_rejected", func(t *testing.T) {
		o := newTestOrder(t)
		notes := "out of dough"

		require.NoError(t, o.RejectBySupplier(&notes))

		assert.Equal(t, order.SupplierRejected, o.Status())
		assert.Equal(t, "out of dough", *o.SupplierNotes())
		assert.True(t, o.Status().IsTerminal())
	})

	t.Run("notes default when absent", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.RejectBySupplier(nil))

		assert.Equal(t, order.DefaultRejectionNote, *o.SupplierNotes())
	})
}

func TestOrder_AcceptByCustomer(t *testing.T) {
	t.Run("computes price and records the customer", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.AcceptBySupplier(nil, nil))

		require.NoError(t, o.AcceptByCustomer("Alice", "1 Main St"))

		assert.Equal(t, order.CustomerAccepted, o.Status())
		assert.Equal(t, "Alice", *o.CustomerName())
		assert.Equal(t, "1 Main St", *o.DeliveryAddress())
		require.NotNil(t, o.CustomerPrice())
		// 12.50 * 1.30 = 16.25
		assert.Equal(t, "16.25", o.CustomerPrice().String())
	})

	t.Run("fails before supplier acceptance for any order", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.AcceptByCustomer("Alice", "1 Main St")

		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.PendingSupplier, o.Status())
		assert.Nil(t, o.CustomerPrice())
	})

	t.Run("fails after rejection", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.RejectBySupplier(nil))

		err := o.AcceptByCustomer("Alice", "1 Main St")

		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("requires name and address", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.AcceptBySupplier(nil, nil))

		assert.ErrorIs(t, o.AcceptByCustomer("", "1 Main St"), errs.ErrValueIsRequired)
		assert.ErrorIs(t, o.AcceptByCustomer("Alice", ""), errs.ErrValueIsRequired)
	})
}

func TestOrder_Dispatch(t *testing.T) {
	t.Run("assigns driver unconditionally", func(t *testing.T) {
		// Dispatch is deliberately permissive: no Ready precondition.
		o := newTestOrder(t)

		require.NoError(t, o.Dispatch("Bob"))

		assert.Equal(t, order.Dispatched, o.Status())
		assert.Equal(t, "Bob", *o.DriverName())
	})

	t.Run("requires a driver name", func(t *testing.T) {
		o := newTestOrder(t)
		assert.ErrorIs(t, o.Dispatch(""), errs.ErrValueIsRequired)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("overwrites to any valid status", func(t *testing.T) {
		o := newTestOrder(t)

		for _, status := range []order.Status{order.Preparing, order.Ready, order.InTransit, order.Delivered} {
			require.NoError(t, o.ChangeStatus(status))
			assert.Equal(t, status, o.Status())
		}
	})

	t.Run("rejects invalid status values", func(t *testing.T) {
		o := newTestOrder(t)

		assert.Error(t, o.ChangeStatus(order.Unknown))
		assert.Error(t, o.ChangeStatus(order.Status(99)))
	})

	t.Run("updated_at never precedes created_at", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.ChangeStatus(order.Preparing))
		assert.False(t, o.UpdatedAt().Before(o.CreatedAt()))
	})
}

func TestCustomerPrice(t *testing.T) {
	tests := []struct {
		name          string
		supplierPrice string
		markup        string
		want          string
	}{
		{"thirty percent default", "10.00", "30", "13"},
		{"spec example at the half boundary", "12.50", "25.0", "15.62"}, // 15.625 rounds half-to-even down
		{"half boundary rounding up to even", "12.58", "25.0", "15.72"}, // 15.725 -> 15.72
		{"half boundary with odd neighbor", "12.54", "25.0", "15.68"},   // 15.675 -> 15.68
		{"zero markup", "9.99", "0", "9.99"},
		{"fractional markup", "20.00", "12.5", "22.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := order.CustomerPrice(decimal.MustParse(tt.supplierPrice), decimal.MustParse(tt.markup))

			require.NoError(t, err)
			wantDec := decimal.MustParse(tt.want)
			assert.Zero(t, got.Cmp(wantDec), "got %s, want %s", got, tt.want)
		})
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	t.Run("snapshot restores an equivalent aggregate", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.AcceptBySupplier(nil, nil))
		require.NoError(t, o.AcceptByCustomer("Alice", "1 Main St"))
		require.NoError(t, o.Dispatch("Bob"))

		restored, err := order.NewSnapshot(o).ToOrder()

		require.NoError(t, err)
		assert.True(t, o.IsEqual(restored))
		assert.Equal(t, o.Status(), restored.Status())
		assert.Equal(t, o.TrackingCode().String(), restored.TrackingCode().String())
		assert.Equal(t, *o.DriverName(), *restored.DriverName())
		assert.Zero(t, o.CustomerPrice().Cmp(*restored.CustomerPrice()))
		assert.NoError(t, restored.Validate())
	})

	t.Run("non-ASCII supplier name still round-trips", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewUUID(),
			"Ñoño Pizza",
			"Quattro Stagioni",
			decimal.MustParse("12.50"),
			decimal.MustParse("30"),
		)
		require.NoError(t, err)

		restored, err := order.NewSnapshot(o).ToOrder()

		require.NoError(t, err)
		assert.Equal(t, o.SupplierReference().String(), restored.SupplierReference().String())
	})

	t.Run("snapshot with bad status fails restore but parses as Unknown", func(t *testing.T) {
		o := newTestOrder(t)
		snapshot := order.NewSnapshot(o)
		snapshot.Status = "shipped"

		assert.Equal(t, order.Unknown, snapshot.OrderStatus())
		_, err := snapshot.ToOrder()
		assert.Error(t, err)
	})
}
