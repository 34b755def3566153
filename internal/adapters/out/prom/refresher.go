package prom

import (
	"context"
	"math"
	"time"

	"pizzeria/internal/core/domain/model/order"
)

// OrderScanner is the slice of the order repository the refresher needs.
type OrderScanner interface {
	GetAll(ctx context.Context) ([]order.Snapshot, error)
}

// Refresher recomputes every gauge from a full record-store scan.
// It is driven by the metrics job on a fixed interval.
type Refresher struct {
	orders OrderScanner
}

// NewRefresher creates a refresher reading from the given scanner.
func NewRefresher(orders OrderScanner) *Refresher {
	return &Refresher{orders: orders}
}

// Refresh scans the store and overwrites all gauges. Per-supplier and
// per-driver vectors are reset first so labels for suppliers that lost
// all their delivered orders do not linger with stale values.
func (r *Refresher) Refresh(ctx context.Context) error {
	snapshots, err := r.orders.GetAll(ctx)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	var delivered, inTransit, dispatched int
	var today, week, month int
	bySupplier := make(map[string]int)
	byDriver := make(map[string]int)

	for _, snapshot := range snapshots {
		switch snapshot.OrderStatus() {
		case order.InTransit:
			inTransit++
		case order.Dispatched:
			dispatched++
		case order.Delivered:
			delivered++

			age := now.Sub(snapshot.UpdatedAt.UTC())
			if age <= 24*time.Hour {
				today++
			}
			if age <= 7*24*time.Hour {
				week++
			}
			if age <= 30*24*time.Hour {
				month++
			}

			bySupplier[snapshot.SupplierName]++
			if snapshot.DriverName != nil {
				byDriver[*snapshot.DriverName]++
			}
		}
	}

	OrdersTotal.Set(float64(len(snapshots)))
	OrdersDelivered.Set(float64(delivered))
	OrdersInTransit.Set(float64(inTransit))
	OrdersDispatched.Set(float64(dispatched))
	DeliveryRatePercent.Set(deliveryRate(delivered, len(snapshots)))
	DeliveredToday.Set(float64(today))
	DeliveredWeek.Set(float64(week))
	DeliveredMonth.Set(float64(month))

	DeliveredBySupplier.Reset()
	for supplier, count := range bySupplier {
		DeliveredBySupplier.WithLabelValues(supplier).Set(float64(count))
	}

	DeliveredByDriver.Reset()
	for driver, count := range byDriver {
		DeliveredByDriver.WithLabelValues(driver).Set(float64(count))
	}

	return nil
}

func deliveryRate(delivered, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(delivered)/float64(total)*100*100) / 100
}
