package queries

import (
	"sort"
	"time"

	"pizzeria/internal/core/domain/model/order"
)

// computeStatistics folds a record-store scan into the statistics view.
// Records with an unrecognized status still count toward the total but
// appear in no per-status bucket.
func computeStatistics(snapshots []order.Snapshot, now time.Time) StatisticsResponse {
	byStatus := make(map[string]int, len(order.AllStatuses()))
	for _, status := range order.AllStatuses() {
		byStatus[status.String()] = 0
	}

	today := now.UTC().Truncate(24 * time.Hour)
	stats := StatisticsResponse{ByStatus: byStatus}

	for _, snapshot := range snapshots {
		stats.TotalOrders++

		status := snapshot.OrderStatus()
		if status == order.Unknown {
			continue
		}
		byStatus[status.String()]++

		if status.IsActiveDelivery() {
			stats.ActiveDeliveries++
		}
		if status == order.Delivered &&
			snapshot.UpdatedAt.UTC().Truncate(24*time.Hour).Equal(today) {
			stats.CompletedToday++
		}
	}

	return stats
}

// groupOrdersByStatus buckets snapshots per status string, newest first
// within each bucket, truncated to limit when limit is positive.
func groupOrdersByStatus(
	snapshots []order.Snapshot,
	includeCompleted bool,
	limit int,
) map[string][]order.Snapshot {
	grouped := make(map[string][]order.Snapshot)

	for _, snapshot := range snapshots {
		status := snapshot.OrderStatus()
		if status == order.Unknown {
			continue
		}
		if !includeCompleted && status.IsCompleted() {
			continue
		}
		grouped[status.String()] = append(grouped[status.String()], snapshot)
	}

	for status, bucket := range grouped {
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].CreatedAt.After(bucket[j].CreatedAt)
		})
		if limit > 0 && len(bucket) > limit {
			bucket = bucket[:limit]
		}
		grouped[status] = bucket
	}

	return grouped
}

// collectActiveCouriers returns one entry per driver currently on a
// dispatched or in_transit order. A driver juggling several active
// orders is reported on the most recently updated one.
func collectActiveCouriers(snapshots []order.Snapshot) []ActiveCourierResponse {
	latest := make(map[string]ActiveCourierResponse)

	for _, snapshot := range snapshots {
		if snapshot.DriverName == nil || !snapshot.OrderStatus().IsActiveDelivery() {
			continue
		}

		candidate := ActiveCourierResponse{
			DriverName: *snapshot.DriverName,
			OrderID:    snapshot.ID,
			Status:     snapshot.Status,
			AssignedAt: snapshot.UpdatedAt,
		}

		current, seen := latest[candidate.DriverName]
		if !seen || candidate.AssignedAt.After(current.AssignedAt) {
			latest[candidate.DriverName] = candidate
		}
	}

	couriers := make([]ActiveCourierResponse, 0, len(latest))
	for _, courier := range latest {
		couriers = append(couriers, courier)
	}
	sort.Slice(couriers, func(i, j int) bool {
		return couriers[i].DriverName < couriers[j].DriverName
	})

	return couriers
}
