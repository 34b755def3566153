package queries_test

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/govalues/decimal"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"
)

// fakeOrderReader serves canned snapshots and aggregates without a store.
type fakeOrderReader struct {
	snapshots []order.Snapshot
	orders    map[string]*order.Order
	getAllErr error
}

func (f *fakeOrderReader) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if o, ok := f.orders[id.String()]; ok {
		return o, nil
	}
	return nil, errs.NewObjectNotFoundError("orderId", id.String())
}

func (f *fakeOrderReader) GetAll(_ context.Context) ([]order.Snapshot, error) {
	if f.getAllErr != nil {
		return nil, f.getAllErr
	}
	return f.snapshots, nil
}

// fakeCacheStore is an in-memory ports.CacheStore without expiry; tests
// control hits and misses by seeding or clearing entries.
type fakeCacheStore struct {
	mu      sync.Mutex
	entries map[string][]byte
	sets    int
}

func newFakeCacheStore() *fakeCacheStore {
	return &fakeCacheStore{entries: make(map[string][]byte)}
}

func (f *fakeCacheStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	payload, ok := f.entries[key]
	return payload, ok, nil
}

func (f *fakeCacheStore) SetWithTTL(_ context.Context, key string, value []byte, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[key] = value
	f.sets++
	return nil
}

func (f *fakeCacheStore) DeletePrefix(_ context.Context, prefix string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for key := range f.entries {
		if strings.HasPrefix(key, prefix) {
			delete(f.entries, key)
		}
	}
	return nil
}

// snapshotWith builds a minimal valid snapshot for read-side tests.
func snapshotWith(status string, createdAt, updatedAt time.Time, driver *string) order.Snapshot {
	supplierPrice := decimal.MustParse("10")
	markup := decimal.MustParse("30")

	return order.Snapshot{
		ID:                kernel.NewUUID().String(),
		TrackingCode:      "PIZZA-2026-000001",
		SupplierReference: "MPP-0001",
		SupplierName:      "Mario's Pizza Palace",
		PizzaName:         "Margherita",
		SupplierPrice:     supplierPrice,
		MarkupPercentage:  markup,
		Status:            status,
		DriverName:        driver,
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}
}

func strPtr(s string) *string { return &s }
