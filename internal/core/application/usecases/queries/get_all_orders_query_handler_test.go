package queries_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/order"
)

func TestGetAllOrdersQueryHandler_Handle(t *testing.T) {
	now := time.Now().UTC()

	t.Run("returns a flat list sorted newest first", func(t *testing.T) {
		oldest := snapshotWith("delivered", now.Add(-2*time.Hour), now, strPtr("Dave"))
		middle := snapshotWith("pending_supplier", now.Add(-time.Hour), now, nil)
		newest := snapshotWith("dispatched", now, now, strPtr("Eve"))

		reader := &fakeOrderReader{snapshots: []order.Snapshot{oldest, newest, middle}}
		h := queries.NewGetAllOrdersQueryHandler(reader)

		snapshots, err := h.Handle(t.Context(), queries.NewGetAllOrdersQuery())
		require.NoError(t, err)

		require.Len(t, snapshots, 3)
		assert.Equal(t, newest.ID, snapshots[0].ID)
		assert.Equal(t, middle.ID, snapshots[1].ID)
		assert.Equal(t, oldest.ID, snapshots[2].ID)
	})

	t.Run("empty store yields an empty list", func(t *testing.T) {
		h := queries.NewGetAllOrdersQueryHandler(&fakeOrderReader{})

		snapshots, err := h.Handle(t.Context(), queries.NewGetAllOrdersQuery())
		require.NoError(t, err)
		assert.Empty(t, snapshots)
	})

	t.Run("propagates scan failures", func(t *testing.T) {
		reader := &fakeOrderReader{getAllErr: errors.New("store offline")}
		h := queries.NewGetAllOrdersQueryHandler(reader)

		_, err := h.Handle(t.Context(), queries.NewGetAllOrdersQuery())
		assert.Error(t, err)
	})

	t.Run("unconstructed query is rejected", func(t *testing.T) {
		h := queries.NewGetAllOrdersQueryHandler(&fakeOrderReader{})

		var query queries.GetAllOrdersQuery
		_, err := h.Handle(t.Context(), query)
		assert.ErrorIs(t, err, queries.ErrGetAllOrdersQueryIsNotConstructed)
	})
}
