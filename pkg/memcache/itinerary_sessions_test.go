package mem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dm "gompa/internal/models/domain_models"
)

func TestItinerarySessions_CreateAndSnapshot(t *testing.T) {
	store := NewItinerarySessions(time.Hour)

	id := store.Create()
	require.NotEmpty(t, id)

	it, ok := store.Snapshot(id)
	require.True(t, ok)
	assert.Empty(t, it.Stops)
	assert.Empty(t, it.Events)
	assert.NotZero(t, it.CreatedAt)

	_, ok = store.Snapshot("missing")
	assert.False(t, ok)
}

func TestItinerarySessions_UpdateIsVisible(t *testing.T) {
	store := NewItinerarySessions(time.Hour)
	id := store.Create()

	ok := store.Update(id, func(it *dm.Itinerary) {
		it.AddStop(dm.MonasteryStop{ID: "rumtek"})
	})
	require.True(t, ok)

	it, ok := store.Snapshot(id)
	require.True(t, ok)
	require.Len(t, it.Stops, 1)

	assert.False(t, store.Update("missing", func(it *dm.Itinerary) {}))
}

func TestItinerarySessions_SnapshotIsACopy(t *testing.T) {
	store := NewItinerarySessions(time.Hour)
	id := store.Create()
	store.Update(id, func(it *dm.Itinerary) {
		it.AddStop(dm.MonasteryStop{ID: "rumtek"})
	})

	snap, _ := store.Snapshot(id)
	snap.Stops[0].ID = "mutated"
	snap.Events["x"] = dm.EventPick{ID: "x"}

	fresh, _ := store.Snapshot(id)
	assert.Equal(t, "rumtek", fresh.Stops[0].ID)
	assert.Empty(t, fresh.Events)
}

func TestItinerarySessions_Expiry(t *testing.T) {
	store := NewItinerarySessions(time.Minute)
	now := time.Now()
	store.now = func() time.Time { return now }

	id := store.Create()

	// Still alive just inside the TTL.
	now = now.Add(59 * time.Second)
	_, ok := store.Snapshot(id)
	require.True(t, ok)

	// Access slides the expiry forward.
	require.True(t, store.Update(id, func(it *dm.Itinerary) {}))
	now = now.Add(59 * time.Second)
	_, ok = store.Snapshot(id)
	require.True(t, ok)

	// Past the TTL the session is gone.
	now = now.Add(2 * time.Minute)
	_, ok = store.Snapshot(id)
	assert.False(t, ok)
	assert.False(t, store.Update(id, func(it *dm.Itinerary) {}))
}

func TestItinerarySessions_Drop(t *testing.T) {
	store := NewItinerarySessions(time.Hour)
	id := store.Create()

	store.Drop(id)
	store.Drop(id) // idempotent

	_, ok := store.Snapshot(id)
	assert.False(t, ok)
}
