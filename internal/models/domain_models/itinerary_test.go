package domain_models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stop(id string) MonasteryStop {
	return MonasteryStop{ID: id, Name: id}
}

func itineraryWith(ids ...string) *Itinerary {
	it := NewItinerary()
	for _, id := range ids {
		it.AddStop(stop(id))
	}
	return it
}

func TestItinerary_AddStop(t *testing.T) {
	t.Run("appends in order", func(t *testing.T) {
		it := itineraryWith("rumtek", "pemayangtse", "tashiding")
		assert.Equal(t, []string{"rumtek", "pemayangtse", "tashiding"}, it.StopIDs())
	})

	t.Run("adding twice is a no-op", func(t *testing.T) {
		it := itineraryWith("rumtek", "pemayangtse")
		it.AddStop(stop("rumtek"))
		assert.Equal(t, []string{"rumtek", "pemayangtse"}, it.StopIDs())
	})
}

func TestItinerary_RemoveStop(t *testing.T) {
	t.Run("preserves order of the rest", func(t *testing.T) {
		it := itineraryWith("rumtek", "pemayangtse", "tashiding")
		it.RemoveStop("pemayangtse")
		assert.Equal(t, []string{"rumtek", "tashiding"}, it.StopIDs())
	})

	t.Run("removing an absent id is a no-op", func(t *testing.T) {
		it := itineraryWith("rumtek", "pemayangtse")
		it.RemoveStop("enchey")
		assert.Equal(t, []string{"rumtek", "pemayangtse"}, it.StopIDs())
	})
}

func TestItinerary_Reorder(t *testing.T) {
	t.Run("drag C to A's position", func(t *testing.T) {
		it := itineraryWith("A", "B", "C")
		it.Reorder("C", "A")
		assert.Equal(t, []string{"C", "A", "B"}, it.StopIDs())
	})

	t.Run("drag A to C's position", func(t *testing.T) {
		it := itineraryWith("A", "B", "C")
		it.Reorder("A", "C")
		assert.Equal(t, []string{"B", "C", "A"}, it.StopIDs())
	})

	t.Run("adjacent move", func(t *testing.T) {
		it := itineraryWith("A", "B", "C")
		it.Reorder("B", "C")
		assert.Equal(t, []string{"A", "C", "B"}, it.StopIDs())
	})

	t.Run("no-op when source equals target", func(t *testing.T) {
		it := itineraryWith("A", "B", "C")
		it.Reorder("B", "B")
		assert.Equal(t, []string{"A", "B", "C"}, it.StopIDs())
	})

	t.Run("no-op when either id is absent", func(t *testing.T) {
		it := itineraryWith("A", "B", "C")
		it.Reorder("X", "A")
		it.Reorder("A", "X")
		assert.Equal(t, []string{"A", "B", "C"}, it.StopIDs())
	})

	t.Run("result is a permutation", func(t *testing.T) {
		ids := []string{"rumtek", "pemayangtse", "tashiding", "enchey", "dubdi"}
		for _, src := range ids {
			for _, tgt := range ids {
				it := itineraryWith(ids...)
				it.Reorder(src, tgt)

				require.Len(t, it.StopIDs(), len(ids))
				seen := make(map[string]int)
				for _, id := range it.StopIDs() {
					seen[id]++
				}
				for _, id := range ids {
					assert.Equal(t, 1, seen[id], "reorder(%s,%s) lost or duplicated %s", src, tgt, id)
				}
			}
		}
	})
}

func TestItinerary_Events(t *testing.T) {
	t.Run("duplicate add keeps a single entry", func(t *testing.T) {
		it := NewItinerary()
		it.AddEvent(EventPick{ID: "losar-2026", Title: "Losar"})
		it.AddEvent(EventPick{ID: "losar-2026", Title: "Losar again"})
		require.Len(t, it.Events, 1)
		assert.Equal(t, "Losar", it.Events["losar-2026"].Title)
	})

	t.Run("remove is idempotent", func(t *testing.T) {
		it := NewItinerary()
		it.AddEvent(EventPick{ID: "losar-2026"})
		it.RemoveEvent("losar-2026")
		it.RemoveEvent("losar-2026")
		assert.Empty(t, it.Events)
	})

	t.Run("sorted by date then id", func(t *testing.T) {
		it := NewItinerary()
		it.AddEvent(EventPick{ID: "b", Date: 200})
		it.AddEvent(EventPick{ID: "a", Date: 200})
		it.AddEvent(EventPick{ID: "c", Date: 100})

		sorted := it.SortedEvents()
		require.Len(t, sorted, 3)
		assert.Equal(t, "c", sorted[0].ID)
		assert.Equal(t, "a", sorted[1].ID)
		assert.Equal(t, "b", sorted[2].ID)
	})
}
