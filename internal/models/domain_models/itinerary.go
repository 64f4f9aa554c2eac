package domain_models

import (
	"sort"

	"github.com/google/uuid"
)

// MonasteryStop is the itinerary's copy of a catalog record. The catalog
// stays the single source of truth for content; a stop only carries what
// the trip views need to render.
type MonasteryStop struct {
	ID        string
	Name      string
	Location  string
	Latitude  float64
	Longitude float64
}

// EventPick is a selected cultural event, keyed by event id.
type EventPick struct {
	ID       string
	Title    string
	Date     int64 // unix seconds
	Location string
}

// Itinerary is a visitor's session-scoped trip selection: an ordered
// monastery sequence plus an unordered event set. It lives only in memory
// and is discarded when the session expires.
type Itinerary struct {
	ID        uuid.UUID
	CreatedAt int64

	Stops  []MonasteryStop
	Events map[string]EventPick
}

func NewItinerary() *Itinerary {
	return &Itinerary{
		ID:     uuid.New(),
		Events: make(map[string]EventPick),
	}
}

// AddStop appends the stop unless a stop with the same id is already
// present, in which case the call is a no-op.
func (it *Itinerary) AddStop(stop MonasteryStop) {
	for _, s := range it.Stops {
		if s.ID == stop.ID {
			return
		}
	}
	it.Stops = append(it.Stops, stop)
}

// RemoveStop deletes the stop with the given id, preserving the order of
// the rest. Removing an absent id is a no-op.
func (it *Itinerary) RemoveStop(id string) {
	for i, s := range it.Stops {
		if s.ID == id {
			it.Stops = append(it.Stops[:i], it.Stops[i+1:]...)
			return
		}
	}
}

// Reorder moves the stop with sourceID to the position currently occupied
// by targetID; everything else shifts but keeps relative order. No-op when
// sourceID == targetID or either id is absent. The result is always a
// permutation of the input.
func (it *Itinerary) Reorder(sourceID, targetID string) {
	if sourceID == targetID {
		return
	}
	srcIdx, tgtIdx := -1, -1
	for i, s := range it.Stops {
		switch s.ID {
		case sourceID:
			srcIdx = i
		case targetID:
			tgtIdx = i
		}
	}
	if srcIdx < 0 || tgtIdx < 0 {
		return
	}

	moved := it.Stops[srcIdx]
	rest := append(append([]MonasteryStop{}, it.Stops[:srcIdx]...), it.Stops[srcIdx+1:]...)
	out := make([]MonasteryStop, 0, len(it.Stops))
	out = append(out, rest[:tgtIdx]...)
	out = append(out, moved)
	out = append(out, rest[tgtIdx:]...)
	it.Stops = out
}

// AddEvent inserts the pick unless its id is already selected.
func (it *Itinerary) AddEvent(pick EventPick) {
	if _, ok := it.Events[pick.ID]; ok {
		return
	}
	it.Events[pick.ID] = pick
}

// RemoveEvent is idempotent.
func (it *Itinerary) RemoveEvent(id string) {
	delete(it.Events, id)
}

// SortedEvents returns the event set ordered by date, then id, for stable
// rendering.
func (it *Itinerary) SortedEvents() []EventPick {
	picks := make([]EventPick, 0, len(it.Events))
	for _, p := range it.Events {
		picks = append(picks, p)
	}
	sort.Slice(picks, func(i, j int) bool {
		if picks[i].Date != picks[j].Date {
			return picks[i].Date < picks[j].Date
		}
		return picks[i].ID < picks[j].ID
	})
	return picks
}

// StopIDs returns the ordered monastery ids.
func (it *Itinerary) StopIDs() []string {
	ids := make([]string, len(it.Stops))
	for i, s := range it.Stops {
		ids[i] = s.ID
	}
	return ids
}
