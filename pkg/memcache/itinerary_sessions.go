package mem

import (
	"sync"
	"time"

	dm "gompa/internal/models/domain_models"
)

// ItinerarySessionStore holds all live itineraries, one per browsing
// session. State is memory-only; an entry disappears when its TTL lapses,
// which is the backend equivalent of the page being reloaded.
type ItinerarySessionStore interface {
	// Create adds a fresh empty itinerary and returns its id.
	Create() string

	// Update runs fn on the itinerary under the store lock, refreshing the
	// session TTL. Returns false if the session is missing or expired.
	Update(id string, fn func(*dm.Itinerary)) bool

	// Snapshot returns a deep copy safe to read without holding the lock.
	Snapshot(id string) (*dm.Itinerary, bool)

	// Drop removes a session. Idempotent.
	Drop(id string)
}

type sessionEntry struct {
	itinerary *dm.Itinerary
	expiresAt time.Time
}

type ItinerarySessions struct {
	mu   sync.RWMutex
	data map[string]*sessionEntry
	ttl  time.Duration
	now  func() time.Time
}

func NewItinerarySessions(ttl time.Duration) *ItinerarySessions {
	return &ItinerarySessions{
		data: make(map[string]*sessionEntry),
		ttl:  ttl,
		now:  time.Now,
	}
}

func (s *ItinerarySessions) Create() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	it := dm.NewItinerary()
	it.CreatedAt = s.now().Unix()
	s.data[it.ID.String()] = &sessionEntry{
		itinerary: it,
		expiresAt: s.now().Add(s.ttl),
	}
	return it.ID.String()
}

func (s *ItinerarySessions) Update(id string, fn func(*dm.Itinerary)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[id]
	if !ok {
		return false
	}
	if s.now().After(e.expiresAt) {
		delete(s.data, id) // cleanup expired
		return false
	}
	fn(e.itinerary)
	e.expiresAt = s.now().Add(s.ttl) // sliding session
	return true
}

func (s *ItinerarySessions) Snapshot(id string) (*dm.Itinerary, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[id]
	if !ok || s.now().After(e.expiresAt) {
		return nil, false
	}
	return copyItinerary(e.itinerary), true
}

func (s *ItinerarySessions) Drop(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
}

func copyItinerary(src *dm.Itinerary) *dm.Itinerary {
	dst := &dm.Itinerary{
		ID:        src.ID,
		CreatedAt: src.CreatedAt,
		Stops:     append([]dm.MonasteryStop(nil), src.Stops...),
		Events:    make(map[string]dm.EventPick, len(src.Events)),
	}
	for k, v := range src.Events {
		dst.Events[k] = v
	}
	return dst
}
