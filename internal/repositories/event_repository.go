package repositories

import (
	"context"
	"sync"
	"time"

	dm "gompa/internal/models/domain_models"
)

type EventRepository interface {
	List(ctx context.Context) ([]dm.Event, error)
	GetByID(ctx context.Context, id string) (*dm.Event, error)
	FilterByMonth(ctx context.Context, year int, month time.Month) ([]dm.Event, error)
	Create(ctx context.Context, e dm.Event) error
	Delete(ctx context.Context, id string) error
}

type eventRepository struct {
	mu      sync.RWMutex
	entries []dm.Event
}

func NewEventRepository(seed []dm.Event) EventRepository {
	return &eventRepository{
		entries: append([]dm.Event(nil), seed...),
	}
}

func (r *eventRepository) List(ctx context.Context) ([]dm.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]dm.Event(nil), r.entries...), nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*dm.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.entries {
		if e.ID == id {
			out := e
			return &out, nil
		}
	}
	return nil, nil
}

func (r *eventRepository) FilterByMonth(ctx context.Context, year int, month time.Month) ([]dm.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]dm.Event, 0)
	for _, e := range r.entries {
		if e.Date.Year() == year && e.Date.Month() == month {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *eventRepository) Create(ctx context.Context, e dm.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
	return nil
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.entries {
		if existing.ID == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return nil
		}
	}
	return nil
}
