package repositories

import (
	"context"
	"strings"
	"sync"

	dm "gompa/internal/models/domain_models"
)

// MonasteryRepository serves the static monastery catalog. Reads hand out
// copies; the backing data only changes through the admin surface. There
// is no durable storage anywhere in this system.
type MonasteryRepository interface {
	List(ctx context.Context, page, pageSize int) ([]dm.Monastery, error)
	GetByID(ctx context.Context, id string) (*dm.Monastery, error)
	FindByName(ctx context.Context, name string) (*dm.Monastery, error)
	Search(ctx context.Context, query, era, location string) ([]dm.Monastery, error)
	Upsert(ctx context.Context, m dm.Monastery) error
	Delete(ctx context.Context, id string) error
}

type monasteryRepository struct {
	mu      sync.RWMutex
	entries []dm.Monastery
}

func NewMonasteryRepository(seed []dm.Monastery) MonasteryRepository {
	return &monasteryRepository{
		entries: append([]dm.Monastery(nil), seed...),
	}
}

func (r *monasteryRepository) List(ctx context.Context, page, pageSize int) ([]dm.Monastery, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	start := (page - 1) * pageSize
	if start >= len(r.entries) {
		return []dm.Monastery{}, nil
	}
	end := start + pageSize
	if end > len(r.entries) {
		end = len(r.entries)
	}
	return append([]dm.Monastery(nil), r.entries[start:end]...), nil
}

func (r *monasteryRepository) GetByID(ctx context.Context, id string) (*dm.Monastery, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.entries {
		if m.ID == id {
			out := m
			return &out, nil
		}
	}
	return nil, nil
}

func (r *monasteryRepository) FindByName(ctx context.Context, name string) (*dm.Monastery, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.entries {
		if strings.EqualFold(m.Name, name) {
			out := m
			return &out, nil
		}
	}
	return nil, nil
}

// Search is plain predicate application over the in-memory catalog; empty
// filter values match everything.
func (r *monasteryRepository) Search(ctx context.Context, query, era, location string) ([]dm.Monastery, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	query = strings.ToLower(strings.TrimSpace(query))
	location = strings.ToLower(strings.TrimSpace(location))

	out := make([]dm.Monastery, 0)
	for _, m := range r.entries {
		if era != "" && !strings.EqualFold(m.Era, era) {
			continue
		}
		if location != "" && !strings.Contains(strings.ToLower(m.Location), location) {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(m.Name), query) &&
			!strings.Contains(strings.ToLower(m.Description), query) {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (r *monasteryRepository) Upsert(ctx context.Context, m dm.Monastery) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.entries {
		if existing.ID == m.ID {
			r.entries[i] = m
			return nil
		}
	}
	r.entries = append(r.entries, m)
	return nil
}

func (r *monasteryRepository) Delete(ctx context.Context, id string) error {
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
