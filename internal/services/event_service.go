package services

import (
	"context"
	"log"
	"sort"
	"time"

	dm "gompa/internal/models/domain_models"
	"gompa/internal/models/response_models"
	"gompa/internal/repositories"
	"gompa/pkg/utils"
)

type EventServiceInterface interface {
	ListEvents(ctx context.Context, year int, month time.Month) ([]response_models.EventResponse, error)
	GetEventByID(ctx context.Context, id string) (*response_models.EventResponse, error)
}

type EventService struct {
	eventRepo     repositories.EventRepository
	monasteryRepo repositories.MonasteryRepository
}

func NewEventService(
	eventRepo repositories.EventRepository,
	monasteryRepo repositories.MonasteryRepository,
) EventServiceInterface {
	return &EventService{
		eventRepo:     eventRepo,
		monasteryRepo: monasteryRepo,
	}
}

// ListEvents returns the calendar, filtered to a month when one is given
// (month == 0 means no filter), sorted by date.
func (s *EventService) ListEvents(ctx context.Context, year int, month time.Month) ([]response_models.EventResponse, error) {
	var (
		events []dm.Event
		err    error
	)
	if month != 0 {
		events, err = s.eventRepo.FilterByMonth(ctx, year, month)
	} else {
		events, err = s.eventRepo.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	sort.Slice(events, func(i, j int) bool { return events[i].Date.Before(events[j].Date) })

	out := make([]response_models.EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, s.buildEventResponse(ctx, e))
	}
	return out, nil
}

func (s *EventService) GetEventByID(ctx context.Context, id string) (*response_models.EventResponse, error) {
	e, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, utils.ErrEventNotFound
	}
	out := s.buildEventResponse(ctx, *e)
	return &out, nil
}

// buildEventResponse resolves the event's monastery link. Events carry a
// display name, not an id, so the lookup may miss; a miss leaves
// monastery_id empty rather than failing the read.
func (s *EventService) buildEventResponse(ctx context.Context, e dm.Event) response_models.EventResponse {
	out := response_models.EventResponse{
		ID:            e.ID,
		Title:         e.Title,
		Date:          utils.FormatRFC3339IST(e.Date),
		Location:      e.Location,
		Description:   e.Description,
		MonasteryName: e.MonasteryName,
	}
	if e.MonasteryName != "" {
		m, err := s.monasteryRepo.FindByName(ctx, e.MonasteryName)
		if err != nil {
			log.Printf("Error resolving monastery for event %s: %v", e.ID, err)
		} else if m != nil {
			out.MonasteryID = m.ID
		}
	}
	return out
}
