package services

import (
	"context"

	dm "gompa/internal/models/domain_models"
	"gompa/internal/models/response_models"
	"gompa/internal/repositories"
	mem "gompa/pkg/memcache"
	"gompa/pkg/utils"
)

// DefaultStopsPerDay is the fixed bucket size for the derived day plan.
const DefaultStopsPerDay = 3

// EstimateConfig holds the per-stop constants behind the aggregate
// estimate. These are placeholders on purpose, not a routing computation.
type EstimateConfig struct {
	HoursPerStop float64
	KmPerLeg     float64
	CostPerStop  float64
	Currency     string
}

var DefaultEstimateConfig = EstimateConfig{
	HoursPerStop: 2.5,
	KmPerLeg:     25,
	CostPerStop:  350,
	Currency:     "INR",
}

type ItineraryServiceInterface interface {
	CreateItinerary(ctx context.Context) (string, error)
	GetItinerary(ctx context.Context, itineraryID string) (*response_models.ItineraryResponse, error)
	AddMonastery(ctx context.Context, itineraryID, monasteryID string) error
	RemoveMonastery(ctx context.Context, itineraryID, monasteryID string) error
	AddEvent(ctx context.Context, itineraryID, eventID string) error
	RemoveEvent(ctx context.Context, itineraryID, eventID string) error
	Reorder(ctx context.Context, itineraryID, sourceID, targetID string) error
	GetDayPlan(ctx context.Context, itineraryID string, perDay int) (*response_models.DayPlanResponse, error)
	GetSummary(ctx context.Context, itineraryID string) (*response_models.SummaryResponse, error)
}

type ItineraryService struct {
	sessions      mem.ItinerarySessionStore
	monasteryRepo repositories.MonasteryRepository
	eventRepo     repositories.EventRepository
	estimates     EstimateConfig
}

func NewItineraryService(
	sessions mem.ItinerarySessionStore,
	monasteryRepo repositories.MonasteryRepository,
	eventRepo repositories.EventRepository,
) ItineraryServiceInterface {
	return &ItineraryService{
		sessions:      sessions,
		monasteryRepo: monasteryRepo,
		eventRepo:     eventRepo,
		estimates:     DefaultEstimateConfig,
	}
}

func (s *ItineraryService) CreateItinerary(ctx context.Context) (string, error) {
	return s.sessions.Create(), nil
}

func (s *ItineraryService) GetItinerary(ctx context.Context, itineraryID string) (*response_models.ItineraryResponse, error) {
	it, ok := s.sessions.Snapshot(itineraryID)
	if !ok {
		return nil, utils.ErrItineraryNotFound
	}
	return buildItineraryResponse(it), nil
}

// AddMonastery copies the catalog record's id and display fields into the
// sequence. Adding an id already present is a no-op.
func (s *ItineraryService) AddMonastery(ctx context.Context, itineraryID, monasteryID string) error {
	m, err := s.monasteryRepo.GetByID(ctx, monasteryID)
	if err != nil {
		return err
	}
	if m == nil {
		return utils.ErrMonasteryNotFound
	}

	stop := dm.MonasteryStop{
		ID:        m.ID,
		Name:      m.Name,
		Location:  m.Location,
		Latitude:  m.Latitude,
		Longitude: m.Longitude,
	}
	if !s.sessions.Update(itineraryID, func(it *dm.Itinerary) {
		it.AddStop(stop)
	}) {
		return utils.ErrItineraryNotFound
	}
	return nil
}

func (s *ItineraryService) RemoveMonastery(ctx context.Context, itineraryID, monasteryID string) error {
	if !s.sessions.Update(itineraryID, func(it *dm.Itinerary) {
		it.RemoveStop(monasteryID)
	}) {
		return utils.ErrItineraryNotFound
	}
	return nil
}

func (s *ItineraryService) AddEvent(ctx context.Context, itineraryID, eventID string) error {
	e, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return err
	}
	if e == nil {
		return utils.ErrEventNotFound
	}

	pick := dm.EventPick{
		ID:       e.ID,
		Title:    e.Title,
		Date:     e.Date.Unix(),
		Location: e.Location,
	}
	if !s.sessions.Update(itineraryID, func(it *dm.Itinerary) {
		it.AddEvent(pick)
	}) {
		return utils.ErrItineraryNotFound
	}
	return nil
}

func (s *ItineraryService) RemoveEvent(ctx context.Context, itineraryID, eventID string) error {
	if !s.sessions.Update(itineraryID, func(it *dm.Itinerary) {
		it.RemoveEvent(eventID)
	}) {
		return utils.ErrItineraryNotFound
	}
	return nil
}

func (s *ItineraryService) Reorder(ctx context.Context, itineraryID, sourceID, targetID string) error {
	if sourceID == "" || targetID == "" {
		return utils.ErrInvalidInput
	}
	if !s.sessions.Update(itineraryID, func(it *dm.Itinerary) {
		it.Reorder(sourceID, targetID)
	}) {
		return utils.ErrItineraryNotFound
	}
	return nil
}

func (s *ItineraryService) GetDayPlan(ctx context.Context, itineraryID string, perDay int) (*response_models.DayPlanResponse, error) {
	if perDay <= 0 {
		perDay = DefaultStopsPerDay
	}
	it, ok := s.sessions.Snapshot(itineraryID)
	if !ok {
		return nil, utils.ErrItineraryNotFound
	}

	groups := BuildDayPlan(it.Stops, perDay)
	days := make([][]response_models.StopResponse, len(groups))
	for i, g := range groups {
		days[i] = buildStopResponses(g)
	}
	return &response_models.DayPlanResponse{PerDay: perDay, Days: days}, nil
}

func (s *ItineraryService) GetSummary(ctx context.Context, itineraryID string) (*response_models.SummaryResponse, error) {
	it, ok := s.sessions.Snapshot(itineraryID)
	if !ok {
		return nil, utils.ErrItineraryNotFound
	}
	out := EstimateAggregate(it, DefaultStopsPerDay, s.estimates)
	return &out, nil
}

// BuildDayPlan partitions the ordered stop sequence into consecutive
// groups of at most perDay stops; the last group may be smaller.
// Deterministic, recomputed on every read, never cached.
func BuildDayPlan(stops []dm.MonasteryStop, perDay int) [][]dm.MonasteryStop {
	if perDay <= 0 {
		perDay = DefaultStopsPerDay
	}
	groups := make([][]dm.MonasteryStop, 0, (len(stops)+perDay-1)/perDay)
	for start := 0; start < len(stops); start += perDay {
		end := start + perDay
		if end > len(stops) {
			end = len(stops)
		}
		groups = append(groups, append([]dm.MonasteryStop(nil), stops[start:end]...))
	}
	return groups
}

// EstimateAggregate multiplies stop count by fixed constants. Distance is
// per-leg (stops minus one); nothing here consults real road data.
func EstimateAggregate(it *dm.Itinerary, perDay int, cfg EstimateConfig) response_models.SummaryResponse {
	n := len(it.Stops)
	legs := 0
	if n > 1 {
		legs = n - 1
	}
	dayCount := 0
	if n > 0 {
		dayCount = (n + perDay - 1) / perDay
	}
	return response_models.SummaryResponse{
		StopCount:      n,
		EventCount:     len(it.Events),
		DayCount:       dayCount,
		EstimatedHours: float64(n) * cfg.HoursPerStop,
		EstimatedKm:    float64(legs) * cfg.KmPerLeg,
		EstimatedCost:  float64(n) * cfg.CostPerStop,
		Currency:       cfg.Currency,
	}
}

func buildStopResponses(stops []dm.MonasteryStop) []response_models.StopResponse {
	out := make([]response_models.StopResponse, len(stops))
	for i, s := range stops {
		out[i] = response_models.StopResponse{
			ID:        s.ID,
			Name:      s.Name,
			Location:  s.Location,
			Latitude:  s.Latitude,
			Longitude: s.Longitude,
		}
	}
	return out
}

func buildItineraryResponse(it *dm.Itinerary) *response_models.ItineraryResponse {
	events := it.SortedEvents()
	eventOut := make([]response_models.EventPickResponse, len(events))
	for i, e := range events {
		eventOut[i] = response_models.EventPickResponse{
			ID:       e.ID,
			Title:    e.Title,
			Date:     utils.FormatRFC3339IST(utils.FromUnixSecondsIST(e.Date)),
			Location: e.Location,
		}
	}
	return &response_models.ItineraryResponse{
		ID:        it.ID.String(),
		CreatedAt: utils.FormatRFC3339IST(utils.FromUnixSecondsIST(it.CreatedAt)),
		Stops:     buildStopResponses(it.Stops),
		Events:    eventOut,
	}
}
