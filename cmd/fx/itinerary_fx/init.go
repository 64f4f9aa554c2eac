package itinerary_fx

import (
	"time"

	"go.uber.org/fx"

	"gompa/internal/repositories"
	"gompa/internal/services"
	mem "gompa/pkg/memcache"
)

// Sessions outlive any realistic browsing pause but still vanish without
// persistence, matching the app's reload-and-start-over lifecycle.
const sessionTTL = 12 * time.Hour

var Module = fx.Provide(provideSessions, provideItineraryService, provideExportService)

func provideSessions() mem.ItinerarySessionStore {
	return mem.NewItinerarySessions(sessionTTL)
}

func provideItineraryService(
	sessions mem.ItinerarySessionStore,
	monasteryRepo repositories.MonasteryRepository,
	eventRepo repositories.EventRepository,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(sessions, monasteryRepo, eventRepo)
}

func provideExportService(sessions mem.ItinerarySessionStore) services.ExportServiceInterface {
	return services.NewExportService(sessions)
}
