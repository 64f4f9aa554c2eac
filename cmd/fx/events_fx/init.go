package events_fx

import (
	"go.uber.org/fx"

	"gompa/internal/repositories"
	"gompa/internal/services"
)

var Module = fx.Provide(provideEventRepo, provideEventService)

func provideEventRepo() repositories.EventRepository {
	return repositories.NewEventRepository(repositories.SeedEvents())
}

func provideEventService(
	eventRepo repositories.EventRepository,
	monasteryRepo repositories.MonasteryRepository,
) services.EventServiceInterface {
	return services.NewEventService(eventRepo, monasteryRepo)
}
