package catalog_fx

import (
	"go.uber.org/fx"

	"gompa/internal/repositories"
	"gompa/internal/services"
)

var Module = fx.Provide(provideMonasteryRepo, provideMonasteryService)

func provideMonasteryRepo() repositories.MonasteryRepository {
	return repositories.NewMonasteryRepository(repositories.SeedMonasteries())
}

func provideMonasteryService(monasteryRepo repositories.MonasteryRepository) services.MonasteryServiceInterface {
	return services.NewMonasteryService(monasteryRepo)
}
