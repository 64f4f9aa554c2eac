package admin_fx

import (
	"go.uber.org/fx"

	"gompa/internal/repositories"
	"gompa/internal/services"
)

var Module = fx.Provide(provideAdminService)

func provideAdminService(
	monasteryRepo repositories.MonasteryRepository,
	eventRepo repositories.EventRepository,
) services.AdminServiceInterface {
	return services.NewAdminService(monasteryRepo, eventRepo)
}
