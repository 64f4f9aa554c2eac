package controllers_fx

import (
	"go.uber.org/fx"

	"gompa/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewMonasteryController),
	fx.Provide(controllers.NewEventController),
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewAssistantController),
	fx.Provide(controllers.NewAdminController))
