package routing_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"gompa/internal/services"
)

var Module = fx.Provide(provideLogger, provideRouteCache, provideRoutingService)

func provideLogger() *zap.Logger {
	logger, err := zap.NewProduction()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func provideRouteCache() services.RouteCache {
	return services.NewInMemoryRouteCache()
}

func provideRoutingService(cache services.RouteCache, logger *zap.Logger) services.RoutingServiceInterface {
	return services.NewOSRMRouteClient(cache, logger)
}
