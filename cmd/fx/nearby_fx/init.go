package nearby_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"monumentscout/internal/config"
	"monumentscout/internal/services"
	"monumentscout/pkg/overpass"
)

var Module = fx.Provide(
	provideOverpassClient, provideNearbyService)

func provideOverpassClient(cfg *config.Config) *overpass.Client {
	return overpass.NewClient(cfg.Overpass.URL, cfg.Overpass.UserAgent, cfg.Overpass.HTTPTimeout.Std())
}

func provideNearbyService(client *overpass.Client, cfg *config.Config, logger *zap.Logger) services.NearbyServiceInterface {
	return services.NewNearbyService(client, cfg.Overpass.QueryTimeout, logger.Named("nearby"))
}
