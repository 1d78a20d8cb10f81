package controllers_fx

import (
	"go.uber.org/fx"
	"monumentscout/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewNearbyController),
	fx.Provide(controllers.NewExplainController),
	fx.Provide(controllers.NewHealthController))
