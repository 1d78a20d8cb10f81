package main

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"monumentscout/cmd/fx/config_fx"
	"monumentscout/cmd/fx/controllers_fx"
	"monumentscout/cmd/fx/explain_fx"
	"monumentscout/cmd/fx/logger_fx"
	"monumentscout/cmd/fx/nearby_fx"
	"monumentscout/internal/api/controllers"
	"monumentscout/internal/config"
	"monumentscout/pkg/middleware"
)

func main() {
	fx.New(appOptions()).Run()
}

func appOptions() fx.Option {
	return fx.Options(
		config_fx.Module,
		logger_fx.Module,
		nearby_fx.Module,
		explain_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, logger *zap.Logger) {
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Info("starting HTTP server", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal("HTTP server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	logger *zap.Logger,
	nearbyController *controllers.NearbyController,
	explainController *controllers.ExplainController,
	healthController *controllers.HealthController) *gin.Engine {

	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(logger.Named("http")))
	r.Use(middleware.CORSMiddleware(cfg.Server.CORSAllowedOrigins))

	RegisterRoutes(r, nearbyController, explainController, healthController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	nearbyController *controllers.NearbyController,
	explainController *controllers.ExplainController,
	healthController *controllers.HealthController) {

	r.GET("/healthz", healthController.HealthHandler)

	apiGroup := r.Group("/api")
	apiGroup.GET("/nearby", nearbyController.GetNearbyHandler)
	apiGroup.POST("/explain", explainController.ExplainHandler)
}
