package router

import (
	"context"
	"errors"
	"net/http"

	"gastrobot/apps/gateway/handlers/favorite"
	"gastrobot/apps/gateway/handlers/health"
	"gastrobot/apps/gateway/handlers/middleware"
	"gastrobot/pkg/config"
	"gastrobot/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Options(
	fx.Invoke(
		NewRouter,
	),
)

type Params struct {
	fx.In

	middleware.Middleware
	Lifecycle fx.Lifecycle
	Config    config.IConfig
	Logger    logger.Logger
	Health    health.Handler
	Favorite  favorite.Handler
}

func newEngine(params Params) *gin.Engine {
	r := gin.New()
	baseUrl := "/api/v1"
	api := r.Group(baseUrl)
	api.Use(params.Ctx(), gin.Recovery())

	api.GET("/health", params.Health.Health)

	favoriteGroup := api.Group("/favorites")
	{
		favoriteGroup.GET("/:telegram_id", params.Favorite.GetByTgID)
	}

	return r
}

func NewRouter(params Params) {
	server := http.Server{
		Addr: params.Config.GetString("server.port"),
		Handler: cors.New(cors.Options{
			AllowedHeaders: []string{"*"},
			AllowedOrigins: params.Config.GetStringSlice("server.cors_origins"),
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		}).Handler(newEngine(params)),
	}

	params.Lifecycle.Append(
		fx.Hook{
			OnStart: func(ctx context.Context) error {
				go func() {
					if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
						params.Logger.Error(context.Background(), "Err on ListenAndServe", zap.Error(err))
					}
				}()

				params.Logger.Info(ctx, "Gateway starting on port", zap.String("port", params.Config.GetString("server.port")))
				return nil
			},
			OnStop: func(ctx context.Context) error {
				params.Logger.Info(ctx, "Gateway stopped")
				return server.Shutdown(ctx)
			},
		},
	)
}
