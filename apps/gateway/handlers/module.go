package handlers

import (
	"gastrobot/apps/gateway/handlers/favorite"
	"gastrobot/apps/gateway/handlers/health"
	"gastrobot/apps/gateway/handlers/middleware"

	"go.uber.org/fx"
)

var Module = fx.Options(
	middleware.Module,
	health.Module,
	favorite.Module,
)
