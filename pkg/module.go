package pkg

import (
	"go.uber.org/fx"

	"gastrobot/pkg/cache"
	"gastrobot/pkg/config"
	"gastrobot/pkg/db"
	"gastrobot/pkg/logger"
	"gastrobot/pkg/migration"
	"gastrobot/pkg/reply"
	"gastrobot/pkg/repository"
	"gastrobot/pkg/tgrouter"
)

var Module = fx.Options(
	config.Module,
	logger.Module,
	migration.Module,
	repository.Module,
	db.Module,
	cache.Module,
	reply.Module,
	tgrouter.Module,
)
