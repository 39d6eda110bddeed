package repository

import (
	"go.uber.org/fx"

	"gastrobot/pkg/repository/postgres"
	"gastrobot/pkg/repository/state"
)

var Module = fx.Options(
	postgres.Module,
	state.Module,
)
