package postgres

import (
	favoriterepo "gastrobot/pkg/repository/postgres/favorite_repo"
	identityrepo "gastrobot/pkg/repository/postgres/identity_repo"

	"go.uber.org/fx"
)

var Module = fx.Options(
	favoriterepo.Module,
	identityrepo.Module,
)
