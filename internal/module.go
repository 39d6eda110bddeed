package internal

import (
	"gastrobot/internal/catalog"
	"gastrobot/internal/conversation"
	"gastrobot/internal/favorite"
	"gastrobot/internal/resultcache"

	"go.uber.org/fx"
)

var Module = fx.Options(
	catalog.Module,
	resultcache.Module,
	conversation.Module,
	favorite.Module,
)
