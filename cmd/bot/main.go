package main

import (
	"gastrobot/apps/bot"
	"gastrobot/apps/gateway"
	"gastrobot/cmd/bot/router"
	"gastrobot/internal"
	"gastrobot/pkg"
	"gastrobot/pkg/config"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		pkg.Module,
		fx.Invoke(func(cfg config.IConfig) error { return cfg.Validate() }),
		internal.Module,
		gateway.Module,
		router.Module,
		bot.Module,
	).Run()
}
