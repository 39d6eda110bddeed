package bot

import (
	"context"
	"fmt"

	"gastrobot/apps/bot/commands/favorite"
	"gastrobot/apps/bot/commands/general"
	"gastrobot/apps/bot/commands/recipe"
	"gastrobot/apps/bot/middleware"
	"gastrobot/internal/structs"
	"gastrobot/internal/texts"
	"gastrobot/pkg/config"
	"gastrobot/pkg/logger"
	"gastrobot/pkg/tgrouter"
	"gastrobot/pkg/tgrouter/callback"
	"gastrobot/pkg/tgrouter/interfaces"
	"gastrobot/pkg/utils"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Options(
	general.Module,
	recipe.Module,
	favorite.Module,
	middleware.Module,

	fx.Invoke(NewBot),
)

type Params struct {
	fx.In
	Lifecycle fx.Lifecycle

	Logger  logger.Logger
	Config  config.IConfig
	Factory tgrouter.RouterFactory
	State   interfaces.State

	Handlers
}

// Handlers groups everything the routes dispatch to.
type Handlers struct {
	fx.In

	Middleware  middleware.Middleware
	GeneralCmd  general.Commands
	RecipeCmd   recipe.Commands
	FavoriteCmd favorite.Commands
}

func NewBot(p Params) error {
	token := p.Config.GetString("bot.token")
	if token == "" {
		return fmt.Errorf("telegram bot token is not set")
	}
	tb, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return fmt.Errorf("failed to initialize bot: %w", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	registerCommands(ctx, tb, p.Logger)

	r := p.Factory(tb, tgrouter.WithPoolSize(p.Config.GetInt("bot.pool_size")), tgrouter.WithState(p.State))
	RegisterRoutes(r, p.Handlers)

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go r.ListenUpdate(ctx)
			p.Logger.Info(ctx, "bot started!", zap.String("username", tb.Self.UserName))
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			err := r.Shutdown(stopCtx, cancel)
			p.Logger.Info(stopCtx, "bot stopped!")
			return err
		},
	})

	return nil
}

// RegisterRoutes wires handlers in match order: known commands, the
// unknown-command catch-all, dialogue text, then button callbacks.
func RegisterRoutes(r *tgrouter.Router, h Handlers) {
	bot := r.Group()
	bot.Use(h.Middleware.UpdateMw)

	tgrouter.On(bot, tgrouter.Cmd("start"), h.GeneralCmd.Start)
	tgrouter.On(bot, tgrouter.Cmd("help"), h.GeneralCmd.Help)
	tgrouter.On(bot, tgrouter.Cmd("about"), h.GeneralCmd.About)
	tgrouter.On(bot, tgrouter.Cmd("recipe"), h.RecipeCmd.Recipe)
	tgrouter.On(bot, tgrouter.Cmd("favorite"), h.FavoriteCmd.List)
	tgrouter.On(bot, tgrouter.Command(), h.GeneralCmd.Unknown)

	steps := make([]string, 0, len(structs.Steps))
	for _, step := range structs.Steps {
		steps = append(steps, string(step))
	}
	tgrouter.On(bot, tgrouter.State(steps...), h.RecipeCmd.Dialogue)

	tgrouter.On(bot, tgrouter.Callback(callback.ShowRecipe), h.RecipeCmd.ShowRecipe)
	tgrouter.On(bot, tgrouter.Callback(callback.AddToFavorite), h.FavoriteCmd.Add)
}

func registerCommands(ctx context.Context, tb *tgbotapi.BotAPI, log logger.Logger) {
	for _, lang := range []utils.Lang{utils.EN, utils.ES} {
		commands := make([]tgbotapi.BotCommand, 0, len(texts.Commands))
		for _, cmd := range texts.Commands {
			commands = append(commands, tgbotapi.BotCommand{
				Command:     cmd.Name,
				Description: texts.Get(lang, cmd.Description),
			})
		}

		cfg := tgbotapi.NewSetMyCommands(commands...)
		if lang != utils.EN {
			cfg.LanguageCode = string(lang)
		}
		if _, err := tb.Request(cfg); err != nil {
			log.Warn(ctx, "set my commands failed", zap.String("lang", string(lang)), zap.Error(err))
		}
	}
}
