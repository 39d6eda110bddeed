package recipe

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gastrobot/internal/catalog"
	"gastrobot/internal/conversation"
	"gastrobot/internal/ctxman"
	"gastrobot/internal/keyboards"
	"gastrobot/internal/resultcache"
	"gastrobot/internal/structs"
	"gastrobot/internal/texts"
	"gastrobot/pkg/config"
	"gastrobot/pkg/logger"
	"gastrobot/pkg/tgrouter"
	"gastrobot/pkg/tgrouter/callback"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Provide(New)

type Params struct {
	fx.In
	Config       config.IConfig
	Logger       logger.Logger
	Conversation conversation.Service
	Catalog      catalog.Service
	Results      resultcache.Service
}

type Commands struct {
	logger       logger.Logger
	conversation conversation.Service
	catalog      catalog.Service
	results      resultcache.Service
	timeout      time.Duration
}

func New(p Params) Commands {
	return Commands{
		logger:       p.Logger,
		conversation: p.Conversation,
		catalog:      p.Catalog,
		results:      p.Results,
		timeout:      p.Config.GetDuration("catalog.timeout"),
	}
}

// Recipe starts a new search, dropping any search already in progress.
func (c *Commands) Recipe(ctx *tgrouter.Ctx) {
	chatID := ctx.ChatID()
	c.logger.Info(ctx.Context, "recipe command", zap.Int64("chat_id", chatID))

	reply, err := c.conversation.Start(ctx.Context, chatID, ctxman.Lang(ctx.Context))
	if err != nil {
		c.logger.Error(ctx.Context, "->conversation.Start", zap.Error(err))
	}
	ctx.Send(keyboards.Message(chatID, reply))
}

// Dialogue feeds free text to the chat's search session.
func (c *Commands) Dialogue(ctx *tgrouter.Ctx) {
	chatID := ctx.ChatID()

	reply, handled, err := c.conversation.Handle(ctx.Context, chatID, ctxman.Lang(ctx.Context), ctx.Update().Message.Text)
	if err != nil {
		c.logger.Error(ctx.Context, "->conversation.Handle", zap.Int64("chat_id", chatID), zap.Error(err))
	}
	if !handled {
		return
	}
	ctx.Send(keyboards.Message(chatID, reply))
}

func (c *Commands) ShowRecipe(ctx *tgrouter.Ctx) {
	defer ctx.AnswerCallback("")

	cd, ok := callback.Parse(ctx.Update().CallbackQuery.Data)
	if !ok {
		return
	}

	chatID := ctx.ChatID()
	lang := ctxman.Lang(ctx.Context)

	title := c.results.Title(ctx.Context, chatID, cd.Value)
	cached := title != structs.UnknownRecipeTitle
	if !cached {
		title = texts.Get(lang, texts.UnknownRecipeTitle)
	}

	detailCtx := ctx.Context
	if c.timeout > 0 {
		var cancel context.CancelFunc
		detailCtx, cancel = context.WithTimeout(ctx.Context, c.timeout)
		defer cancel()
	}

	detail, err := c.catalog.GetDetail(detailCtx, cd.Value)
	if err != nil {
		if !errors.Is(err, structs.ErrNotFound) {
			c.logger.Error(ctx.Context, "->catalog.GetDetail", zap.Int64("recipe_id", cd.Value), zap.Error(err))
		}
		ctx.Send(keyboards.Message(chatID, structs.Reply{
			Text: fmt.Sprintf(texts.Get(lang, texts.DetailNotFound), title),
		}))
		return
	}
	// Buttons from /favorite are not in the last search.
	if !cached && detail.Title != "" {
		title = detail.Title
	}

	ctx.Send(keyboards.Message(chatID, structs.Reply{
		Text:      texts.RecipeDetail(lang, title, detail),
		ParseMode: structs.ParseModeMarkdown,
		Buttons: []structs.Button{{
			Text: texts.Get(lang, texts.AddToFavoriteButton),
			Data: callback.New(callback.AddToFavorite, cd.Value).String(),
		}},
	}))
}
