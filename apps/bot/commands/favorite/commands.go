package favorite

import (
	"gastrobot/internal/ctxman"
	"gastrobot/internal/favorite"
	"gastrobot/internal/keyboards"
	"gastrobot/internal/structs"
	"gastrobot/internal/texts"
	"gastrobot/pkg/logger"
	"gastrobot/pkg/tgrouter"
	"gastrobot/pkg/tgrouter/callback"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Provide(New)

type Params struct {
	fx.In
	Logger      logger.Logger
	FavoriteSvc favorite.Service
}

type Commands struct {
	logger      logger.Logger
	favoriteSvc favorite.Service
}

func New(p Params) Commands {
	return Commands{
		logger:      p.Logger,
		favoriteSvc: p.FavoriteSvc,
	}
}

func senderID(ctx *tgrouter.Ctx) int64 {
	if from := ctx.Update().SentFrom(); from != nil {
		return from.ID
	}
	return ctx.ChatID()
}

// List shows the user's favorites with one detail button per recipe.
func (c *Commands) List(ctx *tgrouter.Ctx) {
	chatID := ctx.ChatID()
	lang := ctxman.Lang(ctx.Context)

	list, err := c.favoriteSvc.ListFavorites(ctx.Context, senderID(ctx))
	if err != nil {
		c.logger.Error(ctx.Context, "->favoriteSvc.ListFavorites", zap.Int64("chat_id", chatID), zap.Error(err))
		ctx.Send(keyboards.Message(chatID, structs.Reply{Text: texts.Get(lang, texts.FavoritesFailed)}))
		return
	}
	if list.Empty {
		ctx.Send(keyboards.Message(chatID, structs.Reply{Text: texts.Get(lang, texts.FavoritesEmpty)}))
		return
	}

	buttons := make([]structs.Button, 0, len(list.Items))
	for _, item := range list.Items {
		buttons = append(buttons, structs.Button{
			Text: texts.FavoriteTitle(lang, item),
			Data: callback.New(callback.ShowRecipe, item.RecipeID).String(),
		})
	}

	ctx.Send(keyboards.Message(chatID, structs.Reply{
		Text:    texts.FavoritesList(lang, list.Items),
		Buttons: buttons,
	}))
}

func (c *Commands) Add(ctx *tgrouter.Ctx) {
	cd, ok := callback.Parse(ctx.Update().CallbackQuery.Data)
	if !ok {
		ctx.AnswerCallback("")
		return
	}

	chatID := ctx.ChatID()
	lang := ctxman.Lang(ctx.Context)

	res, err := c.favoriteSvc.AddFavorite(ctx.Context, cd.Value, senderID(ctx))
	if err != nil {
		c.logger.Error(ctx.Context, "->favoriteSvc.AddFavorite", zap.Int64("recipe_id", cd.Value), zap.Error(err))
		ctx.AnswerCallback("")
		ctx.Send(keyboards.Message(chatID, structs.Reply{Text: texts.Get(lang, texts.FavoriteAddFailed)}))
		return
	}

	switch res.Status {
	case structs.FavoriteAdded:
		ctx.AnswerCallback(texts.Get(lang, texts.FavoriteAddedToast))
		ctx.Send(keyboards.Message(chatID, structs.Reply{Text: texts.Get(lang, texts.FavoriteAdded)}))
	default:
		ctx.AnswerCallback("")
		ctx.Send(keyboards.Message(chatID, structs.Reply{Text: texts.Get(lang, texts.FavoriteExists)}))
	}
}
