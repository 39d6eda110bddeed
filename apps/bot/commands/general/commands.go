package general

import (
	"gastrobot/internal/ctxman"
	"gastrobot/internal/keyboards"
	"gastrobot/internal/structs"
	"gastrobot/internal/texts"
	"gastrobot/pkg/logger"
	"gastrobot/pkg/tgrouter"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Provide(New)

type Params struct {
	fx.In
	Logger logger.Logger
}

type Commands struct {
	logger logger.Logger
}

func New(p Params) Commands {
	return Commands{
		logger: p.Logger,
	}
}

func firstName(ctx *tgrouter.Ctx) string {
	if from := ctx.Update().SentFrom(); from != nil {
		return from.FirstName
	}
	return ""
}

func (c *Commands) Start(ctx *tgrouter.Ctx) {
	c.logger.Info(ctx.Context, "start command", zap.Int64("chat_id", ctx.ChatID()))

	lang := ctxman.Lang(ctx.Context)
	ctx.Send(keyboards.Message(ctx.ChatID(), structs.Reply{
		Text: texts.WelcomeText(lang, firstName(ctx)),
	}))
}

func (c *Commands) Help(ctx *tgrouter.Ctx) {
	lang := ctxman.Lang(ctx.Context)
	ctx.Send(keyboards.Message(ctx.ChatID(), structs.Reply{
		Text:      texts.HelpText(lang, firstName(ctx)),
		ParseMode: structs.ParseModeMarkdown,
	}))
}

func (c *Commands) About(ctx *tgrouter.Ctx) {
	ctx.Send(keyboards.Message(ctx.ChatID(), structs.Reply{
		Text: texts.Get(ctxman.Lang(ctx.Context), texts.About),
	}))
}

func (c *Commands) Unknown(ctx *tgrouter.Ctx) {
	c.logger.Debug(ctx.Context, "unknown command", zap.String("command", ctx.Update().Message.Command()))
	ctx.Send(keyboards.Message(ctx.ChatID(), structs.Reply{
		Text: texts.Get(ctxman.Lang(ctx.Context), texts.UnknownCommand),
	}))
}
