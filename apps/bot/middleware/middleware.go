package middleware

import (
	"gastrobot/internal/ctxman"
	"gastrobot/pkg/logger"
	"gastrobot/pkg/tgrouter"
	"gastrobot/pkg/utils"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Provide(New)

type Params struct {
	fx.In
	Logger logger.Logger
}

type Middleware interface {
	UpdateMw(next tgrouter.Handler) tgrouter.Handler
}

type mw struct {
	logger logger.Logger
}

func New(p Params) Middleware {
	return &mw{
		logger: p.Logger,
	}
}

// UpdateMw gives every update its own log id and the sender's language,
// and shows the typing indicator while the handler runs.
func (m *mw) UpdateMw(next tgrouter.Handler) tgrouter.Handler {
	return func(c *tgrouter.Ctx) {
		c.Context = m.logger.Context(c.Context)

		lang := utils.EN
		if from := c.Update().SentFrom(); from != nil {
			lang = utils.LangFromCode(from.LanguageCode)
		}
		c.Context = ctxman.WithLang(c.Context, lang)

		if chatID := c.ChatID(); chatID != 0 {
			if _, err := c.Bot().Request(tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping)); err != nil {
				m.logger.Debug(c.Context, "typing action failed", zap.Error(err))
			}
		}

		next(c)
	}
}
