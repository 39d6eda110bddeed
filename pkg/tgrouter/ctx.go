package tgrouter

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"gastrobot/pkg/logger"
	"gastrobot/pkg/tgrouter/interfaces"
)

// Sender is the part of *tgbotapi.BotAPI handlers talk to.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type ctxState struct {
	stateName string
	data      map[string]string
}

type Ctx struct {
	update   *tgbotapi.Update
	bot      Sender
	handlers Handler
	state    *ctxState
	stateDB  interfaces.State
	logger   logger.Logger
	Context  context.Context
}

func (c *Ctx) reset(ctx context.Context) {
	c.handlers = nil
	c.state = nil
	c.Context = ctx
}

func (c *Ctx) Bot() Sender {
	return c.bot
}

func (c *Ctx) Update() *tgbotapi.Update {
	return c.update
}

// ChatID returns the chat the update belongs to, or 0 when it has none.
func (c *Ctx) ChatID() int64 {
	if chat := c.update.FromChat(); chat != nil {
		return chat.ID
	}
	return 0
}

// StateName returns the state loaded for this update, loading it on first use.
// An absent or unreadable state yields "".
func (c *Ctx) StateName() string {
	if c.state == nil {
		c.loadState()
	}
	return c.state.stateName
}

func (c *Ctx) loadState() {
	c.state = &ctxState{data: map[string]string{}}
	if c.stateDB == nil || c.ChatID() == 0 {
		return
	}

	name, data, err := c.stateDB.Get(c.Context, c.ChatID())
	if err != nil {
		return
	}
	c.state.stateName = name
	if data != nil {
		c.state.data = data
	}
}

// Send delivers a message. Delivery is best-effort: failures are logged, never retried.
func (c *Ctx) Send(msg tgbotapi.Chattable) {
	if _, err := c.bot.Send(msg); err != nil {
		c.logger.Warn(c.Context, "tgrouter: send failed", zap.Int64("chat_id", c.ChatID()), zap.Error(err))
	}
}

// AnswerCallback acknowledges the pressed button; text, if set, is shown as a toast.
func (c *Ctx) AnswerCallback(text string) {
	if c.update.CallbackQuery == nil {
		return
	}
	if _, err := c.bot.Request(tgbotapi.NewCallback(c.update.CallbackQuery.ID, text)); err != nil {
		c.logger.Warn(c.Context, "tgrouter: answer callback failed", zap.Error(err))
	}
}

// next executes the pending handler chain; used by the router only.
func (c *Ctx) next() {
	c.handlers(c)
}
