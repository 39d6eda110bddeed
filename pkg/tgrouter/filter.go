package tgrouter

import (
	"slices"

	"gastrobot/pkg/tgrouter/callback"
)

type FilterType interface {
	MessageFilter | CommandFilter | StateFilter | CallbackFilter | any
}

type (
	MessageFilter  struct{}
	CommandFilter  struct{}
	StateFilter    struct{}
	CallbackFilter struct{}
)

type Filter[F FilterType] func(*Ctx) bool

// Text matches plain text messages that are not commands.
func Text() Filter[MessageFilter] {
	return func(c *Ctx) bool {
		return c.update.Message != nil && c.update.Message.Text != "" && !c.update.Message.IsCommand()
	}
}

// Command matches any bot command, known or not.
func Command() Filter[CommandFilter] {
	return func(c *Ctx) bool {
		return c.update.Message != nil && c.update.Message.IsCommand()
	}
}

func Cmd(cmd string) Filter[CommandFilter] {
	return func(c *Ctx) bool {
		return c.update.Message != nil && c.update.Message.IsCommand() && c.update.Message.Command() == cmd
	}
}

// Callback matches button presses whose payload carries the given action tag.
func Callback(action string) Filter[CallbackFilter] {
	return func(c *Ctx) bool {
		if c.update.CallbackQuery == nil {
			return false
		}
		return callback.Query(c.update.CallbackQuery.Data) == action
	}
}

// State matches text messages sent while the chat is in one of the named states.
func State(names ...string) Filter[StateFilter] {
	return func(c *Ctx) bool {
		if !Text()(c) {
			return false
		}
		name := c.StateName()
		return name != "" && slices.Contains(names, name)
	}
}

func Any() Filter[any] {
	return func(c *Ctx) bool {
		return true
	}
}
