package ctxman

import (
	"context"

	"gastrobot/pkg/utils"
)

type LangKey struct{}

func Get[T any](ctx context.Context, key any) (T, bool) {
	var result T

	value := ctx.Value(key)
	if value == nil {
		return result, false
	}

	result, ok := value.(T)
	return result, ok
}

// Lang returns the language stored by the bot middleware, English by default.
func Lang(ctx context.Context) utils.Lang {
	if lang, ok := Get[utils.Lang](ctx, LangKey{}); ok {
		return lang
	}
	return utils.EN
}

func WithLang(ctx context.Context, lang utils.Lang) context.Context {
	return context.WithValue(ctx, LangKey{}, lang)
}
