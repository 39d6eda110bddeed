package ctxman

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"gastrobot/pkg/utils"
)

func TestLang(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, utils.EN, Lang(ctx))
	assert.Equal(t, utils.ES, Lang(WithLang(ctx, utils.ES)))
}

func TestGetWrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), LangKey{}, "es")
	_, ok := Get[utils.Lang](ctx, LangKey{})
	assert.False(t, ok)
}
