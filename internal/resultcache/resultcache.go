package resultcache

import (
	"context"
	"errors"
	"strconv"

	"gastrobot/internal/structs"
	"gastrobot/pkg/cache"
	"gastrobot/pkg/logger"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	Module = fx.Provide(New)
)

type (
	Params struct {
		fx.In
		Cache  cache.ICache
		Logger logger.Logger
	}

	// Service remembers the titles of the last search shown in each chat,
	// so result buttons can be labelled after the search session is gone.
	Service interface {
		Set(ctx context.Context, chatID int64, recipes []structs.RecipeSummary) error
		Title(ctx context.Context, chatID, recipeID int64) string
	}

	service struct {
		cache  cache.ICache
		logger logger.Logger
	}
)

func New(p Params) Service {
	return &service{
		cache:  p.Cache,
		logger: p.Logger,
	}
}

func key(chatID int64) string {
	return "recipes:" + strconv.FormatInt(chatID, 10)
}

// Set replaces the chat's whole mapping with the given recipes.
func (s *service) Set(ctx context.Context, chatID int64, recipes []structs.RecipeSummary) error {
	titles := make(map[int64]string, len(recipes))
	for _, r := range recipes {
		titles[r.ID] = r.Title
	}

	if err := s.cache.SaveObj(ctx, key(chatID), titles); err != nil {
		s.logger.Error(ctx, "->cache.SaveObj", zap.Int64("chat_id", chatID), zap.Error(err))
		return err
	}
	return nil
}

func (s *service) Title(ctx context.Context, chatID, recipeID int64) string {
	var titles map[int64]string
	if err := s.cache.GetObj(ctx, key(chatID), &titles); err != nil {
		if !errors.Is(err, cache.ErrNotFound) {
			s.logger.Warn(ctx, "->cache.GetObj", zap.Int64("chat_id", chatID), zap.Error(err))
		}
		return structs.UnknownRecipeTitle
	}

	title, ok := titles[recipeID]
	if !ok {
		return structs.UnknownRecipeTitle
	}
	return title
}
