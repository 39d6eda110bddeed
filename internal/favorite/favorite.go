package favorite

import (
	"context"
	"errors"
	"time"

	"gastrobot/internal/catalog"
	"gastrobot/internal/structs"
	"gastrobot/pkg/config"
	"gastrobot/pkg/logger"
	favoriterepo "gastrobot/pkg/repository/postgres/favorite_repo"
	identityrepo "gastrobot/pkg/repository/postgres/identity_repo"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	Module = fx.Provide(New)
)

const titleLookups = 4

type (
	Params struct {
		fx.In
		Config       config.IConfig
		FavoriteRepo favoriterepo.Repo
		IdentityRepo identityrepo.Repo
		Catalog      catalog.Service
		Logger       logger.Logger
	}

	Service interface {
		AddFavorite(ctx context.Context, recipeID, telegramID int64) (structs.AddFavoriteResult, error)
		ListFavorites(ctx context.Context, telegramID int64) (structs.FavoriteList, error)
	}

	service struct {
		favoriteRepo favoriterepo.Repo
		identityRepo identityrepo.Repo
		catalog      catalog.Service
		logger       logger.Logger
		timeout      time.Duration
		newID        func() string
	}
)

func New(p Params) Service {
	return &service{
		favoriteRepo: p.FavoriteRepo,
		identityRepo: p.IdentityRepo,
		catalog:      p.Catalog,
		logger:       p.Logger,
		timeout:      p.Config.GetDuration("catalog.timeout"),
		newID:        uuid.NewString,
	}
}

// AddFavorite is idempotent per (telegramID, recipeID); a concurrent duplicate
// insert that loses on the unique constraint reports FavoriteAlreadyExists.
func (s *service) AddFavorite(ctx context.Context, recipeID, telegramID int64) (structs.AddFavoriteResult, error) {
	if recipeID <= 0 || telegramID == 0 {
		return structs.AddFavoriteResult{}, structs.ErrBadRequest
	}

	identifier, err := s.identityRepo.Resolve(ctx, telegramID, s.newID())
	if err != nil {
		s.logger.Error(ctx, "->identityRepo.Resolve", zap.Int64("telegram_id", telegramID), zap.Error(err))
		return structs.AddFavoriteResult{}, err
	}

	exists, err := s.favoriteRepo.Exists(ctx, telegramID, recipeID)
	if err != nil {
		s.logger.Error(ctx, "->favoriteRepo.Exists", zap.Int64("telegram_id", telegramID), zap.Int64("recipe_id", recipeID), zap.Error(err))
		return structs.AddFavoriteResult{}, err
	}
	if exists {
		return structs.AddFavoriteResult{Status: structs.FavoriteAlreadyExists, UserUniqueIdentifier: identifier}, nil
	}

	_, err = s.favoriteRepo.Create(ctx, structs.CreateFavorite{
		RecipeID:             recipeID,
		TelegramID:           telegramID,
		UserUniqueIdentifier: identifier,
	})
	if err != nil {
		if errors.Is(err, structs.ErrUniqueViolation) {
			return structs.AddFavoriteResult{Status: structs.FavoriteAlreadyExists, UserUniqueIdentifier: identifier}, nil
		}
		s.logger.Error(ctx, "->favoriteRepo.Create", zap.Int64("telegram_id", telegramID), zap.Int64("recipe_id", recipeID), zap.Error(err))
		return structs.AddFavoriteResult{}, err
	}

	s.logger.Info(ctx, "favorite added", zap.Int64("telegram_id", telegramID), zap.Int64("recipe_id", recipeID))
	return structs.AddFavoriteResult{Status: structs.FavoriteAdded, UserUniqueIdentifier: identifier}, nil
}

// ListFavorites returns the user's favorites in stored order with titles
// fetched live from the catalog.
func (s *service) ListFavorites(ctx context.Context, telegramID int64) (structs.FavoriteList, error) {
	favorites, err := s.favoriteRepo.GetByTgID(ctx, telegramID)
	if err != nil {
		s.logger.Error(ctx, "->favoriteRepo.GetByTgID", zap.Int64("telegram_id", telegramID), zap.Error(err))
		return structs.FavoriteList{}, err
	}
	if len(favorites) == 0 {
		return structs.FavoriteList{Empty: true, Items: []structs.FavoriteItem{}}, nil
	}

	items := make([]structs.FavoriteItem, len(favorites))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(titleLookups)
	for i, fav := range favorites {
		g.Go(func() error {
			items[i] = s.item(gctx, fav)
			return nil
		})
	}
	_ = g.Wait()

	return structs.FavoriteList{Items: items}, nil
}

func (s *service) item(ctx context.Context, fav structs.Favorite) structs.FavoriteItem {
	item := structs.FavoriteItem{
		RecipeID: fav.RecipeID,
		Title:    structs.NoRecipeTitle,
		AddedAt:  fav.AddedAt,
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	detail, err := s.catalog.GetDetail(ctx, fav.RecipeID)
	if err != nil {
		s.logger.Warn(ctx, "->catalog.GetDetail", zap.Int64("recipe_id", fav.RecipeID), zap.Error(err))
		return item
	}
	if detail.Title != "" {
		item.Title = detail.Title
		item.TitleResolved = true
	}
	return item
}
