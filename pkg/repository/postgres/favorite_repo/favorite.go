package favoriterepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"gastrobot/internal/structs"
	"gastrobot/pkg/db"
	"gastrobot/pkg/logger"
)

var (
	Module = fx.Provide(New)
)

const uniqueConstraint = "recipe_favorites_telegram_recipe_key"

type (
	Params struct {
		fx.In
		Logger logger.Logger
		DB     db.Querier
	}

	Repo interface {
		Create(ctx context.Context, req structs.CreateFavorite) (structs.Favorite, error)
		Exists(ctx context.Context, tgID, recipeID int64) (bool, error)
		GetByTgID(ctx context.Context, tgID int64) ([]structs.Favorite, error)
	}

	repo struct {
		logger logger.Logger
		db     db.Querier
	}
)

func New(p Params) Repo {
	return &repo{
		logger: p.Logger,
		db:     p.DB,
	}
}

// Create inserts a favorite. A duplicate (telegram_id, recipe_id) pair yields
// structs.ErrUniqueViolation.
func (r *repo) Create(ctx context.Context, req structs.CreateFavorite) (structs.Favorite, error) {
	query := `
		INSERT INTO recipe_favorites (recipe_id, telegram_id, user_unique_identifier)
		VALUES ($1, $2, $3)
		RETURNING id, recipe_id, telegram_id, user_unique_identifier, added_at
	`
	var resp structs.Favorite
	err := r.db.QueryRow(ctx, query, req.RecipeID, req.TelegramID, req.UserUniqueIdentifier).Scan(
		&resp.ID,
		&resp.RecipeID,
		&resp.TelegramID,
		&resp.UserUniqueIdentifier,
		&resp.AddedAt,
	)
	if err != nil {
		if db.IsUniqueViolation(err, uniqueConstraint) {
			return structs.Favorite{}, structs.ErrUniqueViolation
		}
		r.logger.Error(ctx, "err on r.db.QueryRow", zap.Error(err))
		return structs.Favorite{}, fmt.Errorf("create favorite failed: %w", err)
	}

	return resp, nil
}

func (r *repo) Exists(ctx context.Context, tgID, recipeID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM recipe_favorites WHERE telegram_id = $1 AND recipe_id = $2)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, tgID, recipeID).Scan(&exists); err != nil {
		r.logger.Error(ctx, "err on r.db.QueryRow", zap.Error(err))
		return false, fmt.Errorf("check favorite: %w", err)
	}
	return exists, nil
}

func (r *repo) GetByTgID(ctx context.Context, tgID int64) ([]structs.Favorite, error) {
	query := `
		SELECT
			id,
			recipe_id,
			telegram_id,
			user_unique_identifier,
			added_at
		FROM recipe_favorites
		WHERE telegram_id = $1
		ORDER BY added_at, id
	`
	rows, err := r.db.Query(ctx, query, tgID)
	if err != nil {
		r.logger.Error(ctx, "err on r.db.Query", zap.Error(err))
		return nil, fmt.Errorf("list favorites: %w", err)
	}

	favorites, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (structs.Favorite, error) {
		var f structs.Favorite
		err := row.Scan(&f.ID, &f.RecipeID, &f.TelegramID, &f.UserUniqueIdentifier, &f.AddedAt)
		return f, err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error(ctx, "err on pgx.CollectRows", zap.Error(err))
		return nil, fmt.Errorf("scan favorites: %w", err)
	}
	return favorites, nil
}
