package identityrepo

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"gastrobot/pkg/db"
	"gastrobot/pkg/logger"
)

var (
	Module = fx.Provide(New)
)

type (
	Params struct {
		fx.In
		Logger logger.Logger
		DB     db.Querier
	}

	Repo interface {
		// Resolve returns the identifier stored for tgID. When none exists,
		// candidate is stored and returned. Concurrent callers for the same
		// tgID always observe the same identifier.
		Resolve(ctx context.Context, tgID int64, candidate string) (string, error)
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

func (r *repo) Resolve(ctx context.Context, tgID int64, candidate string) (string, error) {
	// The no-op DO UPDATE makes RETURNING yield the existing row on conflict,
	// so lookup and creation happen in one statement.
	query := `
		INSERT INTO user_identifiers (telegram_id, unique_identifier)
		VALUES ($1, $2)
		ON CONFLICT (telegram_id) DO UPDATE SET telegram_id = EXCLUDED.telegram_id
		RETURNING unique_identifier
	`
	var identifier string
	if err := r.db.QueryRow(ctx, query, tgID, candidate).Scan(&identifier); err != nil {
		r.logger.Error(ctx, "err on r.db.QueryRow", zap.Error(err), zap.Int64("tgid", tgID))
		return "", fmt.Errorf("resolve user identifier: %w", err)
	}
	return identifier, nil
}
