package favoriterepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gastrobot/internal/structs"
	"gastrobot/pkg/logger"
)

type scanFunc func(dest ...any) error

func (f scanFunc) Scan(dest ...any) error { return f(dest...) }

type fakeQuerier struct {
	row  scanFunc
	sql  string
	args []any
}

func (q *fakeQuerier) Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, errors.New("not used")
}

func (q *fakeQuerier) Query(context.Context, string, ...interface{}) (pgx.Rows, error) {
	return nil, errors.New("not used")
}

func (q *fakeQuerier) QueryRow(_ context.Context, sql string, args ...interface{}) pgx.Row {
	q.sql, q.args = sql, args
	return q.row
}

func TestCreate(t *testing.T) {
	addedAt := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	q := &fakeQuerier{row: func(dest ...any) error {
		*dest[0].(*int64) = 7
		*dest[1].(*int64) = 42
		*dest[2].(*int64) = 1001
		*dest[3].(*string) = "uid"
		*dest[4].(*time.Time) = addedAt
		return nil
	}}
	r := New(Params{Logger: logger.Nop(), DB: q})

	fav, err := r.Create(context.Background(), structs.CreateFavorite{RecipeID: 42, TelegramID: 1001, UserUniqueIdentifier: "uid"})
	require.NoError(t, err)
	assert.Equal(t, structs.Favorite{ID: 7, RecipeID: 42, TelegramID: 1001, UserUniqueIdentifier: "uid", AddedAt: addedAt}, fav)
	assert.Equal(t, []any{int64(42), int64(1001), "uid"}, q.args)
}

func TestCreateMapsUniqueViolation(t *testing.T) {
	q := &fakeQuerier{row: func(...any) error {
		return &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: uniqueConstraint}
	}}
	r := New(Params{Logger: logger.Nop(), DB: q})

	_, err := r.Create(context.Background(), structs.CreateFavorite{RecipeID: 42, TelegramID: 1001})
	assert.ErrorIs(t, err, structs.ErrUniqueViolation)
}

func TestCreatePropagatesOtherErrors(t *testing.T) {
	boom := errors.New("connection reset")
	q := &fakeQuerier{row: func(...any) error { return boom }}
	r := New(Params{Logger: logger.Nop(), DB: q})

	_, err := r.Create(context.Background(), structs.CreateFavorite{RecipeID: 42, TelegramID: 1001})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, structs.ErrUniqueViolation)
}

func TestExists(t *testing.T) {
	q := &fakeQuerier{row: func(dest ...any) error {
		*dest[0].(*bool) = true
		return nil
	}}
	r := New(Params{Logger: logger.Nop(), DB: q})

	ok, err := r.Exists(context.Background(), 1001, 42)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []any{int64(1001), int64(42)}, q.args)
}
