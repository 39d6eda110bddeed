package identityrepo

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gastrobot/pkg/logger"
)

type scanFunc func(dest ...any) error

func (f scanFunc) Scan(dest ...any) error { return f(dest...) }

// upsertQuerier emulates INSERT .. ON CONFLICT DO UPDATE .. RETURNING for one table.
type upsertQuerier struct {
	stored map[int64]string
}

func (q *upsertQuerier) Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, errors.New("not used")
}

func (q *upsertQuerier) Query(context.Context, string, ...interface{}) (pgx.Rows, error) {
	return nil, errors.New("not used")
}

func (q *upsertQuerier) QueryRow(_ context.Context, _ string, args ...interface{}) pgx.Row {
	tgID, candidate := args[0].(int64), args[1].(string)
	if _, ok := q.stored[tgID]; !ok {
		q.stored[tgID] = candidate
	}
	value := q.stored[tgID]
	return scanFunc(func(dest ...any) error {
		*dest[0].(*string) = value
		return nil
	})
}

func TestResolveKeepsFirstIdentifier(t *testing.T) {
	r := New(Params{Logger: logger.Nop(), DB: &upsertQuerier{stored: map[int64]string{}}})
	ctx := context.Background()

	first, err := r.Resolve(ctx, 1001, "first")
	require.NoError(t, err)
	assert.Equal(t, "first", first)

	second, err := r.Resolve(ctx, 1001, "second")
	require.NoError(t, err)
	assert.Equal(t, "first", second)

	other, err := r.Resolve(ctx, 2002, "other")
	require.NoError(t, err)
	assert.Equal(t, "other", other)
}
