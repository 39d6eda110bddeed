package state

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gastrobot/internal/structs"
	"gastrobot/pkg/cache"
)

func TestStateLifecycle(t *testing.T) {
	ctx := context.Background()
	st := New(Params{Cache: cache.NewMemory()})

	_, _, err := st.Get(ctx, 1)
	require.ErrorIs(t, err, structs.ErrNotFound)

	require.NoError(t, st.Set(ctx, 1, "awaiting_ingredients", map[string]string{"recipe": "pasta"}))
	name, data, err := st.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "awaiting_ingredients", name)
	assert.Equal(t, map[string]string{"recipe": "pasta"}, data)

	require.NoError(t, st.Set(ctx, 1, "awaiting_recipe_name", nil))
	name, data, err = st.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "awaiting_recipe_name", name)
	assert.Empty(t, data, "overwrite must not merge old data")

	_, _, err = st.Get(ctx, 2)
	assert.ErrorIs(t, err, structs.ErrNotFound, "chats are independent")

	require.NoError(t, st.Delete(ctx, 1))
	_, _, err = st.Get(ctx, 1)
	assert.ErrorIs(t, err, structs.ErrNotFound)
}

func TestConditionalWrites(t *testing.T) {
	ctx := context.Background()
	st := New(Params{Cache: cache.NewMemory()})

	err := st.SetIf(ctx, 1, "session", "a", "awaiting_ingredients", nil)
	require.ErrorIs(t, err, structs.ErrStaleSession, "no state yet")
	require.ErrorIs(t, st.DeleteIf(ctx, 1, "session", "a"), structs.ErrStaleSession)

	require.NoError(t, st.Set(ctx, 1, "awaiting_recipe_name", map[string]string{"session": "a"}))

	tests := []struct {
		name    string
		want    string
		wantErr error
		step    string
	}{
		{name: "other session", want: "b", wantErr: structs.ErrStaleSession, step: "awaiting_recipe_name"},
		{name: "same session", want: "a", step: "awaiting_ingredients"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := st.SetIf(ctx, 1, "session", tt.want, "awaiting_ingredients", map[string]string{"session": "a", "recipe": "pasta"})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			name, _, err := st.Get(ctx, 1)
			require.NoError(t, err)
			assert.Equal(t, tt.step, name)
		})
	}

	require.ErrorIs(t, st.DeleteIf(ctx, 1, "session", "b"), structs.ErrStaleSession)
	_, _, err = st.Get(ctx, 1)
	require.NoError(t, err, "mismatched delete keeps the state")

	require.NoError(t, st.DeleteIf(ctx, 1, "session", "a"))
	_, _, err = st.Get(ctx, 1)
	assert.ErrorIs(t, err, structs.ErrNotFound)
}
