package favorite

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"gastrobot/internal/structs"
	"gastrobot/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pair struct{ tgID, recipeID int64 }

// memFavorites enforces the (telegram_id, recipe_id) constraint like the table does.
type memFavorites struct {
	mu          sync.Mutex
	rows        []structs.Favorite
	byPair      map[pair]struct{}
	blindExists bool
	failCreate  error
	now         time.Time
}

func newMemFavorites() *memFavorites {
	return &memFavorites{
		byPair: map[pair]struct{}{},
		now:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (m *memFavorites) Create(_ context.Context, req structs.CreateFavorite) (structs.Favorite, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failCreate != nil {
		return structs.Favorite{}, m.failCreate
	}
	key := pair{req.TelegramID, req.RecipeID}
	if _, ok := m.byPair[key]; ok {
		return structs.Favorite{}, structs.ErrUniqueViolation
	}
	m.byPair[key] = struct{}{}
	m.now = m.now.Add(time.Minute)
	fav := structs.Favorite{
		ID:                   int64(len(m.rows) + 1),
		RecipeID:             req.RecipeID,
		TelegramID:           req.TelegramID,
		UserUniqueIdentifier: req.UserUniqueIdentifier,
		AddedAt:              m.now,
	}
	m.rows = append(m.rows, fav)
	return fav, nil
}

func (m *memFavorites) Exists(_ context.Context, tgID, recipeID int64) (bool, error) {
	if m.blindExists {
		return false, nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.byPair[pair{tgID, recipeID}]
	return ok, nil
}

func (m *memFavorites) GetByTgID(_ context.Context, tgID int64) ([]structs.Favorite, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []structs.Favorite
	for _, r := range m.rows {
		if r.TelegramID == tgID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memFavorites) count(tgID, recipeID int64) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, r := range m.rows {
		if r.TelegramID == tgID && r.RecipeID == recipeID {
			n++
		}
	}
	return n
}

type memIdentities struct {
	mu  sync.Mutex
	ids map[int64]string
}

func (m *memIdentities) Resolve(_ context.Context, tgID int64, candidate string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if id, ok := m.ids[tgID]; ok {
		return id, nil
	}
	m.ids[tgID] = candidate
	return candidate, nil
}

type titleCatalog struct {
	titles map[int64]string
}

func (c titleCatalog) Search(context.Context, structs.SearchRecipeRequest) ([]structs.RecipeSummary, error) {
	return nil, nil
}

func (c titleCatalog) GetDetail(_ context.Context, id int64) (structs.RecipeDetail, error) {
	title, ok := c.titles[id]
	if !ok {
		return structs.RecipeDetail{}, fmt.Errorf("catalog: %w", structs.ErrNotFound)
	}
	return structs.RecipeDetail{ID: id, Title: title}, nil
}

func newTestService(favs *memFavorites, cat titleCatalog) (*service, *memIdentities) {
	ids := &memIdentities{ids: map[int64]string{}}
	return &service{
		favoriteRepo: favs,
		identityRepo: ids,
		catalog:      cat,
		logger:       logger.Nop(),
		timeout:      time.Second,
		newID:        uuid.NewString,
	}, ids
}

func TestAddFavoriteTwice(t *testing.T) {
	favs := newMemFavorites()
	svc, _ := newTestService(favs, titleCatalog{})
	ctx := context.Background()

	first, err := svc.AddFavorite(ctx, 42, 1001)
	require.NoError(t, err)
	assert.Equal(t, structs.FavoriteAdded, first.Status)
	_, err = uuid.Parse(first.UserUniqueIdentifier)
	assert.NoError(t, err)

	second, err := svc.AddFavorite(ctx, 42, 1001)
	require.NoError(t, err)
	assert.Equal(t, structs.FavoriteAlreadyExists, second.Status)
	assert.Equal(t, first.UserUniqueIdentifier, second.UserUniqueIdentifier, "identifier is stable per user")

	assert.Equal(t, 1, favs.count(1001, 42))
}

func TestIdentifierPerUser(t *testing.T) {
	svc, ids := newTestService(newMemFavorites(), titleCatalog{})
	ctx := context.Background()

	a, err := svc.AddFavorite(ctx, 1, 1)
	require.NoError(t, err)
	b, err := svc.AddFavorite(ctx, 2, 1)
	require.NoError(t, err)
	c, err := svc.AddFavorite(ctx, 1, 2)
	require.NoError(t, err)

	assert.Equal(t, a.UserUniqueIdentifier, b.UserUniqueIdentifier)
	assert.NotEqual(t, a.UserUniqueIdentifier, c.UserUniqueIdentifier)
	assert.Len(t, ids.ids, 2)
}

func TestAddFavoriteConcurrent(t *testing.T) {
	for _, blind := range []bool{false, true} {
		t.Run(fmt.Sprintf("blind_exists=%v", blind), func(t *testing.T) {
			favs := newMemFavorites()
			favs.blindExists = blind
			svc, _ := newTestService(favs, titleCatalog{})

			const workers = 16
			statuses := make([]structs.AddFavoriteStatus, workers)
			var wg sync.WaitGroup
			for i := 0; i < workers; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					res, err := svc.AddFavorite(context.Background(), 42, 1001)
					assert.NoError(t, err)
					statuses[i] = res.Status
				}(i)
			}
			wg.Wait()

			added := 0
			for _, st := range statuses {
				if st == structs.FavoriteAdded {
					added++
				} else {
					assert.Equal(t, structs.FavoriteAlreadyExists, st)
				}
			}
			assert.Equal(t, 1, added)
			assert.Equal(t, 1, favs.count(1001, 42))
		})
	}
}

func TestAddFavoriteErrors(t *testing.T) {
	favs := newMemFavorites()
	favs.failCreate = errors.New("connection reset")
	svc, _ := newTestService(favs, titleCatalog{})

	_, err := svc.AddFavorite(context.Background(), 42, 1001)
	assert.ErrorContains(t, err, "connection reset")

	_, err = svc.AddFavorite(context.Background(), 0, 1001)
	assert.ErrorIs(t, err, structs.ErrBadRequest)
}

func TestListFavoritesEmpty(t *testing.T) {
	svc, _ := newTestService(newMemFavorites(), titleCatalog{})

	list, err := svc.ListFavorites(context.Background(), 1001)
	require.NoError(t, err)
	assert.True(t, list.Empty)
	assert.Empty(t, list.Items)
}

func TestListFavoritesTitles(t *testing.T) {
	favs := newMemFavorites()
	svc, _ := newTestService(favs, titleCatalog{titles: map[int64]string{
		10: "Pizza",
		30: "Green tea",
	}})
	ctx := context.Background()

	for _, id := range []int64{10, 20, 30} {
		_, err := svc.AddFavorite(ctx, id, 1001)
		require.NoError(t, err)
	}
	_, err := svc.AddFavorite(ctx, 99, 2002)
	require.NoError(t, err)

	list, err := svc.ListFavorites(ctx, 1001)
	require.NoError(t, err)
	assert.False(t, list.Empty)
	require.Len(t, list.Items, 3)

	assert.Equal(t, int64(10), list.Items[0].RecipeID)
	assert.Equal(t, "Pizza", list.Items[0].Title)
	assert.True(t, list.Items[0].TitleResolved)

	assert.Equal(t, int64(20), list.Items[1].RecipeID)
	assert.Equal(t, structs.NoRecipeTitle, list.Items[1].Title)
	assert.False(t, list.Items[1].TitleResolved)

	assert.Equal(t, "Green tea", list.Items[2].Title)
	assert.True(t, list.Items[0].AddedAt.Before(list.Items[2].AddedAt))
}
