package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"gastrobot/apps/gateway/handlers/favorite"
	"gastrobot/apps/gateway/handlers/health"
	"gastrobot/apps/gateway/handlers/middleware"
	"gastrobot/internal/structs"
	"gastrobot/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFavorites struct {
	list structs.FavoriteList
	err  error
	got  int64
}

func (s *stubFavorites) AddFavorite(context.Context, int64, int64) (structs.AddFavoriteResult, error) {
	return structs.AddFavoriteResult{}, nil
}

func (s *stubFavorites) ListFavorites(_ context.Context, tgID int64) (structs.FavoriteList, error) {
	s.got = tgID
	return s.list, s.err
}

func newTestEngine(svc *stubFavorites) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logger.Nop()
	return newEngine(Params{
		Middleware: middleware.NewMiddleware(middleware.Params{Logger: log}),
		Logger:     log,
		Health:     health.New(),
		Favorite:   favorite.New(favorite.Params{Logger: log, FavoriteSvc: svc}),
	})
}

func do(engine *gin.Engine, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := do(newTestEngine(&stubFavorites{}), "/api/v1/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
}

func TestRequestIDEchoed(t *testing.T) {
	rec := do(newTestEngine(&stubFavorites{}), "/api/v1/health", http.Header{
		middleware.RequestIDHeader: []string{"req-123"},
	})
	assert.Equal(t, "req-123", rec.Header().Get(middleware.RequestIDHeader))
}

func TestFavorites(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		svc      *stubFavorites
		wantCode int
		check    func(t *testing.T, body map[string]interface{})
	}{
		{
			name: "list",
			path: "/api/v1/favorites/1001",
			svc: &stubFavorites{list: structs.FavoriteList{Items: []structs.FavoriteItem{
				{RecipeID: 42, Title: "Pizza", TitleResolved: true},
			}}},
			wantCode: http.StatusOK,
			check: func(t *testing.T, body map[string]interface{}) {
				payload := body["payload"].(map[string]interface{})
				assert.Equal(t, false, payload["empty"])
				items := payload["items"].([]interface{})
				require.Len(t, items, 1)
				assert.Equal(t, "Pizza", items[0].(map[string]interface{})["title"])
			},
		},
		{
			name:     "empty",
			path:     "/api/v1/favorites/1001",
			svc:      &stubFavorites{list: structs.FavoriteList{Empty: true, Items: []structs.FavoriteItem{}}},
			wantCode: http.StatusOK,
			check: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, true, body["payload"].(map[string]interface{})["empty"])
			},
		},
		{
			name:     "bad id",
			path:     "/api/v1/favorites/abc",
			svc:      &stubFavorites{},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "service error",
			path:     "/api/v1/favorites/1001",
			svc:      &stubFavorites{err: errors.New("db down")},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(newTestEngine(tt.svc), tt.path, nil)
			require.Equal(t, tt.wantCode, rec.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, float64(tt.wantCode), body["code"])
			if tt.check != nil {
				assert.Equal(t, int64(1001), tt.svc.got)
				tt.check(t, body)
			}
		})
	}
}
