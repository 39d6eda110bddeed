package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"gastrobot/internal/structs"
	"gastrobot/pkg/config"
	"gastrobot/pkg/logger"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	Module = fx.Provide(New)
)

const (
	maxErrorBody = 512
	maxTries     = 3
)

type (
	Params struct {
		fx.In
		Config config.IConfig
		Logger logger.Logger
	}

	// Service is the external recipe catalog (Spoonacular-compatible).
	Service interface {
		Search(ctx context.Context, req structs.SearchRecipeRequest) ([]structs.RecipeSummary, error)
		GetDetail(ctx context.Context, recipeID int64) (structs.RecipeDetail, error)
	}

	service struct {
		baseURL string
		apiKey  string
		client  *http.Client
		logger  logger.Logger
		retry   time.Duration
	}
)

func New(p Params) Service {
	return NewClient(
		p.Config.GetString("catalog.base_url"),
		p.Config.GetString("catalog.api_key"),
		p.Config.GetDuration("catalog.timeout"),
		p.Logger,
	)
}

func NewClient(baseURL, apiKey string, timeout time.Duration, log logger.Logger) Service {
	return &service{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
		logger:  log,
		retry:   200 * time.Millisecond,
	}
}

func (s *service) Search(ctx context.Context, req structs.SearchRecipeRequest) ([]structs.RecipeSummary, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" || req.Number <= 0 {
		return nil, structs.ErrBadRequest
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("number", strconv.Itoa(req.Number))
	if len(req.Ingredients) > 0 {
		params.Set("includeIngredients", strings.Join(req.Ingredients, ","))
	}

	var resp structs.SearchRecipeResponse
	if err := s.get(ctx, "/recipes/complexSearch", params, &resp); err != nil {
		return nil, err
	}

	s.logger.Debug(ctx, "catalog search",
		zap.String("query", query),
		zap.Int("number", req.Number),
		zap.Int("results", len(resp.Results)),
	)
	return resp.Results, nil
}

func (s *service) GetDetail(ctx context.Context, recipeID int64) (structs.RecipeDetail, error) {
	var detail structs.RecipeDetail
	if recipeID <= 0 {
		return detail, structs.ErrBadRequest
	}

	path := fmt.Sprintf("/recipes/%d/information", recipeID)
	if err := s.get(ctx, path, url.Values{}, &detail); err != nil {
		return structs.RecipeDetail{}, err
	}
	return detail, nil
}

// get retries transport failures and 5xx answers; other statuses are final.
func (s *service) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	params.Set("apiKey", s.apiKey)
	endpoint := s.baseURL + path + "?" + params.Encode()

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.retry

	body, err := backoff.Retry(ctx, func() ([]byte, error) {
		return s.fetch(ctx, path, endpoint)
	}, backoff.WithBackOff(b), backoff.WithMaxTries(maxTries))
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode catalog response: %w", err)
	}
	return nil
}

func (s *service) fetch(ctx context.Context, path, endpoint string) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, backoff.Permanent(err)
	}
	httpReq.Header.Set("Accept", "application/json")

	httpResp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("catalog request %s: %w", path, err)
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("read catalog response: %w", err)
	}

	switch {
	case httpResp.StatusCode == http.StatusNotFound:
		return nil, backoff.Permanent(structs.ErrNotFound)
	case httpResp.StatusCode < 200 || httpResp.StatusCode >= 300:
		if len(body) > maxErrorBody {
			body = body[:maxErrorBody]
		}
		s.logger.Warn(ctx, "catalog returned non-2xx", zap.String("path", path), zap.Int("status", httpResp.StatusCode), zap.ByteString("body", body))
		err := fmt.Errorf("catalog %s returned %d", path, httpResp.StatusCode)
		if httpResp.StatusCode < http.StatusInternalServerError {
			return nil, backoff.Permanent(err)
		}
		return nil, err
	}
	return body, nil
}
