package conversation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"gastrobot/internal/catalog"
	"gastrobot/internal/resultcache"
	"gastrobot/internal/structs"
	"gastrobot/internal/texts"
	"gastrobot/pkg/config"
	"gastrobot/pkg/logger"
	"gastrobot/pkg/tgrouter/callback"
	"gastrobot/pkg/tgrouter/interfaces"
	"gastrobot/pkg/utils"

	"github.com/spf13/cast"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	Module = fx.Provide(New)
)

const (
	dataSession     = "session"
	dataRecipe      = "recipe"
	dataIngredients = "ingredients"

	defaultMaxResults = 10
)

// skipWords record no ingredient filter at the ingredients step.
var skipWords = map[string]struct{}{
	"-":       {},
	"no":      {},
	"none":    {},
	"ninguno": {},
	"skip":    {},
}

type (
	Params struct {
		fx.In
		Config  config.IConfig
		State   interfaces.State
		Catalog catalog.Service
		Results resultcache.Service
		Logger  logger.Logger
	}

	// Service drives the per-chat recipe search dialogue:
	// recipe name, then ingredient, then result count.
	Service interface {
		Start(ctx context.Context, chatID int64, lang utils.Lang) (structs.Reply, error)
		Handle(ctx context.Context, chatID int64, lang utils.Lang, text string) (structs.Reply, bool, error)
		Session(ctx context.Context, chatID int64) (structs.Session, error)
	}

	service struct {
		state   interfaces.State
		catalog catalog.Service
		results resultcache.Service
		logger  logger.Logger
		timeout time.Duration

		// maxResults bounds the count step; Telegram rejects messages over 4096 characters.
		maxResults int
	}
)

func New(p Params) Service {
	return newService(p.State, p.Catalog, p.Results, p.Logger, p.Config.GetDuration("catalog.timeout"), p.Config.GetInt("search.max_results"))
}

func newService(state interfaces.State, cat catalog.Service, results resultcache.Service, log logger.Logger, timeout time.Duration, maxResults int) *service {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}
	return &service{
		state:      state,
		catalog:    cat,
		results:    results,
		logger:     log,
		timeout:    timeout,
		maxResults: maxResults,
	}
}

// Start discards any session the chat had and begins a new search under a fresh session ID.
// Steps still running for the discarded session can no longer write or end it.
func (s *service) Start(ctx context.Context, chatID int64, lang utils.Lang) (structs.Reply, error) {
	sess := structs.Session{ID: utils.GenKSUID(), ChatID: chatID, Step: structs.StepAwaitingRecipeName}
	if err := s.state.Set(ctx, chatID, string(sess.Step), encode(sess)); err != nil {
		s.logger.Error(ctx, "->state.Set", zap.Int64("chat_id", chatID), zap.Error(err))
		return structs.Reply{Text: texts.Get(lang, texts.SearchFailed)}, err
	}
	return structs.Reply{Text: texts.Get(lang, texts.AskRecipeName)}, nil
}

func (s *service) Session(ctx context.Context, chatID int64) (structs.Session, error) {
	step, data, err := s.state.Get(ctx, chatID)
	if err != nil {
		return structs.Session{}, err
	}

	sess := structs.Session{
		ID:          data[dataSession],
		ChatID:      chatID,
		Step:        structs.Step(step),
		RecipeQuery: data[dataRecipe],
	}
	if raw := data[dataIngredients]; raw != "" {
		if err := json.Unmarshal([]byte(raw), &sess.Ingredients); err != nil {
			return structs.Session{}, fmt.Errorf("decode session ingredients: %w", err)
		}
	}
	return sess, nil
}

func encode(sess structs.Session) map[string]string {
	data := map[string]string{dataSession: sess.ID}
	if sess.RecipeQuery != "" {
		data[dataRecipe] = sess.RecipeQuery
	}
	if len(sess.Ingredients) > 0 {
		raw, _ := json.Marshal(sess.Ingredients)
		data[dataIngredients] = string(raw)
	}
	return data
}

// end removes the session unless a newer one has replaced it.
func (s *service) end(ctx context.Context, sess structs.Session) {
	err := s.state.DeleteIf(ctx, sess.ChatID, dataSession, sess.ID)
	switch {
	case errors.Is(err, structs.ErrStaleSession):
		s.logger.Debug(ctx, "session already replaced", zap.Int64("chat_id", sess.ChatID))
	case err != nil:
		s.logger.Error(ctx, "->state.DeleteIf", zap.Int64("chat_id", sess.ChatID), zap.Error(err))
	}
}

// Handle advances the chat's session with free text. handled is false when the
// text is empty, looks like a command, or the chat has no session, and when a
// restart replaced the session while the text was being applied.
func (s *service) Handle(ctx context.Context, chatID int64, lang utils.Lang, text string) (structs.Reply, bool, error) {
	text = strings.TrimSpace(text)
	if text == "" || strings.HasPrefix(text, "/") {
		return structs.Reply{}, false, nil
	}

	sess, err := s.Session(ctx, chatID)
	if err != nil {
		if errors.Is(err, structs.ErrNotFound) {
			return structs.Reply{}, false, nil
		}
		s.logger.Error(ctx, "->conversation.Session", zap.Int64("chat_id", chatID), zap.Error(err))
		return structs.Reply{}, false, err
	}

	switch sess.Step {
	case structs.StepAwaitingRecipeName:
		sess.RecipeQuery = text
		sess.Step = structs.StepAwaitingIngredients
		return s.advance(ctx, lang, sess, texts.AskIngredients)

	case structs.StepAwaitingIngredients:
		if _, skip := skipWords[strings.ToLower(text)]; !skip {
			sess.Ingredients = append(sess.Ingredients, text)
		}
		sess.Step = structs.StepAwaitingResultCount
		return s.advance(ctx, lang, sess, texts.AskResultCount)

	case structs.StepAwaitingResultCount:
		count, err := cast.ToIntE(text)
		if err != nil || count <= 0 {
			return structs.Reply{Text: texts.Get(lang, texts.InvalidCount)}, true, nil
		}
		if count > s.maxResults {
			return structs.Reply{Text: fmt.Sprintf(texts.Get(lang, texts.CountTooLarge), s.maxResults)}, true, nil
		}
		return s.search(ctx, lang, sess, count), true, nil

	default:
		s.logger.Warn(ctx, "dropping session with unknown step", zap.Int64("chat_id", chatID), zap.String("step", string(sess.Step)))
		s.end(ctx, sess)
		return structs.Reply{}, false, nil
	}
}

// advance stores the next step. Text that raced a restart is dropped: the new
// session has already prompted for its first step.
func (s *service) advance(ctx context.Context, lang utils.Lang, sess structs.Session, prompt texts.TextKey) (structs.Reply, bool, error) {
	err := s.state.SetIf(ctx, sess.ChatID, dataSession, sess.ID, string(sess.Step), encode(sess))
	if errors.Is(err, structs.ErrStaleSession) {
		s.logger.Info(ctx, "dropping text for replaced session", zap.Int64("chat_id", sess.ChatID))
		return structs.Reply{}, false, nil
	}
	if err != nil {
		s.logger.Error(ctx, "->state.SetIf", zap.Int64("chat_id", sess.ChatID), zap.String("step", string(sess.Step)), zap.Error(err))
		return structs.Reply{Text: texts.Get(lang, texts.SearchFailed)}, true, err
	}
	return structs.Reply{Text: texts.Get(lang, prompt)}, true, nil
}

// search finishes the dialogue; the session is removed whatever the outcome.
func (s *service) search(ctx context.Context, lang utils.Lang, sess structs.Session, count int) structs.Reply {
	ctx, capture := s.logger.ContextWithCapture(ctx, "conversation.search")
	defer s.end(ctx, sess)

	searchCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	recipes, err := s.catalog.Search(searchCtx, structs.SearchRecipeRequest{
		Query:       sess.RecipeQuery,
		Ingredients: sess.Ingredients,
		Number:      count,
	})
	if err != nil {
		s.logger.Error(ctx, "->catalog.Search", zap.Int64("chat_id", sess.ChatID), zap.String("query", sess.RecipeQuery), zap.Error(err))
		return structs.Reply{Text: texts.Get(lang, texts.SearchFailed)}
	}
	if len(recipes) == 0 {
		capture(zap.Int64("chat_id", sess.ChatID), zap.Int("results", 0))
		return structs.Reply{Text: texts.Get(lang, texts.NoResults)}
	}
	if len(recipes) > count {
		recipes = recipes[:count]
	}

	titlesErr := s.results.Set(ctx, sess.ChatID, recipes)

	buttons := make([]structs.Button, 0, len(recipes))
	for _, r := range recipes {
		buttons = append(buttons, structs.Button{
			Text: r.Title,
			Data: callback.New(callback.ShowRecipe, r.ID).String(),
		})
	}

	capture(zap.Int64("chat_id", sess.ChatID), zap.Int("results", len(recipes)), zap.Bool("titles_cached", titlesErr == nil))
	return structs.Reply{
		Text:               texts.SearchResults(lang, recipes, sess.Ingredients),
		DisableLinkPreview: true,
		Buttons:            buttons,
	}
}
