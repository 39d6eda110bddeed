package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/fx"

	"gastrobot/internal/structs"
	"gastrobot/pkg/cache"
	"gastrobot/pkg/tgrouter/interfaces"
)

var Module = fx.Provide(New)

type Params struct {
	fx.In
	Cache cache.ICache
}

type record struct {
	State string            `json:"state"`
	Data  map[string]string `json:"data,omitempty"`
}

type state struct {
	cache cache.ICache
}

// New returns a chat-keyed state store. Every Set replaces the whole record.
func New(params Params) interfaces.State {
	return &state{cache: params.Cache}
}

func key(chatID int64) string {
	return "state:" + strconv.FormatInt(chatID, 10)
}

func (s *state) Get(ctx context.Context, chatID int64) (string, map[string]string, error) {
	var rec record
	if err := s.cache.GetObj(ctx, key(chatID), &rec); err != nil {
		if errors.Is(err, cache.ErrNotFound) {
			return "", nil, structs.ErrNotFound
		}
		return "", nil, fmt.Errorf("repo: failed get state: %w", err)
	}
	return rec.State, rec.Data, nil
}

func (s *state) Set(ctx context.Context, chatID int64, state string, data map[string]string) error {
	if err := s.cache.SaveObj(ctx, key(chatID), record{State: state, Data: data}); err != nil {
		return fmt.Errorf("repo: failed update state: %w", err)
	}
	return nil
}

func (s *state) Delete(ctx context.Context, chatID int64) error {
	if err := s.cache.Delete(ctx, key(chatID)); err != nil {
		return fmt.Errorf("repo: failed delete state: %w", err)
	}
	return nil
}

func (s *state) SetIf(ctx context.Context, chatID int64, field, want, state string, data map[string]string) error {
	next, err := json.Marshal(record{State: state, Data: data})
	if err != nil {
		return fmt.Errorf("repo: failed encode state: %w", err)
	}

	err = s.cache.Mutate(ctx, key(chatID), func(cur []byte) ([]byte, error) {
		if !matches(cur, field, want) {
			return nil, structs.ErrStaleSession
		}
		return next, nil
	})
	if err != nil && !errors.Is(err, structs.ErrStaleSession) {
		return fmt.Errorf("repo: failed update state: %w", err)
	}
	return err
}

func (s *state) DeleteIf(ctx context.Context, chatID int64, field, want string) error {
	err := s.cache.Mutate(ctx, key(chatID), func(cur []byte) ([]byte, error) {
		if !matches(cur, field, want) {
			return nil, structs.ErrStaleSession
		}
		return nil, nil
	})
	if err != nil && !errors.Is(err, structs.ErrStaleSession) {
		return fmt.Errorf("repo: failed delete state: %w", err)
	}
	return err
}

func matches(cur []byte, field, want string) bool {
	if cur == nil {
		return false
	}
	var rec record
	if err := json.Unmarshal(cur, &rec); err != nil {
		return false
	}
	return rec.Data[field] == want
}
