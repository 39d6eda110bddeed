package interfaces

import (
	"context"
)

// State is the per-chat conversation store consulted by State filters.
// Get returns structs.ErrNotFound when the chat has no active state.
type State interface {
	Set(ctx context.Context, chatID int64, state string, data map[string]string) error
	Get(ctx context.Context, chatID int64) (string, map[string]string, error)
	Delete(ctx context.Context, chatID int64) error
	// SetIf and DeleteIf act only while the stored data[field] still equals want,
	// and return structs.ErrStaleSession otherwise, including when no state exists.
	SetIf(ctx context.Context, chatID int64, field, want, state string, data map[string]string) error
	DeleteIf(ctx context.Context, chatID int64, field, want string) error
}
