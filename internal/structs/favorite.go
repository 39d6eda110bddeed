package structs

import "time"

type Favorite struct {
	ID                   int64     `json:"id"`
	RecipeID             int64     `json:"recipe_id"`
	TelegramID           int64     `json:"telegram_id"`
	UserUniqueIdentifier string    `json:"user_unique_identifier"`
	AddedAt              time.Time `json:"added_at"`
}

type CreateFavorite struct {
	RecipeID             int64
	TelegramID           int64
	UserUniqueIdentifier string
}

type AddFavoriteStatus int

const (
	FavoriteAdded AddFavoriteStatus = iota + 1
	FavoriteAlreadyExists
)

func (s AddFavoriteStatus) String() string {
	switch s {
	case FavoriteAdded:
		return "added"
	case FavoriteAlreadyExists:
		return "already_favorite"
	default:
		return "unknown"
	}
}

type AddFavoriteResult struct {
	Status               AddFavoriteStatus
	UserUniqueIdentifier string
}

// FavoriteItem carries the live catalog title; TitleResolved is false when the
// lookup failed and Title holds NoRecipeTitle.
type FavoriteItem struct {
	RecipeID      int64     `json:"recipe_id"`
	Title         string    `json:"title"`
	TitleResolved bool      `json:"title_resolved"`
	AddedAt       time.Time `json:"added_at"`
}

// FavoriteList is the result of listing; Empty marks the "no favorites yet" outcome.
type FavoriteList struct {
	Empty bool           `json:"empty"`
	Items []FavoriteItem `json:"items"`
}
