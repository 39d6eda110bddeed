package structs

type RecipeSummary struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Image string `json:"image"`
}

type SearchRecipeRequest struct {
	Query       string
	Ingredients []string
	Number      int
}

type SearchRecipeResponse struct {
	Results      []RecipeSummary `json:"results"`
	Offset       int             `json:"offset"`
	Number       int             `json:"number"`
	TotalResults int             `json:"totalResults"`
}

// RecipeDetail mirrors the catalog's information endpoint; optional fields are pointers.
type RecipeDetail struct {
	ID               int64    `json:"id"`
	Title            string   `json:"title"`
	Summary          *string  `json:"summary,omitempty"`
	Instructions     *string  `json:"instructions,omitempty"`
	ReadyInMinutes   *int     `json:"readyInMinutes,omitempty"`
	Servings         *int     `json:"servings,omitempty"`
	SpoonacularScore *float64 `json:"spoonacularScore,omitempty"`
	Image            string   `json:"image,omitempty"`
}

const (
	// UnknownRecipeTitle is shown when a button's recipe id is not in the chat's result cache.
	UnknownRecipeTitle = "Unknown recipe"
	// NoRecipeTitle replaces a favorite's title when the catalog lookup fails.
	NoRecipeTitle = "No recipe title"
)
