package structs

type Step string

const (
	StepAwaitingRecipeName  Step = "awaiting_recipe_name"
	StepAwaitingIngredients Step = "awaiting_ingredients"
	StepAwaitingResultCount Step = "awaiting_result_count"
)

// Steps lists every dialogue step in order.
var Steps = []Step{StepAwaitingRecipeName, StepAwaitingIngredients, StepAwaitingResultCount}

func (s Step) Valid() bool {
	for _, step := range Steps {
		if s == step {
			return true
		}
	}
	return false
}

// Session is the per-chat state of an in-progress recipe search.
type Session struct {
	ID          string   `json:"id"`
	ChatID      int64    `json:"chat_id"`
	Step        Step     `json:"step"`
	RecipeQuery string   `json:"recipe_query,omitempty"`
	Ingredients []string `json:"ingredients,omitempty"`
}
