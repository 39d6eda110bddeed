package texts

import (
	"fmt"
	"strings"

	"gastrobot/internal/structs"
	"gastrobot/pkg/utils"
)

type Command struct {
	Name        string
	Description TextKey
}

// Commands is the user-facing command table, in menu order.
var Commands = []Command{
	{Name: "start", Description: CmdStart},
	{Name: "help", Description: CmdHelp},
	{Name: "about", Description: CmdAbout},
	{Name: "recipe", Description: CmdRecipe},
	{Name: "favorite", Description: CmdFavorite},
}

func WelcomeText(lang utils.Lang, name string) string {
	return fmt.Sprintf(Get(lang, Welcome), displayName(lang, name))
}

func HelpText(lang utils.Lang, name string) string {
	lines := make([]string, 0, len(Commands))
	for _, cmd := range Commands {
		lines = append(lines, fmt.Sprintf("🔹 */%s* - %s", cmd.Name, Get(lang, cmd.Description)))
	}
	return fmt.Sprintf(Get(lang, HelpHeader), utils.EscapeMarkdown(displayName(lang, name))) +
		strings.Join(lines, "\n") +
		Get(lang, HelpFooter)
}

func displayName(lang utils.Lang, name string) string {
	if strings.TrimSpace(name) == "" {
		return Get(lang, DefaultUserName)
	}
	return name
}

// SearchResults renders one block per recipe followed by the ingredient filter line.
func SearchResults(lang utils.Lang, recipes []structs.RecipeSummary, ingredients []string) string {
	blocks := make([]string, 0, len(recipes))
	for i, r := range recipes {
		blocks = append(blocks, strings.Join([]string{
			fmt.Sprintf(Get(lang, RecipeNumber), i+1),
			"🍳 " + r.Title,
			"🖼️ " + r.Image,
		}, "\n"))
	}

	return strings.Join([]string{
		Get(lang, ResultsHeader),
		"",
		strings.Join(blocks, "\n\n"),
		"",
		fmt.Sprintf(Get(lang, IngredientsLine), ingredientsLabel(lang, ingredients)),
	}, "\n")
}

func ingredientsLabel(lang utils.Lang, ingredients []string) string {
	seen := make(map[string]struct{}, len(ingredients))
	unique := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		key := strings.ToLower(ing)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, ing)
	}
	if len(unique) == 0 {
		return Get(lang, AnyIngredient)
	}
	return strings.Join(unique, " • ")
}

// RecipeDetail renders the Markdown detail view of a recipe.
func RecipeDetail(lang utils.Lang, title string, d structs.RecipeDetail) string {
	lines := []string{
		fmt.Sprintf(Get(lang, DetailTitle), utils.EscapeMarkdown(title)),
		"",
	}

	if d.Summary != nil {
		lines = append(lines, Get(lang, DetailSummary)+utils.EscapeMarkdown(utils.StripHTML(*d.Summary)), "")
	}

	instructions := Get(lang, NoInstructions)
	if d.Instructions != nil && strings.TrimSpace(*d.Instructions) != "" {
		instructions = utils.EscapeMarkdown(utils.StripHTML(*d.Instructions))
	}
	lines = append(lines, Get(lang, DetailInstructions)+instructions, "")

	readyIn, servings, score := Get(lang, NotSpecified), Get(lang, NotSpecified), Get(lang, NotAvailable)
	if d.ReadyInMinutes != nil {
		readyIn = fmt.Sprint(*d.ReadyInMinutes)
	}
	if d.Servings != nil {
		servings = fmt.Sprint(*d.Servings)
	}
	if d.SpoonacularScore != nil {
		score = fmt.Sprintf("%.1f", *d.SpoonacularScore)
	}

	lines = append(lines,
		fmt.Sprintf(Get(lang, DetailReadyIn), readyIn),
		fmt.Sprintf(Get(lang, DetailServings), servings),
		fmt.Sprintf(Get(lang, DetailScore), score),
	)
	return strings.Join(lines, "\n")
}

func FavoritesList(lang utils.Lang, items []structs.FavoriteItem) string {
	lines := make([]string, 0, len(items))
	for i, item := range items {
		lines = append(lines, fmt.Sprintf(Get(lang, FavoritesItem),
			i+1, FavoriteTitle(lang, item), item.AddedAt.Format(Get(lang, FavoritesDateLayout))))
	}
	return Get(lang, FavoritesHeader) + strings.Join(lines, "\n") + Get(lang, FavoritesFooter)
}

func FavoriteTitle(lang utils.Lang, item structs.FavoriteItem) string {
	if !item.TitleResolved {
		return Get(lang, NoRecipeTitle)
	}
	return item.Title
}
