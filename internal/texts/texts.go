package texts

import (
	"gastrobot/pkg/utils"
)

type TextKey = string

const (
	// Commands
	Welcome        TextKey = "welcome"
	HelpHeader     TextKey = "help_header"
	HelpFooter     TextKey = "help_footer"
	About          TextKey = "about"
	UnknownCommand TextKey = "unknown_command"
	CmdStart       TextKey = "cmd_start"
	CmdHelp        TextKey = "cmd_help"
	CmdAbout       TextKey = "cmd_about"
	CmdRecipe      TextKey = "cmd_recipe"
	CmdFavorite    TextKey = "cmd_favorite"

	// Search dialogue
	AskRecipeName   TextKey = "ask_recipe_name"
	AskIngredients  TextKey = "ask_ingredients"
	AskResultCount  TextKey = "ask_result_count"
	InvalidCount    TextKey = "invalid_count"
	CountTooLarge   TextKey = "count_too_large" // format: maximum count
	NoResults       TextKey = "no_results"
	SearchFailed    TextKey = "search_failed"
	ResultsHeader   TextKey = "results_header"
	RecipeNumber    TextKey = "recipe_number"    // format: recipe position
	IngredientsLine TextKey = "ingredients_line" // format: joined ingredients
	AnyIngredient   TextKey = "any_ingredient"

	// Detail
	DetailTitle         TextKey = "detail_title" // format: title
	DetailSummary       TextKey = "detail_summary"
	DetailInstructions  TextKey = "detail_instructions"
	NoInstructions      TextKey = "no_instructions"
	DetailReadyIn       TextKey = "detail_ready_in"
	DetailServings      TextKey = "detail_servings"
	DetailScore         TextKey = "detail_score"
	NotSpecified        TextKey = "not_specified"
	NotAvailable        TextKey = "not_available"
	DetailNotFound      TextKey = "detail_not_found" // format: title
	AddToFavoriteButton TextKey = "add_to_favorite_button"

	// Favorites
	FavoriteAdded       TextKey = "favorite_added"
	FavoriteAddedToast  TextKey = "favorite_added_toast"
	FavoriteExists      TextKey = "favorite_exists"
	FavoriteAddFailed   TextKey = "favorite_add_failed"
	FavoritesHeader     TextKey = "favorites_header"
	FavoritesItem       TextKey = "favorites_item" // format: n, title, date
	FavoritesFooter     TextKey = "favorites_footer"
	FavoritesEmpty      TextKey = "favorites_empty"
	FavoritesFailed     TextKey = "favorites_failed"
	UnknownRecipeTitle  TextKey = "unknown_recipe_title"
	NoRecipeTitle       TextKey = "no_recipe_title"
	DefaultUserName     TextKey = "default_user_name"
	FavoritesDateLayout TextKey = "favorites_date_layout"
)

var MapText = map[TextKey]utils.Language{
	Welcome: {
		EN: "Hi %s! 👋 I'm GastroBot, your personal cooking assistant.\n\n" +
			"🔹 How to use me?\n\n" +
			"1️⃣ Send /recipe and tell me what kind of recipe you are looking for (e.g. pizza, tea, coffee).\n" +
			"2️⃣ Optionally name an ingredient it should include (e.g. basil), or send - to skip.\n" +
			"3️⃣ Tell me how many recipes you want to see with a positive number.\n\n" +
			"📌 Example:\n/recipe → pizza → basil → 3\n\n" +
			"💾 You can save recipes to your favorites and browse them later with /favorite.\n\n" +
			"❓ Need help? Send /help.",
		ES: "¡Hola %s! 👋 Soy GastroBot, tu asistente culinario personal.\n\n" +
			"🔹 ¿Cómo usarme?\n\n" +
			"1️⃣ Usa el comando /recipe y dime qué tipo de receta buscas (ej: pizza, tea, coffee).\n" +
			"2️⃣ Si quieres, indica un ingrediente que deba incluir (ej: albahaca), o envía - para omitirlo.\n" +
			"3️⃣ Indica cuántas recetas quieres ver ingresando un número positivo.\n\n" +
			"📌 Ejemplo de uso:\n/recipe → pizza → albahaca → 3\n\n" +
			"💾 También puedes guardar tus recetas favoritas y explorarlas más tarde con /favorite.\n\n" +
			"❓ ¿Necesitas ayuda? Usa el comando /help.",
	},
	HelpHeader: {
		EN: "👋 Hi *%s*! Welcome to *GastroBot*, your personal cooking assistant.\n\n📌 These are the available commands:\n\n",
		ES: "👋 ¡Hola *%s*! Bienvenido a *GastroBot*, tu asistente culinario personal.\n\n📌 Aquí tienes los comandos disponibles:\n\n",
	},
	HelpFooter: {
		EN: "\n\nℹ️ *Need more help?* Write to me any time. Happy cooking! 🍳🔥",
		ES: "\n\nℹ️ *¿Necesitas más ayuda?* Escríbeme y estaré encantado de asistirte. ¡Feliz cocina! 🍳🔥",
	},
	About: {
		EN: "🤖 GastroBot - your cooking assistant 🍳\n\n" +
			"🔹 What can I do?\n" +
			"• Find recipes by name and ingredient\n" +
			"• Show the details of each recipe\n" +
			"• Keep your favorite recipes\n\n" +
			"Let's start cooking! 🥘",
		ES: "🤖 GastroBot - Tu asistente culinario 🍳\n\n" +
			"🔹 ¿Qué puedo hacer?\n" +
			"• Buscar recetas por nombre e ingrediente\n" +
			"• Mostrarte los detalles de cada receta\n" +
			"• Guardar tus recetas favoritas\n\n" +
			"¡Comencemos a cocinar! 🥘",
	},
	UnknownCommand: {
		EN: "Unknown command ❌",
		ES: "Comando desconocido ❌",
	},
	CmdStart: {
		EN: "Start the bot",
		ES: "Iniciar el bot",
	},
	CmdHelp: {
		EN: "Show available commands",
		ES: "Ver comandos disponibles",
	},
	CmdAbout: {
		EN: "About GastroBot",
		ES: "Acerca de GastroBot",
	},
	CmdRecipe: {
		EN: "Search for a recipe",
		ES: "Buscar una receta",
	},
	CmdFavorite: {
		EN: "Your favorite recipes",
		ES: "Tus recetas favoritas",
	},
	AskRecipeName: {
		EN: "What recipe would you like to search for? 🔍",
		ES: "¿Qué receta te gustaría buscar? 🔍",
	},
	AskIngredients: {
		EN: "Should it include a particular ingredient? 🤔 Send - to skip.",
		ES: "¿Deseas buscar con algún ingrediente en especial? 🤔 Envía - para omitirlo.",
	},
	AskResultCount: {
		EN: "How many recipes do you want to see? 🔢",
		ES: "¿Cuántas recetas deseas buscar? 🔢",
	},
	InvalidCount: {
		EN: "Please enter a valid number greater than 0 ❌",
		ES: "Por favor, ingresa un número válido mayor que 0 ❌",
	},
	CountTooLarge: {
		EN: "I can show at most %d recipes at a time. Please enter a smaller number 🔢",
		ES: "Puedo mostrar como máximo %d recetas a la vez. Ingresa un número menor 🔢",
	},
	NoResults: {
		EN: "I couldn't find recipes matching that 😔",
		ES: "No encontré recetas con esos criterios 😔",
	},
	SearchFailed: {
		EN: "Something went wrong while processing your request 😔",
		ES: "Ocurrió un error al procesar tu solicitud 😔",
	},
	ResultsHeader: {
		EN: "🌟 Here are your recipes! 🌟",
		ES: "🌟 ¡Aquí tienes tus recetas! 🌟",
	},
	RecipeNumber: {
		EN: "📝 Recipe #%d",
		ES: "📝 Receta #%d",
	},
	IngredientsLine: {
		EN: "🧂 Ingredients: %s",
		ES: "🧂 Ingredientes: %s",
	},
	AnyIngredient: {
		EN: "any",
		ES: "cualquiera",
	},
	DetailTitle: {
		EN: "📜 *Recipe details: %s*",
		ES: "📜 *Detalles de la receta: %s*",
	},
	DetailSummary: {
		EN: "📝 *Summary:* ",
		ES: "📝 *Resumen:* ",
	},
	DetailInstructions: {
		EN: "👨‍🍳 *Instructions:* ",
		ES: "👨‍🍳 *Instrucciones:* ",
	},
	NoInstructions: {
		EN: "No instructions available",
		ES: "No hay instrucciones disponibles",
	},
	DetailReadyIn: {
		EN: "⏱ *Preparation time:* %s minutes",
		ES: "⏱ *Tiempo de preparación:* %s minutos",
	},
	DetailServings: {
		EN: "👥 *Servings:* %s",
		ES: "👥 *Porciones:* %s",
	},
	DetailScore: {
		EN: "❤️ *Score:* %s/100",
		ES: "❤️ *Puntuación:* %s/100",
	},
	NotSpecified: {
		EN: "Not specified",
		ES: "No especificado",
	},
	NotAvailable: {
		EN: "Not available",
		ES: "No disponible",
	},
	DetailNotFound: {
		EN: "Could not get information for: %s",
		ES: "No se pudo obtener información para: %s",
	},
	AddToFavoriteButton: {
		EN: "♥ Add to favorites",
		ES: "♥ Añadir a favoritos",
	},
	FavoriteAdded: {
		EN: "Recipe added to your favorites! ⭐",
		ES: "¡Receta añadida a favoritos! ⭐",
	},
	FavoriteAddedToast: {
		EN: "Added to favorites!",
		ES: "¡Añadida a favoritos!",
	},
	FavoriteExists: {
		EN: "This recipe is already in your favorites.",
		ES: "La receta ya se encuentra en favoritos.",
	},
	FavoriteAddFailed: {
		EN: "Error adding to favorites.",
		ES: "Error al agregar a favoritos.",
	},
	FavoritesHeader: {
		EN: "🍽️ Hi! These are your saved favorite recipes. 🎉\nTo add more, use /recipe and discover new dishes. 😍\n\n",
		ES: "🍽️ ¡Hola! Aquí tienes tus recetas favoritas guardadas. 🎉\nPara agregar más, usa el comando /recipe y descubre nuevas delicias. 😍\n\n",
	},
	FavoritesItem: {
		EN: "📌 %d. %s - (added on %s)",
		ES: "📌 %d. %s - (Añadida el %s)",
	},
	FavoritesFooter: {
		EN: "\n\n👨‍🍳 Pick a recipe and get cooking! 🔥",
		ES: "\n\n👨‍🍳 ¡Elige una receta y ponte manos a la obra! 🔥",
	},
	FavoritesEmpty: {
		EN: "You have no favorite recipes yet. Use /recipe to find one! 🍳",
		ES: "Todavía no tienes recetas favoritas. ¡Usa /recipe para encontrar una! 🍳",
	},
	FavoritesFailed: {
		EN: "Could not load your favorites, please try again later 😔",
		ES: "No se pudieron obtener tus favoritos, intenta más tarde 😔",
	},
	UnknownRecipeTitle: {
		EN: "Unknown recipe",
		ES: "Receta desconocida",
	},
	NoRecipeTitle: {
		EN: "No recipe title",
		ES: "Sin título de receta",
	},
	DefaultUserName: {
		EN: "Chef",
		ES: "Chef",
	},
	FavoritesDateLayout: {
		EN: "Jan 2, 2006",
		ES: "02/01/2006",
	},
}

func Get(lang utils.Lang, key TextKey) string {
	return MapText[key].By(lang)
}
