package recipe

import (
	"smart-recipe-generator/internal/pkg/common"
)

// fallbackRecipes is the deterministic pantry-staple set served when
// generation fails or yields nothing usable. Every entry must pass
// Recipe.Validate; keep that in mind when editing.
var fallbackRecipes = []common.Recipe{
	{
		Title: "Simple Scrambled Eggs",
		Ingredients: []common.Ingredient{
			{Name: "egg", Quantity: "3"},
			{Name: "butter", Quantity: "1", Unit: "tbsp"},
			{Name: "salt", Quantity: "1", Unit: "pinch"},
		},
		Steps: []string{
			"Whisk the eggs with a pinch of salt.",
			"Melt the butter in a nonstick pan over medium-low heat.",
			"Pour in the eggs and stir gently until just set.",
		},
		TimeMinutes: 10,
		Difficulty:  common.DifficultyEasy,
		Cuisine:     "international",
		DietTags:    []string{"vegetarian", "gluten-free"},
		Nutrition:   &common.Nutrition{Kcal: 280, Protein: 19, Carbs: 2, Fat: 22},
		Source:      common.SourceFallback,
	},
	{
		Title: "Garlic Fried Rice",
		Ingredients: []common.Ingredient{
			{Name: "rice", Quantity: "2", Unit: "cups"},
			{Name: "garlic", Quantity: "4", Unit: "cloves"},
			{Name: "oil", Quantity: "2", Unit: "tbsp"},
			{Name: "salt", Quantity: "1/2", Unit: "tsp"},
		},
		Steps: []string{
			"Heat the oil in a wok over high heat.",
			"Fry the minced garlic until golden.",
			"Add the cooked rice, season with salt and toss for 3 minutes.",
		},
		TimeMinutes: 15,
		Difficulty:  common.DifficultyEasy,
		Cuisine:     "asian",
		DietTags:    []string{"vegan", "gluten-free"},
		Nutrition:   &common.Nutrition{Kcal: 420, Protein: 8, Carbs: 70, Fat: 12},
		Source:      common.SourceFallback,
	},
	{
		Title: "Olive Oil Pasta",
		Ingredients: []common.Ingredient{
			{Name: "pasta", Quantity: "200", Unit: "g"},
			{Name: "olive oil", Quantity: "3", Unit: "tbsp"},
			{Name: "garlic", Quantity: "2", Unit: "cloves"},
			{Name: "chili", Quantity: "1", Unit: "pinch"},
		},
		Steps: []string{
			"Cook the pasta in salted water until al dente.",
			"Warm the olive oil with sliced garlic and chili flakes.",
			"Toss the drained pasta in the oil with a splash of pasta water.",
		},
		TimeMinutes: 20,
		Difficulty:  common.DifficultyEasy,
		Cuisine:     "italian",
		DietTags:    []string{"vegan"},
		Nutrition:   &common.Nutrition{Kcal: 520, Protein: 13, Carbs: 76, Fat: 18},
		Source:      common.SourceFallback,
	},
	{
		Title: "Quick Tomato Soup",
		Ingredients: []common.Ingredient{
			{Name: "tomato", Quantity: "5"},
			{Name: "onion", Quantity: "1"},
			{Name: "oil", Quantity: "1", Unit: "tbsp"},
			{Name: "salt", Quantity: "1", Unit: "tsp"},
		},
		Steps: []string{
			"Sweat the chopped onion in oil until soft.",
			"Add the chopped tomatoes and a cup of water, simmer 15 minutes.",
			"Blend until smooth and season with salt.",
		},
		TimeMinutes: 25,
		Difficulty:  common.DifficultyEasy,
		Cuisine:     "international",
		DietTags:    []string{"vegan", "gluten-free"},
		Nutrition:   &common.Nutrition{Kcal: 180, Protein: 4, Carbs: 24, Fat: 8},
		Source:      common.SourceFallback,
	},
	{
		Title: "Caramelized Onion Omelette",
		Ingredients: []common.Ingredient{
			{Name: "egg", Quantity: "2"},
			{Name: "onion", Quantity: "1"},
			{Name: "butter", Quantity: "1", Unit: "tbsp"},
		},
		Steps: []string{
			"Cook the sliced onion in butter over low heat until deep golden.",
			"Beat the eggs and pour over the onions.",
			"Cook until set, then fold and serve.",
		},
		TimeMinutes: 20,
		Difficulty:  common.DifficultyMedium,
		Cuisine:     "french",
		DietTags:    []string{"vegetarian", "gluten-free"},
		Nutrition:   &common.Nutrition{Kcal: 300, Protein: 14, Carbs: 12, Fat: 22},
		Source:      common.SourceFallback,
	},
	{
		Title: "Crispy Roast Potatoes",
		Ingredients: []common.Ingredient{
			{Name: "potato", Quantity: "4"},
			{Name: "oil", Quantity: "3", Unit: "tbsp"},
			{Name: "salt", Quantity: "1", Unit: "tsp"},
			{Name: "rosemary", Quantity: "1", Unit: "sprig"},
		},
		Steps: []string{
			"Parboil the quartered potatoes for 8 minutes and drain.",
			"Shake them in the pot to roughen the edges.",
			"Roast at 220C with oil, salt and rosemary for 35 minutes.",
		},
		TimeMinutes: 50,
		Difficulty:  common.DifficultyMedium,
		Cuisine:     "british",
		DietTags:    []string{"vegan", "gluten-free"},
		Nutrition:   &common.Nutrition{Kcal: 340, Protein: 6, Carbs: 52, Fat: 13},
		Source:      common.SourceFallback,
	},
}

// FallbackRecipes returns a copy of the built-in set so callers can tag and
// reorder freely.
func FallbackRecipes() []common.Recipe {
	out := make([]common.Recipe, len(fallbackRecipes))
	copy(out, fallbackRecipes)
	return out
}
