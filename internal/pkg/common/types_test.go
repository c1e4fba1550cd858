package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    Difficulty
		wantErr bool
	}{
		{"EASY", DifficultyEasy, false},
		{"easy", DifficultyEasy, false},
		{" Medium ", DifficultyMedium, false},
		{"HARD", DifficultyHard, false},
		{"", "", false},
		{"   ", "", false},
		{"extreme", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDifficulty(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func validRecipe() Recipe {
	return Recipe{
		Title:       "Toast",
		Ingredients: []Ingredient{{Name: "bread"}},
		Steps:       []string{"Toast the bread."},
		TimeMinutes: 5,
		Difficulty:  DifficultyEasy,
	}
}

func TestRecipeValidate(t *testing.T) {
	t.Run("valid recipe passes", func(t *testing.T) {
		r := validRecipe()
		assert.NoError(t, r.Validate())
	})

	tests := []struct {
		name   string
		mutate func(*Recipe)
	}{
		{"blank title", func(r *Recipe) { r.Title = "  " }},
		{"no ingredients", func(r *Recipe) { r.Ingredients = nil }},
		{"unnamed ingredient", func(r *Recipe) { r.Ingredients = []Ingredient{{Name: " "}} }},
		{"no steps", func(r *Recipe) { r.Steps = nil }},
		{"empty step", func(r *Recipe) { r.Steps = []string{"Cook.", "  "} }},
		{"zero time", func(r *Recipe) { r.TimeMinutes = 0 }},
		{"negative time", func(r *Recipe) { r.TimeMinutes = -5 }},
		{"bad difficulty", func(r *Recipe) { r.Difficulty = "TRIVIAL" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRecipe()
			tt.mutate(&r)
			assert.Error(t, r.Validate())
		})
	}
}

func TestHasIngredient(t *testing.T) {
	q := RecipeQuery{Ingredients: []string{"egg", "green onion"}}
	assert.True(t, q.HasIngredient("egg"))
	assert.True(t, q.HasIngredient("green onion"))
	assert.False(t, q.HasIngredient("flour"))
}
