package recipe

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-recipe-generator/internal/pkg/common"
)

type fakeStore struct {
	recipes []common.Recipe
	err     error
	calls   int
}

func (f *fakeStore) FindCandidates(ctx context.Context, q *common.RecipeQuery) ([]common.Recipe, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.recipes, nil
}

func storedRecipe(id string, ingredients ...string) common.Recipe {
	ings := make([]common.Ingredient, len(ingredients))
	for i, name := range ingredients {
		ings[i] = common.Ingredient{Name: name, Quantity: "1"}
	}
	return common.Recipe{
		ID:          id,
		Title:       "Recipe " + id,
		Ingredients: ings,
		Steps:       []string{"Cook."},
		TimeMinutes: 10,
		Difficulty:  common.DifficultyEasy,
		Source:      common.SourceDB,
	}
}

func TestFindCandidatesScoring(t *testing.T) {
	store := &fakeStore{recipes: []common.Recipe{
		storedRecipe("omelette", "egg", "butter"),
		storedRecipe("pancakes", "egg", "flour", "milk", "butter"),
		storedRecipe("salad", "lettuce", "cucumber"),
	}}
	engine := NewQueryEngine(store, NewNormalizer())

	q := &common.RecipeQuery{Ingredients: []string{"egg", "butter", "flour"}}
	candidates, err := engine.FindCandidates(context.Background(), q)
	require.NoError(t, err)

	// The zero-match salad is excluded.
	require.Len(t, candidates, 2)

	byID := map[string]common.ScoredCandidate{}
	for _, c := range candidates {
		byID[c.Recipe.ID] = c
	}

	omelette := byID["omelette"]
	assert.Equal(t, 2, omelette.MatchedCount)
	assert.Equal(t, 2, omelette.RequiredCount)
	assert.InDelta(t, 1.0, omelette.Coverage, 1e-9)

	pancakes := byID["pancakes"]
	assert.Equal(t, 3, pancakes.MatchedCount)
	assert.Equal(t, 4, pancakes.RequiredCount)
	assert.InDelta(t, 0.75, pancakes.Coverage, 1e-9)
}

func TestFindCandidatesNormalizesRecipeIngredients(t *testing.T) {
	// Stored data is not guaranteed clean; "Scallions" must still match a
	// query for green onion.
	store := &fakeStore{recipes: []common.Recipe{
		storedRecipe("noodles", "Scallions", "noodles"),
	}}
	engine := NewQueryEngine(store, NewNormalizer())

	q := &common.RecipeQuery{Ingredients: []string{"green onion"}}
	candidates, err := engine.FindCandidates(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, 1, candidates[0].MatchedCount)
	assert.Equal(t, 2, candidates[0].RequiredCount)
}

func TestFindCandidatesDuplicateIngredientsCountOnce(t *testing.T) {
	store := &fakeStore{recipes: []common.Recipe{
		storedRecipe("double-egg", "egg", "Egg", "flour"),
	}}
	engine := NewQueryEngine(store, NewNormalizer())

	q := &common.RecipeQuery{Ingredients: []string{"egg"}}
	candidates, err := engine.FindCandidates(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, 1, candidates[0].MatchedCount)
	assert.Equal(t, 2, candidates[0].RequiredCount)
}

func TestFindCandidatesStoreError(t *testing.T) {
	store := &fakeStore{err: common.ErrStoreUnavailable}
	engine := NewQueryEngine(store, NewNormalizer())

	_, err := engine.FindCandidates(context.Background(), &common.RecipeQuery{Ingredients: []string{"egg"}})
	assert.ErrorIs(t, err, common.ErrStoreUnavailable)
}
