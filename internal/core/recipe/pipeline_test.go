package recipe

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-recipe-generator/internal/infrastructure/config"
	"smart-recipe-generator/internal/pkg/common"
)

func testPipelineConfig() config.PipelineConfig {
	return config.PipelineConfig{
		HighMatchThreshold: 0.7,
		MinUsableMatches:   3,
		MinTotalMatches:    5,
		TargetTotal:        5,
		MaxGenerated:       3,
		PageSize:           20,
		MaxTimeMinutes:     300,
	}
}

func newTestService(store *fakeStore, gen *fakeGenerator) *Service {
	return NewService(store, gen, testPipelineConfig(), time.Second)
}

func TestSearchRejectsInvalidQueriesBeforeIO(t *testing.T) {
	tests := []struct {
		name string
		req  *SearchRequest
	}{
		{"no ingredients", &SearchRequest{Ingredients: nil}},
		{"only blank ingredients", &SearchRequest{Ingredients: []string{" ", ""}}},
		{"max time too large", &SearchRequest{Ingredients: []string{"egg"}, MaxTimeMinutes: 301}},
		{"negative max time", &SearchRequest{Ingredients: []string{"egg"}, MaxTimeMinutes: -5}},
		{"negative servings", &SearchRequest{Ingredients: []string{"egg"}, Servings: -1}},
		{"unknown difficulty", &SearchRequest{Ingredients: []string{"egg"}, Difficulty: "IMPOSSIBLE"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{}
			gen := &fakeGenerator{}
			svc := newTestService(store, gen)

			_, err := svc.Search(context.Background(), tt.req)
			assert.ErrorIs(t, err, common.ErrInvalidQuery)
			assert.Equal(t, 0, store.calls, "store must not be touched")
			assert.Equal(t, 0, gen.calls, "generator must not be touched")
		})
	}
}

func TestSearchCoverageOrdering(t *testing.T) {
	// flatbread needs exactly what the user has; pancakes need two more
	// things. flatbread must rank first and be the only user-has-all.
	store := &fakeStore{recipes: []common.Recipe{
		storedRecipe("pancakes", "egg", "flour", "milk", "butter"),
		storedRecipe("flatbread", "egg", "flour"),
	}}
	gen := &fakeGenerator{recipes: []common.Recipe{
		generatedRecipe("Filler One"), generatedRecipe("Filler Two"), generatedRecipe("Filler Three"),
	}}
	svc := newTestService(store, gen)

	resp, err := svc.Search(context.Background(), &SearchRequest{Ingredients: []string{"egg", "flour"}})
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(resp.Recipes), 2)
	assert.Equal(t, "flatbread", resp.Recipes[0].ID)
	assert.Equal(t, "pancakes", resp.Recipes[1].ID)

	assert.Equal(t, 1, resp.Metadata.UserHasAllCount)
	assert.True(t, resp.Metadata.HasUserHasAllRecipes)
	assert.Equal(t, []string{"flatbread"}, resp.Metadata.UserHasAllRecipeIDs)
	assert.Equal(t, StrategyDBPlusLLM, resp.Metadata.Strategy)
}

func TestSearchLLMOnlyWhenStoreHasNothingRelevant(t *testing.T) {
	store := &fakeStore{recipes: []common.Recipe{
		storedRecipe("salad", "lettuce", "cucumber"),
	}}
	gen := &fakeGenerator{recipes: []common.Recipe{
		generatedRecipe("Gen A"), generatedRecipe("Gen B"), generatedRecipe("Gen C"),
	}}
	svc := newTestService(store, gen)

	resp, err := svc.Search(context.Background(), &SearchRequest{Ingredients: []string{"egg"}})
	require.NoError(t, err)

	assert.Equal(t, StrategyLLMOnly, resp.Metadata.Strategy)
	assert.Equal(t, 3, resp.Metadata.LLMGeneratedCount)
	assert.Equal(t, 3, resp.Metadata.TotalRecipes)
	assert.Equal(t, 3, gen.lastCount)
	for _, r := range resp.Recipes {
		assert.Equal(t, common.SourceLLM, r.Source)
	}
}

func TestSearchSkipsGenerationWhenStoreSuffices(t *testing.T) {
	store := &fakeStore{recipes: []common.Recipe{
		storedRecipe("a", "egg"),
		storedRecipe("b", "egg"),
		storedRecipe("c", "egg"),
		storedRecipe("d", "egg"),
		storedRecipe("e", "egg"),
	}}
	gen := &fakeGenerator{}
	svc := newTestService(store, gen)

	resp, err := svc.Search(context.Background(), &SearchRequest{Ingredients: []string{"egg"}})
	require.NoError(t, err)

	assert.Equal(t, 0, gen.calls, "generator must not be invoked")
	assert.Equal(t, StrategyDBSufficient, resp.Metadata.Strategy)
	assert.Equal(t, 0, resp.Metadata.LLMGeneratedCount)
	assert.Equal(t, 5, resp.Metadata.TotalRecipes)
}

func TestSearchSurfacesStoreFailure(t *testing.T) {
	store := &fakeStore{err: common.ErrStoreUnavailable.WithCause(fmt.Errorf("connection refused"))}
	gen := &fakeGenerator{}
	svc := newTestService(store, gen)

	_, err := svc.Search(context.Background(), &SearchRequest{Ingredients: []string{"egg"}})
	assert.ErrorIs(t, err, common.ErrStoreUnavailable)
	assert.Equal(t, 0, gen.calls)
}

func TestSearchRecoversFromGenerationFailure(t *testing.T) {
	store := &fakeStore{}
	gen := &fakeGenerator{err: fmt.Errorf("upstream down")}
	svc := newTestService(store, gen)

	resp, err := svc.Search(context.Background(), &SearchRequest{Ingredients: []string{"egg"}})
	require.NoError(t, err, "generation failure must never surface")

	assert.Equal(t, StrategyLLMOnly+"-fallback", resp.Metadata.Strategy)
	assert.NotEmpty(t, resp.Metadata.Message)
	assert.Equal(t, 0, resp.Metadata.LLMGeneratedCount)
	require.NotEmpty(t, resp.Recipes)
	for _, r := range resp.Recipes {
		assert.Equal(t, common.SourceFallback, r.Source)
	}
}

func TestSearchIsIdempotent(t *testing.T) {
	store := &fakeStore{recipes: []common.Recipe{
		storedRecipe("pancakes", "egg", "flour", "milk", "butter"),
		storedRecipe("flatbread", "egg", "flour"),
	}}
	gen := &fakeGenerator{recipes: []common.Recipe{generatedRecipe("Gen A")}}
	svc := newTestService(store, gen)

	req := &SearchRequest{Ingredients: []string{"Egg", "flour", "egg"}}

	first, err := svc.Search(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.Search(context.Background(), req)
	require.NoError(t, err)

	firstTitles := make([]string, len(first.Recipes))
	secondTitles := make([]string, len(second.Recipes))
	for i := range first.Recipes {
		firstTitles[i] = first.Recipes[i].Title
	}
	for i := range second.Recipes {
		secondTitles[i] = second.Recipes[i].Title
	}
	assert.Equal(t, firstTitles, secondTitles)
	assert.Equal(t, first.Metadata, second.Metadata)
}
