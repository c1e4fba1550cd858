package recipe

import (
	"context"

	"go.uber.org/zap"

	"smart-recipe-generator/internal/pkg/common"
)

// QueryEngine retrieves stored candidates and scores their ingredient
// coverage against the query set.
type QueryEngine struct {
	store      Store
	normalizer *Normalizer
}

// NewQueryEngine creates a QueryEngine.
func NewQueryEngine(store Store, normalizer *Normalizer) *QueryEngine {
	return &QueryEngine{store: store, normalizer: normalizer}
}

// FindCandidates loads filtered recipes from the store and scores each one.
// Coverage is matched/required over the recipe's own ingredient list, so a
// two-ingredient recipe fully covered by a ten-ingredient query still scores
// 1.0. Recipes with zero matched ingredients are excluded outright.
func (e *QueryEngine) FindCandidates(ctx context.Context, q *common.RecipeQuery) ([]common.ScoredCandidate, error) {
	recipes, err := e.store.FindCandidates(ctx, q)
	if err != nil {
		return nil, err
	}

	candidates := make([]common.ScoredCandidate, 0, len(recipes))
	for _, r := range recipes {
		matched, required := e.score(&r, q)
		if matched == 0 {
			continue
		}
		candidates = append(candidates, common.ScoredCandidate{
			Recipe:        r,
			MatchedCount:  matched,
			RequiredCount: required,
			Coverage:      float64(matched) / float64(required),
		})
	}

	common.LogDebug("scored stored candidates",
		zap.Int("retrieved", len(recipes)),
		zap.Int("scored", len(candidates)),
	)

	return candidates, nil
}

// score counts how many of the recipe's distinct normalized ingredient names
// appear in the query set. Duplicate names within a recipe count once.
func (e *QueryEngine) score(r *common.Recipe, q *common.RecipeQuery) (matched, required int) {
	seen := make(map[string]struct{}, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		name := e.normalizer.NormalizeTerm(ing.Name)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		required++
		if q.HasIngredient(name) {
			matched++
		}
	}
	return matched, required
}
