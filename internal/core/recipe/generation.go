package recipe

import (
	"context"
	"time"

	"go.uber.org/zap"

	"smart-recipe-generator/internal/pkg/common"
)

// GenerationAdapter wraps the external generator with a timeout, output
// validation and the fallback path. It never returns an error: a generation
// failure of any kind degrades to the built-in fallback set instead.
type GenerationAdapter struct {
	gen        Generator
	normalizer *Normalizer
	timeout    time.Duration
}

// NewGenerationAdapter creates a GenerationAdapter.
func NewGenerationAdapter(gen Generator, normalizer *Normalizer, timeout time.Duration) *GenerationAdapter {
	return &GenerationAdapter{gen: gen, normalizer: normalizer, timeout: timeout}
}

// Generate asks the generator for count recipes and returns the validated
// survivors, plus whether the fallback path was taken. Malformed candidates
// are dropped, never repaired; if the call fails or nothing survives, the
// fallback set stands in, ingredient-overlapping recipes first and topped up
// from the rest of the set so the supplement is never empty. count <= 0
// short-circuits without any call.
func (a *GenerationAdapter) Generate(ctx context.Context, q *common.RecipeQuery, count int) ([]common.Recipe, bool) {
	if count <= 0 {
		return nil, false
	}

	genCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	start := time.Now()
	raw, err := a.gen.Generate(genCtx, q, count)
	if err != nil {
		common.LogWarn("generation unavailable, serving fallback recipes",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
		return a.fallback(q, count), true
	}

	valid := make([]common.Recipe, 0, len(raw))
	now := time.Now().UTC()
	for i := range raw {
		r := raw[i]
		r.ID = ""
		r.Source = common.SourceLLM
		r.CreatedAt = now
		if err := r.Validate(); err != nil {
			common.LogWarn("dropping malformed generated recipe", zap.Error(err))
			continue
		}
		valid = append(valid, r)
		if len(valid) == count {
			break
		}
	}

	if len(valid) == 0 {
		common.LogWarn("generation returned no usable recipes, serving fallback recipes",
			zap.Int("raw", len(raw)),
		)
		return a.fallback(q, count), true
	}

	common.LogInfo("generation supplemented results",
		zap.Int("requested", count),
		zap.Int("returned", len(valid)),
		zap.Duration("duration", time.Since(start)),
	)
	return valid, false
}

// fallback picks up to count built-in recipes, preferring those that share at
// least one ingredient with the query. If none overlap, the set is served
// from the top so the caller never gets an empty supplement.
func (a *GenerationAdapter) fallback(q *common.RecipeQuery, count int) []common.Recipe {
	all := FallbackRecipes()

	overlapping := make([]common.Recipe, 0, len(all))
	rest := make([]common.Recipe, 0, len(all))
	for _, r := range all {
		if a.overlaps(&r, q) {
			overlapping = append(overlapping, r)
		} else {
			rest = append(rest, r)
		}
	}

	picked := append(overlapping, rest...)
	if len(picked) > count {
		picked = picked[:count]
	}

	now := time.Now().UTC()
	for i := range picked {
		picked[i].ID = ""
		picked[i].Source = common.SourceFallback
		picked[i].CreatedAt = now
	}
	return picked
}

func (a *GenerationAdapter) overlaps(r *common.Recipe, q *common.RecipeQuery) bool {
	for _, ing := range r.Ingredients {
		if q.HasIngredient(a.normalizer.NormalizeTerm(ing.Name)) {
			return true
		}
	}
	return false
}
