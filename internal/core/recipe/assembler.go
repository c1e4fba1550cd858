package recipe

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"smart-recipe-generator/internal/pkg/common"
)

// defaultServings is the portion count recipes are written for. Scaling is
// relative to this base.
const defaultServings = 2

// Assembler merges ranked stored candidates with generated supplements into
// the final ordered response.
type Assembler struct {
	pageSize int
}

// NewAssembler creates an Assembler with the configured page size.
func NewAssembler(pageSize int) *Assembler {
	return &Assembler{pageSize: pageSize}
}

// Assemble builds the final response: stored recipes in rank order, then
// supplements, deduplicated by ID and truncated to the page size. Metadata is
// derived from the recipes that actually made the cut, so the counts always
// describe the returned list.
func (a *Assembler) Assemble(q *common.RecipeQuery, ranked []common.ScoredCandidate, generated []common.Recipe, decision common.SupplementDecision, fellBack bool) *common.RecipeResponse {
	recipes := make([]common.Recipe, 0, len(ranked)+len(generated))
	seen := make(map[string]struct{})

	includedStored := make([]common.ScoredCandidate, 0, len(ranked))
	for _, c := range ranked {
		if len(recipes) == a.pageSize {
			break
		}
		if c.Recipe.ID != "" {
			if _, dup := seen[c.Recipe.ID]; dup {
				continue
			}
			seen[c.Recipe.ID] = struct{}{}
		}
		recipes = append(recipes, c.Recipe)
		includedStored = append(includedStored, c)
	}

	for _, r := range generated {
		if len(recipes) == a.pageSize {
			break
		}
		if r.ID != "" {
			if _, dup := seen[r.ID]; dup {
				continue
			}
			seen[r.ID] = struct{}{}
		}
		recipes = append(recipes, r)
	}

	if q.Servings >= 1 && q.Servings != defaultServings {
		for i := range recipes {
			recipes[i] = scaleRecipeForServings(recipes[i], q.Servings)
		}
	}

	meta := common.RecipeMetadata{
		TotalRecipes:        len(recipes),
		Strategy:            decision.Reason,
		UserHasAllRecipeIDs: []string{},
	}
	// Fallback recipes are not counted here; a fully degraded response
	// legitimately reports zero alongside the fallback message.
	for _, r := range recipes {
		if r.Source == common.SourceLLM {
			meta.LLMGeneratedCount++
		}
	}
	for _, c := range includedStored {
		switch c.Tier {
		case common.TierUserHasAll:
			meta.UserHasAllCount++
			if c.Recipe.ID != "" {
				meta.UserHasAllRecipeIDs = append(meta.UserHasAllRecipeIDs, c.Recipe.ID)
			}
		case common.TierHighMatch:
			meta.HighMatchCount++
		}
	}
	meta.HasUserHasAllRecipes = meta.UserHasAllCount > 0

	if fellBack {
		meta.Strategy = decision.Reason + fallbackSuffix
		meta.Message = "Live generation was unavailable, so reliable fallback recipes were included."
	}

	return &common.RecipeResponse{Recipes: recipes, Metadata: meta}
}

// scaleRecipeForServings returns a copy of the recipe with quantities and
// nutrition scaled from the default base to the requested servings.
// Non-numeric quantities ("to taste", "a handful") pass through unchanged.
func scaleRecipeForServings(r common.Recipe, servings int) common.Recipe {
	factor := float64(servings) / float64(defaultServings)

	scaled := r
	scaled.Ingredients = make([]common.Ingredient, len(r.Ingredients))
	for i, ing := range r.Ingredients {
		ing.Quantity = scaleQuantity(ing.Quantity, factor)
		scaled.Ingredients[i] = ing
	}

	if r.Nutrition != nil {
		scaled.Nutrition = &common.Nutrition{
			Kcal:    int(math.Round(float64(r.Nutrition.Kcal) * factor)),
			Protein: roundTenth(r.Nutrition.Protein * factor),
			Carbs:   roundTenth(r.Nutrition.Carbs * factor),
			Fat:     roundTenth(r.Nutrition.Fat * factor),
		}
	}

	return scaled
}

// scaleQuantity multiplies a numeric quantity string by factor. Supports
// plain numbers ("2", "1.5") and simple fractions ("1/2", "3/4").
func scaleQuantity(quantity string, factor float64) string {
	q := strings.TrimSpace(quantity)
	if q == "" {
		return quantity
	}

	value, ok := parseQuantity(q)
	if !ok {
		return quantity
	}
	return formatScaledQuantity(value * factor)
}

func parseQuantity(q string) (float64, bool) {
	if num, den, ok := strings.Cut(q, "/"); ok {
		n, errN := strconv.ParseFloat(strings.TrimSpace(num), 64)
		d, errD := strconv.ParseFloat(strings.TrimSpace(den), 64)
		if errN != nil || errD != nil || d == 0 {
			return 0, false
		}
		return n / d, true
	}
	v, err := strconv.ParseFloat(q, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// formatScaledQuantity renders a value kitchen-style: common fractions below
// one, otherwise a number trimmed to at most two decimals.
func formatScaledQuantity(v float64) string {
	fractions := []struct {
		value float64
		text  string
	}{
		{0.25, "1/4"},
		{1.0 / 3.0, "1/3"},
		{0.5, "1/2"},
		{2.0 / 3.0, "2/3"},
		{0.75, "3/4"},
	}
	for _, f := range fractions {
		if math.Abs(v-f.value) < 0.01 {
			return f.text
		}
	}

	if v == math.Trunc(v) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
