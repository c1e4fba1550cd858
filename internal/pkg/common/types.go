package common

import (
	"fmt"
	"strings"
	"time"
)

// Difficulty is part of the wire contract and must round-trip exactly.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
)

// ParseDifficulty accepts any casing; empty input means "no preference".
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(strings.ToUpper(strings.TrimSpace(s))) {
	case "":
		return "", nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyMedium:
		return DifficultyMedium, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q", s)
	}
}

// Valid reports whether d is one of the three wire values.
func (d Difficulty) Valid() bool {
	return d == DifficultyEasy || d == DifficultyMedium || d == DifficultyHard
}

// Source marks recipe provenance: persistent store, live generation, or the
// built-in fallback set.
type Source string

const (
	SourceDB       Source = "DB"
	SourceLLM      Source = "LLM"
	SourceFallback Source = "FALLBACK"
)

// Ingredient is one line of a recipe's ingredient list.
type Ingredient struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity,omitempty"`
	Unit     string `json:"unit,omitempty"`
}

// Nutrition values are per recipe and scale with servings.
type Nutrition struct {
	Kcal    int     `json:"kcal"`
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}

// Recipe is the single recipe shape shared by all three sources. ID is set
// only for recipes owned by the persistent store.
type Recipe struct {
	ID          string       `json:"id,omitempty"`
	Title       string       `json:"title"`
	Ingredients []Ingredient `json:"ingredients"`
	Steps       []string     `json:"steps"`
	TimeMinutes int          `json:"timeMinutes"`
	Difficulty  Difficulty   `json:"difficulty"`
	Cuisine     string       `json:"cuisine,omitempty"`
	DietTags    []string     `json:"dietTags"`
	Nutrition   *Nutrition   `json:"nutrition,omitempty"`
	Source      Source       `json:"source"`
	CreatedBy   string       `json:"createdBy,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// Validate checks the invariants every recipe must satisfy: non-empty title,
// at least one named ingredient, at least one non-empty step, positive time
// and a valid difficulty.
func (r *Recipe) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("recipe title is empty")
	}
	if len(r.Ingredients) == 0 {
		return fmt.Errorf("recipe %q has no ingredients", r.Title)
	}
	for _, ing := range r.Ingredients {
		if strings.TrimSpace(ing.Name) == "" {
			return fmt.Errorf("recipe %q has an unnamed ingredient", r.Title)
		}
	}
	if len(r.Steps) == 0 {
		return fmt.Errorf("recipe %q has no steps", r.Title)
	}
	for i, step := range r.Steps {
		if strings.TrimSpace(step) == "" {
			return fmt.Errorf("recipe %q step %d is empty", r.Title, i+1)
		}
	}
	if r.TimeMinutes <= 0 {
		return fmt.Errorf("recipe %q has non-positive timeMinutes", r.Title)
	}
	if !r.Difficulty.Valid() {
		return fmt.Errorf("recipe %q has invalid difficulty %q", r.Title, r.Difficulty)
	}
	return nil
}

// RecipeQuery is the immutable query one pipeline invocation runs against.
// Ingredients hold normalized terms in first-seen order. Zero values mean
// "filter not set" (MaxTimeMinutes 0, Difficulty "", Cuisine "", Servings 0).
type RecipeQuery struct {
	Ingredients    []string
	DietTags       []string
	MaxTimeMinutes int
	Difficulty     Difficulty
	Cuisine        string
	Servings       int
}

// HasIngredient reports whether the normalized term is in the query set.
func (q *RecipeQuery) HasIngredient(term string) bool {
	for _, ing := range q.Ingredients {
		if ing == term {
			return true
		}
	}
	return false
}

// Tier classifies a scored candidate for metadata counts; tiers never remove
// candidates from the result.
type Tier string

const (
	TierUserHasAll Tier = "user-has-all"
	TierHighMatch  Tier = "high-match"
	TierPartial    Tier = "partial-match"
)

// ScoredCandidate pairs a stored recipe with its ingredient-coverage score.
// Ephemeral: produced by the query engine, consumed by the ranker and
// assembler, never persisted.
type ScoredCandidate struct {
	Recipe        Recipe
	MatchedCount  int
	RequiredCount int
	Coverage      float64
	Tier          Tier
}

// SupplementDecision is the sufficiency policy's verdict: how many recipes to
// request from generation and why.
type SupplementDecision struct {
	Needed int
	Reason string
}

// RecipeMetadata is derived from the final merged list on every request.
type RecipeMetadata struct {
	TotalRecipes         int      `json:"totalRecipes"`
	HighMatchCount       int      `json:"highMatchCount"`
	UserHasAllCount      int      `json:"userHasAllCount"`
	LLMGeneratedCount    int      `json:"llmGeneratedCount"`
	Strategy             string   `json:"strategy"`
	HasUserHasAllRecipes bool     `json:"hasUserHasAllRecipes"`
	UserHasAllRecipeIDs  []string `json:"userHasAllRecipeIds"`
	Message              string   `json:"message,omitempty"`
}

// RecipeResponse is the pipeline's final ordered payload.
type RecipeResponse struct {
	Recipes  []Recipe       `json:"recipes"`
	Metadata RecipeMetadata `json:"metadata"`
}
