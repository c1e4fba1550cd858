package store

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"go.uber.org/zap"

	"smart-recipe-generator/internal/pkg/common"
)

//go:embed seed_recipes.json
var seedData []byte

// Seed replaces the store-owned recipe set with the embedded seed recipes.
// Generated and fallback recipes are never persisted, so only source=DB rows
// are cleared. Returns the number of recipes inserted.
func (s *RecipeStore) Seed(ctx context.Context) (int, error) {
	var recipes []common.Recipe
	if err := common.ParseJSONBytes(seedData, &recipes); err != nil {
		return 0, fmt.Errorf("invalid embedded seed data: %w", err)
	}

	if err := s.DeleteBySource(ctx, common.SourceDB); err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	for i := range recipes {
		r := recipes[i]
		r.ID = common.GenerateUUID()
		r.Source = common.SourceDB
		r.CreatedBy = "seed"
		r.CreatedAt = now
		if err := r.Validate(); err != nil {
			return 0, fmt.Errorf("invalid seed recipe: %w", err)
		}
		if err := s.Save(ctx, &r); err != nil {
			return 0, err
		}
	}

	common.LogInfo("seeded recipe store", zap.Int("count", len(recipes)))
	return len(recipes), nil
}
