package recipe

import (
	"context"

	"smart-recipe-generator/internal/pkg/common"
)

// Store is the persistent recipe capability. FindCandidates returns stored
// recipes that pass the query's structural filters (cuisine, max time,
// difficulty, diet tags); ingredient scoring happens downstream. A failure
// must be reported as common.ErrStoreUnavailable with the cause attached.
type Store interface {
	FindCandidates(ctx context.Context, q *common.RecipeQuery) ([]common.Recipe, error)
}

// Generator is the external generation capability. Generate asks for up to
// count recipes honoring the query's ingredients and filters. Implementations
// return raw candidates; validation and fallback are the adapter's job.
type Generator interface {
	Generate(ctx context.Context, q *common.RecipeQuery, count int) ([]common.Recipe, error)
}
