package recipe

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"smart-recipe-generator/internal/infrastructure/config"
	"smart-recipe-generator/internal/pkg/common"
)

// SearchRequest is the raw, untrusted search input before normalization.
type SearchRequest struct {
	Ingredients    []string
	DietTags       []string
	MaxTimeMinutes int
	Difficulty     string
	Cuisine        string
	Servings       int
}

// Service runs the full retrieval pipeline: normalize, query, rank, decide,
// optionally generate, assemble.
type Service struct {
	normalizer *Normalizer
	engine     *QueryEngine
	ranker     *Ranker
	policy     *SufficiencyPolicy
	generation *GenerationAdapter
	assembler  *Assembler
	maxTime    int
}

// NewService wires the pipeline stages from configuration.
func NewService(store Store, gen Generator, cfg config.PipelineConfig, genTimeout time.Duration) *Service {
	normalizer := NewNormalizer()
	return &Service{
		normalizer: normalizer,
		engine:     NewQueryEngine(store, normalizer),
		ranker:     NewRanker(cfg.HighMatchThreshold),
		policy:     NewSufficiencyPolicy(cfg.MinUsableMatches, cfg.MinTotalMatches, cfg.TargetTotal, cfg.MaxGenerated),
		generation: NewGenerationAdapter(gen, normalizer, genTimeout),
		assembler:  NewAssembler(cfg.PageSize),
		maxTime:    cfg.MaxTimeMinutes,
	}
}

// Search runs one pipeline invocation. Invalid input fails before any store
// or generation I/O; a store failure surfaces as-is; generation failures
// never surface because the adapter degrades to fallback internally.
func (s *Service) Search(ctx context.Context, req *SearchRequest) (*common.RecipeResponse, error) {
	query, err := s.buildQuery(req)
	if err != nil {
		return nil, err
	}

	candidates, err := s.engine.FindCandidates(ctx, query)
	if err != nil {
		return nil, err
	}

	ranked := s.ranker.Rank(candidates)
	decision := s.policy.Decide(ranked)

	common.LogInfo("sufficiency decision",
		zap.String("strategy", decision.Reason),
		zap.Int("stored", len(ranked)),
		zap.Int("needed", decision.Needed),
	)

	generated, fellBack := s.generation.Generate(ctx, query, decision.Needed)

	return s.assembler.Assemble(query, ranked, generated, decision, fellBack), nil
}

// buildQuery normalizes and validates the raw request. Every rejection here
// is an invalid-query error carrying the specific cause.
func (s *Service) buildQuery(req *SearchRequest) (*common.RecipeQuery, error) {
	ingredients := s.normalizer.NormalizeSet(req.Ingredients)
	if len(ingredients) == 0 {
		return nil, common.ErrInvalidQuery.WithCause(fmt.Errorf("no usable ingredients after normalization"))
	}

	if req.MaxTimeMinutes < 0 || req.MaxTimeMinutes > s.maxTime {
		return nil, common.ErrInvalidQuery.WithCause(
			fmt.Errorf("maxTimeMinutes %d outside 1..%d", req.MaxTimeMinutes, s.maxTime))
	}

	if req.Servings < 0 {
		return nil, common.ErrInvalidQuery.WithCause(fmt.Errorf("servings must be positive"))
	}

	difficulty, err := common.ParseDifficulty(req.Difficulty)
	if err != nil {
		return nil, common.ErrInvalidQuery.WithCause(err)
	}

	dietTags := make([]string, 0, len(req.DietTags))
	seen := make(map[string]struct{}, len(req.DietTags))
	for _, tag := range req.DietTags {
		t := s.normalizer.NormalizeTerm(tag)
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		dietTags = append(dietTags, t)
	}

	return &common.RecipeQuery{
		Ingredients:    ingredients,
		DietTags:       dietTags,
		MaxTimeMinutes: req.MaxTimeMinutes,
		Difficulty:     difficulty,
		Cuisine:        s.normalizer.NormalizeTerm(req.Cuisine),
		Servings:       req.Servings,
	}, nil
}
