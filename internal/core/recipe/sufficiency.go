package recipe

import (
	"smart-recipe-generator/internal/pkg/common"
)

// Strategy strings reported in response metadata.
const (
	StrategyDBSufficient = "db-sufficient"
	StrategyDBPlusLLM    = "db-plus-llm"
	StrategyLLMOnly      = "llm-only"
	fallbackSuffix       = "-fallback"
)

// SufficiencyPolicy decides whether stored results are enough or generation
// should top them up.
type SufficiencyPolicy struct {
	minUsable    int
	minTotal     int
	targetTotal  int
	maxGenerated int
}

// NewSufficiencyPolicy creates a SufficiencyPolicy from the configured
// thresholds.
func NewSufficiencyPolicy(minUsable, minTotal, targetTotal, maxGenerated int) *SufficiencyPolicy {
	return &SufficiencyPolicy{
		minUsable:    minUsable,
		minTotal:     minTotal,
		targetTotal:  targetTotal,
		maxGenerated: maxGenerated,
	}
}

// Decide returns how many recipes to request from generation. Usable means
// user-has-all or high-match tier. Zero stored candidates always triggers
// generation; enough usable plus enough total skips it; anything in between
// asks for the shortfall against the target, capped at maxGenerated.
func (p *SufficiencyPolicy) Decide(ranked []common.ScoredCandidate) common.SupplementDecision {
	usable := 0
	for _, c := range ranked {
		if c.Tier == common.TierUserHasAll || c.Tier == common.TierHighMatch {
			usable++
		}
	}
	total := len(ranked)

	if total == 0 {
		needed := p.maxGenerated
		if p.targetTotal < needed {
			needed = p.targetTotal
		}
		return common.SupplementDecision{Needed: needed, Reason: StrategyLLMOnly}
	}

	if usable >= p.minUsable && total >= p.minTotal {
		return common.SupplementDecision{Needed: 0, Reason: StrategyDBSufficient}
	}

	needed := p.targetTotal - usable
	if needed > p.maxGenerated {
		needed = p.maxGenerated
	}
	if needed <= 0 {
		return common.SupplementDecision{Needed: 0, Reason: StrategyDBSufficient}
	}
	return common.SupplementDecision{Needed: needed, Reason: StrategyDBPlusLLM}
}
