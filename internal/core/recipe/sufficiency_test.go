package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"smart-recipe-generator/internal/pkg/common"
)

func tiered(tiers ...common.Tier) []common.ScoredCandidate {
	out := make([]common.ScoredCandidate, len(tiers))
	for i, tier := range tiers {
		out[i] = common.ScoredCandidate{Tier: tier}
	}
	return out
}

func TestDecide(t *testing.T) {
	// minUsable 3, minTotal 5, targetTotal 5, maxGenerated 3
	policy := NewSufficiencyPolicy(3, 5, 5, 3)

	tests := []struct {
		name       string
		ranked     []common.ScoredCandidate
		wantNeeded int
		wantReason string
	}{
		{
			name:       "no candidates triggers full generation",
			ranked:     nil,
			wantNeeded: 3,
			wantReason: StrategyLLMOnly,
		},
		{
			name: "enough usable and total skips generation",
			ranked: tiered(
				common.TierUserHasAll, common.TierHighMatch, common.TierHighMatch,
				common.TierPartial, common.TierPartial,
			),
			wantNeeded: 0,
			wantReason: StrategyDBSufficient,
		},
		{
			name: "too few usable requests the shortfall",
			ranked: tiered(
				common.TierUserHasAll, common.TierHighMatch,
				common.TierPartial, common.TierPartial, common.TierPartial,
			),
			wantNeeded: 3,
			wantReason: StrategyDBPlusLLM,
		},
		{
			name: "shortfall is capped at max generated",
			ranked: tiered(
				common.TierPartial, common.TierPartial,
			),
			wantNeeded: 3,
			wantReason: StrategyDBPlusLLM,
		},
		{
			name: "enough usable but thin total still supplements",
			ranked: tiered(
				common.TierUserHasAll, common.TierUserHasAll, common.TierHighMatch,
			),
			wantNeeded: 2,
			wantReason: StrategyDBPlusLLM,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := policy.Decide(tt.ranked)
			assert.Equal(t, tt.wantNeeded, got.Needed)
			assert.Equal(t, tt.wantReason, got.Reason)
		})
	}
}

func TestDecideNeverNegative(t *testing.T) {
	// A target already exceeded by usable recipes must not produce a
	// negative request.
	policy := NewSufficiencyPolicy(10, 10, 2, 3)

	ranked := tiered(
		common.TierUserHasAll, common.TierUserHasAll, common.TierUserHasAll,
	)
	got := policy.Decide(ranked)
	assert.Equal(t, 0, got.Needed)
	assert.Equal(t, StrategyDBSufficient, got.Reason)
}

func TestDecideLLMOnlyCap(t *testing.T) {
	// llm-only asks for min(target, maxGenerated).
	policy := NewSufficiencyPolicy(3, 5, 2, 3)
	got := policy.Decide(nil)
	assert.Equal(t, 2, got.Needed)
	assert.Equal(t, StrategyLLMOnly, got.Reason)
}
