package recipe

import (
	"sort"

	"smart-recipe-generator/internal/pkg/common"
)

// Ranker orders scored candidates and assigns coverage tiers.
type Ranker struct {
	highMatchThreshold float64
}

// NewRanker creates a Ranker. Candidates at or above threshold coverage are
// tiered high-match; full coverage is user-has-all.
func NewRanker(threshold float64) *Ranker {
	return &Ranker{highMatchThreshold: threshold}
}

// Rank sorts candidates by coverage descending, then matched count
// descending, then creation time newest-first. The sort is stable, so
// candidates that tie on all three keys keep their retrieval order; recipes
// without a creation timestamp tie on that key rather than sorting oddly.
func (rk *Ranker) Rank(candidates []common.ScoredCandidate) []common.ScoredCandidate {
	ranked := make([]common.ScoredCandidate, len(candidates))
	copy(ranked, candidates)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Coverage != b.Coverage {
			return a.Coverage > b.Coverage
		}
		if a.MatchedCount != b.MatchedCount {
			return a.MatchedCount > b.MatchedCount
		}
		return a.Recipe.CreatedAt.After(b.Recipe.CreatedAt)
	})

	for i := range ranked {
		ranked[i].Tier = rk.tier(ranked[i].Coverage)
	}

	return ranked
}

func (rk *Ranker) tier(coverage float64) common.Tier {
	switch {
	case coverage >= 1.0:
		return common.TierUserHasAll
	case coverage >= rk.highMatchThreshold:
		return common.TierHighMatch
	default:
		return common.TierPartial
	}
}
