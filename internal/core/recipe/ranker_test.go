package recipe

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-recipe-generator/internal/pkg/common"
)

func candidate(id string, matched, required int, createdAt time.Time) common.ScoredCandidate {
	return common.ScoredCandidate{
		Recipe:        common.Recipe{ID: id, CreatedAt: createdAt},
		MatchedCount:  matched,
		RequiredCount: required,
		Coverage:      float64(matched) / float64(required),
	}
}

func rankedIDs(ranked []common.ScoredCandidate) []string {
	ids := make([]string, len(ranked))
	for i, c := range ranked {
		ids[i] = c.Recipe.ID
	}
	return ids
}

func TestRankOrdering(t *testing.T) {
	rk := NewRanker(0.7)
	now := time.Now()

	t.Run("coverage descending", func(t *testing.T) {
		ranked := rk.Rank([]common.ScoredCandidate{
			candidate("half", 1, 2, now),
			candidate("full", 2, 2, now),
			candidate("third", 1, 3, now),
		})
		assert.Equal(t, []string{"full", "half", "third"}, rankedIDs(ranked))
	})

	t.Run("matched count breaks coverage ties", func(t *testing.T) {
		ranked := rk.Rank([]common.ScoredCandidate{
			candidate("one-of-two", 1, 2, now),
			candidate("two-of-four", 2, 4, now),
		})
		assert.Equal(t, []string{"two-of-four", "one-of-two"}, rankedIDs(ranked))
	})

	t.Run("newer recipe breaks full ties", func(t *testing.T) {
		ranked := rk.Rank([]common.ScoredCandidate{
			candidate("old", 2, 2, now.Add(-time.Hour)),
			candidate("new", 2, 2, now),
		})
		assert.Equal(t, []string{"new", "old"}, rankedIDs(ranked))
	})

	t.Run("zero timestamps keep retrieval order", func(t *testing.T) {
		ranked := rk.Rank([]common.ScoredCandidate{
			candidate("first", 2, 2, time.Time{}),
			candidate("second", 2, 2, time.Time{}),
		})
		assert.Equal(t, []string{"first", "second"}, rankedIDs(ranked))
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		in := []common.ScoredCandidate{
			candidate("low", 1, 3, now),
			candidate("high", 3, 3, now),
		}
		rk.Rank(in)
		assert.Equal(t, "low", in[0].Recipe.ID)
	})
}

func TestRankTiers(t *testing.T) {
	rk := NewRanker(0.7)

	ranked := rk.Rank([]common.ScoredCandidate{
		candidate("all", 3, 3, time.Time{}),
		candidate("high", 3, 4, time.Time{}),
		candidate("partial", 1, 3, time.Time{}),
	})
	require.Len(t, ranked, 3)

	assert.Equal(t, common.TierUserHasAll, ranked[0].Tier)
	assert.Equal(t, common.TierHighMatch, ranked[1].Tier)
	assert.Equal(t, common.TierPartial, ranked[2].Tier)
}

func TestRankThresholdBoundary(t *testing.T) {
	rk := NewRanker(0.7)

	// 7 of 10 sits exactly on the threshold and counts as high-match.
	ranked := rk.Rank([]common.ScoredCandidate{candidate("edge", 7, 10, time.Time{})})
	require.Len(t, ranked, 1)
	assert.Equal(t, common.TierHighMatch, ranked[0].Tier)
}
