package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTerm(t *testing.T) {
	n := NewNormalizer()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "Tomato", "tomato"},
		{"trims", "  egg  ", "egg"},
		{"collapses inner whitespace", "green   onion", "green onion"},
		{"folds synonym", "scallion", "green onion"},
		{"folds plural synonym", "Tomatoes", "tomato"},
		{"folds multiword synonym", "Spring   Onion", "green onion"},
		{"blank becomes empty", "   ", ""},
		{"unknown term passes through", "dragonfruit", "dragonfruit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.NormalizeTerm(tt.in))
		})
	}
}

func TestNormalizeSet(t *testing.T) {
	n := NewNormalizer()

	t.Run("dedupes preserving first seen order", func(t *testing.T) {
		got := n.NormalizeSet([]string{"Egg", "tomato", "EGG", "scallion", "green onion"})
		assert.Equal(t, []string{"egg", "tomato", "green onion"}, got)
	})

	t.Run("synonyms collapse to one entry", func(t *testing.T) {
		got := n.NormalizeSet([]string{"eggs", "egg"})
		assert.Equal(t, []string{"egg"}, got)
	})

	t.Run("blanks are dropped", func(t *testing.T) {
		got := n.NormalizeSet([]string{"", "  ", "rice"})
		assert.Equal(t, []string{"rice"}, got)
	})

	t.Run("all blank yields empty set not error", func(t *testing.T) {
		got := n.NormalizeSet([]string{"", "   "})
		assert.Empty(t, got)
	})
}
