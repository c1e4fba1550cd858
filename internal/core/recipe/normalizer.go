package recipe

import (
	"strings"
)

// defaultSynonyms folds common ingredient aliases onto one canonical term.
// Keys and values are already in normalized form.
var defaultSynonyms = map[string]string{
	"scallion":      "green onion",
	"scallions":     "green onion",
	"spring onion":  "green onion",
	"capsicum":      "bell pepper",
	"coriander":     "cilantro",
	"aubergine":     "eggplant",
	"courgette":     "zucchini",
	"garbanzo bean": "chickpea",
	"eggs":          "egg",
	"tomatoes":      "tomato",
	"onions":        "onion",
	"potatoes":      "potato",
	"carrots":       "carrot",
	"chilli":        "chili",
}

// Normalizer canonicalizes free-text ingredient terms so that matching is
// insensitive to casing, spacing and common aliases.
type Normalizer struct {
	synonyms map[string]string
}

// NewNormalizer creates a Normalizer with the default synonym table.
func NewNormalizer() *Normalizer {
	return &Normalizer{synonyms: defaultSynonyms}
}

// NormalizeTerm canonicalizes a single term: trim, lowercase, collapse inner
// whitespace, then fold synonyms. Returns "" for blank input.
func (n *Normalizer) NormalizeTerm(raw string) string {
	term := strings.ToLower(strings.TrimSpace(raw))
	if term == "" {
		return ""
	}
	term = strings.Join(strings.Fields(term), " ")
	if canonical, ok := n.synonyms[term]; ok {
		return canonical
	}
	return term
}

// NormalizeSet canonicalizes a list of terms, dropping blanks and duplicates
// while preserving first-seen order. Normalization never fails; an all-blank
// input simply yields an empty set, which the pipeline rejects later.
func (n *Normalizer) NormalizeSet(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		term := n.NormalizeTerm(r)
		if term == "" {
			continue
		}
		if _, dup := seen[term]; dup {
			continue
		}
		seen[term] = struct{}{}
		out = append(out, term)
	}
	return out
}
