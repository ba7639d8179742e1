package match

import "strings"

// Similarity computes token-set (Jaccard) overlap between two free-text
// strings: |intersection| / |union| over lowercased whitespace tokens,
// with duplicate tokens collapsed. The result is in [0,1], symmetric and
// deterministic. When both inputs tokenize to the empty set the 0/0 edge
// case is defined as 0.0 (no information).
func Similarity(a, b string) float64 {
	setA := tokenSet(a)
	setB := tokenSet(b)

	if len(setA) == 0 && len(setB) == 0 {
		return 0.0
	}

	inter := 0
	for tok := range setA {
		if setB[tok] {
			inter++
		}
	}
	union := len(setA) + len(setB) - inter

	return float64(inter) / float64(union)
}

// tokenSet lowercases text and splits it on whitespace into a set.
func tokenSet(text string) map[string]bool {
	fields := strings.Fields(strings.ToLower(text))
	set := make(map[string]bool, len(fields))
	for _, f := range fields {
		set[f] = true
	}
	return set
}
