package match

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSimilarity_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"red backpack", "blue backpack"},
		{"iPhone 13 black", "black iPhone"},
		{"", "wallet"},
		{"keys on a ring", "ring of keys"},
	}

	for _, p := range pairs {
		ab := Similarity(p[0], p[1])
		ba := Similarity(p[1], p[0])
		if !almostEqual(ab, ba) {
			t.Errorf("Similarity(%q, %q)=%v but reversed=%v", p[0], p[1], ab, ba)
		}
	}
}

func TestSimilarity_IdenticalText(t *testing.T) {
	texts := []string{"wallet", "brown leather wallet", "iPhone 13 BLACK"}
	for _, text := range texts {
		if got := Similarity(text, text); !almostEqual(got, 1.0) {
			t.Errorf("Similarity(%q, %q) = %v, want 1.0", text, text, got)
		}
	}
}

func TestSimilarity_PartialOverlap(t *testing.T) {
	// {red, backpack} vs {blue, backpack}: intersection {backpack} = 1,
	// union {red, blue, backpack} = 3.
	got := Similarity("red backpack", "blue backpack")
	want := 1.0 / 3.0
	if !almostEqual(got, want) {
		t.Errorf("Similarity = %v, want %v", got, want)
	}
}

func TestSimilarity_NoOverlap(t *testing.T) {
	if got := Similarity("umbrella", "wallet keys"); !almostEqual(got, 0.0) {
		t.Errorf("Similarity = %v, want 0.0", got)
	}
}

func TestSimilarity_BothEmpty(t *testing.T) {
	// The 0/0 edge case is defined as 0.0 (no information).
	if got := Similarity("", ""); !almostEqual(got, 0.0) {
		t.Errorf("Similarity(\"\", \"\") = %v, want 0.0", got)
	}
	if got := Similarity("   ", "\t\n"); !almostEqual(got, 0.0) {
		t.Errorf("Similarity(whitespace) = %v, want 0.0", got)
	}
}

func TestSimilarity_OneEmpty(t *testing.T) {
	if got := Similarity("", "wallet"); !almostEqual(got, 0.0) {
		t.Errorf("Similarity = %v, want 0.0", got)
	}
}

func TestSimilarity_CaseInsensitive(t *testing.T) {
	if got := Similarity("Black iPhone", "black IPHONE"); !almostEqual(got, 1.0) {
		t.Errorf("Similarity = %v, want 1.0", got)
	}
}

func TestSimilarity_DuplicateTokensCollapse(t *testing.T) {
	// Set semantics, not multiset: repeated tokens count once.
	if got := Similarity("keys keys keys", "keys"); !almostEqual(got, 1.0) {
		t.Errorf("Similarity = %v, want 1.0", got)
	}
}
