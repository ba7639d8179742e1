package match

import "github.com/reclaim/lostfound-app/internal/item"

// Scoring weights. They sum to 1.0; category equality carries the largest
// single factor after title text since cross-category pairs are filtered
// out before scoring anyway.
const (
	weightCategory    = 0.3
	weightTitle       = 0.4
	weightDescription = 0.2
	weightLocation    = 0.1
)

// ConfidenceThreshold is the minimum score (strict, not inclusive) at
// which a candidate pair becomes a persisted match.
const ConfidenceThreshold = 0.6

// Confidence estimates how likely two opposite-type reports refer to the
// same physical object. It combines category equality with title,
// description and location similarity into a weighted score in [0,1].
func Confidence(a, b item.Item) float64 {
	score := 0.0
	if a.Category == b.Category {
		score += weightCategory
	}
	score += weightTitle * Similarity(a.Title, b.Title)
	score += weightDescription * Similarity(a.Description, b.Description)
	score += weightLocation * Similarity(a.Location, b.Location)

	// The weights sum to 1.0 so the clamp is a no-op today, but it keeps
	// the [0,1] contract intact if the weights ever change.
	if score > 1.0 {
		score = 1.0
	}
	return score
}
