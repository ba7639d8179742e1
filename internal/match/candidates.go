package match

import "github.com/reclaim/lostfound-app/internal/item"

// FindCandidates filters items down to plausible counterparts for a new
// report: opposite type, same category, active status, and never the new
// item itself. Input order is preserved; downstream scoring does not
// depend on it.
func FindCandidates(newItem item.Item, items []item.Item) []item.Item {
	want := newItem.Type.Opposite()

	var candidates []item.Item
	for _, it := range items {
		if it.ID == newItem.ID {
			continue
		}
		if it.Type != want {
			continue
		}
		if it.Category != newItem.Category {
			continue
		}
		if it.Status != item.StatusActive {
			continue
		}
		candidates = append(candidates, it)
	}
	return candidates
}
