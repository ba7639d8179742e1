package match

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/reclaim/lostfound-app/internal/item"
	"github.com/reclaim/lostfound-app/internal/metrics"
)

// Engine runs the matching pipeline for newly created items. It reads the
// item store, appends to the match store and emits notifications; it never
// mutates items or existing matches.
type Engine struct {
	items    ItemStore
	matches  MatchStore
	notifier Notifier
	now      func() time.Time
}

// NewEngine creates a matching engine over the given collaborators.
// notifier may be nil, in which case matches are recorded but not delivered.
func NewEngine(items ItemStore, matches MatchStore, notifier Notifier) *Engine {
	return &Engine{
		items:    items,
		matches:  matches,
		notifier: notifier,
		now:      time.Now,
	}
}

// OnItemCreated is the engine's single entry point. The host calls it once
// after persisting a new item; it returns the newly created matches
// (possibly empty) for the host to include in its creation response.
//
// Candidates are evaluated and persisted independently: if the store fails
// partway through, matches appended so far stay in place and are returned
// alongside the wrapped error. Re-running the pipeline for the same pair
// of items produces the same confidence but a new match record; the
// confirm/reject workflow absorbs duplicates.
func (e *Engine) OnItemCreated(ctx context.Context, newItem item.Item) ([]Match, error) {
	if err := item.Validate(newItem); err != nil {
		return nil, err
	}

	counterparts, err := e.items.ListActive(ctx, newItem.Type.Opposite(), newItem.Category)
	if err != nil {
		return nil, fmt.Errorf("match: list candidates: %w", err)
	}

	candidates := FindCandidates(newItem, counterparts)
	metrics.CandidatesScanned.Observe(float64(len(candidates)))

	var created []Match
	for _, cand := range candidates {
		score := Confidence(newItem, cand)
		if score <= ConfidenceThreshold {
			continue
		}

		m := e.buildMatch(newItem, cand, score)
		stored, err := e.matches.Append(ctx, m)
		if err != nil {
			// Partial application is acceptable: already-appended
			// matches are independent and stay in place.
			return created, fmt.Errorf("%w: append %s/%s: %v",
				ErrStoreUnavailable, m.LostItemID, m.FoundItemID, err)
		}

		metrics.MatchesCreated.Inc()
		metrics.MatchConfidence.Observe(stored.Confidence)
		created = append(created, stored)
	}

	if len(created) > 0 && e.notifier != nil {
		e.notifier.Notify(newItem, created)
	}

	log.Printf("[engine] item=%s type=%s category=%q candidates=%d matches=%d",
		newItem.ID, newItem.Type, newItem.Category, len(candidates), len(created))

	return created, nil
}

// buildMatch constructs a pending match with the pair normalized by type.
func (e *Engine) buildMatch(a, b item.Item, score float64) Match {
	lostID, foundID := a.ID, b.ID
	if a.Type == item.TypeFound {
		lostID, foundID = b.ID, a.ID
	}

	return Match{
		ID:          uuid.New().String(),
		LostItemID:  lostID,
		FoundItemID: foundID,
		Confidence:  score,
		Status:      StatusPending,
		Method:      MethodAI,
		CreatedAt:   e.now(),
	}
}
