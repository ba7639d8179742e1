// Package match implements the item-matching engine: given a newly posted
// item it searches active counterpart reports, scores each pair by weighted
// textual and categorical similarity, persists matches above the confidence
// threshold and hands them to the notifier for real-time delivery.
package match

import (
	"context"
	"errors"
	"time"

	"github.com/reclaim/lostfound-app/internal/item"
)

// Status is the review state of a match. Matches are created pending;
// confirm/reject transitions are driven by user action in the host app,
// never by the engine.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusRejected  Status = "rejected"
)

// MethodAI tags matches produced by the heuristic scoring engine, so
// alternative matchers can coexist in the same store later.
const MethodAI = "ai"

// Match is one scored association between exactly one lost item and one
// found item. The pair is always normalized by type (lost first), never by
// creation order. A match is immutable after creation: a re-score creates
// a new record rather than mutating an old one.
type Match struct {
	ID          string    `json:"id"`
	LostItemID  string    `json:"lost_item_id"`
	FoundItemID string    `json:"found_item_id"`
	Confidence  float64   `json:"confidence"`
	Status      Status    `json:"status"`
	Method      string    `json:"method"`
	CreatedAt   time.Time `json:"created_at"`
}

// ErrStoreUnavailable wraps persistence failures from the match store.
// Matches appended before the failure stay in place; the engine never
// rolls back or retries.
var ErrStoreUnavailable = errors.New("match: store unavailable")

// ItemStore is the read-only view of the item store the engine needs.
type ItemStore interface {
	// ListActive returns active items of the given type and category in
	// store-iteration order.
	ListActive(ctx context.Context, typ item.Type, category string) ([]item.Item, error)
}

// MatchStore is the append-only match persistence the engine writes to.
type MatchStore interface {
	// Append persists a match and returns the stored record.
	Append(ctx context.Context, m Match) (Match, error)
}

// Notifier delivers newly created matches to the owning users' live
// sessions. Delivery is fire-and-forget: failures are absorbed by the
// implementation and never surface as engine errors.
type Notifier interface {
	Notify(newItem item.Item, matches []Match)
}
