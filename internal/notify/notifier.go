// Package notify delivers newly created matches to the owning users over
// NATS. Delivery is fire-and-forget: the matcher does not block on
// confirmation, and a user without a live gateway session simply misses
// the push (the match itself is already persisted).
package notify

import (
	"context"
	"encoding/json"
	"log"

	"github.com/reclaim/lostfound-app/internal/item"
	"github.com/reclaim/lostfound-app/internal/match"
	"github.com/reclaim/lostfound-app/internal/messaging"
	"github.com/reclaim/lostfound-app/internal/metrics"
)

// MatchFoundEvent is the payload published to match.found.<user_id> when
// the engine records a match against one of the user's items.
type MatchFoundEvent struct {
	Match     match.Match `json:"match"`
	NewItem   item.Item   `json:"new_item"`
	OtherItem item.Item   `json:"other_item"`
}

// ItemResolver looks up the counterpart item of a match so the event can
// carry both reports.
type ItemResolver interface {
	Get(ctx context.Context, id string) (item.Item, error)
}

// Notifier publishes match events over NATS.
type Notifier struct {
	nats     *messaging.NATSClient
	resolver ItemResolver
}

// NewNotifier creates a NATS-backed notifier. resolver is used to load the
// "other" item of each match for the event payload.
func NewNotifier(nats *messaging.NATSClient, resolver ItemResolver) *Notifier {
	return &Notifier{nats: nats, resolver: resolver}
}

// Notify publishes one MatchFoundEvent per match, addressed to the owner
// of the item that is not newItem. Errors are logged and absorbed; the
// engine never sees a delivery failure.
func (n *Notifier) Notify(newItem item.Item, matches []match.Match) {
	ctx := context.Background()

	for _, m := range matches {
		otherID := m.FoundItemID
		if otherID == newItem.ID {
			otherID = m.LostItemID
		}

		other, err := n.resolver.Get(ctx, otherID)
		if err != nil {
			log.Printf("[notify] match=%s resolve item %s: %v", m.ID, otherID, err)
			metrics.NotificationsTotal.WithLabelValues("failed").Inc()
			continue
		}

		event := MatchFoundEvent{Match: m, NewItem: newItem, OtherItem: other}
		data, err := json.Marshal(event)
		if err != nil {
			log.Printf("[notify] marshal event for match=%s: %v", m.ID, err)
			metrics.NotificationsTotal.WithLabelValues("failed").Inc()
			continue
		}

		if err := n.nats.PublishMatchFound(other.OwnerID, data); err != nil {
			log.Printf("[notify] publish match=%s to user=%s: %v", m.ID, other.OwnerID, err)
			metrics.NotificationsTotal.WithLabelValues("failed").Inc()
			continue
		}

		metrics.NotificationsTotal.WithLabelValues("published").Inc()
		log.Printf("[notify] match=%s delivered to user=%s (confidence=%.2f)",
			m.ID, other.OwnerID, m.Confidence)
	}
}
