package match

import (
	"context"
	"encoding/json"
	"log"

	"github.com/reclaim/lostfound-app/internal/item"
	"github.com/reclaim/lostfound-app/internal/messaging"
	"github.com/reclaim/lostfound-app/internal/metrics"
)

// ItemWriter is the write side of the item store the service uses to keep
// its view current with incoming item.created events.
type ItemWriter interface {
	Upsert(ctx context.Context, it item.Item) error
}

// TagIndexer records an item in the search index. Indexing is ancillary:
// failures are logged and never fail a matching run.
type TagIndexer interface {
	Add(ctx context.Context, it item.Item) error
}

// Service is the background matching service. It consumes item.created
// events from NATS, mirrors the item into the store, indexes its tags and
// runs the matching engine.
type Service struct {
	engine *Engine
	nats   *messaging.NATSClient
	items  ItemWriter
	tags   TagIndexer
	ctx    context.Context
	cancel context.CancelFunc
}

// NewService creates a matching service around an engine. tags may be nil
// to disable search indexing.
func NewService(engine *Engine, nats *messaging.NATSClient, items ItemWriter, tags TagIndexer) *Service {
	ctx, cancel := context.WithCancel(context.Background())
	return &Service{
		engine: engine,
		nats:   nats,
		items:  items,
		tags:   tags,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start subscribes to the item.created subject.
func (s *Service) Start() error {
	if err := s.nats.SubscribeItemCreated(s.handleItemCreated); err != nil {
		return err
	}
	log.Println("[matcher] service started")
	return nil
}

// Stop shuts down the matching service.
func (s *Service) Stop() {
	s.cancel()
	log.Println("[matcher] service stopped")
}

// handleItemCreated runs the full pipeline for one new item: mirror it
// into the store, index its tags, then score and record matches.
func (s *Service) handleItemCreated(data []byte) {
	var it item.Item
	if err := json.Unmarshal(data, &it); err != nil {
		log.Printf("[matcher] invalid item.created payload: %v", err)
		return
	}

	ctx := s.ctx

	if err := s.items.Upsert(ctx, it); err != nil {
		log.Printf("[matcher] upsert item %s: %v", it.ID, err)
		return
	}

	if s.tags != nil {
		if err := s.tags.Add(ctx, it); err != nil {
			log.Printf("[matcher] index tags for %s: %v", it.ID, err)
		}
	}

	metrics.ItemsProcessed.WithLabelValues(string(it.Type)).Inc()

	matches, err := s.engine.OnItemCreated(ctx, it)
	if err != nil {
		log.Printf("[matcher] match run for %s: %v (matches recorded: %d)",
			it.ID, err, len(matches))
		return
	}
}
