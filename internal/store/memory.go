package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/reclaim/lostfound-app/internal/item"
	"github.com/reclaim/lostfound-app/internal/match"
)

// MemoryItemStore is an in-memory item store with the same read surface as
// the PostgreSQL one. Insertion order is preserved, matching the Postgres
// created_at ordering, so candidate iteration is deterministic in tests.
type MemoryItemStore struct {
	mu    sync.RWMutex
	items []item.Item
	byID  map[string]int
}

// NewMemoryItemStore creates an empty in-memory item store.
func NewMemoryItemStore() *MemoryItemStore {
	return &MemoryItemStore{byID: make(map[string]int)}
}

// Upsert inserts or replaces an item.
func (s *MemoryItemStore) Upsert(_ context.Context, it item.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx, ok := s.byID[it.ID]; ok {
		s.items[idx] = it
		return nil
	}
	s.byID[it.ID] = len(s.items)
	s.items = append(s.items, it)
	return nil
}

// Get retrieves an item by id.
func (s *MemoryItemStore) Get(_ context.Context, id string) (item.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.byID[id]
	if !ok {
		return item.Item{}, fmt.Errorf("%w: item %s", ErrNotFound, id)
	}
	return s.items[idx], nil
}

// ListActive returns active items of the given type and category in
// insertion order.
func (s *MemoryItemStore) ListActive(_ context.Context, typ item.Type, category string) ([]item.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []item.Item
	for _, it := range s.items {
		if it.Type == typ && it.Category == category && it.Status == item.StatusActive {
			out = append(out, it)
		}
	}
	return out, nil
}

// MemoryMatchStore is an append-only in-memory match store.
type MemoryMatchStore struct {
	mu      sync.RWMutex
	matches []match.Match

	// FailAppend, when set, makes Append return this error. Used by tests
	// to exercise partial-application behaviour.
	FailAppend error

	// FailAfter delays the FailAppend error until this many matches have
	// been stored, so tests can observe appends that succeeded before the
	// failure. Zero means fail immediately.
	FailAfter int
}

// NewMemoryMatchStore creates an empty in-memory match store.
func NewMemoryMatchStore() *MemoryMatchStore {
	return &MemoryMatchStore{}
}

// Append stores a match.
func (s *MemoryMatchStore) Append(_ context.Context, m match.Match) (match.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailAppend != nil && len(s.matches) >= s.FailAfter {
		return match.Match{}, s.FailAppend
	}
	s.matches = append(s.matches, m)
	return m, nil
}

// All returns a copy of every stored match in append order.
func (s *MemoryMatchStore) All() []match.Match {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]match.Match, len(s.matches))
	copy(out, s.matches)
	return out
}
