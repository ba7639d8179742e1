package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/reclaim/lostfound-app/internal/item"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("store: not found")

// ItemStore manages lost/found reports in PostgreSQL.
type ItemStore struct {
	db *sql.DB
}

// NewItemStore creates an item store backed by the given database handle.
func NewItemStore(db *sql.DB) *ItemStore {
	return &ItemStore{db: db}
}

// Upsert inserts an item, or refreshes its mutable columns if the id
// already exists. The matcher calls this when consuming item.created
// events so its view of the item store stays current.
func (s *ItemStore) Upsert(ctx context.Context, it item.Item) error {
	const query = `
		INSERT INTO items (id, type, category, title, description, location, status, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE
		SET status = EXCLUDED.status, updated_at = EXCLUDED.updated_at`

	_, err := s.db.ExecContext(ctx, query,
		it.ID, it.Type, it.Category, it.Title, it.Description,
		it.Location, it.Status, it.OwnerID, it.CreatedAt, it.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("store: upsert item %s: %w", it.ID, err)
	}
	return nil
}

// Get retrieves a single item by id.
func (s *ItemStore) Get(ctx context.Context, id string) (item.Item, error) {
	const query = `
		SELECT id, type, category, title, description, location, status, owner_id, created_at, updated_at
		FROM items
		WHERE id = $1`

	var it item.Item
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&it.ID, &it.Type, &it.Category, &it.Title, &it.Description,
		&it.Location, &it.Status, &it.OwnerID, &it.CreatedAt, &it.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return item.Item{}, fmt.Errorf("%w: item %s", ErrNotFound, id)
	}
	if err != nil {
		return item.Item{}, fmt.Errorf("store: get item %s: %w", id, err)
	}
	return it, nil
}

// ListActive returns active items of the given type and category in
// creation order. This is the candidate-search read path.
func (s *ItemStore) ListActive(ctx context.Context, typ item.Type, category string) ([]item.Item, error) {
	const query = `
		SELECT id, type, category, title, description, location, status, owner_id, created_at, updated_at
		FROM items
		WHERE type = $1 AND category = $2 AND status = 'active'
		ORDER BY created_at ASC`

	rows, err := s.db.QueryContext(ctx, query, typ, category)
	if err != nil {
		return nil, fmt.Errorf("store: list active: %w", err)
	}
	defer rows.Close()

	var items []item.Item
	for rows.Next() {
		var it item.Item
		if err := rows.Scan(
			&it.ID, &it.Type, &it.Category, &it.Title, &it.Description,
			&it.Location, &it.Status, &it.OwnerID, &it.CreatedAt, &it.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("store: scan item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: list active: %w", err)
	}
	return items, nil
}

// UpdateStatus changes an item's lifecycle state. Called by the host when
// a report is resolved or taken down; the matcher itself never mutates
// items.
func (s *ItemStore) UpdateStatus(ctx context.Context, id string, status item.Status) error {
	const query = `UPDATE items SET status = $2, updated_at = NOW() WHERE id = $1`

	res, err := s.db.ExecContext(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("store: update status %s: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: item %s", ErrNotFound, id)
	}
	return nil
}
