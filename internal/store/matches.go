package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/reclaim/lostfound-app/internal/match"
)

// MatchStore manages match records in PostgreSQL. Matches are append-only
// from the matcher's perspective; status transitions belong to the host's
// confirm/reject workflow.
type MatchStore struct {
	db *sql.DB
}

// NewMatchStore creates a match store backed by the given database handle.
func NewMatchStore(db *sql.DB) *MatchStore {
	return &MatchStore{db: db}
}

// Append inserts a match record and returns it as stored. Duplicate pairs
// are allowed: re-running the engine over the same items produces a new
// row, not an update.
func (s *MatchStore) Append(ctx context.Context, m match.Match) (match.Match, error) {
	const query = `
		INSERT INTO matches (id, lost_item_id, found_item_id, confidence, status, method, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := s.db.ExecContext(ctx, query,
		m.ID, m.LostItemID, m.FoundItemID, m.Confidence, m.Status, m.Method, m.CreatedAt,
	)
	if err != nil {
		return match.Match{}, fmt.Errorf("store: append match: %w", err)
	}
	return m, nil
}

// ListForItem returns all matches referencing the given item id, newest
// first.
func (s *MatchStore) ListForItem(ctx context.Context, itemID string) ([]match.Match, error) {
	const query = `
		SELECT id, lost_item_id, found_item_id, confidence, status, method, created_at
		FROM matches
		WHERE lost_item_id = $1 OR found_item_id = $1
		ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, itemID)
	if err != nil {
		return nil, fmt.Errorf("store: list matches: %w", err)
	}
	defer rows.Close()

	return scanMatches(rows)
}

// UpdateStatus records a user's confirm/reject decision on a match.
func (s *MatchStore) UpdateStatus(ctx context.Context, id string, status match.Status) error {
	const query = `UPDATE matches SET status = $2 WHERE id = $1`

	res, err := s.db.ExecContext(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("store: update match %s: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: match %s", ErrNotFound, id)
	}
	return nil
}

func scanMatches(rows *sql.Rows) ([]match.Match, error) {
	var matches []match.Match
	for rows.Next() {
		var m match.Match
		if err := rows.Scan(
			&m.ID, &m.LostItemID, &m.FoundItemID, &m.Confidence,
			&m.Status, &m.Method, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("store: scan match: %w", err)
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: list matches: %w", err)
	}
	return matches, nil
}
