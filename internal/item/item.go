// Package item defines the lost/found report model shared by the matching
// engine, the stores and the event payloads. Items are created by the host
// submission workflow and handed to the matcher exactly once; this package
// only validates shape, it never mutates items.
package item

import (
	"errors"
	"fmt"
	"time"
)

// Type tags a report as a lost or a found item.
type Type string

const (
	TypeLost  Type = "lost"
	TypeFound Type = "found"
)

// Opposite returns the counterpart type used for candidate search.
func (t Type) Opposite() Type {
	if t == TypeLost {
		return TypeFound
	}
	return TypeLost
}

// Valid reports whether t is one of the two known types.
func (t Type) Valid() bool {
	return t == TypeLost || t == TypeFound
}

// Status is the lifecycle state of an item. Only active items are
// considered for matching; the other states are set by the host when a
// report is resolved or taken down.
type Status string

const (
	StatusActive    Status = "active"
	StatusRecovered Status = "recovered"
	StatusRemoved   Status = "removed"
)

// Item is a single lost or found report.
type Item struct {
	ID          string    `json:"id"`
	Type        Type      `json:"type"`
	Category    string    `json:"category"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Status      Status    `json:"status"`
	OwnerID     string    `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ErrInvalid is returned when an item is missing fields the matching
// engine scores on. Scoring against empty strings would produce
// misleadingly high similarity, so incomplete items are rejected outright.
var ErrInvalid = errors.New("item: invalid item")

// Validate checks that the fields required for matching are present.
func Validate(it Item) error {
	switch {
	case it.ID == "":
		return fmt.Errorf("%w: missing id", ErrInvalid)
	case !it.Type.Valid():
		return fmt.Errorf("%w: bad type %q", ErrInvalid, it.Type)
	case it.Category == "":
		return fmt.Errorf("%w: missing category", ErrInvalid)
	case it.Title == "":
		return fmt.Errorf("%w: missing title", ErrInvalid)
	case it.Description == "":
		return fmt.Errorf("%w: missing description", ErrInvalid)
	}
	return nil
}
