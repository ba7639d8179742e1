package match

import (
	"testing"

	"github.com/reclaim/lostfound-app/internal/item"
)

func TestFindCandidates_OppositeTypeOnly(t *testing.T) {
	newItem := testItem(item.TypeLost, "electronics", "iPhone", "cracked", "library")
	pool := []item.Item{
		testItem(item.TypeLost, "electronics", "other lost phone", "x", "y"),
		testItem(item.TypeFound, "electronics", "found phone", "x", "y"),
	}

	got := FindCandidates(newItem, pool)
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}
	if got[0].Type != item.TypeFound {
		t.Errorf("candidate has type %s, want found", got[0].Type)
	}
}

func TestFindCandidates_SameCategoryOnly(t *testing.T) {
	newItem := testItem(item.TypeLost, "electronics", "iPhone", "cracked", "library")
	pool := []item.Item{
		testItem(item.TypeFound, "bags", "backpack", "x", "y"),
		testItem(item.TypeFound, "electronics", "found phone", "x", "y"),
	}

	got := FindCandidates(newItem, pool)
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}
	if got[0].Category != "electronics" {
		t.Errorf("candidate has category %s, want electronics", got[0].Category)
	}
}

func TestFindCandidates_ActiveOnly(t *testing.T) {
	newItem := testItem(item.TypeLost, "electronics", "iPhone", "cracked", "library")

	recovered := testItem(item.TypeFound, "electronics", "recovered phone", "x", "y")
	recovered.Status = item.StatusRecovered
	removed := testItem(item.TypeFound, "electronics", "removed phone", "x", "y")
	removed.Status = item.StatusRemoved
	active := testItem(item.TypeFound, "electronics", "active phone", "x", "y")

	got := FindCandidates(newItem, []item.Item{recovered, removed, active})
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}
	if got[0].Status != item.StatusActive {
		t.Errorf("candidate has status %s, want active", got[0].Status)
	}
}

func TestFindCandidates_NeverReturnsSelf(t *testing.T) {
	newItem := testItem(item.TypeLost, "electronics", "iPhone", "cracked", "library")

	// Same id but opposite type: still excluded, an item cannot match itself.
	self := newItem
	self.Type = item.TypeFound

	got := FindCandidates(newItem, []item.Item{self})
	if len(got) != 0 {
		t.Errorf("expected no candidates, got %d", len(got))
	}
}

func TestFindCandidates_PreservesOrder(t *testing.T) {
	newItem := testItem(item.TypeLost, "electronics", "iPhone", "cracked", "library")
	first := testItem(item.TypeFound, "electronics", "first", "x", "y")
	second := testItem(item.TypeFound, "electronics", "second", "x", "y")

	got := FindCandidates(newItem, []item.Item{first, second})
	if len(got) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(got))
	}
	if got[0].ID != first.ID || got[1].ID != second.ID {
		t.Errorf("candidate order changed: %s, %s", got[0].ID, got[1].ID)
	}
}

func TestFindCandidates_EmptyPool(t *testing.T) {
	newItem := testItem(item.TypeLost, "electronics", "iPhone", "cracked", "library")
	if got := FindCandidates(newItem, nil); len(got) != 0 {
		t.Errorf("expected no candidates from empty pool, got %d", len(got))
	}
}
