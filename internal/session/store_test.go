package session

import (
	"context"
	"testing"
)

// newTestStore connects to a local Redis instance and cleans up test keys.
// Tests are skipped if Redis is unavailable.
func newTestStore(t *testing.T) (*Store, context.Context) {
	t.Helper()

	store, err := NewStore("localhost:6379", "gateway-test")
	if err != nil {
		t.Skipf("skipping: Redis not available: %v", err)
	}

	ctx := context.Background()
	cleanup := func() {
		iter := store.Client().Scan(ctx, 0, SessionPrefix+"test_*", 100).Iterator()
		for iter.Next(ctx) {
			store.Client().Del(ctx, iter.Val())
		}
	}
	cleanup()
	t.Cleanup(func() {
		cleanup()
		store.Close()
	})

	return store, ctx
}

func TestCreateAndGet(t *testing.T) {
	store, ctx := newTestStore(t)

	if err := store.Create(ctx, "test_user_1"); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	sess, err := store.Get(ctx, "test_user_1")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if sess == nil {
		t.Fatal("expected a session, got nil")
	}
	if sess.UserID != "test_user_1" {
		t.Errorf("UserID = %s, want test_user_1", sess.UserID)
	}
	if sess.Server != "gateway-test" {
		t.Errorf("Server = %s, want gateway-test", sess.Server)
	}
	if sess.ConnectedAt == 0 {
		t.Error("expected non-zero ConnectedAt")
	}
}

func TestGetMissing(t *testing.T) {
	store, ctx := newTestStore(t)

	sess, err := store.Get(ctx, "test_missing")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if sess != nil {
		t.Errorf("expected nil for missing session, got %+v", sess)
	}
}

func TestTouch(t *testing.T) {
	store, ctx := newTestStore(t)

	if err := store.Create(ctx, "test_user_2"); err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if err := store.Touch(ctx, "test_user_2"); err != nil {
		t.Fatalf("Touch() error: %v", err)
	}

	ttl, err := store.Client().TTL(ctx, SessionPrefix+"test_user_2").Result()
	if err != nil {
		t.Fatalf("TTL error: %v", err)
	}
	if ttl <= 0 || ttl > SessionTTL {
		t.Errorf("TTL = %v, want in (0, %v]", ttl, SessionTTL)
	}
}

func TestDelete(t *testing.T) {
	store, ctx := newTestStore(t)

	if err := store.Create(ctx, "test_user_3"); err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if err := store.Delete(ctx, "test_user_3"); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}

	sess, err := store.Get(ctx, "test_user_3")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if sess != nil {
		t.Errorf("expected nil after Delete, got %+v", sess)
	}
}
