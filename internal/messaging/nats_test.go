package messaging

import (
	"testing"
	"time"
)

// newTestClient connects to a local NATS server. Tests are skipped if NATS
// is unavailable.
func newTestClient(t *testing.T) *NATSClient {
	t.Helper()

	config := DefaultNATSConfig()
	config.Name = "lostfound-test"
	client, err := NewNATSClient(config)
	if err != nil {
		t.Skipf("skipping: NATS not available: %v", err)
	}
	t.Cleanup(client.Close)

	return client
}

func TestPublishSubscribeItemCreated(t *testing.T) {
	client := newTestClient(t)

	received := make(chan []byte, 1)
	if err := client.SubscribeItemCreated(func(data []byte) {
		received <- data
	}); err != nil {
		t.Fatalf("SubscribeItemCreated() error: %v", err)
	}

	if err := client.PublishItemCreated([]byte(`{"id":"test-item"}`)); err != nil {
		t.Fatalf("PublishItemCreated() error: %v", err)
	}

	select {
	case data := <-received:
		if string(data) != `{"id":"test-item"}` {
			t.Errorf("received %s, want the published payload", data)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for item.created delivery")
	}
}

// A user's second connection must keep receiving after the first
// connection's subscription is torn down: subscriptions are keyed per
// connection, so one connection's cleanup cannot remove another's.
func TestMatchFoundSubscriptionPerConnection(t *testing.T) {
	client := newTestClient(t)

	oldConn := make(chan []byte, 1)
	newConn := make(chan []byte, 1)

	if err := client.SubscribeMatchFound("test_user", "conn-1", func(data []byte) {
		oldConn <- data
	}); err != nil {
		t.Fatalf("SubscribeMatchFound(conn-1) error: %v", err)
	}
	if err := client.SubscribeMatchFound("test_user", "conn-2", func(data []byte) {
		newConn <- data
	}); err != nil {
		t.Fatalf("SubscribeMatchFound(conn-2) error: %v", err)
	}

	// The first connection goes away; only its own subscription is removed.
	if err := client.UnsubscribeMatchFound("conn-1"); err != nil {
		t.Fatalf("UnsubscribeMatchFound(conn-1) error: %v", err)
	}

	if err := client.PublishMatchFound("test_user", []byte(`{"match":"m1"}`)); err != nil {
		t.Fatalf("PublishMatchFound() error: %v", err)
	}

	select {
	case data := <-newConn:
		if string(data) != `{"match":"m1"}` {
			t.Errorf("received %s, want the published payload", data)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("surviving connection did not receive the match notification")
	}

	select {
	case data := <-oldConn:
		t.Errorf("unsubscribed connection received %s", data)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestUnsubscribeUnknownConnection(t *testing.T) {
	client := newTestClient(t)

	if err := client.UnsubscribeMatchFound("conn-missing"); err == nil {
		t.Error("expected an error for an unknown connection id")
	}
}
