// Package gateway bridges NATS match notifications to live WebSocket
// clients. A client connects, identifies its user id with a hello frame,
// and from then on receives every match.found event addressed to that
// user. The gateway is stateless beyond the live connection table; missed
// events are not replayed (matches are persisted and can be listed by the
// host API).
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
	"github.com/google/uuid"

	"github.com/reclaim/lostfound-app/internal/messaging"
	"github.com/reclaim/lostfound-app/internal/metrics"
	"github.com/reclaim/lostfound-app/internal/session"
)

const (
	// helloTimeout bounds how long a fresh connection may sit silent
	// before identifying itself.
	helloTimeout = 10 * time.Second

	// touchInterval is how often a live connection refreshes its session
	// TTL in Redis.
	touchInterval = 30 * time.Second
)

// helloMsg is the first frame a client must send after connecting.
type helloMsg struct {
	Type   string `json:"type"` // must be "hello"
	UserID string `json:"user_id"`
}

// serverFrame is the envelope for frames pushed to the client.
type serverFrame struct {
	Type    string          `json:"type"` // "ready", "match_found"
	Payload json.RawMessage `json:"payload,omitempty"`
}

// conn is one live client connection. id distinguishes successive
// connections for the same user so a reconnect cannot tear down its
// replacement's subscriptions.
type conn struct {
	id      string
	userID  string
	netConn net.Conn
	writeMu sync.Mutex
}

func (c *conn) send(frame serverFrame) error {
	data, err := json.Marshal(frame)
	if err != nil {
		return err
	}
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return wsutil.WriteServerText(c.netConn, data)
}

// Server accepts WebSocket connections and forwards match notifications.
type Server struct {
	nats     *messaging.NATSClient
	sessions *session.Store

	mu    sync.Mutex
	conns map[string]*conn // userID -> connection
}

// NewServer creates a gateway over the given NATS client and session store.
func NewServer(nats *messaging.NATSClient, sessions *session.Store) *Server {
	return &Server{
		nats:     nats,
		sessions: sessions,
		conns:    make(map[string]*conn),
	}
}

// Handler returns the HTTP handler that upgrades requests to WebSocket.
func (s *Server) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		netConn, _, _, err := ws.UpgradeHTTP(r, w)
		if err != nil {
			log.Printf("[gateway] upgrade failed: %v", err)
			return
		}
		go s.serve(netConn)
	})
}

// serve runs one connection: handshake, registration, then a read loop
// that keeps the session alive until the client goes away.
func (s *Server) serve(netConn net.Conn) {
	defer netConn.Close()

	userID, err := s.awaitHello(netConn)
	if err != nil {
		log.Printf("[gateway] handshake failed: %v", err)
		return
	}

	c := &conn{id: uuid.New().String(), userID: userID, netConn: netConn}
	s.register(c)
	defer s.deregister(c)

	if err := c.send(serverFrame{Type: "ready"}); err != nil {
		return
	}

	log.Printf("[gateway] user=%s connected", userID)
	s.readLoop(c)
	log.Printf("[gateway] user=%s disconnected", userID)
}

// awaitHello reads and validates the identification frame.
func (s *Server) awaitHello(netConn net.Conn) (string, error) {
	netConn.SetReadDeadline(time.Now().Add(helloTimeout))
	defer netConn.SetReadDeadline(time.Time{})

	data, err := wsutil.ReadClientText(netConn)
	if err != nil {
		return "", err
	}

	var hello helloMsg
	if err := json.Unmarshal(data, &hello); err != nil {
		return "", err
	}
	if hello.Type != "hello" || hello.UserID == "" {
		return "", errBadHello
	}
	return hello.UserID, nil
}

var errBadHello = errors.New("gateway: expected hello frame with user_id")

// register wires a connection into the live table, the session store and
// the user's NATS subject. An existing connection for the same user is
// replaced.
func (s *Server) register(c *conn) {
	ctx := context.Background()

	s.mu.Lock()
	if old, ok := s.conns[c.userID]; ok {
		old.netConn.Close()
	}
	s.conns[c.userID] = c
	s.mu.Unlock()

	if err := s.sessions.Create(ctx, c.userID); err != nil {
		log.Printf("[gateway] session create user=%s: %v", c.userID, err)
	}

	err := s.nats.SubscribeMatchFound(c.userID, c.id, func(data []byte) {
		if err := c.send(serverFrame{Type: "match_found", Payload: data}); err != nil {
			log.Printf("[gateway] push to user=%s failed: %v", c.userID, err)
		}
	})
	if err != nil {
		log.Printf("[gateway] subscribe user=%s: %v", c.userID, err)
	}

	metrics.GatewayConnections.Inc()
}

// deregister tears down the connection's own subscription, and the shared
// session record only when this connection still owns the user entry. A
// connection that was replaced by a reconnect must not delete the session
// its successor just created.
func (s *Server) deregister(c *conn) {
	ctx := context.Background()

	s.mu.Lock()
	owner := s.conns[c.userID] == c
	if owner {
		delete(s.conns, c.userID)
	}
	s.mu.Unlock()

	if err := s.nats.UnsubscribeMatchFound(c.id); err != nil {
		log.Printf("[gateway] unsubscribe user=%s: %v", c.userID, err)
	}
	if owner {
		if err := s.sessions.Delete(ctx, c.userID); err != nil {
			log.Printf("[gateway] session delete user=%s: %v", c.userID, err)
		}
	}

	metrics.GatewayConnections.Dec()
}

// readLoop consumes client frames until the connection drops. Client
// frames only keep the session alive; all real traffic is server-push.
func (s *Server) readLoop(c *conn) {
	ctx := context.Background()
	lastTouch := time.Now()

	for {
		if _, err := wsutil.ReadClientText(c.netConn); err != nil {
			return
		}
		if time.Since(lastTouch) >= touchInterval {
			if err := s.sessions.Touch(ctx, c.userID); err != nil {
				log.Printf("[gateway] session touch user=%s: %v", c.userID, err)
			}
			lastTouch = time.Now()
		}
	}
}

// ConnCount returns the number of live connections.
func (s *Server) ConnCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.conns)
}
