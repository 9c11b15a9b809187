package ws

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	sendBufferSize = 32
)

// Event is the frame pushed to connected clients.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

// client pairs a connection with its outbound queue. writePump is the
// only goroutine that writes to the connection, which the gorilla
// contract requires.
type client struct {
	userID uuid.UUID
	conn   *websocket.Conn
	send   chan []byte
}

func newClient(userID uuid.UUID, conn *websocket.Conn) *client {
	return &client{
		userID: userID,
		conn:   conn,
		send:   make(chan []byte, sendBufferSize),
	}
}

// writePump drains the send queue and emits keepalive pings. It exits
// when the queue is closed by unregister or when a write fails, closing
// the connection either way.
func (c *client) writePump(hub *Hub) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		hub.unregister(c)
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Hub tracks the open websocket connections per account and fans
// events out to all of an account's connections.
type Hub struct {
	mu    sync.RWMutex
	conns map[uuid.UUID]map[*client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		conns: make(map[uuid.UUID]map[*client]struct{}),
	}
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.conns[c.userID] == nil {
		h.conns[c.userID] = make(map[*client]struct{})
	}
	h.conns[c.userID][c] = struct{}{}
}

// unregister removes the client and closes its queue exactly once; the
// membership check makes a second call a no-op. Closing the queue under
// the write lock cannot race a Send, which enqueues under the read lock.
func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.conns[c.userID]
	if !ok {
		return
	}
	if _, ok := set[c]; !ok {
		return
	}
	delete(set, c)
	if len(set) == 0 {
		delete(h.conns, c.userID)
	}
	close(c.send)
}

// Send queues an event for every open connection of the account. A
// connection whose queue is full is dropped rather than blocking the
// caller.
func (h *Hub) Send(userID uuid.UUID, event string, payload interface{}) {
	data, err := json.Marshal(Event{Type: event, Payload: payload})
	if err != nil {
		zap.L().Error("failed to marshal ws event", zap.String("event", event), zap.Error(err))
		return
	}

	var stalled []*client
	h.mu.RLock()
	for c := range h.conns[userID] {
		select {
		case c.send <- data:
		default:
			stalled = append(stalled, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range stalled {
		h.unregister(c)
	}
}

// Connections reports how many connections the account has open.
func (h *Hub) Connections(userID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns[userID])
}
