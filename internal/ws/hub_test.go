package ws

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
)

// dialTestConn upgrades one client/server connection pair and registers
// the server side on the hub.
func dialTestConn(t *testing.T, hub *Hub, userID uuid.UUID) *websocket.Conn {
	upgrader := websocket.Upgrader{}
	registered := make(chan struct{})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		assert.NoError(t, err)
		c := newClient(userID, conn)
		hub.register(c)
		go c.writePump(hub)
		close(registered)
	}))
	t.Cleanup(server.Close)

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	client, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	assert.NoError(t, err)
	if resp != nil {
		defer resp.Body.Close()
	}
	t.Cleanup(func() { _ = client.Close() })

	<-registered
	return client
}

func TestHubSend(t *testing.T) {
	hub := NewHub()
	userID := uuid.New()
	client := dialTestConn(t, hub, userID)

	hub.Send(userID, "deposit_verified", map[string]interface{}{
		"transaction_id": "79927398713",
		"amount":         25.5,
	})

	_ = client.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := client.ReadMessage()
	assert.NoError(t, err)

	var event Event
	assert.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, "deposit_verified", event.Type)
	payload, ok := event.Payload.(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "79927398713", payload["transaction_id"])
}

func TestHubSendToUnknownAccount(t *testing.T) {
	hub := NewHub()

	// No connections registered, the event is dropped silently.
	hub.Send(uuid.New(), "click_settled", nil)
}

func TestHubFanOut(t *testing.T) {
	hub := NewHub()
	userID := uuid.New()
	first := dialTestConn(t, hub, userID)
	second := dialTestConn(t, hub, userID)

	assert.Equal(t, 2, hub.Connections(userID))

	hub.Send(userID, "offline_rewards", map[string]interface{}{"amount": 4.8})

	for _, client := range []*websocket.Conn{first, second} {
		_ = client.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, data, err := client.ReadMessage()
		assert.NoError(t, err)

		var event Event
		assert.NoError(t, json.Unmarshal(data, &event))
		assert.Equal(t, "offline_rewards", event.Type)
	}
}

func TestHubDropsDeadConnections(t *testing.T) {
	hub := NewHub()
	userID := uuid.New()
	client := dialTestConn(t, hub, userID)

	assert.Equal(t, 1, hub.Connections(userID))
	_ = client.Close()

	// Writes to a closed connection eventually fail and unregister it.
	for i := 0; i < 10 && hub.Connections(userID) > 0; i++ {
		hub.Send(userID, "click_settled", nil)
		time.Sleep(10 * time.Millisecond)
	}
	assert.Equal(t, 0, hub.Connections(userID))
}

func TestHubUnregisterRemovesAccount(t *testing.T) {
	hub := NewHub()
	userID := uuid.New()

	c := newClient(userID, &websocket.Conn{})
	hub.register(c)
	assert.Equal(t, 1, hub.Connections(userID))

	hub.unregister(c)
	assert.Equal(t, 0, hub.Connections(userID))

	// A second unregister of the same client is a no-op.
	hub.unregister(c)
	assert.Equal(t, 0, hub.Connections(userID))
}

func TestHubConcurrentSends(t *testing.T) {
	hub := NewHub()
	userID := uuid.New()
	client := dialTestConn(t, hub, userID)

	payload := map[string]interface{}{"blob": strings.Repeat("x", 64*1024)}

	const senders = 8
	var wg sync.WaitGroup
	for i := 0; i < senders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			hub.Send(userID, "click_settled", payload)
		}()
	}
	wg.Wait()

	for i := 0; i < senders; i++ {
		_ = client.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, data, err := client.ReadMessage()
		assert.NoError(t, err)

		var event Event
		assert.NoError(t, json.Unmarshal(data, &event))
		assert.Equal(t, "click_settled", event.Type)
	}
	assert.Equal(t, 1, hub.Connections(userID))
}
