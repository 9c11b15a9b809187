package ws

import (
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/maximlprive1990/mainnet-mini-mining-game/pkg/auth"
)

const (
	pongWait   = 60 * time.Second
	pingPeriod = 45 * time.Second
)

// ServeWS upgrades the request and keeps the connection registered for
// the authenticated account. Browsers cannot set headers on websocket
// requests, so the token travels as a query parameter.
func ServeWS(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := r.URL.Query().Get("token")
		if token == "" {
			http.Error(w, "token required", http.StatusUnauthorized)
			return
		}

		jwtService := &auth.JWTService{}
		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}
		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		allowedOrigin := os.Getenv("ALLOWED_ORIGIN")
		upgrader := websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				if allowedOrigin == "" {
					return true
				}
				return r.Header.Get("Origin") == allowedOrigin
			},
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			zap.L().Warn("ws upgrade failed", zap.Error(err))
			return
		}

		c := newClient(userID, conn)
		hub.register(c)
		go c.writePump(hub)
		go readPump(hub, c)
	}
}

// readPump reads until the peer goes away, refreshing the deadline on
// pongs, then unregisters the client. That closes its send queue and
// stops the write pump.
func readPump(hub *Hub, c *client) {
	defer hub.unregister(c)

	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
