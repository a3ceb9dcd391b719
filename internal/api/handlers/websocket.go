package handlers

import (
	"net/http"
	"time"

	"inventory-system/internal/api/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Origin checking is handled by the CORS middleware for the REST
		// surface; WS clients authenticate with a token instead.
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

const (
	wsWriteWait  = 10 * time.Second
	wsPingPeriod = 30 * time.Second
)

// InventoryUpdatesWebSocket streams inventory events (product CRUD, stock
// adjustments) to an authenticated client until it disconnects.
func InventoryUpdatesWebSocket(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			services.GetLogger().Error("WebSocket upgrade failed: %v", err)
			return
		}
		defer conn.Close()

		username := c.GetString("username")
		services.GetLogger().Info("Inventory WebSocket connected - user: %s, client_ip: %s",
			username, getClientIP(c))

		id, events := services.EventHub().Subscribe()
		defer services.EventHub().Unsubscribe(id)

		// Reader goroutine: we never expect client messages, but reading is
		// required to notice closes.
		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		ticker := time.NewTicker(wsPingPeriod)
		defer ticker.Stop()

		for {
			select {
			case event, ok := <-events:
				if !ok {
					return
				}
				conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
				if err := conn.WriteJSON(event); err != nil {
					services.GetLogger().Warning("WebSocket write failed for %s: %v", username, err)
					return
				}

			case <-ticker.C:
				conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}

			case <-done:
				services.GetLogger().Info("Inventory WebSocket disconnected - user: %s", username)
				return

			case <-c.Request.Context().Done():
				return
			}
		}
	}
}
