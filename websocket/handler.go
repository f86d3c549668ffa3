package websocket

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleWebSocket upgrades the connection and registers the client with
// the hub. userID may be empty; such clients still receive broadcast
// store events, just not per-user notification pushes.
func HandleWebSocket(c echo.Context, hub *Hub, userID string) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	client := &Client{
		UserID: userID,
		conn:   conn,
		send:   make(chan Message, 16),
	}
	hub.register <- client
	client.send <- Message{
		Type:    "connected",
		Message: "WebSocket connection established",
	}

	go client.writePump()
	go client.readPump(hub)

	return nil
}

// writePump is the connection's single writer. It exits when the hub
// closes the send channel or a write fails.
func (c *Client) writePump() {
	defer c.conn.Close()
	for msg := range c.send {
		if err := c.conn.WriteJSON(msg); err != nil {
			break
		}
	}
}

// readPump exists only to detect disconnects; clients do not send
// anything the server acts on.
func (c *Client) readPump(hub *Hub) {
	defer func() {
		hub.unregister <- c
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
}
