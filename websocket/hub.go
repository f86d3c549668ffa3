package websocket

import (
	"github.com/gorilla/websocket"

	"github.com/hostelhub/hostelhub_backend/store"
)

// Message is the envelope sent to connected clients. The UI subscribes
// once and re-renders on every store mutation it receives.
type Message struct {
	Type    string       `json:"type"` // "connected", "store_event"
	Message string       `json:"message,omitempty"`
	Event   *store.Event `json:"event,omitempty"`
}

// Client represents a connected WebSocket client. UserID is the demo
// user the tab identifies as; it scopes notification events to their
// recipient. Every write to the connection goes through send and is
// drained by a single writer goroutine, since gorilla connections do not
// support concurrent writers.
type Client struct {
	UserID string
	conn   *websocket.Conn
	send   chan Message
}

// Hub maintains the set of active clients and fans store events out to
// them. It implements store.Subscriber. The client map is only touched
// on the Run goroutine.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	events     chan store.Event
}

// NewHub creates a new Hub instance.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		events:     make(chan store.Event, 64),
	}
}

// Run starts the hub's event loop.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
		case event := <-h.events:
			h.broadcast(event)
		}
	}
}

// OnStoreEvent queues a store mutation for broadcast. Delivery is
// asynchronous so store mutators never block on a slow client.
func (h *Hub) OnStoreEvent(event store.Event) {
	h.events <- event
}

// broadcast runs on the Run goroutine. Notification events only go to
// the recipient's connections; everything else is sent to every open tab
// so it can re-render its views. A client whose send buffer is full is
// dropped; closing its send channel stops the writer goroutine.
func (h *Hub) broadcast(event store.Event) {
	msg := Message{Type: "store_event", Event: &event}
	for client := range h.clients {
		if event.Entity == "notification" && event.UserID != "" && client.UserID != event.UserID {
			continue
		}
		select {
		case client.send <- msg:
		default:
			delete(h.clients, client)
			close(client.send)
		}
	}
}
