package websocket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostelhub/hostelhub_backend/store"
)

func TestBroadcastScopesNotificationEvents(t *testing.T) {
	h := NewHub()
	recipient := &Client{UserID: "1", send: make(chan Message, 4)}
	other := &Client{UserID: "2", send: make(chan Message, 4)}
	anonymous := &Client{send: make(chan Message, 4)}
	h.clients[recipient] = true
	h.clients[other] = true
	h.clients[anonymous] = true

	h.broadcast(store.Event{Entity: "notification", Action: "created", ID: "nx", UserID: "1"})

	require.Len(t, recipient.send, 1)
	assert.Empty(t, other.send)
	assert.Empty(t, anonymous.send)

	msg := <-recipient.send
	assert.Equal(t, "store_event", msg.Type)
	require.NotNil(t, msg.Event)
	assert.Equal(t, "nx", msg.Event.ID)
}

func TestBroadcastReachesEveryClientForOtherEvents(t *testing.T) {
	h := NewHub()
	a := &Client{UserID: "1", send: make(chan Message, 4)}
	b := &Client{UserID: "2", send: make(chan Message, 4)}
	h.clients[a] = true
	h.clients[b] = true

	h.broadcast(store.Event{Entity: "hostel", Action: "updated", ID: "h1"})

	assert.Len(t, a.send, 1)
	assert.Len(t, b.send, 1)
}

func TestBroadcastDropsSlowClients(t *testing.T) {
	h := NewHub()
	slow := &Client{UserID: "1", send: make(chan Message)} // never drained
	h.clients[slow] = true

	h.broadcast(store.Event{Entity: "room", Action: "updated", ID: "r1"})

	assert.Empty(t, h.clients)
	_, open := <-slow.send
	assert.False(t, open, "send channel should be closed so the writer exits")
}
