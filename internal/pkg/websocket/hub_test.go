package websocket

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/koprumezun/mezunhub/internal/demo"
)

func TestBroadcastNeverBlocks(t *testing.T) {
	hub := NewHub(zerolog.Nop())

	// Nothing drains the broadcast channel here; once the buffer fills the
	// remaining events must be dropped instead of blocking the caller.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 500; i++ {
			hub.Broadcast(demo.ChangeEvent{Action: "feed.post.created", At: time.Now()})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Broadcast blocked on a saturated hub")
	}
}

func TestClientCountStartsEmpty(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	assert.Equal(t, 0, hub.ClientCount())
}

func TestBroadcastEventDropsStalledClients(t *testing.T) {
	hub := NewHub(zerolog.Nop())

	healthy := &Client{hub: hub, send: make(chan []byte, 4)}
	stalled := &Client{hub: hub, send: make(chan []byte)}
	hub.clients[healthy] = true
	hub.clients[stalled] = true

	// The fan-out runs in the hub's own goroutine; dropping a stalled
	// client must complete inline rather than waiting on the unregister
	// channel, which only that goroutine drains.
	done := make(chan struct{})
	go func() {
		hub.broadcastEvent(demo.ChangeEvent{Action: "message.sent", At: time.Now()})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("broadcastEvent blocked while dropping a stalled client")
	}

	assert.Equal(t, 1, hub.ClientCount())

	// The stalled client's channel is closed so its write pump exits.
	_, open := <-stalled.send
	assert.False(t, open)

	// The healthy client still received the event.
	assert.Len(t, healthy.send, 1)
}

func TestBroadcastEventKeepsHealthyClients(t *testing.T) {
	hub := NewHub(zerolog.Nop())

	client := &Client{hub: hub, send: make(chan []byte, 8)}
	hub.clients[client] = true

	for i := 0; i < 3; i++ {
		hub.broadcastEvent(demo.ChangeEvent{Action: "feed.post.created", At: time.Now()})
	}

	assert.Equal(t, 1, hub.ClientCount())
	assert.Len(t, client.send, 3)
}
