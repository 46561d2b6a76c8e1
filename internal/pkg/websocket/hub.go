// Package websocket streams store change events to connected clients. The
// demo has a single broadcast room; every client receives every event.
package websocket

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"

	"github.com/koprumezun/mezunhub/internal/demo"
)

// Hub maintains the set of active clients and broadcasts change events to them
type Hub struct {
	clients map[*Client]bool

	// Channel for events to fan out
	broadcast chan demo.ChangeEvent

	// Register requests from the clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client

	mu sync.RWMutex

	logger zerolog.Logger
}

// NewHub creates a new Hub instance
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		broadcast:  make(chan demo.ChangeEvent, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		logger:     logger,
	}
}

// Run starts the hub, handling client registrations and broadcasts.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case event := <-h.broadcast:
			h.broadcastEvent(event)
		}
	}
}

// Broadcast queues a change event for delivery to all connected clients.
// Safe to call from any goroutine; drops the event when the hub is saturated
// rather than blocking the store.
func (h *Hub) Broadcast(event demo.ChangeEvent) {
	select {
	case h.broadcast <- event:
	default:
		h.logger.Warn().Str("action", event.Action).Msg("Dropped change event, hub saturated")
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client] = true

	h.logger.Info().
		Str("addr", client.conn.RemoteAddr().String()).
		Int("clients", len(h.clients)).
		Msg("Client registered")
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)

		h.logger.Info().
			Str("addr", client.conn.RemoteAddr().String()).
			Int("clients", len(h.clients)).
			Msg("Client unregistered")
	}
}

func (h *Hub) broadcastEvent(event demo.ChangeEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Error().Err(err).Str("action", event.Action).Msg("Failed to marshal change event")
		return
	}

	h.mu.Lock()
	var stalled []*Client
	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			// Client's send buffer is full, they might be slow or
			// disconnected. Drop them inline: sending on h.unregister
			// from here would deadlock, this goroutine is its only
			// receiver.
			stalled = append(stalled, client)
		}
	}
	for _, client := range stalled {
		delete(h.clients, client)
		close(client.send)
	}
	remaining := len(h.clients)
	h.mu.Unlock()

	if len(stalled) > 0 {
		h.logger.Warn().
			Int("dropped", len(stalled)).
			Str("action", event.Action).
			Msg("Dropped stalled change-feed clients")
	}

	h.logger.Debug().
		Str("action", event.Action).
		Int("clientCount", remaining).
		Msg("Change event broadcasted")
}
