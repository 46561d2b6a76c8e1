package websocket

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Handler for WebSocket connections
type Handler struct {
	hub    *Hub
	logger zerolog.Logger
}

// NewHandler creates a new WebSocket handler
func NewHandler(hub *Hub, logger zerolog.Logger) *Handler {
	return &Handler{
		hub:    hub,
		logger: logger,
	}
}

// HandleConnection godoc
// @Summary Establish a WebSocket connection for the change feed
// @Description Upgrades HTTP connection to a WebSocket connection streaming store change events
// @Tags websocket
// @Success 101 {string} string "Switching Protocols to WebSocket"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /ws [get]
func (h *Handler) HandleConnection(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("Failed to upgrade connection to WebSocket")
		return
	}

	client := &Client{
		hub:    h.hub,
		conn:   conn,
		send:   make(chan []byte, 256),
		logger: h.logger,
	}
	client.hub.register <- client

	go client.writePump()
	go client.readPump()

	h.logger.Info().
		Str("remoteAddr", conn.RemoteAddr().String()).
		Msg("WebSocket connection established")
}
