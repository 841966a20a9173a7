package websocket

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/AnhTuano/CNTTK23M/internal/app/models"
	"github.com/AnhTuano/CNTTK23M/internal/app/repositories"
)

// Handler for WebSocket connections
type Handler struct {
	hub      *Hub
	chatRepo *repositories.ChatRepository
	logger   zerolog.Logger
}

// NewHandler creates a new WebSocket handler
func NewHandler(hub *Hub, chatRepo *repositories.ChatRepository, logger zerolog.Logger) *Handler {
	return &Handler{
		hub:      hub,
		chatRepo: chatRepo,
		logger:   logger,
	}
}

// HandleConnection godoc
// @Summary Establish a WebSocket connection for a chat room
// @Description Upgrades the HTTP connection and streams room events to the member
// @Tags chat, websocket
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 101 {string} string "Switching Protocols to WebSocket"
// @Failure 401 {object} gin.H "Unauthorized: JWT token missing or invalid"
// @Failure 403 {object} gin.H "Forbidden: member may not join this room"
// @Failure 404 {object} gin.H "Room not found"
// @Router /chat/rooms/{id}/ws [get]
func (h *Handler) HandleConnection(c *gin.Context) {
	roomID := c.Param("id")

	userValue, exists := c.Get("currentUser")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	user, ok := userValue.(*models.User)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user in context"})
		return
	}

	room, err := h.chatRepo.GetByID(roomID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		return
	}
	if !room.VisibleTo(user) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Room is restricted"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("roomID", roomID).
			Int64("userID", user.ID).
			Msg("Failed to upgrade connection to WebSocket")
		return
	}

	client := &Client{
		hub:    h.hub,
		conn:   conn,
		send:   make(chan []byte, 256),
		userID: user.ID,
		roomID: roomID,
		logger: h.logger,
	}
	client.hub.register <- client

	go client.writePump()
	go client.readPump()

	h.logger.Info().
		Str("roomID", roomID).
		Int64("userID", user.ID).
		Str("remoteAddr", conn.RemoteAddr().String()).
		Msg("WebSocket connection established")
}
