package dto

import "github.com/AnhTuano/CNTTK23M/internal/app/models"

// SendMessageRequest represents a chat message submission
type SendMessageRequest struct {
	Text string `json:"text" binding:"required"`
}

// ChatRoomResponse represents a room visible to the requesting member
type ChatRoomResponse struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Icon         string        `json:"icon,omitempty"`
	Description  string        `json:"description,omitempty"`
	AllowedRoles []models.Role `json:"allowedRoles,omitempty"`
	Members      []int64       `json:"members,omitempty"`
	MessageCount int           `json:"messageCount"`
}

// Chat event types pushed to room subscribers
const (
	ChatEventMessage    = "message"
	ChatEventTyping     = "typing"
	ChatEventStopTyping = "stopTyping"
)

// ChatEvent represents an event broadcast to room subscribers
type ChatEvent struct {
	Type    string              `json:"type"`
	RoomID  string              `json:"roomId"`
	UserID  int64               `json:"userId,omitempty"`
	Message *models.ChatMessage `json:"message,omitempty"`
}
