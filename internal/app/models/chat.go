package models

import "time"

// ChatMessage is a single message in a room. Messages are append-only.
type ChatMessage struct {
	ID        int64     `json:"id"`
	SenderID  int64     `json:"senderId"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatRoom is a named channel. Visibility may be restricted either by a
// role allow-list or by an explicit member id allow-list; a room with
// neither restriction is visible to everyone.
type ChatRoom struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Icon         string        `json:"icon"` // key into the presentation icon registry
	Description  string        `json:"description"`
	AllowedRoles []Role        `json:"allowedRoles,omitempty"`
	Members      []int64       `json:"members,omitempty"`
	Messages     []ChatMessage `json:"messages"`
}

// VisibleTo reports whether the user may see and join the room
func (r *ChatRoom) VisibleTo(u *User) bool {
	if u == nil {
		return false
	}
	if len(r.AllowedRoles) == 0 && len(r.Members) == 0 {
		return true
	}
	for _, role := range r.AllowedRoles {
		if u.Role == role {
			return true
		}
	}
	for _, id := range r.Members {
		if u.ID == id {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the room
func (r *ChatRoom) Clone() *ChatRoom {
	if r == nil {
		return nil
	}
	c := *r
	c.AllowedRoles = append([]Role(nil), r.AllowedRoles...)
	c.Members = append([]int64(nil), r.Members...)
	c.Messages = append([]ChatMessage(nil), r.Messages...)
	return &c
}
