package models

import "time"

// NotificationType classifies a notification
type NotificationType string

const (
	NotificationPost    NotificationType = "post"
	NotificationComment NotificationType = "comment"
	NotificationVote    NotificationType = "vote"
	NotificationSystem  NotificationType = "system"
)

// Notification is created by system events and never deleted; only its
// read flag changes afterwards.
type Notification struct {
	ID        int64            `json:"id"`
	Type      NotificationType `json:"type"`
	Text      string           `json:"text"`
	Timestamp time.Time        `json:"timestamp"`
	Read      bool             `json:"read"`
	Link      string           `json:"link,omitempty"`
}

// Clone returns a copy of the notification
func (n *Notification) Clone() *Notification {
	if n == nil {
		return nil
	}
	c := *n
	return &c
}
