package repositories

import (
	"github.com/AnhTuano/CNTTK23M/internal/app/models"
)

// NotificationRepository handles store operations for notifications
type NotificationRepository struct {
	store *Store
}

// NewNotificationRepository creates a new NotificationRepository
func NewNotificationRepository(store *Store) *NotificationRepository {
	return &NotificationRepository{store: store}
}

// GetAll returns every notification, newest first
func (r *NotificationRepository) GetAll() []*models.Notification {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return cloneNotifications(r.store.notifications)
}

// Create inserts a notification at the head of the collection,
// assigning a fresh id when none is set.
func (r *NotificationRepository) Create(n *models.Notification) int64 {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if n.ID == 0 {
		n.ID = r.store.nextIDLocked()
	} else if n.ID > r.store.lastID {
		r.store.lastID = n.ID
	}
	next := make([]*models.Notification, 0, len(r.store.notifications)+1)
	next = append(next, n.Clone())
	next = append(next, cloneNotifications(r.store.notifications)...)
	r.store.notifications = next
	return n.ID
}

// UnreadCount returns the number of unread notifications
func (r *NotificationRepository) UnreadCount() int {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	count := 0
	for _, n := range r.store.notifications {
		if !n.Read {
			count++
		}
	}
	return count
}

// MarkAllRead flags every notification as read
func (r *NotificationRepository) MarkAllRead() {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	next := cloneNotifications(r.store.notifications)
	for i := range next {
		next[i].Read = true
	}
	r.store.notifications = next
}
