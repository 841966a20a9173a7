package repositories

import (
	"github.com/AnhTuano/CNTTK23M/internal/app/models"
	"github.com/AnhTuano/CNTTK23M/internal/pkg/apperrors"
)

// ChatRepository handles store operations for chat rooms
type ChatRepository struct {
	store *Store
}

// NewChatRepository creates a new ChatRepository
func NewChatRepository(store *Store) *ChatRepository {
	return &ChatRepository{store: store}
}

// GetAll returns every chat room in insertion order
func (r *ChatRepository) GetAll() []*models.ChatRoom {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return cloneRooms(r.store.chatRooms)
}

// GetByID returns the room with the given id
func (r *ChatRepository) GetByID(id string) (*models.ChatRoom, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, room := range r.store.chatRooms {
		if room.ID == id {
			return room.Clone(), nil
		}
	}
	return nil, apperrors.ErrRoomNotFound
}

// Create inserts a chat room
func (r *ChatRepository) Create(room *models.ChatRoom) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.chatRooms = append(cloneRooms(r.store.chatRooms), room.Clone())
}

// AppendMessage appends a message to the room's history, assigning it
// a fresh id, and returns the stored message.
func (r *ChatRepository) AppendMessage(roomID string, msg models.ChatMessage) (*models.ChatMessage, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	next := cloneRooms(r.store.chatRooms)
	for i, room := range next {
		if room.ID == roomID {
			msg.ID = r.store.nextIDLocked()
			next[i].Messages = append(next[i].Messages, msg)
			r.store.chatRooms = next
			return &msg, nil
		}
	}
	return nil, apperrors.ErrRoomNotFound
}
