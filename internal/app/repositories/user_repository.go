package repositories

import (
	"strings"

	"github.com/AnhTuano/CNTTK23M/internal/app/models"
	"github.com/AnhTuano/CNTTK23M/internal/pkg/apperrors"
)

// UserRepository handles store operations for users
type UserRepository struct {
	store *Store
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

// GetAll returns every user in insertion order
func (r *UserRepository) GetAll() []*models.User {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return cloneUsers(r.store.users)
}

// GetByID returns the user with the given id
func (r *UserRepository) GetByID(id int64) (*models.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, u := range r.store.users {
		if u.ID == id {
			return u.Clone(), nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

// GetByEmail returns the user with the given contact email,
// case-insensitive.
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, u := range r.store.users {
		if strings.EqualFold(u.Contact.Email, email) {
			return u.Clone(), nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

// Create inserts a user, assigning a fresh id when none is set, and
// returns the assigned id.
func (r *UserRepository) Create(user *models.User) int64 {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if user.ID == 0 {
		user.ID = r.store.nextIDLocked()
	} else if user.ID > r.store.lastID {
		r.store.lastID = user.ID
	}
	r.store.users = append(cloneUsers(r.store.users), user.Clone())
	return user.ID
}

// Update replaces the stored user with the given one, matched by id
func (r *UserRepository) Update(user *models.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	next := cloneUsers(r.store.users)
	for i, u := range next {
		if u.ID == user.ID {
			next[i] = user.Clone()
			r.store.users = next
			return nil
		}
	}
	return apperrors.ErrUserNotFound
}

// Delete removes the user. Their authored posts, documents, memories
// and comments are left in place with a dangling author reference.
func (r *UserRepository) Delete(id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	next := make([]*models.User, 0, len(r.store.users))
	found := false
	for _, u := range r.store.users {
		if u.ID == id {
			found = true
			continue
		}
		next = append(next, u.Clone())
	}
	if !found {
		return apperrors.ErrUserNotFound
	}
	r.store.users = next
	return nil
}

// AddPoints adjusts the user's stored point counter by delta
func (r *UserRepository) AddPoints(id int64, delta int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	next := cloneUsers(r.store.users)
	for i, u := range next {
		if u.ID == id {
			next[i].Points += delta
			r.store.users = next
			return nil
		}
	}
	return apperrors.ErrUserNotFound
}
