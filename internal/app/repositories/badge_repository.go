package repositories

import (
	"github.com/AnhTuano/CNTTK23M/internal/app/models"
	"github.com/AnhTuano/CNTTK23M/internal/pkg/apperrors"
)

// BadgeRepository handles store operations for the badge catalog and
// for badge assignments on user profiles.
type BadgeRepository struct {
	store *Store
}

// NewBadgeRepository creates a new BadgeRepository
func NewBadgeRepository(store *Store) *BadgeRepository {
	return &BadgeRepository{store: store}
}

// GetAll returns the badge catalog
func (r *BadgeRepository) GetAll() []models.Badge {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]models.Badge, len(r.store.badges))
	copy(out, r.store.badges)
	return out
}

// GetByID returns the catalog badge with the given id
func (r *BadgeRepository) GetByID(id string) (*models.Badge, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, b := range r.store.badges {
		if b.ID == id {
			badge := b
			return &badge, nil
		}
	}
	return nil, apperrors.ErrBadgeNotFound
}

// Create adds a badge to the catalog. The id must be unique.
func (r *BadgeRepository) Create(badge models.Badge) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, b := range r.store.badges {
		if b.ID == badge.ID {
			return apperrors.ErrBadgeAlreadyExists
		}
	}
	next := make([]models.Badge, len(r.store.badges), len(r.store.badges)+1)
	copy(next, r.store.badges)
	r.store.badges = append(next, badge)
	return nil
}

// Update replaces the catalog badge and propagates the change to
// every user holding a copy of it.
func (r *BadgeRepository) Update(badge models.Badge) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	next := make([]models.Badge, len(r.store.badges))
	copy(next, r.store.badges)
	found := false
	for i, b := range next {
		if b.ID == badge.ID {
			next[i] = badge
			found = true
			break
		}
	}
	if !found {
		return apperrors.ErrBadgeNotFound
	}
	r.store.badges = next

	users := cloneUsers(r.store.users)
	for _, u := range users {
		for i, b := range u.Badges {
			if b.ID == badge.ID {
				u.Badges[i] = badge
			}
		}
	}
	r.store.users = users
	return nil
}

// Delete removes the badge from the catalog and from every user
// holding it.
func (r *BadgeRepository) Delete(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	next := make([]models.Badge, 0, len(r.store.badges))
	found := false
	for _, b := range r.store.badges {
		if b.ID == id {
			found = true
			continue
		}
		next = append(next, b)
	}
	if !found {
		return apperrors.ErrBadgeNotFound
	}
	r.store.badges = next

	users := cloneUsers(r.store.users)
	for _, u := range users {
		kept := make([]models.Badge, 0, len(u.Badges))
		for _, b := range u.Badges {
			if b.ID != id {
				kept = append(kept, b)
			}
		}
		u.Badges = kept
	}
	r.store.users = users
	return nil
}

// Award gives the catalog badge to the user. Awarding a badge the
// user already holds is a no-op.
func (r *BadgeRepository) Award(userID int64, badgeID string) (*models.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var badge *models.Badge
	for _, b := range r.store.badges {
		if b.ID == badgeID {
			found := b
			badge = &found
			break
		}
	}
	if badge == nil {
		return nil, apperrors.ErrBadgeNotFound
	}
	users := cloneUsers(r.store.users)
	for _, u := range users {
		if u.ID != userID {
			continue
		}
		for _, b := range u.Badges {
			if b.ID == badgeID {
				return u.Clone(), nil
			}
		}
		u.Badges = append(u.Badges, *badge)
		r.store.users = users
		return u.Clone(), nil
	}
	return nil, apperrors.ErrUserNotFound
}

// Revoke removes the badge from the user's profile
func (r *BadgeRepository) Revoke(userID int64, badgeID string) (*models.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	users := cloneUsers(r.store.users)
	for _, u := range users {
		if u.ID != userID {
			continue
		}
		kept := make([]models.Badge, 0, len(u.Badges))
		for _, b := range u.Badges {
			if b.ID != badgeID {
				kept = append(kept, b)
			}
		}
		u.Badges = kept
		r.store.users = users
		return u.Clone(), nil
	}
	return nil, apperrors.ErrUserNotFound
}
