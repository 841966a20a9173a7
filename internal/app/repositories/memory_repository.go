package repositories

import (
	"github.com/AnhTuano/CNTTK23M/internal/app/models"
	"github.com/AnhTuano/CNTTK23M/internal/pkg/apperrors"
)

// MemoryRepository handles store operations for gallery memories
type MemoryRepository struct {
	store *Store
}

// NewMemoryRepository creates a new MemoryRepository
func NewMemoryRepository(store *Store) *MemoryRepository {
	return &MemoryRepository{store: store}
}

// GetAll returns every memory in insertion order
func (r *MemoryRepository) GetAll() []*models.Memory {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return cloneMemories(r.store.memories)
}

// GetByStatus returns memories with the given review status
func (r *MemoryRepository) GetByStatus(status models.ContentStatus) []*models.Memory {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]*models.Memory, 0, len(r.store.memories))
	for _, m := range r.store.memories {
		if m.Status == status {
			out = append(out, m.Clone())
		}
	}
	return out
}

// GetByID returns the memory with the given id
func (r *MemoryRepository) GetByID(id int64) (*models.Memory, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, m := range r.store.memories {
		if m.ID == id {
			return m.Clone(), nil
		}
	}
	return nil, apperrors.ErrMemoryNotFound
}

// Create inserts a memory at the head of the collection, assigning a
// fresh id when none is set.
func (r *MemoryRepository) Create(mem *models.Memory) int64 {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if mem.ID == 0 {
		mem.ID = r.store.nextIDLocked()
	} else if mem.ID > r.store.lastID {
		r.store.lastID = mem.ID
	}
	next := make([]*models.Memory, 0, len(r.store.memories)+1)
	next = append(next, mem.Clone())
	next = append(next, cloneMemories(r.store.memories)...)
	r.store.memories = next
	return mem.ID
}

// Update replaces the stored memory with the given one, matched by id
func (r *MemoryRepository) Update(mem *models.Memory) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	next := cloneMemories(r.store.memories)
	for i, m := range next {
		if m.ID == mem.ID {
			next[i] = mem.Clone()
			r.store.memories = next
			return nil
		}
	}
	return apperrors.ErrMemoryNotFound
}

// SetStatus updates the review status and returns the updated memory
func (r *MemoryRepository) SetStatus(id int64, status models.ContentStatus) (*models.Memory, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	next := cloneMemories(r.store.memories)
	for i, m := range next {
		if m.ID == id {
			next[i].Status = status
			r.store.memories = next
			return next[i].Clone(), nil
		}
	}
	return nil, apperrors.ErrMemoryNotFound
}

// AddReaction increments the aggregate count for the given emoji and
// returns the updated memory.
func (r *MemoryRepository) AddReaction(id int64, emoji string) (*models.Memory, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	next := cloneMemories(r.store.memories)
	for i, m := range next {
		if m.ID == id {
			if next[i].Reactions == nil {
				next[i].Reactions = make(map[string]int)
			}
			next[i].Reactions[emoji]++
			r.store.memories = next
			return next[i].Clone(), nil
		}
	}
	return nil, apperrors.ErrMemoryNotFound
}

// Delete removes the memory
func (r *MemoryRepository) Delete(id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	next := make([]*models.Memory, 0, len(r.store.memories))
	found := false
	for _, m := range r.store.memories {
		if m.ID == id {
			found = true
			continue
		}
		next = append(next, m.Clone())
	}
	if !found {
		return apperrors.ErrMemoryNotFound
	}
	r.store.memories = next
	return nil
}
