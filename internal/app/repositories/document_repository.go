package repositories

import (
	"github.com/AnhTuano/CNTTK23M/internal/app/models"
	"github.com/AnhTuano/CNTTK23M/internal/pkg/apperrors"
)

// DocumentRepository handles store operations for study documents
type DocumentRepository struct {
	store *Store
}

// NewDocumentRepository creates a new DocumentRepository
func NewDocumentRepository(store *Store) *DocumentRepository {
	return &DocumentRepository{store: store}
}

// GetAll returns every document in insertion order
func (r *DocumentRepository) GetAll() []*models.Document {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return cloneDocuments(r.store.documents)
}

// GetByStatus returns documents with the given review status
func (r *DocumentRepository) GetByStatus(status models.ContentStatus) []*models.Document {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]*models.Document, 0, len(r.store.documents))
	for _, d := range r.store.documents {
		if d.Status == status {
			out = append(out, d.Clone())
		}
	}
	return out
}

// GetByID returns the document with the given id
func (r *DocumentRepository) GetByID(id int64) (*models.Document, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, d := range r.store.documents {
		if d.ID == id {
			return d.Clone(), nil
		}
	}
	return nil, apperrors.ErrDocumentNotFound
}

// Create inserts a document at the head of the collection, assigning
// a fresh id when none is set.
func (r *DocumentRepository) Create(doc *models.Document) int64 {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if doc.ID == 0 {
		doc.ID = r.store.nextIDLocked()
	} else if doc.ID > r.store.lastID {
		r.store.lastID = doc.ID
	}
	next := make([]*models.Document, 0, len(r.store.documents)+1)
	next = append(next, doc.Clone())
	next = append(next, cloneDocuments(r.store.documents)...)
	r.store.documents = next
	return doc.ID
}

// Update replaces the stored document with the given one, matched by id
func (r *DocumentRepository) Update(doc *models.Document) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	next := cloneDocuments(r.store.documents)
	for i, d := range next {
		if d.ID == doc.ID {
			next[i] = doc.Clone()
			r.store.documents = next
			return nil
		}
	}
	return apperrors.ErrDocumentNotFound
}

// SetStatus updates the review status and returns the updated document
func (r *DocumentRepository) SetStatus(id int64, status models.ContentStatus) (*models.Document, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	next := cloneDocuments(r.store.documents)
	for i, d := range next {
		if d.ID == id {
			next[i].Status = status
			r.store.documents = next
			return next[i].Clone(), nil
		}
	}
	return nil, apperrors.ErrDocumentNotFound
}

// Delete removes the document
func (r *DocumentRepository) Delete(id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	next := make([]*models.Document, 0, len(r.store.documents))
	found := false
	for _, d := range r.store.documents {
		if d.ID == id {
			found = true
			continue
		}
		next = append(next, d.Clone())
	}
	if !found {
		return apperrors.ErrDocumentNotFound
	}
	r.store.documents = next
	return nil
}
