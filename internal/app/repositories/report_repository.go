package repositories

import (
	"github.com/AnhTuano/CNTTK23M/internal/app/models"
	"github.com/AnhTuano/CNTTK23M/internal/pkg/apperrors"
)

// ReportRepository handles store operations for moderation reports
type ReportRepository struct {
	store *Store
}

// NewReportRepository creates a new ReportRepository
func NewReportRepository(store *Store) *ReportRepository {
	return &ReportRepository{store: store}
}

// GetAll returns every report, newest first
func (r *ReportRepository) GetAll() []*models.Report {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return cloneReports(r.store.reports)
}

// GetByStatus returns reports with the given status
func (r *ReportRepository) GetByStatus(status models.ReportStatus) []*models.Report {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]*models.Report, 0, len(r.store.reports))
	for _, rep := range r.store.reports {
		if rep.Status == status {
			out = append(out, rep.Clone())
		}
	}
	return out
}

// GetByID returns the report with the given id
func (r *ReportRepository) GetByID(id int64) (*models.Report, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, rep := range r.store.reports {
		if rep.ID == id {
			return rep.Clone(), nil
		}
	}
	return nil, apperrors.ErrReportNotFound
}

// Create inserts a report at the head of the collection, assigning a
// fresh id when none is set.
func (r *ReportRepository) Create(rep *models.Report) int64 {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if rep.ID == 0 {
		rep.ID = r.store.nextIDLocked()
	} else if rep.ID > r.store.lastID {
		r.store.lastID = rep.ID
	}
	next := make([]*models.Report, 0, len(r.store.reports)+1)
	next = append(next, rep.Clone())
	next = append(next, cloneReports(r.store.reports)...)
	r.store.reports = next
	return rep.ID
}

// SetStatus updates the report status and returns the updated report
func (r *ReportRepository) SetStatus(id int64, status models.ReportStatus) (*models.Report, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	next := cloneReports(r.store.reports)
	for i, rep := range next {
		if rep.ID == id {
			next[i].Status = status
			r.store.reports = next
			return next[i].Clone(), nil
		}
	}
	return nil, apperrors.ErrReportNotFound
}
