package services

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/AnhTuano/CNTTK23M/internal/app/auth"
	"github.com/AnhTuano/CNTTK23M/internal/app/models"
	"github.com/AnhTuano/CNTTK23M/internal/app/models/dto"
	"github.com/AnhTuano/CNTTK23M/internal/app/repositories"
	"github.com/AnhTuano/CNTTK23M/internal/pkg/apperrors"
)

// DocumentService defines the interface for study document operations
type DocumentService interface {
	GetApproved() []*models.Document
	GetPending(actorRole models.Role) ([]*models.Document, error)
	Create(actor *models.User, req *dto.CreateDocumentRequest) (*models.Document, error)
	Update(actor *models.User, docID int64, req *dto.UpdateDocumentRequest) (*models.Document, error)
	Delete(actor *models.User, docID int64) error
	Approve(actorRole models.Role, docID int64) (*models.Document, error)
	Reject(actorRole models.Role, docID int64) error
}

// documentServiceImpl implements DocumentService
type documentServiceImpl struct {
	documentRepo *repositories.DocumentRepository
	authzService *auth.AuthorizationService
	logger       zerolog.Logger
}

// NewDocumentService creates a new DocumentService
func NewDocumentService(
	documentRepo *repositories.DocumentRepository,
	authzService *auth.AuthorizationService,
	logger zerolog.Logger,
) DocumentService {
	return &documentServiceImpl{
		documentRepo: documentRepo,
		authzService: authzService,
		logger:       logger,
	}
}

// GetApproved returns documents visible to everyone
func (s *documentServiceImpl) GetApproved() []*models.Document {
	return s.documentRepo.GetByStatus(models.StatusApproved)
}

// GetPending returns the moderation queue
func (s *documentServiceImpl) GetPending(actorRole models.Role) ([]*models.Document, error) {
	if err := s.authzService.ValidateManageDocuments(actorRole); err != nil {
		return nil, err
	}
	return s.documentRepo.GetByStatus(models.StatusPending), nil
}

// Create submits a document. Submissions from moderation-exempt roles
// are approved immediately, everyone else's wait in the pending queue.
// Document managers moderate the queue but their own uploads still
// pass through it.
func (s *documentServiceImpl) Create(actor *models.User, req *dto.CreateDocumentRequest) (*models.Document, error) {
	if req.Title == "" || req.Subject == "" || req.Link == "" {
		return nil, apperrors.ErrValidationFailed
	}
	if !req.Type.IsValid() {
		return nil, apperrors.ErrValidationFailed
	}

	status := models.StatusPending
	if auth.CanBypassModeration(actor.Role) {
		status = models.StatusApproved
	}
	doc := &models.Document{
		Title:      req.Title,
		UploaderID: actor.ID,
		Subject:    req.Subject,
		Type:       req.Type,
		Link:       req.Link,
		Timestamp:  time.Now(),
		Status:     status,
	}
	s.documentRepo.Create(doc)

	s.logger.Info().
		Int64("documentId", doc.ID).
		Int64("uploaderId", actor.ID).
		Str("status", string(status)).
		Msg("Document submitted")
	return doc, nil
}

// Update edits a document. Allowed for the uploader and for document
// managers. Editing an approved document does not send it back to the
// pending queue.
func (s *documentServiceImpl) Update(actor *models.User, docID int64, req *dto.UpdateDocumentRequest) (*models.Document, error) {
	doc, err := s.documentRepo.GetByID(docID)
	if err != nil {
		return nil, err
	}
	if doc.UploaderID != actor.ID {
		if err := s.authzService.ValidateManageDocuments(actor.Role); err != nil {
			return nil, err
		}
	}
	if req.Title == "" || req.Subject == "" || req.Link == "" || !req.Type.IsValid() {
		return nil, apperrors.ErrValidationFailed
	}
	doc.Title = req.Title
	doc.Subject = req.Subject
	doc.Type = req.Type
	doc.Link = req.Link
	if err := s.documentRepo.Update(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Delete removes a document. Allowed for the uploader and for
// document managers.
func (s *documentServiceImpl) Delete(actor *models.User, docID int64) error {
	doc, err := s.documentRepo.GetByID(docID)
	if err != nil {
		return err
	}
	if doc.UploaderID != actor.ID {
		if err := s.authzService.ValidateManageDocuments(actor.Role); err != nil {
			return err
		}
	}
	return s.documentRepo.Delete(docID)
}

// Approve moves a pending document into the public collection
func (s *documentServiceImpl) Approve(actorRole models.Role, docID int64) (*models.Document, error) {
	if err := s.authzService.ValidateManageDocuments(actorRole); err != nil {
		return nil, err
	}
	doc, err := s.documentRepo.SetStatus(docID, models.StatusApproved)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("documentId", docID).Msg("Document approved")
	return doc, nil
}

// Reject removes a pending document entirely
func (s *documentServiceImpl) Reject(actorRole models.Role, docID int64) error {
	if err := s.authzService.ValidateManageDocuments(actorRole); err != nil {
		return err
	}
	if err := s.documentRepo.Delete(docID); err != nil {
		return err
	}
	s.logger.Info().Int64("documentId", docID).Msg("Document rejected")
	return nil
}
