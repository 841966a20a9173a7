package services

import (
	"github.com/rs/zerolog"

	"github.com/AnhTuano/CNTTK23M/internal/app/auth"
	"github.com/AnhTuano/CNTTK23M/internal/app/models"
	"github.com/AnhTuano/CNTTK23M/internal/app/models/dto"
	"github.com/AnhTuano/CNTTK23M/internal/app/repositories"
	"github.com/AnhTuano/CNTTK23M/internal/pkg/apperrors"
)

// MemoryService defines the interface for gallery operations
type MemoryService interface {
	GetApproved() []*models.Memory
	GetPending(actorRole models.Role) ([]*models.Memory, error)
	Create(actor *models.User, req *dto.CreateMemoryRequest) (*models.Memory, error)
	Delete(actor *models.User, memID int64) error
	Approve(actorRole models.Role, memID int64) (*models.Memory, error)
	Reject(actorRole models.Role, memID int64) error
	React(memID int64, emoji string) (*models.Memory, error)
}

// memoryServiceImpl implements MemoryService
type memoryServiceImpl struct {
	memoryRepo   *repositories.MemoryRepository
	authzService *auth.AuthorizationService
	logger       zerolog.Logger
}

// NewMemoryService creates a new MemoryService
func NewMemoryService(
	memoryRepo *repositories.MemoryRepository,
	authzService *auth.AuthorizationService,
	logger zerolog.Logger,
) MemoryService {
	return &memoryServiceImpl{
		memoryRepo:   memoryRepo,
		authzService: authzService,
		logger:       logger,
	}
}

// GetApproved returns memories visible to everyone
func (s *memoryServiceImpl) GetApproved() []*models.Memory {
	return s.memoryRepo.GetByStatus(models.StatusApproved)
}

// GetPending returns the moderation queue
func (s *memoryServiceImpl) GetPending(actorRole models.Role) ([]*models.Memory, error) {
	if err := s.authzService.ValidateManageMemories(actorRole); err != nil {
		return nil, err
	}
	return s.memoryRepo.GetByStatus(models.StatusPending), nil
}

// Create submits a memory to the gallery. Submissions from
// moderation-exempt roles are approved immediately; gallery managers
// moderate the queue but their own uploads still pass through it.
func (s *memoryServiceImpl) Create(actor *models.User, req *dto.CreateMemoryRequest) (*models.Memory, error) {
	if req.URL == "" || req.Semester == "" {
		return nil, apperrors.ErrValidationFailed
	}
	status := models.StatusPending
	if auth.CanBypassModeration(actor.Role) {
		status = models.StatusApproved
	}
	mem := &models.Memory{
		URL:        req.URL,
		Thumbnail:  req.Thumbnail,
		Semester:   req.Semester,
		UploaderID: actor.ID,
		Reactions:  map[string]int{},
		Status:     status,
	}
	s.memoryRepo.Create(mem)

	s.logger.Info().
		Int64("memoryId", mem.ID).
		Int64("uploaderId", actor.ID).
		Str("status", string(status)).
		Msg("Memory submitted")
	return mem, nil
}

// Delete removes a memory. Allowed for the uploader and for gallery
// managers.
func (s *memoryServiceImpl) Delete(actor *models.User, memID int64) error {
	mem, err := s.memoryRepo.GetByID(memID)
	if err != nil {
		return err
	}
	if mem.UploaderID != actor.ID {
		if err := s.authzService.ValidateManageMemories(actor.Role); err != nil {
			return err
		}
	}
	return s.memoryRepo.Delete(memID)
}

// Approve moves a pending memory into the public gallery
func (s *memoryServiceImpl) Approve(actorRole models.Role, memID int64) (*models.Memory, error) {
	if err := s.authzService.ValidateManageMemories(actorRole); err != nil {
		return nil, err
	}
	mem, err := s.memoryRepo.SetStatus(memID, models.StatusApproved)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("memoryId", memID).Msg("Memory approved")
	return mem, nil
}

// Reject removes a pending memory entirely
func (s *memoryServiceImpl) Reject(actorRole models.Role, memID int64) error {
	if err := s.authzService.ValidateManageMemories(actorRole); err != nil {
		return err
	}
	if err := s.memoryRepo.Delete(memID); err != nil {
		return err
	}
	s.logger.Info().Int64("memoryId", memID).Msg("Memory rejected")
	return nil
}

// React adds one anonymous emoji reaction to a memory. Reactions are
// aggregate counts, not per user, and cannot be withdrawn.
func (s *memoryServiceImpl) React(memID int64, emoji string) (*models.Memory, error) {
	if emoji == "" {
		return nil, apperrors.ErrValidationFailed
	}
	return s.memoryRepo.AddReaction(memID, emoji)
}
