package services

import (
	"strings"

	"github.com/gosimple/slug"
	"github.com/rs/zerolog"

	"github.com/AnhTuano/CNTTK23M/internal/app/auth"
	"github.com/AnhTuano/CNTTK23M/internal/app/models"
	"github.com/AnhTuano/CNTTK23M/internal/app/models/dto"
	"github.com/AnhTuano/CNTTK23M/internal/app/repositories"
	"github.com/AnhTuano/CNTTK23M/internal/pkg/apperrors"
)

// BadgeService defines the interface for badge catalog operations
type BadgeService interface {
	GetAll() []models.Badge
	Create(actorRole models.Role, req *dto.CreateBadgeRequest) (*models.Badge, error)
	Update(actorRole models.Role, badgeID string, req *dto.UpdateBadgeRequest) (*models.Badge, error)
	Delete(actorRole models.Role, badgeID string) error
	Award(actorRole models.Role, userID int64, badgeID string) (*models.User, error)
	Revoke(actorRole models.Role, userID int64, badgeID string) (*models.User, error)
}

// badgeServiceImpl implements BadgeService
type badgeServiceImpl struct {
	badgeRepo    *repositories.BadgeRepository
	authzService *auth.AuthorizationService
	logger       zerolog.Logger
}

// NewBadgeService creates a new BadgeService
func NewBadgeService(
	badgeRepo *repositories.BadgeRepository,
	authzService *auth.AuthorizationService,
	logger zerolog.Logger,
) BadgeService {
	return &badgeServiceImpl{
		badgeRepo:    badgeRepo,
		authzService: authzService,
		logger:       logger,
	}
}

// BadgeID derives the catalog identifier from a badge name. Vietnamese
// names are transliterated, so "Người đóng góp" becomes
// "NGUOI_DONG_GOP". Renaming a badge later does not change its id.
func BadgeID(name string) string {
	return strings.ToUpper(strings.ReplaceAll(slug.Make(name), "-", "_"))
}

// GetAll returns the badge catalog
func (s *badgeServiceImpl) GetAll() []models.Badge {
	return s.badgeRepo.GetAll()
}

// Create adds a badge to the catalog. A badge whose name derives to
// an existing id is rejected.
func (s *badgeServiceImpl) Create(actorRole models.Role, req *dto.CreateBadgeRequest) (*models.Badge, error) {
	if err := s.authzService.ValidateAdmin(actorRole); err != nil {
		return nil, err
	}
	if req.Name == "" || req.Icon == "" {
		return nil, apperrors.ErrValidationFailed
	}
	badge := models.Badge{
		ID:          BadgeID(req.Name),
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		Color:       req.Color,
	}
	if err := s.badgeRepo.Create(badge); err != nil {
		return nil, err
	}
	s.logger.Info().Str("badgeId", badge.ID).Msg("Badge created")
	return &badge, nil
}

// Update edits a catalog badge. The change propagates to every member
// already holding the badge.
func (s *badgeServiceImpl) Update(actorRole models.Role, badgeID string, req *dto.UpdateBadgeRequest) (*models.Badge, error) {
	if err := s.authzService.ValidateAdmin(actorRole); err != nil {
		return nil, err
	}
	if req.Name == "" || req.Icon == "" {
		return nil, apperrors.ErrValidationFailed
	}
	badge := models.Badge{
		ID:          badgeID,
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		Color:       req.Color,
	}
	if err := s.badgeRepo.Update(badge); err != nil {
		return nil, err
	}
	s.logger.Info().Str("badgeId", badgeID).Msg("Badge updated")
	return &badge, nil
}

// Delete removes a badge from the catalog and from every member
// holding it.
func (s *badgeServiceImpl) Delete(actorRole models.Role, badgeID string) error {
	if err := s.authzService.ValidateAdmin(actorRole); err != nil {
		return err
	}
	if err := s.badgeRepo.Delete(badgeID); err != nil {
		return err
	}
	s.logger.Info().Str("badgeId", badgeID).Msg("Badge deleted")
	return nil
}

// Award gives a catalog badge to a member
func (s *badgeServiceImpl) Award(actorRole models.Role, userID int64, badgeID string) (*models.User, error) {
	if err := s.authzService.ValidateAdmin(actorRole); err != nil {
		return nil, err
	}
	return s.badgeRepo.Award(userID, badgeID)
}

// Revoke takes a badge away from a member
func (s *badgeServiceImpl) Revoke(actorRole models.Role, userID int64, badgeID string) (*models.User, error) {
	if err := s.authzService.ValidateAdmin(actorRole); err != nil {
		return nil, err
	}
	return s.badgeRepo.Revoke(userID, badgeID)
}
