package services

import (
	"github.com/rs/zerolog"

	"github.com/AnhTuano/CNTTK23M/internal/app/auth"
	"github.com/AnhTuano/CNTTK23M/internal/app/models"
	"github.com/AnhTuano/CNTTK23M/internal/app/models/dto"
	"github.com/AnhTuano/CNTTK23M/internal/app/repositories"
	"github.com/AnhTuano/CNTTK23M/internal/pkg/apperrors"
)

// ConfigService defines the interface for site configuration operations
type ConfigService interface {
	Get() models.WebsiteConfig
	Update(actorRole models.Role, req *dto.UpdateConfigRequest) (*models.WebsiteConfig, error)
}

// configServiceImpl implements ConfigService
type configServiceImpl struct {
	configRepo   *repositories.ConfigRepository
	authzService *auth.AuthorizationService
	logger       zerolog.Logger
}

// NewConfigService creates a new ConfigService
func NewConfigService(
	configRepo *repositories.ConfigRepository,
	authzService *auth.AuthorizationService,
	logger zerolog.Logger,
) ConfigService {
	return &configServiceImpl{
		configRepo:   configRepo,
		authzService: authzService,
		logger:       logger,
	}
}

// Get returns the current site configuration
func (s *configServiceImpl) Get() models.WebsiteConfig {
	return s.configRepo.Get()
}

// Update replaces the site configuration. The admin role is always
// kept in the allowed-post list so administrators can never lock
// themselves out of the feed.
func (s *configServiceImpl) Update(actorRole models.Role, req *dto.UpdateConfigRequest) (*models.WebsiteConfig, error) {
	if err := s.authzService.ValidateAdmin(actorRole); err != nil {
		return nil, err
	}
	if req.ClassName == "" || req.WebsiteName == "" {
		return nil, apperrors.ErrValidationFailed
	}
	if !req.Banner.Type.IsValid() {
		return nil, apperrors.ErrValidationFailed
	}
	for _, r := range req.AllowedPostRoles {
		if !r.IsValid() {
			return nil, apperrors.ErrValidationFailed
		}
	}

	allowed := req.AllowedPostRoles
	hasAdmin := false
	for _, r := range allowed {
		if r == models.RoleAdmin {
			hasAdmin = true
			break
		}
	}
	if !hasAdmin {
		allowed = append([]models.Role{models.RoleAdmin}, allowed...)
	}

	cfg := models.WebsiteConfig{
		ClassName:         req.ClassName,
		Slogan:            req.Slogan,
		CoverImage:        req.CoverImage,
		WebsiteName:       req.WebsiteName,
		WebsiteTitle:      req.WebsiteTitle,
		IsMaintenanceMode: req.IsMaintenanceMode,
		AllowedPostRoles:  allowed,
		Banner:            req.Banner,
	}
	s.configRepo.Set(cfg)

	s.logger.Info().
		Bool("maintenance", cfg.IsMaintenanceMode).
		Msg("Site configuration updated")
	return &cfg, nil
}
