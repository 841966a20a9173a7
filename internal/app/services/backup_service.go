package services

import (
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/AnhTuano/CNTTK23M/internal/app/auth"
	"github.com/AnhTuano/CNTTK23M/internal/app/models"
	"github.com/AnhTuano/CNTTK23M/internal/app/repositories"
	"github.com/AnhTuano/CNTTK23M/internal/pkg/apperrors"
)

// BackupService defines the interface for full-state export and restore
type BackupService interface {
	Export(actorRole models.Role) ([]byte, error)
	Restore(actorRole models.Role, data []byte) error
}

// backupServiceImpl implements BackupService
type backupServiceImpl struct {
	store        *repositories.Store
	authzService *auth.AuthorizationService
	logger       zerolog.Logger
}

// NewBackupService creates a new BackupService
func NewBackupService(
	store *repositories.Store,
	authzService *auth.AuthorizationService,
	logger zerolog.Logger,
) BackupService {
	return &backupServiceImpl{
		store:        store,
		authzService: authzService,
		logger:       logger,
	}
}

// Export serializes the full application state as indented JSON
func (s *backupServiceImpl) Export(actorRole models.Role) ([]byte, error) {
	if err := s.authzService.ValidateAdmin(actorRole); err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(s.store.Snapshot(), "", "  ")
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int("bytes", len(data)).Msg("State exported")
	return data, nil
}

// Restore replaces the full application state with a previously
// exported document. The document must carry at least the site
// configuration and the member roster; anything less is rejected and
// the current state stays untouched.
func (s *backupServiceImpl) Restore(actorRole models.Role, data []byte) error {
	if err := s.authzService.ValidateAdmin(actorRole); err != nil {
		return err
	}

	var snap repositories.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return apperrors.ErrMalformedImport
	}
	if snap.WebsiteConfig == nil || len(snap.Users) == 0 {
		return apperrors.ErrMalformedImport
	}

	s.store.Replace(&snap)
	s.logger.Info().
		Int("users", len(snap.Users)).
		Int("posts", len(snap.Posts)).
		Msg("State restored from backup")
	return nil
}
