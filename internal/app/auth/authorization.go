package auth

import (
	"github.com/AnhTuano/CNTTK23M/internal/app/models"
	"github.com/AnhTuano/CNTTK23M/internal/pkg/apperrors"
)

// Pure permission predicates over roles. Every mutation path must go
// through the relevant predicate before touching the store; denial is
// an explicit error and never a partial mutation.

// IsAdmin gates the admin area and the maintenance-mode bypass
func IsAdmin(role models.Role) bool {
	return role == models.RoleAdmin
}

// CanBypassModeration reports whether the role's documents, memories
// and posts publish immediately without a pending review step.
func CanBypassModeration(role models.Role) bool {
	switch role {
	case models.RoleAdmin, models.RoleLopTruong, models.RoleBiThu:
		return true
	}
	return false
}

// CanManageDocuments gates document edit/delete and the document
// moderation queue.
func CanManageDocuments(role models.Role) bool {
	return role == models.RoleAdmin || role == models.RoleLopPhoHocTap
}

// CanManageMemories gates memory edit/delete and the memory moderation
// queue.
func CanManageMemories(role models.Role) bool {
	return role == models.RoleAdmin || role == models.RoleLopPhoDoiSong
}

// CanManageContent gates pin/edit/delete and report resolution on posts
func CanManageContent(role models.Role) bool {
	switch role {
	case models.RoleAdmin, models.RoleLopTruong, models.RoleBiThu:
		return true
	}
	return false
}

// CanPost reports whether the role may create posts under the current
// site configuration. Admin is always allowed.
func CanPost(role models.Role, config *models.WebsiteConfig) bool {
	return config.CanRolePost(role)
}

// AuthorizationService wraps the predicates with error-returning
// validators for the service layer.
type AuthorizationService struct{}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService() *AuthorizationService {
	return &AuthorizationService{}
}

// ValidateAdmin returns ErrPermissionDenied unless the role is Admin
func (s *AuthorizationService) ValidateAdmin(role models.Role) error {
	if !IsAdmin(role) {
		return apperrors.ErrPermissionDenied
	}
	return nil
}

// ValidateManageDocuments returns ErrPermissionDenied unless the role
// may moderate documents.
func (s *AuthorizationService) ValidateManageDocuments(role models.Role) error {
	if !CanManageDocuments(role) {
		return apperrors.ErrPermissionDenied
	}
	return nil
}

// ValidateManageMemories returns ErrPermissionDenied unless the role
// may moderate memories.
func (s *AuthorizationService) ValidateManageMemories(role models.Role) error {
	if !CanManageMemories(role) {
		return apperrors.ErrPermissionDenied
	}
	return nil
}

// ValidateManageContent returns ErrPermissionDenied unless the role may
// manage posts and resolve reports.
func (s *AuthorizationService) ValidateManageContent(role models.Role) error {
	if !CanManageContent(role) {
		return apperrors.ErrPermissionDenied
	}
	return nil
}

// ValidatePost returns ErrPermissionDenied unless the role may create
// posts under the given configuration.
func (s *AuthorizationService) ValidatePost(role models.Role, config *models.WebsiteConfig) error {
	if !CanPost(role, config) {
		return apperrors.ErrPermissionDenied
	}
	return nil
}
