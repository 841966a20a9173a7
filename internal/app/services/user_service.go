package services

import (
	"github.com/rs/zerolog"

	"github.com/AnhTuano/CNTTK23M/internal/app/auth"
	"github.com/AnhTuano/CNTTK23M/internal/app/models"
	"github.com/AnhTuano/CNTTK23M/internal/app/models/dto"
	"github.com/AnhTuano/CNTTK23M/internal/app/repositories"
	"github.com/AnhTuano/CNTTK23M/internal/pkg/apperrors"
	pkgauth "github.com/AnhTuano/CNTTK23M/internal/pkg/auth"
	"github.com/AnhTuano/CNTTK23M/internal/pkg/validation"
)

// UserService defines the interface for member profile operations
type UserService interface {
	GetAll() []dto.UserResponse
	GetByID(id int64) (*dto.UserResponse, error)
	UpdateProfile(userID int64, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
	Create(actorRole models.Role, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	UpdateRole(actorRole models.Role, userID int64, role models.Role) (*dto.UserResponse, error)
	SetLocked(actorRole models.Role, userID int64, locked bool) (*dto.UserResponse, error)
	Delete(actorRole models.Role, userID int64) error
}

// userServiceImpl implements UserService
type userServiceImpl struct {
	userRepo     *repositories.UserRepository
	postRepo     *repositories.PostRepository
	documentRepo *repositories.DocumentRepository
	authzService *auth.AuthorizationService
	logger       zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(
	userRepo *repositories.UserRepository,
	postRepo *repositories.PostRepository,
	documentRepo *repositories.DocumentRepository,
	authzService *auth.AuthorizationService,
	logger zerolog.Logger,
) UserService {
	return &userServiceImpl{
		userRepo:     userRepo,
		postRepo:     postRepo,
		documentRepo: documentRepo,
		authzService: authzService,
		logger:       logger,
	}
}

// buildUserResponse maps a member to its response form. Contribution
// counters are computed from the live collections rather than stored,
// so deleting content is reflected immediately.
func buildUserResponse(u *models.User, posts []*models.Post, docs []*models.Document) dto.UserResponse {
	stats := dto.UserStats{Points: u.Points}
	for _, p := range posts {
		if p.AuthorID == u.ID {
			stats.Posts++
		}
		for _, c := range p.Comments {
			if c.AuthorID == u.ID {
				stats.Comments++
			}
		}
	}
	for _, d := range docs {
		if d.UploaderID == u.ID {
			stats.Documents++
		}
	}
	badges := u.Badges
	if badges == nil {
		badges = []models.Badge{}
	}
	return dto.UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Avatar:     u.Avatar,
		CoverImage: u.CoverImage,
		Role:       u.Role,
		Bio:        u.Bio,
		Major:      u.Major,
		JoinDate:   u.JoinDate,
		Birthday:   u.Birthday,
		Contact: dto.ContactInfo{
			Email: u.Contact.Email,
			Phone: u.Contact.Phone,
		},
		Socials: dto.SocialLinks{
			Facebook: u.Socials.Facebook,
			Github:   u.Socials.Github,
		},
		Stats:              stats,
		Badges:             badges,
		Locked:             u.Locked,
		MustChangePassword: u.MustChangePassword,
	}
}

// GetAll returns every class member
func (s *userServiceImpl) GetAll() []dto.UserResponse {
	users := s.userRepo.GetAll()
	posts := s.postRepo.GetAll()
	docs := s.documentRepo.GetAll()
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, buildUserResponse(u, posts, docs))
	}
	return out
}

// GetByID returns the member with the given id
func (s *userServiceImpl) GetByID(id int64) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	resp := buildUserResponse(user, s.postRepo.GetAll(), s.documentRepo.GetAll())
	return &resp, nil
}

// UpdateProfile lets members edit their own profile fields. Role,
// points, badges and account flags are not touched here.
func (s *userServiceImpl) UpdateProfile(userID int64, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	if !validation.IsValidName(req.Name) {
		return nil, apperrors.ErrValidationFailed
	}
	if req.Birthday != "" && !validation.IsValidBirthday(req.Birthday) {
		return nil, apperrors.ErrValidationFailed
	}
	if req.Contact.Email != "" && !validation.IsValidEmail(req.Contact.Email) {
		return nil, apperrors.ErrValidationFailed
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	user.Name = req.Name
	user.Avatar = req.Avatar
	user.CoverImage = req.CoverImage
	user.Bio = req.Bio
	user.Major = req.Major
	user.Birthday = req.Birthday
	user.Contact.Email = req.Contact.Email
	user.Contact.Phone = req.Contact.Phone
	user.Socials.Facebook = req.Socials.Facebook
	user.Socials.Github = req.Socials.Github
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	resp := buildUserResponse(user, s.postRepo.GetAll(), s.documentRepo.GetAll())
	return &resp, nil
}

// Create adds a member account. New accounts start unlocked, with no
// points or badges, and must change their password on first login.
func (s *userServiceImpl) Create(actorRole models.Role, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	if err := s.authzService.ValidateAdmin(actorRole); err != nil {
		return nil, err
	}
	if !validation.IsValidName(req.Name) || !validation.IsValidEmail(req.Email) {
		return nil, apperrors.ErrValidationFailed
	}
	if !validation.IsValidPassword(req.Password) {
		return nil, apperrors.ErrInvalidPassword
	}
	if !req.Role.IsValid() {
		return nil, apperrors.ErrValidationFailed
	}
	if _, err := s.userRepo.GetByEmail(req.Email); err == nil {
		return nil, apperrors.ErrValidationFailed
	}

	hashed, err := pkgauth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Name:               req.Name,
		Role:               req.Role,
		Contact:            models.Contact{Email: req.Email},
		Badges:             []models.Badge{},
		MustChangePassword: true,
		Password:           hashed,
	}
	s.userRepo.Create(user)

	s.logger.Info().
		Int64("userId", user.ID).
		Str("role", string(req.Role)).
		Msg("Member account created")

	resp := buildUserResponse(user, nil, nil)
	return &resp, nil
}

// UpdateRole changes a member's class role
func (s *userServiceImpl) UpdateRole(actorRole models.Role, userID int64, role models.Role) (*dto.UserResponse, error) {
	if err := s.authzService.ValidateAdmin(actorRole); err != nil {
		return nil, err
	}
	if !role.IsValid() {
		return nil, apperrors.ErrValidationFailed
	}
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	user.Role = role
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	resp := buildUserResponse(user, s.postRepo.GetAll(), s.documentRepo.GetAll())
	return &resp, nil
}

// SetLocked locks or unlocks a member account. Locked members keep
// their data but cannot sign in.
func (s *userServiceImpl) SetLocked(actorRole models.Role, userID int64, locked bool) (*dto.UserResponse, error) {
	if err := s.authzService.ValidateAdmin(actorRole); err != nil {
		return nil, err
	}
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	user.Locked = locked
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	s.logger.Info().
		Int64("userId", userID).
		Bool("locked", locked).
		Msg("Member lock state changed")
	resp := buildUserResponse(user, s.postRepo.GetAll(), s.documentRepo.GetAll())
	return &resp, nil
}

// Delete removes a member account. Authored content stays in place
// with a dangling author reference.
func (s *userServiceImpl) Delete(actorRole models.Role, userID int64) error {
	if err := s.authzService.ValidateAdmin(actorRole); err != nil {
		return err
	}
	if err := s.userRepo.Delete(userID); err != nil {
		return err
	}
	s.logger.Info().Int64("userId", userID).Msg("Member account deleted")
	return nil
}
