package services

import (
	"github.com/rs/zerolog"

	"github.com/AnhTuano/CNTTK23M/internal/app/models/dto"
	"github.com/AnhTuano/CNTTK23M/internal/app/repositories"
	"github.com/AnhTuano/CNTTK23M/internal/pkg/apperrors"
	"github.com/AnhTuano/CNTTK23M/internal/pkg/auth"
	"github.com/AnhTuano/CNTTK23M/internal/pkg/validation"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	Login(req *dto.LoginRequest) (*dto.AuthResponse, error)
	ChangePassword(userID int64, req *dto.ChangePasswordRequest) error
}

// authServiceImpl implements AuthService
type authServiceImpl struct {
	userRepo     *repositories.UserRepository
	postRepo     *repositories.PostRepository
	documentRepo *repositories.DocumentRepository
	jwtService   *auth.JWTService
	logger       zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo *repositories.UserRepository,
	postRepo *repositories.PostRepository,
	documentRepo *repositories.DocumentRepository,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) AuthService {
	return &authServiceImpl{
		userRepo:     userRepo,
		postRepo:     postRepo,
		documentRepo: documentRepo,
		jwtService:   jwtService,
		logger:       logger,
	}
}

// Login authenticates a member by email and password. Locked accounts
// are rejected before the password is checked.
func (s *authServiceImpl) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if user.Locked {
		s.logger.Warn().
			Int64("userId", user.ID).
			Msg("Login attempt on locked account")
		return nil, apperrors.ErrAccountLocked
	}
	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, expiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		s.logger.Error().Err(err).Int64("userId", user.ID).Msg("Failed to generate token pair")
		return nil, err
	}

	s.logger.Info().
		Int64("userId", user.ID).
		Str("role", string(user.Role)).
		Msg("Member logged in")

	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken:  accessToken,
			TokenType:    "Bearer",
			ExpiresIn:    expiresIn,
			RefreshToken: refreshToken,
		},
		User: buildUserResponse(user, s.postRepo.GetAll(), s.documentRepo.GetAll()),
	}, nil
}

// ChangePassword replaces the member's password and clears the forced
// change flag set on administrative resets.
func (s *authServiceImpl) ChangePassword(userID int64, req *dto.ChangePasswordRequest) error {
	if !validation.IsValidPassword(req.NewPassword) {
		return apperrors.ErrInvalidPassword
	}
	if req.NewPassword != req.ConfirmPassword {
		return apperrors.ErrValidationFailed
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	hashed, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	user.MustChangePassword = false
	if err := s.userRepo.Update(user); err != nil {
		return err
	}

	s.logger.Info().Int64("userId", userID).Msg("Password changed")
	return nil
}
