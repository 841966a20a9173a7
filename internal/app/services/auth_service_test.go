package services

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/AnhTuano/CNTTK23M/internal/app/models/dto"
	"github.com/AnhTuano/CNTTK23M/internal/pkg/apperrors"
	"github.com/AnhTuano/CNTTK23M/internal/pkg/auth"
)

func newAuthFixture(t *testing.T) (*fixture, AuthService) {
	t.Helper()
	f := newFixture(t)

	hash, err := auth.HashPassword("mật-khẩu-1")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	for _, id := range []int64{adminID, memberID} {
		u := f.user(t, id)
		u.Password = hash
		if err := f.repos.UserRepository.Update(u); err != nil {
			t.Fatalf("Update() error = %v", err)
		}
	}
	// Lock one account for the lockout cases
	locked := f.user(t, memberID)
	locked.Locked = true
	if err := f.repos.UserRepository.Update(locked); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", TokenIssuer: "test"})
	svc := NewAuthService(f.repos.UserRepository, f.repos.PostRepository, f.repos.DocumentRepository, jwtService, zerolog.Nop())
	return f, svc
}

func TestLogin(t *testing.T) {
	_, svc := newAuthFixture(t)

	tests := []struct {
		name    string
		email   string
		pass    string
		wantErr error
	}{
		{"success", "an@example.com", "mật-khẩu-1", nil},
		{"email is case insensitive", "AN@Example.COM", "mật-khẩu-1", nil},
		{"unknown email", "nobody@example.com", "mật-khẩu-1", apperrors.ErrInvalidCredentials},
		{"wrong password", "an@example.com", "sai rồi", apperrors.ErrInvalidCredentials},
		{"locked account", "em@example.com", "mật-khẩu-1", apperrors.ErrAccountLocked},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Login(&dto.LoginRequest{Email: tt.email, Password: tt.pass})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Login() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if resp.Token.AccessToken == "" {
				t.Error("empty access token")
			}
			if resp.User.ID != adminID {
				t.Errorf("user id = %d, want %d", resp.User.ID, adminID)
			}
		})
	}
}

func TestChangePassword(t *testing.T) {
	f, svc := newAuthFixture(t)

	// Force the first-login flow
	u := f.user(t, adminID)
	u.MustChangePassword = true
	if err := f.repos.UserRepository.Update(u); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	tests := []struct {
		name    string
		req     dto.ChangePasswordRequest
		wantErr error
	}{
		{"too short", dto.ChangePasswordRequest{NewPassword: "ngắn", ConfirmPassword: "ngắn"}, apperrors.ErrInvalidPassword},
		{"confirmation mismatch", dto.ChangePasswordRequest{NewPassword: "mật-khẩu-mới", ConfirmPassword: "khác hẳn"}, apperrors.ErrValidationFailed},
		{"success", dto.ChangePasswordRequest{NewPassword: "mật-khẩu-mới", ConfirmPassword: "mật-khẩu-mới"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.ChangePassword(adminID, &tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ChangePassword() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	if f.user(t, adminID).MustChangePassword {
		t.Error("MustChangePassword still set after successful change")
	}
	if _, err := svc.Login(&dto.LoginRequest{Email: "an@example.com", Password: "mật-khẩu-mới"}); err != nil {
		t.Errorf("Login() with new password error = %v", err)
	}
}
