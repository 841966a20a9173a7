package services

import (
	"errors"
	"testing"

	"github.com/AnhTuano/CNTTK23M/internal/app/models"
	"github.com/AnhTuano/CNTTK23M/internal/app/models/dto"
	"github.com/AnhTuano/CNTTK23M/internal/pkg/apperrors"
)

func TestUserDerivedCounters(t *testing.T) {
	f := newFixture(t)
	admin := f.user(t, adminID)

	post, _ := f.posts.Create(admin, &dto.CreatePostRequest{Title: "a", Content: "b"})
	f.posts.AddComment(admin, post.ID, &dto.CreateCommentRequest{Content: "c"})
	f.posts.AddComment(f.user(t, memberID), post.ID, &dto.CreateCommentRequest{Content: "d"})
	f.documents.Create(admin, docRequest())

	got, err := f.users.GetByID(adminID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Stats.Posts != 1 || got.Stats.Comments != 1 || got.Stats.Documents != 1 {
		t.Errorf("stats = %+v, want posts=1 comments=1 documents=1", got.Stats)
	}

	// Deleting the post drops the authored counters immediately
	if err := f.posts.Delete(admin, post.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	got, _ = f.users.GetByID(adminID)
	if got.Stats.Posts != 0 || got.Stats.Comments != 0 {
		t.Errorf("stats after delete = %+v, want posts=0 comments=0", got.Stats)
	}
	// Points earned are stored, not derived, so they survive the delete
	if got.Stats.Points <= 100 {
		t.Errorf("points = %d, want above the seeded 100", got.Stats.Points)
	}
}

func TestUserCreate(t *testing.T) {
	f := newFixture(t)
	req := &dto.CreateUserRequest{Name: "Hòa", Email: "hoa@example.com", Password: "mật-khẩu-1", Role: models.RoleThanhVien}

	if _, err := f.users.Create(models.RoleLopTruong, req); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("Create(non admin) error = %v, want %v", err, apperrors.ErrPermissionDenied)
	}

	created, err := f.users.Create(models.RoleAdmin, req)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.Stats.Points != 0 || len(created.Badges) != 0 {
		t.Errorf("new account = %+v, want zero points and no badges", created)
	}
	if !created.MustChangePassword {
		t.Error("new account should be forced to change password")
	}

	// Same email again is rejected
	if _, err := f.users.Create(models.RoleAdmin, req); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("duplicate Create() error = %v, want %v", err, apperrors.ErrValidationFailed)
	}
}

func TestUserCreateValidation(t *testing.T) {
	f := newFixture(t)
	tests := []struct {
		name string
		req  dto.CreateUserRequest
	}{
		{"bad email", dto.CreateUserRequest{Name: "Hòa", Email: "không phải email", Password: "mật-khẩu-1", Role: models.RoleThanhVien}},
		{"unknown role", dto.CreateUserRequest{Name: "Hòa", Email: "hoa@example.com", Password: "mật-khẩu-1", Role: "Chủ tịch"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := f.users.Create(models.RoleAdmin, &tt.req); !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Fatalf("Create() error = %v, want %v", err, apperrors.ErrValidationFailed)
			}
		})
	}
	short := dto.CreateUserRequest{Name: "Hòa", Email: "hoa@example.com", Password: "ngắn", Role: models.RoleThanhVien}
	if _, err := f.users.Create(models.RoleAdmin, &short); !errors.Is(err, apperrors.ErrInvalidPassword) {
		t.Fatalf("Create(short password) error = %v, want %v", err, apperrors.ErrInvalidPassword)
	}
}

func TestUserUpdateProfile(t *testing.T) {
	f := newFixture(t)

	got, err := f.users.UpdateProfile(memberID, &dto.UpdateProfileRequest{
		Name:     "Em Mới",
		Bio:      "xin chào",
		Birthday: "20/10",
		Contact:  dto.ContactInfo{Email: "em@example.com"},
	})
	if err != nil {
		t.Fatalf("UpdateProfile() error = %v", err)
	}
	if got.Name != "Em Mới" || got.Birthday != "20/10" {
		t.Errorf("profile = %+v", got)
	}
	// Role is not touched by a profile update
	if got.Role != models.RoleThanhVien {
		t.Errorf("role = %q, want unchanged", got.Role)
	}

	if _, err := f.users.UpdateProfile(memberID, &dto.UpdateProfileRequest{Name: "x", Birthday: "năm nào đó"}); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("UpdateProfile(bad birthday) error = %v, want %v", err, apperrors.ErrValidationFailed)
	}
}

func TestUserRoleAndLockAdministration(t *testing.T) {
	f := newFixture(t)

	if _, err := f.users.UpdateRole(models.RoleLopTruong, memberID, models.RoleBiThu); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("UpdateRole(non admin) error = %v, want %v", err, apperrors.ErrPermissionDenied)
	}
	got, err := f.users.UpdateRole(models.RoleAdmin, memberID, models.RolePhoBiThu)
	if err != nil {
		t.Fatalf("UpdateRole() error = %v", err)
	}
	if got.Role != models.RolePhoBiThu {
		t.Errorf("role = %q, want %q", got.Role, models.RolePhoBiThu)
	}

	locked, err := f.users.SetLocked(models.RoleAdmin, memberID, true)
	if err != nil {
		t.Fatalf("SetLocked() error = %v", err)
	}
	if !locked.Locked {
		t.Error("account not locked")
	}
}

func TestUserDelete(t *testing.T) {
	f := newFixture(t)
	if err := f.users.Delete(models.RoleBiThu, memberID); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("Delete(non admin) error = %v, want %v", err, apperrors.ErrPermissionDenied)
	}
	if err := f.users.Delete(models.RoleAdmin, memberID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := f.users.GetByID(memberID); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("GetByID() after delete error = %v, want not found", err)
	}
}
