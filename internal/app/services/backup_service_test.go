package services

import (
	"errors"
	"testing"

	"github.com/AnhTuano/CNTTK23M/internal/app/models"
	"github.com/AnhTuano/CNTTK23M/internal/app/models/dto"
	"github.com/AnhTuano/CNTTK23M/internal/pkg/apperrors"
)

func TestBackupRequiresAdmin(t *testing.T) {
	f := newFixture(t)
	if _, err := f.backup.Export(models.RoleLopTruong); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("Export() error = %v, want %v", err, apperrors.ErrPermissionDenied)
	}
	if err := f.backup.Restore(models.RoleThanhVien, []byte("{}")); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("Restore() error = %v, want %v", err, apperrors.ErrPermissionDenied)
	}
}

func TestBackupRoundTrip(t *testing.T) {
	f := newFixture(t)
	post, _ := f.posts.Create(f.user(t, adminID), &dto.CreatePostRequest{Title: "giữ lại", Content: "nội dung"})

	data, err := f.backup.Export(models.RoleAdmin)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	// Mutate, then restore the snapshot
	if err := f.posts.Delete(f.user(t, adminID), post.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := f.backup.Restore(models.RoleAdmin, data); err != nil {
		t.Fatalf("Restore() error = %v", err)
	}

	got, err := f.posts.GetByID(post.ID)
	if err != nil {
		t.Fatalf("GetByID() after restore error = %v", err)
	}
	if got.Title != "giữ lại" {
		t.Errorf("restored title = %q", got.Title)
	}
	if users := f.users.GetAll(); len(users) != 6 {
		t.Errorf("restored roster = %d, want 6", len(users))
	}
}

func TestRestoreRejectsMalformedDocuments(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "đây không phải json"},
		{"empty object", "{}"},
		{"config without users", `{"websiteConfig":{"className":"x","websiteName":"y"},"users":[]}`},
		{"users without config", `{"users":[{"id":1,"name":"An","role":"Admin"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			before := len(f.users.GetAll())

			err := f.backup.Restore(models.RoleAdmin, []byte(tt.data))
			if !errors.Is(err, apperrors.ErrMalformedImport) {
				t.Fatalf("Restore() error = %v, want %v", err, apperrors.ErrMalformedImport)
			}
			// A rejected import must leave the state untouched
			if got := len(f.users.GetAll()); got != before {
				t.Errorf("roster changed after rejected import: %d -> %d", before, got)
			}
		})
	}
}
