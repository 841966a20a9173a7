package services

import (
	"errors"
	"testing"

	"github.com/AnhTuano/CNTTK23M/internal/app/models"
	"github.com/AnhTuano/CNTTK23M/internal/app/models/dto"
	"github.com/AnhTuano/CNTTK23M/internal/pkg/apperrors"
)

func memoryRequest() *dto.CreateMemoryRequest {
	return &dto.CreateMemoryRequest{
		URL:      "https://example.com/photo.jpg",
		Semester: "Học kỳ 1 - Năm 2",
	}
}

func TestMemoryCreateModerationStatus(t *testing.T) {
	tests := []struct {
		name    string
		actorID int64
		want    models.ContentStatus
	}{
		{"plain member waits for review", memberID, models.StatusPending},
		{"hoc tap officer waits for review", hocTapID, models.StatusPending},
		// The reviewer role itself does not skip the queue
		{"gallery manager waits for review", doiSongID, models.StatusPending},
		{"admin bypasses review", adminID, models.StatusApproved},
		{"lop truong bypasses review", lopTruongID, models.StatusApproved},
		{"bi thu bypasses review", biThuID, models.StatusApproved},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			mem, err := f.memories.Create(f.user(t, tt.actorID), memoryRequest())
			if err != nil {
				t.Fatalf("Create() error = %v", err)
			}
			if mem.Status != tt.want {
				t.Errorf("status = %q, want %q", mem.Status, tt.want)
			}
		})
	}
}

func TestMemoryModerationQueue(t *testing.T) {
	f := newFixture(t)
	mem, _ := f.memories.Create(f.user(t, memberID), memoryRequest())

	if _, err := f.memories.GetPending(models.RoleLopPhoHocTap); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("GetPending(hoc tap) error = %v, want %v", err, apperrors.ErrPermissionDenied)
	}
	pending, err := f.memories.GetPending(models.RoleLopPhoDoiSong)
	if err != nil {
		t.Fatalf("GetPending() error = %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("pending = %d, want 1", len(pending))
	}

	if _, err := f.memories.Approve(models.RoleLopPhoDoiSong, mem.ID); err != nil {
		t.Fatalf("Approve() error = %v", err)
	}
	if got := len(f.memories.GetApproved()); got != 1 {
		t.Errorf("approved = %d, want 1", got)
	}
}

func TestMemoryRejectDeletes(t *testing.T) {
	f := newFixture(t)
	mem, _ := f.memories.Create(f.user(t, memberID), memoryRequest())

	if err := f.memories.Reject(models.RoleLopPhoDoiSong, mem.ID); err != nil {
		t.Fatalf("Reject() error = %v", err)
	}
	if _, err := f.memories.React(mem.ID, "❤️"); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("React() after reject error = %v, want not found", err)
	}
}

func TestMemoryReactionsAggregate(t *testing.T) {
	f := newFixture(t)
	mem, _ := f.memories.Create(f.user(t, adminID), memoryRequest())

	// Repeat reactions pile up, there is no per-user dedupe
	f.memories.React(mem.ID, "❤️")
	f.memories.React(mem.ID, "❤️")
	got, err := f.memories.React(mem.ID, "😆")
	if err != nil {
		t.Fatalf("React() error = %v", err)
	}
	if got.Reactions["❤️"] != 2 || got.Reactions["😆"] != 1 {
		t.Errorf("reactions = %v, want ❤️:2 😆:1", got.Reactions)
	}
}
