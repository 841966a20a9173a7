package services

import (
	"errors"
	"testing"
	"time"

	"github.com/AnhTuano/CNTTK23M/internal/app/models"
	"github.com/AnhTuano/CNTTK23M/internal/app/models/dto"
	"github.com/AnhTuano/CNTTK23M/internal/pkg/apperrors"
)

func TestLeaderboardOrdering(t *testing.T) {
	f := newFixture(t)
	board := f.stats.Leaderboard()

	wantIDs := []int64{adminID, lopTruongID, hocTapID, biThuID, memberID, doiSongID}
	if len(board) != len(wantIDs) {
		t.Fatalf("leaderboard size = %d, want %d", len(board), len(wantIDs))
	}
	for i, want := range wantIDs {
		if board[i].User.ID != want {
			t.Errorf("rank %d = user %d, want %d", i+1, board[i].User.ID, want)
		}
		if board[i].Rank != i+1 {
			t.Errorf("entry %d rank = %d, want %d", i, board[i].Rank, i+1)
		}
	}
	// Members tied on points keep roster order
	if board[1].Points != board[2].Points {
		t.Fatalf("fixture expects a tie between ranks 2 and 3")
	}
}

func TestDaysUntilBirthday(t *testing.T) {
	now := time.Date(2026, time.March, 10, 15, 30, 0, 0, time.UTC)
	tests := []struct {
		birthday string
		want     int
	}{
		{"10/3", 0},
		{"11/3", 1},
		{"10/03", 0},
		{"1/1", 297}, // already passed, rolls over to next year
		{"", -1},
		{"abc", -1},
		{"15", -1},
		{"12/13", -1},
		{"0/5", -1},
	}
	for _, tt := range tests {
		if got := daysUntilBirthday(tt.birthday, now); got != tt.want {
			t.Errorf("daysUntilBirthday(%q) = %d, want %d", tt.birthday, got, tt.want)
		}
	}
}

func TestUpcomingBirthdaysWindow(t *testing.T) {
	f := newFixture(t)

	// Only Bình (15/05) has a birthday in the fixture
	now := time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC)
	got := f.stats.UpcomingBirthdays(now)
	if len(got) != 1 {
		t.Fatalf("upcoming = %d, want 1", len(got))
	}
	if got[0].User.ID != lopTruongID || got[0].DaysUntil != 14 {
		t.Errorf("upcoming[0] = user %d in %d days, want user %d in 14", got[0].User.ID, got[0].DaysUntil, lopTruongID)
	}

	// Outside the thirty day window nothing shows up
	now = time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	if got := f.stats.UpcomingBirthdays(now); len(got) != 0 {
		t.Errorf("upcoming = %d, want 0", len(got))
	}
}

func TestDashboardRequiresAdmin(t *testing.T) {
	f := newFixture(t)
	if _, err := f.stats.Dashboard(models.RoleLopTruong); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("Dashboard() error = %v, want %v", err, apperrors.ErrPermissionDenied)
	}
}

func TestDashboardCounters(t *testing.T) {
	f := newFixture(t)
	post, _ := f.posts.Create(f.user(t, adminID), &dto.CreatePostRequest{Title: "a", Content: "b"})
	f.posts.AddComment(f.user(t, memberID), post.ID, &dto.CreateCommentRequest{Content: "c"})
	f.documents.Create(f.user(t, memberID), docRequest())
	f.memories.Create(f.user(t, memberID), memoryRequest())
	f.reports.Create(f.user(t, memberID), &dto.CreateReportRequest{
		ContentType: models.ReportContentPost, ContentID: post.ID, Reason: models.ReasonSpam,
	})

	stats, err := f.stats.Dashboard(models.RoleAdmin)
	if err != nil {
		t.Fatalf("Dashboard() error = %v", err)
	}
	if stats.TotalUsers != 6 || stats.TotalPosts != 1 || stats.TotalComments != 1 || stats.TotalDocuments != 1 {
		t.Errorf("totals = %+v", stats)
	}
	if stats.PendingDocuments != 1 || stats.PendingMemories != 1 || stats.PendingReports != 1 {
		t.Errorf("pending counters = %+v", stats)
	}
	if stats.TopUser == nil || stats.TopUser.ID != adminID {
		t.Errorf("top user = %+v, want user %d", stats.TopUser, adminID)
	}
}
