package services

import (
	"errors"
	"testing"

	"github.com/AnhTuano/CNTTK23M/internal/app/models"
	"github.com/AnhTuano/CNTTK23M/internal/app/models/dto"
	"github.com/AnhTuano/CNTTK23M/internal/pkg/apperrors"
)

func TestReportCreateValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.CreateReportRequest
		wantErr bool
	}{
		{"valid spam report", dto.CreateReportRequest{ContentType: models.ReportContentPost, ContentID: 1, Reason: models.ReasonSpam}, false},
		{"khac with details", dto.CreateReportRequest{ContentType: models.ReportContentPost, ContentID: 1, Reason: models.ReasonKhac, Details: "lý do riêng"}, false},
		{"khac without details", dto.CreateReportRequest{ContentType: models.ReportContentPost, ContentID: 1, Reason: models.ReasonKhac}, true},
		{"unknown reason", dto.CreateReportRequest{ContentType: models.ReportContentPost, ContentID: 1, Reason: "Tùy hứng"}, true},
		{"unknown content type", dto.CreateReportRequest{ContentType: "memory", ContentID: 1, Reason: models.ReasonSpam}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			_, err := f.reports.Create(f.user(t, memberID), &tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Create() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Errorf("Create() error = %v, want %v", err, apperrors.ErrValidationFailed)
			}
		})
	}
}

func TestReportResolveDeletesContent(t *testing.T) {
	f := newFixture(t)
	post, _ := f.posts.Create(f.user(t, adminID), &dto.CreatePostRequest{Title: "spam", Content: "spam"})
	report, _ := f.reports.Create(f.user(t, memberID), &dto.CreateReportRequest{
		ContentType: models.ReportContentPost, ContentID: post.ID, Reason: models.ReasonSpam,
	})

	resolved, err := f.reports.Resolve(models.RoleLopTruong, report.ID, true)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if resolved.Status != models.ReportResolved {
		t.Errorf("status = %q, want resolved", resolved.Status)
	}
	if _, err := f.posts.GetByID(post.ID); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Errorf("reported post should be deleted, got err = %v", err)
	}
}

func TestReportResolveDeletesComment(t *testing.T) {
	f := newFixture(t)
	post, _ := f.posts.Create(f.user(t, adminID), &dto.CreatePostRequest{Title: "a", Content: "b"})
	comment, _ := f.posts.AddComment(f.user(t, memberID), post.ID, &dto.CreateCommentRequest{Content: "xấu"})
	report, _ := f.reports.Create(f.user(t, biThuID), &dto.CreateReportRequest{
		ContentType: models.ReportContentComment, ContentID: comment.ID, Reason: models.ReasonQuayRoi,
	})

	if _, err := f.reports.Resolve(models.RoleAdmin, report.ID, true); err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	got, err := f.posts.GetByID(post.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if len(got.Comments) != 0 {
		t.Errorf("comments = %d, want 0", len(got.Comments))
	}
}

func TestReportResolveSurvivesMissingTarget(t *testing.T) {
	f := newFixture(t)
	post, _ := f.posts.Create(f.user(t, adminID), &dto.CreatePostRequest{Title: "a", Content: "b"})
	report, _ := f.reports.Create(f.user(t, memberID), &dto.CreateReportRequest{
		ContentType: models.ReportContentPost, ContentID: post.ID, Reason: models.ReasonSpam,
	})

	// The author deletes the post before moderation gets to it
	if err := f.posts.Delete(f.user(t, adminID), post.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	resolved, err := f.reports.Resolve(models.RoleAdmin, report.ID, true)
	if err != nil {
		t.Fatalf("Resolve() with missing target error = %v", err)
	}
	if resolved.Status != models.ReportResolved {
		t.Errorf("status = %q, want resolved", resolved.Status)
	}
}

func TestReportDoubleResolveConflicts(t *testing.T) {
	f := newFixture(t)
	report, _ := f.reports.Create(f.user(t, memberID), &dto.CreateReportRequest{
		ContentType: models.ReportContentPost, ContentID: 1, Reason: models.ReasonSpam,
	})

	if _, err := f.reports.Resolve(models.RoleAdmin, report.ID, false); err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if _, err := f.reports.Resolve(models.RoleAdmin, report.ID, false); !errors.Is(err, apperrors.ErrReportResolved) {
		t.Fatalf("second Resolve() error = %v, want %v", err, apperrors.ErrReportResolved)
	}
}

func TestReportQueueGating(t *testing.T) {
	f := newFixture(t)
	f.reports.Create(f.user(t, memberID), &dto.CreateReportRequest{
		ContentType: models.ReportContentPost, ContentID: 1, Reason: models.ReasonSpam,
	})

	if _, err := f.reports.GetPending(models.RoleThanhVien); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("GetPending(member) error = %v, want %v", err, apperrors.ErrPermissionDenied)
	}
	pending, err := f.reports.GetPending(models.RoleBiThu)
	if err != nil {
		t.Fatalf("GetPending() error = %v", err)
	}
	if len(pending) != 1 {
		t.Errorf("pending = %d, want 1", len(pending))
	}
}
