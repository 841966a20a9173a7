package services

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/AnhTuano/CNTTK23M/internal/app/auth"
	"github.com/AnhTuano/CNTTK23M/internal/app/models"
	"github.com/AnhTuano/CNTTK23M/internal/app/models/dto"
	"github.com/AnhTuano/CNTTK23M/internal/app/repositories"
	"github.com/AnhTuano/CNTTK23M/internal/pkg/apperrors"
)

// ReportService defines the interface for moderation report operations
type ReportService interface {
	Create(actor *models.User, req *dto.CreateReportRequest) (*models.Report, error)
	GetPending(actorRole models.Role) ([]*models.Report, error)
	Resolve(actorRole models.Role, reportID int64, deleteContent bool) (*models.Report, error)
}

// reportServiceImpl implements ReportService
type reportServiceImpl struct {
	reportRepo   *repositories.ReportRepository
	postRepo     *repositories.PostRepository
	documentRepo *repositories.DocumentRepository
	authzService *auth.AuthorizationService
	logger       zerolog.Logger
}

// NewReportService creates a new ReportService
func NewReportService(
	reportRepo *repositories.ReportRepository,
	postRepo *repositories.PostRepository,
	documentRepo *repositories.DocumentRepository,
	authzService *auth.AuthorizationService,
	logger zerolog.Logger,
) ReportService {
	return &reportServiceImpl{
		reportRepo:   reportRepo,
		postRepo:     postRepo,
		documentRepo: documentRepo,
		authzService: authzService,
		logger:       logger,
	}
}

// Create files a report against a piece of content. The Khác reason
// requires free-text details.
func (s *reportServiceImpl) Create(actor *models.User, req *dto.CreateReportRequest) (*models.Report, error) {
	if !req.ContentType.IsValid() || !req.Reason.IsValid() {
		return nil, apperrors.ErrValidationFailed
	}
	if req.Reason == models.ReasonKhac && req.Details == "" {
		return nil, apperrors.ErrValidationFailed
	}

	report := &models.Report{
		ContentType: req.ContentType,
		ContentID:   req.ContentID,
		ReporterID:  actor.ID,
		Reason:      req.Reason,
		Details:     req.Details,
		Timestamp:   time.Now(),
		Status:      models.ReportPending,
	}
	s.reportRepo.Create(report)

	s.logger.Info().
		Int64("reportId", report.ID).
		Str("contentType", string(req.ContentType)).
		Int64("contentId", req.ContentID).
		Msg("Report filed")
	return report, nil
}

// GetPending returns unresolved reports for the moderation queue
func (s *reportServiceImpl) GetPending(actorRole models.Role) ([]*models.Report, error) {
	if err := s.authzService.ValidateManageContent(actorRole); err != nil {
		return nil, err
	}
	return s.reportRepo.GetByStatus(models.ReportPending), nil
}

// Resolve closes a report, optionally deleting the reported content.
// The target may already be gone; resolution still succeeds then, the
// report is simply marked resolved.
func (s *reportServiceImpl) Resolve(actorRole models.Role, reportID int64, deleteContent bool) (*models.Report, error) {
	if err := s.authzService.ValidateManageContent(actorRole); err != nil {
		return nil, err
	}
	report, err := s.reportRepo.GetByID(reportID)
	if err != nil {
		return nil, err
	}
	if report.Status == models.ReportResolved {
		return nil, apperrors.ErrReportResolved
	}

	if deleteContent {
		s.deleteTarget(report)
	}
	resolved, err := s.reportRepo.SetStatus(reportID, models.ReportResolved)
	if err != nil {
		return nil, err
	}
	s.logger.Info().
		Int64("reportId", reportID).
		Bool("deletedContent", deleteContent).
		Msg("Report resolved")
	return resolved, nil
}

// deleteTarget removes the reported content if it still exists
func (s *reportServiceImpl) deleteTarget(report *models.Report) {
	var err error
	switch report.ContentType {
	case models.ReportContentPost:
		err = s.postRepo.Delete(report.ContentID)
	case models.ReportContentComment:
		if !s.postRepo.DeleteComment(report.ContentID) {
			err = apperrors.ErrCommentNotFound
		}
	case models.ReportContentDocument:
		err = s.documentRepo.Delete(report.ContentID)
	}
	if err != nil {
		s.logger.Debug().
			Int64("reportId", report.ID).
			Str("contentType", string(report.ContentType)).
			Msg("Reported content already gone")
	}
}
