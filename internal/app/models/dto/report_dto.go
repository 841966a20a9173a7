package dto

import "github.com/AnhTuano/CNTTK23M/internal/app/models"

// CreateReportRequest represents a content report submission
type CreateReportRequest struct {
	ContentType models.ReportContentType `json:"contentType" binding:"required"`
	ContentID   int64                    `json:"contentId" binding:"required"`
	Reason      models.ReportReason      `json:"reason" binding:"required"`
	Details     string                   `json:"details"`
}

// ResolveReportRequest represents a moderator's resolution decision
type ResolveReportRequest struct {
	DeleteContent bool `json:"deleteContent"`
}
