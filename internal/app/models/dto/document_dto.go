package dto

import "github.com/AnhTuano/CNTTK23M/internal/app/models"

// CreateDocumentRequest represents a new study document submission
type CreateDocumentRequest struct {
	Title   string              `json:"title" binding:"required"`
	Subject string              `json:"subject" binding:"required"`
	Type    models.DocumentType `json:"type" binding:"required"`
	Link    string              `json:"link" binding:"required,url"`
}

// UpdateDocumentRequest represents an edit to an existing document
type UpdateDocumentRequest struct {
	Title   string              `json:"title" binding:"required"`
	Subject string              `json:"subject" binding:"required"`
	Type    models.DocumentType `json:"type" binding:"required"`
	Link    string              `json:"link" binding:"required,url"`
}
