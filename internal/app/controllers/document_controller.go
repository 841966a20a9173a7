package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/AnhTuano/CNTTK23M/internal/app/models/dto"
	"github.com/AnhTuano/CNTTK23M/internal/app/services"
	"github.com/AnhTuano/CNTTK23M/internal/middleware"
)

// DocumentController handles study document operations
type DocumentController struct {
	documentService services.DocumentService
	logger          zerolog.Logger
}

// NewDocumentController creates a new DocumentController
func NewDocumentController(documentService services.DocumentService, logger zerolog.Logger) *DocumentController {
	return &DocumentController{
		documentService: documentService,
		logger:          logger,
	}
}

// GetAll returns the approved document collection
// @Summary List documents
// @Tags documents
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Document}
// @Router /documents [get]
func (c *DocumentController) GetAll(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.documentService.GetApproved()))
}

// GetPending returns the moderation queue
// @Summary List pending documents
// @Tags documents, admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Document}
// @Failure 403 {object} dto.ErrorResponse "Not a document manager"
// @Router /documents/pending [get]
func (c *DocumentController) GetPending(ctx *gin.Context) {
	docs, err := c.documentService.GetPending(middleware.CurrentRole(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(docs))
}

// Create submits a document
// @Summary Submit document
// @Description Document managers' submissions are approved immediately, others wait in the queue
// @Tags documents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateDocumentRequest true "Document details"
// @Success 201 {object} dto.APIResponse{data=models.Document}
// @Router /documents [post]
func (c *DocumentController) Create(ctx *gin.Context) {
	var req dto.CreateDocumentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid document data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	user, _ := middleware.CurrentUser(ctx)
	doc, err := c.documentService.Create(user, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(doc))
}

// Update edits a document
// @Summary Update document
// @Tags documents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Document ID"
// @Param request body dto.UpdateDocumentRequest true "Document details"
// @Success 200 {object} dto.APIResponse{data=models.Document}
// @Router /documents/{id} [put]
func (c *DocumentController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateDocumentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid document data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	user, _ := middleware.CurrentUser(ctx)
	doc, err := c.documentService.Update(user, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(doc))
}

// Delete removes a document
// @Summary Delete document
// @Tags documents
// @Produce json
// @Security BearerAuth
// @Param id path int true "Document ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /documents/{id} [delete]
func (c *DocumentController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	user, _ := middleware.CurrentUser(ctx)
	if err := c.documentService.Delete(user, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Document deleted"}))
}

// Approve moves a pending document into the public collection
// @Summary Approve document
// @Tags documents, admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Document ID"
// @Success 200 {object} dto.APIResponse{data=models.Document}
// @Router /documents/{id}/approve [put]
func (c *DocumentController) Approve(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	doc, err := c.documentService.Approve(middleware.CurrentRole(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(doc))
}

// Reject removes a pending document
// @Summary Reject document
// @Tags documents, admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Document ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /documents/{id}/reject [delete]
func (c *DocumentController) Reject(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.documentService.Reject(middleware.CurrentRole(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Document rejected"}))
}
