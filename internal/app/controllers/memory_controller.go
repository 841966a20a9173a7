package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/AnhTuano/CNTTK23M/internal/app/models/dto"
	"github.com/AnhTuano/CNTTK23M/internal/app/services"
	"github.com/AnhTuano/CNTTK23M/internal/middleware"
)

// MemoryController handles gallery operations
type MemoryController struct {
	memoryService services.MemoryService
	logger        zerolog.Logger
}

// NewMemoryController creates a new MemoryController
func NewMemoryController(memoryService services.MemoryService, logger zerolog.Logger) *MemoryController {
	return &MemoryController{
		memoryService: memoryService,
		logger:        logger,
	}
}

// GetAll returns the approved gallery
// @Summary List memories
// @Tags memories
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Memory}
// @Router /memories [get]
func (c *MemoryController) GetAll(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.memoryService.GetApproved()))
}

// GetPending returns the moderation queue
// @Summary List pending memories
// @Tags memories, admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Memory}
// @Failure 403 {object} dto.ErrorResponse "Not a gallery manager"
// @Router /memories/pending [get]
func (c *MemoryController) GetPending(ctx *gin.Context) {
	memories, err := c.memoryService.GetPending(middleware.CurrentRole(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(memories))
}

// Create submits a memory
// @Summary Submit memory
// @Tags memories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateMemoryRequest true "Memory details"
// @Success 201 {object} dto.APIResponse{data=models.Memory}
// @Router /memories [post]
func (c *MemoryController) Create(ctx *gin.Context) {
	var req dto.CreateMemoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid memory data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	user, _ := middleware.CurrentUser(ctx)
	mem, err := c.memoryService.Create(user, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(mem))
}

// Delete removes a memory
// @Summary Delete memory
// @Tags memories
// @Produce json
// @Security BearerAuth
// @Param id path int true "Memory ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /memories/{id} [delete]
func (c *MemoryController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	user, _ := middleware.CurrentUser(ctx)
	if err := c.memoryService.Delete(user, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Memory deleted"}))
}

// Approve moves a pending memory into the public gallery
// @Summary Approve memory
// @Tags memories, admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Memory ID"
// @Success 200 {object} dto.APIResponse{data=models.Memory}
// @Router /memories/{id}/approve [put]
func (c *MemoryController) Approve(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	mem, err := c.memoryService.Approve(middleware.CurrentRole(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(mem))
}

// Reject removes a pending memory
// @Summary Reject memory
// @Tags memories, admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Memory ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /memories/{id}/reject [delete]
func (c *MemoryController) Reject(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.memoryService.Reject(middleware.CurrentRole(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Memory rejected"}))
}

// React adds an emoji reaction
// @Summary React to memory
// @Description Reactions are anonymous aggregate counts and cannot be withdrawn
// @Tags memories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Memory ID"
// @Param request body dto.ReactRequest true "Emoji"
// @Success 200 {object} dto.APIResponse{data=models.Memory}
// @Router /memories/{id}/react [post]
func (c *MemoryController) React(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.ReactRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid reaction data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	mem, err := c.memoryService.React(id, req.Emoji)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(mem))
}
