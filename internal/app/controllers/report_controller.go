package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/AnhTuano/CNTTK23M/internal/app/models/dto"
	"github.com/AnhTuano/CNTTK23M/internal/app/services"
	"github.com/AnhTuano/CNTTK23M/internal/middleware"
)

// ReportController handles moderation report operations
type ReportController struct {
	reportService services.ReportService
	logger        zerolog.Logger
}

// NewReportController creates a new ReportController
func NewReportController(reportService services.ReportService, logger zerolog.Logger) *ReportController {
	return &ReportController{
		reportService: reportService,
		logger:        logger,
	}
}

// Create files a report
// @Summary Report content
// @Description Files a report against a post, comment or document. The Khác reason requires details
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateReportRequest true "Report details"
// @Success 201 {object} dto.APIResponse{data=models.Report}
// @Router /reports [post]
func (c *ReportController) Create(ctx *gin.Context) {
	var req dto.CreateReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid report data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	user, _ := middleware.CurrentUser(ctx)
	report, err := c.reportService.Create(user, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(report))
}

// GetPending returns unresolved reports
// @Summary List pending reports
// @Tags reports, admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Report}
// @Failure 403 {object} dto.ErrorResponse "Not a content moderator"
// @Router /reports/pending [get]
func (c *ReportController) GetPending(ctx *gin.Context) {
	reports, err := c.reportService.GetPending(middleware.CurrentRole(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(reports))
}

// Resolve closes a report
// @Summary Resolve report
// @Description Dismisses the report or deletes the reported content along with it
// @Tags reports, admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Report ID"
// @Param request body dto.ResolveReportRequest true "Resolution decision"
// @Success 200 {object} dto.APIResponse{data=models.Report}
// @Failure 409 {object} dto.ErrorResponse "Report already resolved"
// @Router /reports/{id}/resolve [put]
func (c *ReportController) Resolve(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.ResolveReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid resolution data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	report, err := c.reportService.Resolve(middleware.CurrentRole(ctx), id, req.DeleteContent)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(report))
}
