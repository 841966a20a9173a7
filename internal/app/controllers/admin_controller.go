package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/AnhTuano/CNTTK23M/internal/app/models/dto"
	"github.com/AnhTuano/CNTTK23M/internal/app/services"
	"github.com/AnhTuano/CNTTK23M/internal/middleware"
)

// AdminController handles site configuration, statistics and backup
// operations.
type AdminController struct {
	configService services.ConfigService
	statsService  services.StatsService
	backupService services.BackupService
	logger        zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(
	configService services.ConfigService,
	statsService services.StatsService,
	backupService services.BackupService,
	logger zerolog.Logger,
) *AdminController {
	return &AdminController{
		configService: configService,
		statsService:  statsService,
		backupService: backupService,
		logger:        logger,
	}
}

// GetConfig returns the site configuration
// @Summary Get site configuration
// @Tags config
// @Produce json
// @Success 200 {object} dto.APIResponse{data=models.WebsiteConfig}
// @Router /config [get]
func (c *AdminController) GetConfig(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.configService.Get()))
}

// UpdateConfig replaces the site configuration
// @Summary Update site configuration
// @Description The admin role is always kept in the allowed-post list
// @Tags config, admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateConfigRequest true "Configuration"
// @Success 200 {object} dto.APIResponse{data=models.WebsiteConfig}
// @Failure 403 {object} dto.ErrorResponse "Admin only"
// @Router /config [put]
func (c *AdminController) UpdateConfig(ctx *gin.Context) {
	var req dto.UpdateConfigRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid configuration data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	cfg, err := c.configService.Update(middleware.CurrentRole(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(cfg))
}

// Leaderboard returns the ranked member list
// @Summary Get leaderboard
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.LeaderboardEntry}
// @Router /stats/leaderboard [get]
func (c *AdminController) Leaderboard(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.statsService.Leaderboard()))
}

// UpcomingBirthdays returns members with a birthday within thirty days
// @Summary Get upcoming birthdays
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.UpcomingBirthday}
// @Router /stats/birthdays [get]
func (c *AdminController) UpcomingBirthdays(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.statsService.UpcomingBirthdays(time.Now())))
}

// Dashboard returns administrative overview counters
// @Summary Get dashboard statistics
// @Tags stats, admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.DashboardStats}
// @Failure 403 {object} dto.ErrorResponse "Admin only"
// @Router /stats/dashboard [get]
func (c *AdminController) Dashboard(ctx *gin.Context) {
	stats, err := c.statsService.Dashboard(middleware.CurrentRole(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(stats))
}

// ExportBackup streams the full application state as JSON
// @Summary Export backup
// @Tags backup, admin
// @Produce json
// @Security BearerAuth
// @Success 200 {string} string "Backup document"
// @Failure 403 {object} dto.ErrorResponse "Admin only"
// @Router /backup/export [get]
func (c *AdminController) ExportBackup(ctx *gin.Context) {
	data, err := c.backupService.Export(middleware.CurrentRole(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Header("Content-Disposition", "attachment; filename=backup.json")
	ctx.Data(http.StatusOK, "application/json", data)
}

// RestoreBackup replaces the full application state
// @Summary Restore backup
// @Description Replaces all state with a previously exported document. Malformed documents leave the state untouched
// @Tags backup, admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 400 {object} dto.ErrorResponse "Malformed backup document"
// @Router /backup/restore [post]
func (c *AdminController) RestoreBackup(ctx *gin.Context) {
	data, err := ctx.GetRawData()
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeMalformedImport, "Could not read backup document")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	if err := c.backupService.Restore(middleware.CurrentRole(ctx), data); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "State restored"}))
}
