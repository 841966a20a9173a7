package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/AnhTuano/CNTTK23M/internal/app/models/dto"
	"github.com/AnhTuano/CNTTK23M/internal/app/services"
	"github.com/AnhTuano/CNTTK23M/internal/middleware"
)

// BadgeController handles badge catalog operations
type BadgeController struct {
	badgeService services.BadgeService
	logger       zerolog.Logger
}

// NewBadgeController creates a new BadgeController
func NewBadgeController(badgeService services.BadgeService, logger zerolog.Logger) *BadgeController {
	return &BadgeController{
		badgeService: badgeService,
		logger:       logger,
	}
}

// GetAll returns the badge catalog
// @Summary List badges
// @Tags badges
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Badge}
// @Router /badges [get]
func (c *BadgeController) GetAll(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.badgeService.GetAll()))
}

// Create adds a badge to the catalog
// @Summary Create badge
// @Description The badge id is derived from the transliterated name
// @Tags badges, admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateBadgeRequest true "Badge details"
// @Success 201 {object} dto.APIResponse{data=models.Badge}
// @Failure 409 {object} dto.ErrorResponse "A badge with a similar name exists"
// @Router /badges [post]
func (c *BadgeController) Create(ctx *gin.Context) {
	var req dto.CreateBadgeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid badge data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	badge, err := c.badgeService.Create(middleware.CurrentRole(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(badge))
}

// Update edits a catalog badge
// @Summary Update badge
// @Description The change propagates to every member already holding the badge
// @Tags badges, admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Badge ID"
// @Param request body dto.UpdateBadgeRequest true "Badge details"
// @Success 200 {object} dto.APIResponse{data=models.Badge}
// @Router /badges/{id} [put]
func (c *BadgeController) Update(ctx *gin.Context) {
	var req dto.UpdateBadgeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid badge data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	badge, err := c.badgeService.Update(middleware.CurrentRole(ctx), ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(badge))
}

// Delete removes a catalog badge
// @Summary Delete badge
// @Description Also removes the badge from every member holding it
// @Tags badges, admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Badge ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /badges/{id} [delete]
func (c *BadgeController) Delete(ctx *gin.Context) {
	if err := c.badgeService.Delete(middleware.CurrentRole(ctx), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Badge deleted"}))
}

// Award gives a badge to a member
// @Summary Award badge
// @Tags badges, admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Param badgeId path string true "Badge ID"
// @Success 200 {object} dto.APIResponse{data=models.User}
// @Router /users/{id}/badges/{badgeId} [put]
func (c *BadgeController) Award(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	user, err := c.badgeService.Award(middleware.CurrentRole(ctx), userID, ctx.Param("badgeId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(user))
}

// Revoke takes a badge away from a member
// @Summary Revoke badge
// @Tags badges, admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Param badgeId path string true "Badge ID"
// @Success 200 {object} dto.APIResponse{data=models.User}
// @Router /users/{id}/badges/{badgeId} [delete]
func (c *BadgeController) Revoke(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	user, err := c.badgeService.Revoke(middleware.CurrentRole(ctx), userID, ctx.Param("badgeId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(user))
}
