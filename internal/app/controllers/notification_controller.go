package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/AnhTuano/CNTTK23M/internal/app/models/dto"
	"github.com/AnhTuano/CNTTK23M/internal/app/services"
)

// NotificationController handles notification operations
type NotificationController struct {
	notificationService services.NotificationService
	logger              zerolog.Logger
}

// NewNotificationController creates a new NotificationController
func NewNotificationController(notificationService services.NotificationService, logger zerolog.Logger) *NotificationController {
	return &NotificationController{
		notificationService: notificationService,
		logger:              logger,
	}
}

// GetAll returns every notification, newest first
// @Summary List notifications
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Notification}
// @Router /notifications [get]
func (c *NotificationController) GetAll(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.notificationService.GetAll()))
}

// UnreadCount returns the number of unread notifications
// @Summary Count unread notifications
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=int}
// @Router /notifications/unread [get]
func (c *NotificationController) UnreadCount(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"count": c.notificationService.UnreadCount()}))
}

// MarkAllRead flags every notification as read
// @Summary Mark all notifications read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /notifications/read [put]
func (c *NotificationController) MarkAllRead(ctx *gin.Context) {
	c.notificationService.MarkAllRead()
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "All notifications marked read"}))
}
