package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/AnhTuano/CNTTK23M/internal/app/models/dto"
	"github.com/AnhTuano/CNTTK23M/internal/app/services"
	"github.com/AnhTuano/CNTTK23M/internal/middleware"
)

// ChatController handles chat room operations
type ChatController struct {
	chatService services.ChatService
	logger      zerolog.Logger
}

// NewChatController creates a new ChatController
func NewChatController(chatService services.ChatService, logger zerolog.Logger) *ChatController {
	return &ChatController{
		chatService: chatService,
		logger:      logger,
	}
}

// GetRooms returns the rooms visible to the member
// @Summary List chat rooms
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.ChatRoomResponse}
// @Router /chat/rooms [get]
func (c *ChatController) GetRooms(ctx *gin.Context) {
	user, _ := middleware.CurrentUser(ctx)
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.chatService.GetRooms(user)))
}

// GetRoom returns a room with its message history
// @Summary Get chat room
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 200 {object} dto.APIResponse{data=models.ChatRoom}
// @Failure 403 {object} dto.ErrorResponse "Room is restricted"
// @Failure 404 {object} dto.ErrorResponse "Room not found"
// @Router /chat/rooms/{id} [get]
func (c *ChatController) GetRoom(ctx *gin.Context) {
	user, _ := middleware.CurrentUser(ctx)
	room, err := c.chatService.GetRoom(user, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(room))
}

// SendMessage posts a message to a room
// @Summary Send chat message
// @Description Appends the message, pushes it to room subscribers and triggers a simulated reply
// @Tags chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param request body dto.SendMessageRequest true "Message text"
// @Success 201 {object} dto.APIResponse{data=models.ChatMessage}
// @Router /chat/rooms/{id}/messages [post]
func (c *ChatController) SendMessage(ctx *gin.Context) {
	var req dto.SendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid message data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	user, _ := middleware.CurrentUser(ctx)
	msg, err := c.chatService.SendMessage(user, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(msg))
}
