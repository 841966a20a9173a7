package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/AnhTuano/CNTTK23M/internal/app/models/dto"
	"github.com/AnhTuano/CNTTK23M/internal/app/services"
	"github.com/AnhTuano/CNTTK23M/internal/middleware"
)

// PostController handles feed operations
type PostController struct {
	postService services.PostService
	logger      zerolog.Logger
}

// NewPostController creates a new PostController
func NewPostController(postService services.PostService, logger zerolog.Logger) *PostController {
	return &PostController{
		postService: postService,
		logger:      logger,
	}
}

// GetFeed returns the ordered feed
// @Summary Get feed
// @Description Returns posts ordered by score with pinned posts first, optionally filtered
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param search query string false "Search term matched against title and content"
// @Param category query string false "Category filter"
// @Success 200 {object} dto.APIResponse{data=dto.FeedResponse}
// @Router /posts [get]
func (c *PostController) GetFeed(ctx *gin.Context) {
	feed := c.postService.GetFeed(ctx.Query("search"), ctx.Query("category"))
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(feed))
}

// GetByID returns a single post
// @Summary Get post
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} dto.APIResponse{data=models.Post}
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Router /posts/{id} [get]
func (c *PostController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	post, err := c.postService.GetByID(id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(post))
}

// Create publishes a new post
// @Summary Create post
// @Description Publishes a post, optionally with an attached poll, and awards contribution points
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePostRequest true "Post content"
// @Success 201 {object} dto.APIResponse{data=models.Post}
// @Failure 403 {object} dto.ErrorResponse "Role may not post"
// @Router /posts [post]
func (c *PostController) Create(ctx *gin.Context) {
	var req dto.CreatePostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid post data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	user, _ := middleware.CurrentUser(ctx)
	post, err := c.postService.Create(user, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(post))
}

// Update edits a post
// @Summary Update post
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param request body dto.UpdatePostRequest true "Post content"
// @Success 200 {object} dto.APIResponse{data=models.Post}
// @Router /posts/{id} [put]
func (c *PostController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdatePostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid post data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	user, _ := middleware.CurrentUser(ctx)
	post, err := c.postService.Update(user, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(post))
}

// Delete removes a post
// @Summary Delete post
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /posts/{id} [delete]
func (c *PostController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	user, _ := middleware.CurrentUser(ctx)
	if err := c.postService.Delete(user, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Post deleted"}))
}

// SetPinned pins or unpins a post
// @Summary Pin post
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param request body dto.PinRequest true "Pin state"
// @Success 200 {object} dto.APIResponse{data=models.Post}
// @Router /posts/{id}/pin [put]
func (c *PostController) SetPinned(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.PinRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid pin data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	post, err := c.postService.SetPinned(middleware.CurrentRole(ctx), id, req.Pinned)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(post))
}

// Vote casts, switches or withdraws a vote
// @Summary Vote on post
// @Description Voting the same direction again withdraws the vote, the opposite direction switches it
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param request body dto.VoteRequest true "Vote direction"
// @Success 200 {object} dto.APIResponse{data=models.Post}
// @Router /posts/{id}/vote [post]
func (c *PostController) Vote(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.VoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid vote data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	user, _ := middleware.CurrentUser(ctx)
	post, err := c.postService.Vote(user, id, req.Direction)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(post))
}

// AddComment appends a comment to a post
// @Summary Comment on post
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param request body dto.CreateCommentRequest true "Comment content"
// @Success 201 {object} dto.APIResponse{data=models.Comment}
// @Router /posts/{id}/comments [post]
func (c *PostController) AddComment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.CreateCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid comment data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	user, _ := middleware.CurrentUser(ctx)
	comment, err := c.postService.AddComment(user, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(comment))
}

// VotePoll records a poll choice
// @Summary Vote on poll
// @Description Polls are single choice; picking the chosen option again withdraws the vote
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param request body dto.PollVoteRequest true "Chosen option"
// @Success 200 {object} dto.APIResponse{data=models.Post}
// @Router /posts/{id}/poll/vote [post]
func (c *PostController) VotePoll(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.PollVoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid poll vote data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	user, _ := middleware.CurrentUser(ctx)
	post, err := c.postService.VotePoll(user.ID, id, req.OptionID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(post))
}
