package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/AnhTuano/CNTTK23M/internal/app/auth"
	"github.com/AnhTuano/CNTTK23M/internal/app/models"
	"github.com/AnhTuano/CNTTK23M/internal/app/models/dto"
	"github.com/AnhTuano/CNTTK23M/internal/app/repositories"
	"github.com/AnhTuano/CNTTK23M/internal/pkg/apperrors"
)

// Points awarded for contributions
const (
	pointsPerPost    = 20
	pointsPerComment = 5
)

// PostService defines the interface for feed operations
type PostService interface {
	GetFeed(search, category string) *dto.FeedResponse
	GetByID(id int64) (*models.Post, error)
	Create(actor *models.User, req *dto.CreatePostRequest) (*models.Post, error)
	Update(actor *models.User, postID int64, req *dto.UpdatePostRequest) (*models.Post, error)
	Delete(actor *models.User, postID int64) error
	SetPinned(actorRole models.Role, postID int64, pinned bool) (*models.Post, error)
	Vote(actor *models.User, postID int64, direction models.VoteDirection) (*models.Post, error)
	AddComment(actor *models.User, postID int64, req *dto.CreateCommentRequest) (*models.Comment, error)
	VotePoll(actorID, postID, optionID int64) (*models.Post, error)
}

// postServiceImpl implements PostService
type postServiceImpl struct {
	postRepo     *repositories.PostRepository
	userRepo     *repositories.UserRepository
	configRepo   *repositories.ConfigRepository
	authzService *auth.AuthorizationService
	notifier     NotificationService
	logger       zerolog.Logger
}

// NewPostService creates a new PostService
func NewPostService(
	postRepo *repositories.PostRepository,
	userRepo *repositories.UserRepository,
	configRepo *repositories.ConfigRepository,
	authzService *auth.AuthorizationService,
	notifier NotificationService,
	logger zerolog.Logger,
) PostService {
	return &postServiceImpl{
		postRepo:     postRepo,
		userRepo:     userRepo,
		configRepo:   configRepo,
		authzService: authzService,
		notifier:     notifier,
		logger:       logger,
	}
}

// GetFeed returns posts matching the search term and category, ordered
// by score descending with pinned posts first. The sort is stable, so
// equal scores keep their creation order.
func (s *postServiceImpl) GetFeed(search, category string) *dto.FeedResponse {
	posts := s.postRepo.GetAll()

	filtered := make([]*models.Post, 0, len(posts))
	lowered := strings.ToLower(search)
	for _, p := range posts {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Title), lowered) &&
			!strings.Contains(strings.ToLower(p.Content), lowered) {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		filtered = append(filtered, p)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Score() > filtered[j].Score()
	})

	ordered := make([]*models.Post, 0, len(filtered))
	for _, p := range filtered {
		if p.Pinned {
			ordered = append(ordered, p)
		}
	}
	for _, p := range filtered {
		if !p.Pinned {
			ordered = append(ordered, p)
		}
	}

	resp := &dto.FeedResponse{Posts: make([]dto.PostResponse, 0, len(ordered))}
	for _, p := range ordered {
		resp.Posts = append(resp.Posts, dto.PostResponse{Post: p, Score: p.Score()})
	}
	return resp
}

// GetByID returns the post with the given id
func (s *postServiceImpl) GetByID(id int64) (*models.Post, error) {
	return s.postRepo.GetByID(id)
}

// Create publishes a new post. The author must hold one of the roles
// the site configuration allows to post, and earns contribution
// points for it.
func (s *postServiceImpl) Create(actor *models.User, req *dto.CreatePostRequest) (*models.Post, error) {
	cfg := s.configRepo.Get()
	if err := s.authzService.ValidatePost(actor.Role, &cfg); err != nil {
		return nil, err
	}
	if req.Title == "" || req.Content == "" {
		return nil, apperrors.ErrValidationFailed
	}

	post := &models.Post{
		AuthorID:    actor.ID,
		Title:       req.Title,
		Content:     req.Content,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		UpvotedBy:   []int64{},
		DownvotedBy: []int64{},
		Timestamp:   time.Now(),
		Comments:    []models.Comment{},
	}
	if req.Poll != nil {
		if len(req.Poll.Options) < 2 {
			return nil, apperrors.ErrValidationFailed
		}
		poll := &models.Poll{Question: req.Poll.Question}
		for i, text := range req.Poll.Options {
			poll.Options = append(poll.Options, models.PollOption{
				ID:      int64(i + 1),
				Text:    text,
				VotedBy: []int64{},
			})
		}
		post.Poll = poll
	}
	s.postRepo.Create(post)

	if err := s.userRepo.AddPoints(actor.ID, pointsPerPost); err != nil {
		s.logger.Warn().Err(err).Int64("userId", actor.ID).Msg("Could not award post points")
	}
	s.notifier.Notify(models.NotificationPost,
		fmt.Sprintf("%s đã đăng bài viết mới: \"%s\"", actor.Name, post.Title),
		fmt.Sprintf("/news/%d", post.ID))

	s.logger.Info().
		Int64("postId", post.ID).
		Int64("authorId", actor.ID).
		Msg("Post created")
	return post, nil
}

// Update edits a post. Allowed for the author and for content
// moderators.
func (s *postServiceImpl) Update(actor *models.User, postID int64, req *dto.UpdatePostRequest) (*models.Post, error) {
	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != actor.ID {
		if err := s.authzService.ValidateManageContent(actor.Role); err != nil {
			return nil, err
		}
	}
	if req.Title == "" || req.Content == "" {
		return nil, apperrors.ErrValidationFailed
	}
	post.Title = req.Title
	post.Content = req.Content
	post.Category = req.Category
	post.ImageURL = req.ImageURL
	if err := s.postRepo.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes a post. Allowed for the author and for content
// moderators.
func (s *postServiceImpl) Delete(actor *models.User, postID int64) error {
	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		return err
	}
	if post.AuthorID != actor.ID {
		if err := s.authzService.ValidateManageContent(actor.Role); err != nil {
			return err
		}
	}
	if err := s.postRepo.Delete(postID); err != nil {
		return err
	}
	s.logger.Info().Int64("postId", postID).Int64("actorId", actor.ID).Msg("Post deleted")
	return nil
}

// SetPinned pins or unpins a post on the feed
func (s *postServiceImpl) SetPinned(actorRole models.Role, postID int64, pinned bool) (*models.Post, error) {
	if err := s.authzService.ValidateManageContent(actorRole); err != nil {
		return nil, err
	}
	return s.postRepo.SetPinned(postID, pinned)
}

// Vote casts, switches or withdraws the actor's vote on a post
func (s *postServiceImpl) Vote(actor *models.User, postID int64, direction models.VoteDirection) (*models.Post, error) {
	if !direction.IsValid() {
		return nil, apperrors.ErrValidationFailed
	}
	post, err := s.postRepo.ToggleVote(postID, actor.ID, direction)
	if err != nil {
		return nil, err
	}
	return post, nil
}

// AddComment appends a comment to a post and awards contribution
// points to its author.
func (s *postServiceImpl) AddComment(actor *models.User, postID int64, req *dto.CreateCommentRequest) (*models.Comment, error) {
	if req.Content == "" {
		return nil, apperrors.ErrValidationFailed
	}
	comment, err := s.postRepo.AddComment(postID, models.Comment{
		AuthorID:  actor.ID,
		Content:   req.Content,
		Timestamp: time.Now(),
	})
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.AddPoints(actor.ID, pointsPerComment); err != nil {
		s.logger.Warn().Err(err).Int64("userId", actor.ID).Msg("Could not award comment points")
	}
	s.notifier.Notify(models.NotificationComment,
		fmt.Sprintf("%s đã bình luận về một bài viết", actor.Name),
		fmt.Sprintf("/news/%d", postID))
	return comment, nil
}

// VotePoll records the actor's single poll choice. Choosing the same
// option again withdraws the vote, choosing another moves it.
func (s *postServiceImpl) VotePoll(actorID, postID, optionID int64) (*models.Post, error) {
	return s.postRepo.TogglePollVote(postID, actorID, optionID)
}
