package dto

import "github.com/AnhTuano/CNTTK23M/internal/app/models"

// CreatePollRequest represents a poll attached to a new post
type CreatePollRequest struct {
	Question string   `json:"question" binding:"required"`
	Options  []string `json:"options" binding:"required,min=2"`
}

// CreatePostRequest represents a new feed post submission
type CreatePostRequest struct {
	Title    string             `json:"title" binding:"required"`
	Content  string             `json:"content" binding:"required"`
	Category string             `json:"category"`
	ImageURL string             `json:"imageUrl"`
	Poll     *CreatePollRequest `json:"poll,omitempty"`
}

// UpdatePostRequest represents an edit to an existing post
type UpdatePostRequest struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Category string `json:"category"`
	ImageURL string `json:"imageUrl"`
}

// VoteRequest represents an up or down vote on a post
type VoteRequest struct {
	Direction models.VoteDirection `json:"direction" binding:"required"`
}

// PollVoteRequest represents a vote for a poll option
type PollVoteRequest struct {
	OptionID int64 `json:"optionId" binding:"required"`
}

// CreateCommentRequest represents a new comment on a post
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// PinRequest represents pinning or unpinning a post
type PinRequest struct {
	Pinned bool `json:"pinned"`
}

// PostResponse represents a feed post with its computed score
type PostResponse struct {
	Post  *models.Post `json:"post"`
	Score int          `json:"score"`
}

// FeedResponse represents the ordered feed
type FeedResponse struct {
	Posts []PostResponse `json:"posts"`
}
