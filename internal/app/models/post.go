package models

import "time"

// VoteDirection is the direction of a post vote
type VoteDirection string

const (
	VoteUp   VoteDirection = "up"
	VoteDown VoteDirection = "down"
)

// IsValid reports whether d is a known vote direction
func (d VoteDirection) IsValid() bool {
	return d == VoteUp || d == VoteDown
}

// Comment belongs to a post. Comments are embedded in their post and
// deleted with it, but reports reference them by id.
type Comment struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"postId"`
	AuthorID  int64     `json:"authorId"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// PollOption is a single poll choice with the ids of its voters
type PollOption struct {
	ID      int64   `json:"id"`
	Text    string  `json:"text"`
	VotedBy []int64 `json:"votedBy"`
}

// Poll is an optional single-choice poll attached to a post. A user id
// appears in at most one option's VotedBy at any time.
type Poll struct {
	Question string       `json:"question"`
	Options  []PollOption `json:"options"`
}

// Clone returns a deep copy of the poll
func (p *Poll) Clone() *Poll {
	if p == nil {
		return nil
	}
	c := Poll{Question: p.Question, Options: make([]PollOption, len(p.Options))}
	for i, opt := range p.Options {
		c.Options[i] = PollOption{
			ID:      opt.ID,
			Text:    opt.Text,
			VotedBy: append([]int64(nil), opt.VotedBy...),
		}
	}
	return &c
}

// Post is a news feed entry. UpvotedBy and DownvotedBy are mutually
// exclusive per user id.
type Post struct {
	ID          int64     `json:"id"`
	AuthorID    int64     `json:"authorId"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	UpvotedBy   []int64   `json:"upvotedBy"`
	DownvotedBy []int64   `json:"downvotedBy"`
	Timestamp   time.Time `json:"timestamp"`
	Pinned      bool      `json:"pinned"`
	Comments    []Comment `json:"comments"`
	Poll        *Poll     `json:"poll,omitempty"`
}

// Score is the net vote score used for feed ordering
func (p *Post) Score() int {
	return len(p.UpvotedBy) - len(p.DownvotedBy)
}

// Clone returns a deep copy of the post
func (p *Post) Clone() *Post {
	if p == nil {
		return nil
	}
	c := *p
	c.UpvotedBy = append([]int64(nil), p.UpvotedBy...)
	c.DownvotedBy = append([]int64(nil), p.DownvotedBy...)
	c.Comments = append([]Comment(nil), p.Comments...)
	c.Poll = p.Poll.Clone()
	return &c
}
