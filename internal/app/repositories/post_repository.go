package repositories

import (
	"github.com/AnhTuano/CNTTK23M/internal/app/models"
	"github.com/AnhTuano/CNTTK23M/internal/pkg/apperrors"
)

// PostRepository handles store operations for feed posts
type PostRepository struct {
	store *Store
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(store *Store) *PostRepository {
	return &PostRepository{store: store}
}

// GetAll returns every post in insertion order
func (r *PostRepository) GetAll() []*models.Post {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return clonePosts(r.store.posts)
}

// GetByID returns the post with the given id
func (r *PostRepository) GetByID(id int64) (*models.Post, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, p := range r.store.posts {
		if p.ID == id {
			return p.Clone(), nil
		}
	}
	return nil, apperrors.ErrPostNotFound
}

// Create inserts a post at the head of the collection, assigning a
// fresh id when none is set.
func (r *PostRepository) Create(post *models.Post) int64 {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if post.ID == 0 {
		post.ID = r.store.nextIDLocked()
	} else if post.ID > r.store.lastID {
		r.store.lastID = post.ID
	}
	next := make([]*models.Post, 0, len(r.store.posts)+1)
	next = append(next, post.Clone())
	next = append(next, clonePosts(r.store.posts)...)
	r.store.posts = next
	return post.ID
}

// Update replaces the stored post with the given one, matched by id
func (r *PostRepository) Update(post *models.Post) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	next := clonePosts(r.store.posts)
	for i, p := range next {
		if p.ID == post.ID {
			next[i] = post.Clone()
			r.store.posts = next
			return nil
		}
	}
	return apperrors.ErrPostNotFound
}

// Delete removes the post along with its comments and poll
func (r *PostRepository) Delete(id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	next := make([]*models.Post, 0, len(r.store.posts))
	found := false
	for _, p := range r.store.posts {
		if p.ID == id {
			found = true
			continue
		}
		next = append(next, p.Clone())
	}
	if !found {
		return apperrors.ErrPostNotFound
	}
	r.store.posts = next
	return nil
}

// ToggleVote applies a vote by userID in the given direction and
// returns the updated post. Voting in the direction already cast
// removes the vote; voting in the opposite direction switches it.
// A user is never present in both vote sets at once.
func (r *PostRepository) ToggleVote(postID, userID int64, direction models.VoteDirection) (*models.Post, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	next := clonePosts(r.store.posts)
	for i, p := range next {
		if p.ID != postID {
			continue
		}
		up := removeID(p.UpvotedBy, userID)
		down := removeID(p.DownvotedBy, userID)
		switch direction {
		case models.VoteUp:
			if len(up) == len(p.UpvotedBy) {
				up = append(up, userID)
			}
		case models.VoteDown:
			if len(down) == len(p.DownvotedBy) {
				down = append(down, userID)
			}
		}
		next[i].UpvotedBy = up
		next[i].DownvotedBy = down
		r.store.posts = next
		return next[i].Clone(), nil
	}
	return nil, apperrors.ErrPostNotFound
}

// AddComment appends a comment to the post, assigning it a fresh id,
// and returns the stored comment.
func (r *PostRepository) AddComment(postID int64, comment models.Comment) (*models.Comment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	next := clonePosts(r.store.posts)
	for i, p := range next {
		if p.ID != postID {
			continue
		}
		comment.ID = r.store.nextIDLocked()
		comment.PostID = postID
		next[i].Comments = append(next[i].Comments, comment)
		r.store.posts = next
		return &comment, nil
	}
	return nil, apperrors.ErrPostNotFound
}

// DeleteComment removes the comment from whichever post holds it and
// reports whether one was removed.
func (r *PostRepository) DeleteComment(commentID int64) bool {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	next := clonePosts(r.store.posts)
	for i, p := range next {
		for j, c := range p.Comments {
			if c.ID == commentID {
				next[i].Comments = append(p.Comments[:j:j], p.Comments[j+1:]...)
				r.store.posts = next
				return true
			}
		}
	}
	return false
}

// TogglePollVote records userID's choice of optionID on the post's
// poll. A poll is single choice: picking a new option moves the vote,
// picking the already chosen option withdraws it.
func (r *PostRepository) TogglePollVote(postID, userID int64, optionID int64) (*models.Post, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	next := clonePosts(r.store.posts)
	for i, p := range next {
		if p.ID != postID {
			continue
		}
		if p.Poll == nil {
			return nil, apperrors.ErrPollNotFound
		}
		poll := next[i].Poll
		optionFound := false
		for j := range poll.Options {
			opt := &poll.Options[j]
			if opt.ID == optionID {
				optionFound = true
				if containsID(opt.VotedBy, userID) {
					opt.VotedBy = removeID(opt.VotedBy, userID)
				} else {
					opt.VotedBy = append(opt.VotedBy, userID)
				}
			} else {
				opt.VotedBy = removeID(opt.VotedBy, userID)
			}
		}
		if !optionFound {
			return nil, apperrors.ErrPollNotFound
		}
		r.store.posts = next
		return next[i].Clone(), nil
	}
	return nil, apperrors.ErrPostNotFound
}

// SetPinned flips the pinned flag and returns the updated post
func (r *PostRepository) SetPinned(postID int64, pinned bool) (*models.Post, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	next := clonePosts(r.store.posts)
	for i, p := range next {
		if p.ID == postID {
			next[i].Pinned = pinned
			r.store.posts = next
			return next[i].Clone(), nil
		}
	}
	return nil, apperrors.ErrPostNotFound
}

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func removeID(ids []int64, id int64) []int64 {
	out := make([]int64, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
