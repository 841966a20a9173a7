package services

import (
	"errors"
	"testing"

	"github.com/AnhTuano/CNTTK23M/internal/app/models"
	"github.com/AnhTuano/CNTTK23M/internal/app/models/dto"
	"github.com/AnhTuano/CNTTK23M/internal/pkg/apperrors"
)

func TestCreatePostPermissions(t *testing.T) {
	tests := []struct {
		name    string
		actorID int64
		wantErr error
	}{
		{"admin may post", adminID, nil},
		{"lop truong may post", lopTruongID, nil},
		{"bi thu may post", biThuID, nil},
		{"plain member may not post", memberID, apperrors.ErrPermissionDenied},
		{"lop pho hoc tap may not post", hocTapID, apperrors.ErrPermissionDenied},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			_, err := f.posts.Create(f.user(t, tt.actorID), &dto.CreatePostRequest{
				Title:   "Thông báo",
				Content: "Nội dung",
			})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Create() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCreatePostAwardsPoints(t *testing.T) {
	f := newFixture(t)
	before := f.user(t, adminID).Points

	if _, err := f.posts.Create(f.user(t, adminID), &dto.CreatePostRequest{Title: "a", Content: "b"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if got := f.user(t, adminID).Points; got != before+20 {
		t.Errorf("points = %d, want %d", got, before+20)
	}
	if n := f.notifications.UnreadCount(); n != 1 {
		t.Errorf("unread notifications = %d, want 1", n)
	}
}

func TestCommentAwardsPoints(t *testing.T) {
	f := newFixture(t)
	post, err := f.posts.Create(f.user(t, adminID), &dto.CreatePostRequest{Title: "a", Content: "b"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	before := f.user(t, memberID).Points

	comment, err := f.posts.AddComment(f.user(t, memberID), post.ID, &dto.CreateCommentRequest{Content: "hay quá"})
	if err != nil {
		t.Fatalf("AddComment() error = %v", err)
	}
	if comment.PostID != post.ID {
		t.Errorf("comment.PostID = %d, want %d", comment.PostID, post.ID)
	}
	if got := f.user(t, memberID).Points; got != before+5 {
		t.Errorf("points = %d, want %d", got, before+5)
	}
}

func TestVoteToggleAndSwitch(t *testing.T) {
	f := newFixture(t)
	post, err := f.posts.Create(f.user(t, adminID), &dto.CreatePostRequest{Title: "a", Content: "b"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	voter := f.user(t, memberID)

	// Cast
	got, err := f.posts.Vote(voter, post.ID, models.VoteUp)
	if err != nil {
		t.Fatalf("Vote() error = %v", err)
	}
	if len(got.UpvotedBy) != 1 || len(got.DownvotedBy) != 0 {
		t.Fatalf("after upvote: up=%v down=%v", got.UpvotedBy, got.DownvotedBy)
	}

	// Switch moves the id between the sets
	got, err = f.posts.Vote(voter, post.ID, models.VoteDown)
	if err != nil {
		t.Fatalf("Vote() error = %v", err)
	}
	if len(got.UpvotedBy) != 0 || len(got.DownvotedBy) != 1 {
		t.Fatalf("after switch: up=%v down=%v", got.UpvotedBy, got.DownvotedBy)
	}

	// Same direction again withdraws
	got, err = f.posts.Vote(voter, post.ID, models.VoteDown)
	if err != nil {
		t.Fatalf("Vote() error = %v", err)
	}
	if len(got.UpvotedBy) != 0 || len(got.DownvotedBy) != 0 {
		t.Fatalf("after withdraw: up=%v down=%v", got.UpvotedBy, got.DownvotedBy)
	}
}

func TestVoteRejectsUnknownDirection(t *testing.T) {
	f := newFixture(t)
	post, _ := f.posts.Create(f.user(t, adminID), &dto.CreatePostRequest{Title: "a", Content: "b"})
	if _, err := f.posts.Vote(f.user(t, memberID), post.ID, "sideways"); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("Vote() error = %v, want %v", err, apperrors.ErrValidationFailed)
	}
}

func TestPollVoteSingleChoice(t *testing.T) {
	f := newFixture(t)
	post, err := f.posts.Create(f.user(t, adminID), &dto.CreatePostRequest{
		Title:   "a",
		Content: "b",
		Poll:    &dto.CreatePollRequest{Question: "q", Options: []string{"một", "hai"}},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := f.posts.VotePoll(memberID, post.ID, 1)
	if err != nil {
		t.Fatalf("VotePoll() error = %v", err)
	}
	if len(got.Poll.Options[0].VotedBy) != 1 {
		t.Fatalf("option 1 voters = %v", got.Poll.Options[0].VotedBy)
	}

	// Choosing the other option moves the vote
	got, err = f.posts.VotePoll(memberID, post.ID, 2)
	if err != nil {
		t.Fatalf("VotePoll() error = %v", err)
	}
	if len(got.Poll.Options[0].VotedBy) != 0 || len(got.Poll.Options[1].VotedBy) != 1 {
		t.Fatalf("after move: opt1=%v opt2=%v", got.Poll.Options[0].VotedBy, got.Poll.Options[1].VotedBy)
	}

	// Choosing it again withdraws
	got, err = f.posts.VotePoll(memberID, post.ID, 2)
	if err != nil {
		t.Fatalf("VotePoll() error = %v", err)
	}
	if len(got.Poll.Options[1].VotedBy) != 0 {
		t.Fatalf("after withdraw: opt2=%v", got.Poll.Options[1].VotedBy)
	}
}

func TestPollVoteWithoutPoll(t *testing.T) {
	f := newFixture(t)
	post, _ := f.posts.Create(f.user(t, adminID), &dto.CreatePostRequest{Title: "a", Content: "b"})
	if _, err := f.posts.VotePoll(memberID, post.ID, 1); !errors.Is(err, apperrors.ErrPollNotFound) {
		t.Fatalf("VotePoll() error = %v, want %v", err, apperrors.ErrPollNotFound)
	}
}

func TestFeedOrdering(t *testing.T) {
	f := newFixture(t)
	admin := f.user(t, adminID)

	low, _ := f.posts.Create(admin, &dto.CreatePostRequest{Title: "low", Content: "c"})
	high, _ := f.posts.Create(admin, &dto.CreatePostRequest{Title: "high", Content: "c"})
	pinned, _ := f.posts.Create(admin, &dto.CreatePostRequest{Title: "pinned", Content: "c"})

	for _, voterID := range []int64{lopTruongID, hocTapID, biThuID} {
		if _, err := f.posts.Vote(f.user(t, voterID), high.ID, models.VoteUp); err != nil {
			t.Fatalf("Vote() error = %v", err)
		}
	}
	if _, err := f.posts.Vote(f.user(t, memberID), low.ID, models.VoteDown); err != nil {
		t.Fatalf("Vote() error = %v", err)
	}
	if _, err := f.posts.SetPinned(models.RoleAdmin, pinned.ID, true); err != nil {
		t.Fatalf("SetPinned() error = %v", err)
	}

	feed := f.posts.GetFeed("", "")
	if len(feed.Posts) != 3 {
		t.Fatalf("feed size = %d, want 3", len(feed.Posts))
	}
	wantOrder := []int64{pinned.ID, high.ID, low.ID}
	for i, want := range wantOrder {
		if feed.Posts[i].Post.ID != want {
			t.Errorf("feed[%d] = %q, want post %d", i, feed.Posts[i].Post.Title, want)
		}
	}
	if feed.Posts[1].Score != 3 {
		t.Errorf("score of high post = %d, want 3", feed.Posts[1].Score)
	}
}

func TestFeedSearchAndCategory(t *testing.T) {
	f := newFixture(t)
	admin := f.user(t, adminID)
	f.posts.Create(admin, &dto.CreatePostRequest{Title: "Lịch thi cuối kỳ", Content: "chi tiết", Category: "Học tập"})
	f.posts.Create(admin, &dto.CreatePostRequest{Title: "Mùa Hè Xanh", Content: "tình nguyện", Category: "Hoạt động"})

	tests := []struct {
		name     string
		search   string
		category string
		want     int
	}{
		{"no filter", "", "", 2},
		{"title match is case insensitive", "lịch thi", "", 1},
		{"content match", "tình nguyện", "", 1},
		{"category exact", "", "Học tập", 1},
		{"category is not fuzzy", "", "Học", 0},
		{"no match", "không tồn tại", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(f.posts.GetFeed(tt.search, tt.category).Posts); got != tt.want {
				t.Errorf("feed size = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestUpdateAndDeletePostAuthorization(t *testing.T) {
	f := newFixture(t)
	post, _ := f.posts.Create(f.user(t, biThuID), &dto.CreatePostRequest{Title: "a", Content: "b"})

	// A plain member cannot edit someone else's post
	_, err := f.posts.Update(f.user(t, memberID), post.ID, &dto.UpdatePostRequest{Title: "x", Content: "y"})
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("Update() error = %v, want %v", err, apperrors.ErrPermissionDenied)
	}

	// The author can
	updated, err := f.posts.Update(f.user(t, biThuID), post.ID, &dto.UpdatePostRequest{Title: "sửa", Content: "rồi"})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Title != "sửa" {
		t.Errorf("title = %q, want %q", updated.Title, "sửa")
	}

	// A content manager can delete another member's post
	if err := f.posts.Delete(f.user(t, lopTruongID), post.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := f.posts.GetByID(post.ID); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("GetByID() after delete error = %v, want not found", err)
	}
}

func TestSetPinnedRequiresContentManager(t *testing.T) {
	f := newFixture(t)
	post, _ := f.posts.Create(f.user(t, adminID), &dto.CreatePostRequest{Title: "a", Content: "b"})
	if _, err := f.posts.SetPinned(models.RoleThanhVien, post.ID, true); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("SetPinned() error = %v, want %v", err, apperrors.ErrPermissionDenied)
	}
}
