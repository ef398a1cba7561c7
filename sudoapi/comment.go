package sudoapi

import (
	"context"
	"strings"

	"github.com/blogicum/blogicum"
)

func (s *BaseAPI) Comment(ctx context.Context, id int) (*blogicum.Comment, *StatusError) {
	comment, err := s.db.Comment(ctx, blogicum.CommentFilter{ID: &id})
	if err != nil {
		return nil, WrapError(err, "Couldn't find comment")
	}
	if comment == nil {
		return nil, ErrNotFound
	}
	return comment, nil
}

// PostComments returns the post's comments in thread order, oldest first.
func (s *BaseAPI) PostComments(ctx context.Context, postID int) ([]*blogicum.Comment, *StatusError) {
	comments, err := s.db.Comments(ctx, blogicum.CommentFilter{PostID: &postID})
	if err != nil {
		return nil, WrapError(err, "Couldn't find comments")
	}
	if comments == nil {
		comments = []*blogicum.Comment{}
	}
	return comments, nil
}

func (s *BaseAPI) CreateComment(ctx context.Context, post *blogicum.Post, author *blogicum.UserBrief, text string) (int, *StatusError) {
	text = strings.TrimSpace(text)
	if text == "" {
		return -1, Statusf(400, "Comment text can't be empty!")
	}
	if post == nil || author == nil {
		return -1, ErrMissingRequired
	}
	id, err := s.db.CreateComment(ctx, post.ID, author.ID, text)
	if err != nil {
		return -1, WrapError(err, "Couldn't create comment")
	}
	return id, nil
}

func (s *BaseAPI) UpdateComment(ctx context.Context, id int, upd blogicum.CommentUpdate) *StatusError {
	if upd.Text != nil {
		text := strings.TrimSpace(*upd.Text)
		if text == "" {
			return Statusf(400, "Comment text can't be empty!")
		}
		upd.Text = &text
	}
	if err := s.db.UpdateComment(ctx, id, upd); err != nil {
		return WrapError(err, "Couldn't update comment")
	}
	return nil
}

func (s *BaseAPI) DeleteComment(ctx context.Context, comment *blogicum.Comment) *StatusError {
	if err := s.db.DeleteComment(ctx, comment.ID); err != nil {
		return WrapError(err, "Couldn't delete comment")
	}
	return nil
}
