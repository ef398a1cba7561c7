package sudoapi

import (
	"context"
	"log/slog"

	"github.com/blogicum/blogicum"
)

func (s *BaseAPI) Post(ctx context.Context, id int) (*blogicum.Post, *StatusError) {
	post, err := s.db.Post(ctx, blogicum.PostFilter{ID: &id})
	if err != nil {
		return nil, WrapError(err, "Couldn't find post")
	}
	if post == nil {
		return nil, ErrNotFound
	}
	return post, nil
}

func (s *BaseAPI) Posts(ctx context.Context, filter blogicum.PostFilter) ([]*blogicum.Post, *StatusError) {
	posts, err := s.db.Posts(ctx, filter)
	if err != nil {
		return nil, WrapError(err, "Couldn't find posts")
	}
	if posts == nil {
		posts = []*blogicum.Post{}
	}
	return posts, nil
}

func (s *BaseAPI) CountPosts(ctx context.Context, filter blogicum.PostFilter) (int, *StatusError) {
	cnt, err := s.db.CountPosts(ctx, filter)
	if err != nil {
		return -1, WrapError(err, "Couldn't count posts")
	}
	return cnt, nil
}

// PaginatedPosts resolves a raw page token against the filtered post count,
// then fetches the page slice. Out-of-range and malformed tokens are
// clamped, never errors.
func (s *BaseAPI) PaginatedPosts(ctx context.Context, filter blogicum.PostFilter, pageToken string) ([]*blogicum.Post, blogicum.Page, *StatusError) {
	cnt, err := s.CountPosts(ctx, filter)
	if err != nil {
		return nil, blogicum.Page{}, err
	}

	page := blogicum.Paginate(cnt, blogicum.PostsPerPage, pageToken)
	filter.Limit = page.PerPage
	filter.Offset = page.Offset()

	posts, err := s.Posts(ctx, filter)
	if err != nil {
		return nil, blogicum.Page{}, err
	}
	return posts, page, nil
}

func (s *BaseAPI) CreatePost(ctx context.Context, post *blogicum.Post, author *blogicum.UserBrief) (int, *StatusError) {
	if author == nil {
		return -1, ErrMissingRequired
	}
	post.AuthorID = author.ID
	id, err := s.db.CreatePost(ctx, post)
	if err != nil {
		return -1, WrapError(err, "Couldn't create post")
	}
	return id, nil
}

func (s *BaseAPI) UpdatePost(ctx context.Context, id int, upd blogicum.PostUpdate) *StatusError {
	if upd.Title != nil && *upd.Title == "" {
		return Statusf(400, "Title can't be empty!")
	}
	if upd.Text != nil && *upd.Text == "" {
		return Statusf(400, "Post text can't be empty!")
	}
	if err := s.db.UpdatePost(ctx, id, upd); err != nil {
		return WrapError(err, "Couldn't update post")
	}
	return nil
}

// DeletePost removes the post. Its comments go with it, the schema cascades.
func (s *BaseAPI) DeletePost(ctx context.Context, post *blogicum.Post) *StatusError {
	if err := s.db.DeletePost(ctx, post.ID); err != nil {
		return WrapError(err, "Couldn't delete post")
	}
	slog.InfoContext(ctx, "Removed post", slog.Int("post_id", post.ID), slog.Int("author_id", post.AuthorID))
	return nil
}
