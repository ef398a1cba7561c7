package util

import (
	"context"
	"net/http"

	"github.com/blogicum/blogicum"
)

// BContextType is the string type for all context values
type BContextType string

const (
	// UserKey is the key to be used for adding user objects to context
	UserKey = BContextType("user")
	// PostKey is the key to be used for adding posts to context
	PostKey = BContextType("post")
	// CommentKey is the key to be used for adding comments to context
	CommentKey = BContextType("comment")
	// CategoryKey is the key to be used for adding categories to context
	CategoryKey = BContextType("category")
	// LocationKey is the key to be used for adding locations to context
	LocationKey = BContextType("location")
)

// User returns the full user from request context
func User(r *http.Request) *blogicum.User {
	return UserContext(r.Context())
}

func UserContext(ctx context.Context) *blogicum.User {
	switch v := ctx.Value(UserKey).(type) {
	case blogicum.User:
		return &v
	case *blogicum.User:
		return v
	default:
		return nil
	}
}

// UserBrief returns the public view of the request user
func UserBrief(r *http.Request) *blogicum.UserBrief {
	return User(r).Brief()
}

// Post returns the post from request context
func Post(r *http.Request) *blogicum.Post {
	switch v := r.Context().Value(PostKey).(type) {
	case blogicum.Post:
		return &v
	case *blogicum.Post:
		return v
	default:
		return nil
	}
}

// Comment returns the comment from request context
func Comment(r *http.Request) *blogicum.Comment {
	switch v := r.Context().Value(CommentKey).(type) {
	case blogicum.Comment:
		return &v
	case *blogicum.Comment:
		return v
	default:
		return nil
	}
}

// Category returns the category from request context
func Category(r *http.Request) *blogicum.Category {
	switch v := r.Context().Value(CategoryKey).(type) {
	case blogicum.Category:
		return &v
	case *blogicum.Category:
		return v
	default:
		return nil
	}
}

// Location returns the location from request context
func Location(r *http.Request) *blogicum.Location {
	switch v := r.Context().Value(LocationKey).(type) {
	case blogicum.Location:
		return &v
	case *blogicum.Location:
		return v
	default:
		return nil
	}
}
