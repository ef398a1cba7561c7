package sudoapi

import (
	"time"

	"github.com/blogicum/blogicum"
)

// IsPostVisible decides whether the viewer may see the post at all.
// Authors always see their own posts, including unpublished and
// future-dated ones.
func (s *BaseAPI) IsPostVisible(user *blogicum.UserBrief, post *blogicum.Post) bool {
	return post.VisibleTo(user, time.Now())
}

// IsPostEditor is the ownership predicate for post mutations. Authorship is
// exclusive: not even admins may edit somebody else's post.
func (s *BaseAPI) IsPostEditor(user *blogicum.UserBrief, post *blogicum.Post) bool {
	if !user.IsAuthed() {
		return false
	}
	if post == nil {
		return false
	}
	return post.AuthorID == user.ID
}

// IsCommentEditor is the ownership predicate for comment mutations.
func (s *BaseAPI) IsCommentEditor(user *blogicum.UserBrief, comment *blogicum.Comment) bool {
	if !user.IsAuthed() {
		return false
	}
	if comment == nil {
		return false
	}
	return comment.AuthorID == user.ID
}
