package sudoapi

import (
	"testing"

	"github.com/blogicum/blogicum"
)

func TestIsPostEditor(t *testing.T) {
	t.Parallel()
	s := &BaseAPI{}
	post := &blogicum.Post{ID: 5, AuthorID: 2}

	tests := map[string]struct {
		user *blogicum.UserBrief
		post *blogicum.Post
		want bool
	}{
		"author":          {&blogicum.UserBrief{ID: 2}, post, true},
		"other user":      {&blogicum.UserBrief{ID: 3}, post, false},
		"admin non-owner": {&blogicum.UserBrief{ID: 1, Admin: true}, post, false},
		"anonymous":       {nil, post, false},
		"nil post":        {&blogicum.UserBrief{ID: 2}, nil, false},
	}
	for name, test := range tests {
		test := test
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if got := s.IsPostEditor(test.user, test.post); got != test.want {
				t.Fatalf("IsPostEditor() = %v, wanted %v", got, test.want)
			}
		})
	}
}

func TestIsCommentEditor(t *testing.T) {
	t.Parallel()
	s := &BaseAPI{}
	comment := &blogicum.Comment{ID: 7, PostID: 5, AuthorID: 2}

	tests := map[string]struct {
		user    *blogicum.UserBrief
		comment *blogicum.Comment
		want    bool
	}{
		"author":          {&blogicum.UserBrief{ID: 2}, comment, true},
		"post author":     {&blogicum.UserBrief{ID: 4}, comment, false},
		"admin non-owner": {&blogicum.UserBrief{ID: 1, Admin: true}, comment, false},
		"anonymous":       {nil, comment, false},
		"nil comment":     {&blogicum.UserBrief{ID: 2}, nil, false},
	}
	for name, test := range tests {
		test := test
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if got := s.IsCommentEditor(test.user, test.comment); got != test.want {
				t.Fatalf("IsCommentEditor() = %v, wanted %v", got, test.want)
			}
		})
	}
}
