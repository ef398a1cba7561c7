package sudoapi

import (
	"context"
	"testing"

	"github.com/blogicum/blogicum"
)

// The BaseAPI under test has no storage attached: any text that should be
// rejected has to bounce before a query is ever attempted.

func TestCreateCommentRejectsBlankText(t *testing.T) {
	t.Parallel()
	s := &BaseAPI{}
	post := &blogicum.Post{ID: 5}
	author := &blogicum.UserBrief{ID: 2}

	for name, text := range map[string]string{
		"empty":      "",
		"spaces":     "   ",
		"whitespace": " \t\n ",
	} {
		text := text
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := s.CreateComment(context.Background(), post, author, text)
			if err == nil || err.Code != 400 {
				t.Fatalf("CreateComment(%q) = %v, wanted a 400 error", text, err)
			}
		})
	}
}

func TestUpdateCommentRejectsBlankText(t *testing.T) {
	t.Parallel()
	s := &BaseAPI{}

	for name, text := range map[string]string{
		"empty":      "",
		"spaces":     "   ",
		"whitespace": " \t\n ",
	} {
		text := text
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			err := s.UpdateComment(context.Background(), 7, blogicum.CommentUpdate{Text: &text})
			if err == nil || err.Code != 400 {
				t.Fatalf("UpdateComment(%q) = %v, wanted a 400 error", text, err)
			}
		})
	}
}
