package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/blogicum/blogicum"
	"github.com/blogicum/blogicum/internal/util"
	"github.com/blogicum/blogicum/sudoapi"
)

// testAPI has no storage attached. Any path that would persist or fetch
// something panics, so a passing test doubles as proof that no mutation
// was attempted.
func testAPI() *API {
	return New(sudoapi.GetBaseAPI(nil))
}

func requestWith(method string, user *blogicum.User, post *blogicum.Post, comment *blogicum.Comment, form url.Values) *http.Request {
	var body string
	if form != nil {
		body = form.Encode()
	}
	r := httptest.NewRequest(method, "/", strings.NewReader(body))
	if form != nil {
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	ctx := r.Context()
	if user != nil {
		ctx = context.WithValue(ctx, util.UserKey, user)
	}
	if post != nil {
		ctx = context.WithValue(ctx, util.PostKey, post)
	}
	if comment != nil {
		ctx = context.WithValue(ctx, util.CommentKey, comment)
	}
	return r.WithContext(ctx)
}

func TestValidatePostEditor(t *testing.T) {
	t.Parallel()
	s := testAPI()
	post := &blogicum.Post{ID: 5, AuthorID: 2}

	tests := map[string]struct {
		user     *blogicum.User
		wantNext bool
	}{
		"owner":           {&blogicum.User{ID: 2}, true},
		"other user":      {&blogicum.User{ID: 3}, false},
		"admin non-owner": {&blogicum.User{ID: 1, Admin: true}, false},
		"anonymous":       {nil, false},
	}
	for name, test := range tests {
		test := test
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			nextCalled := false
			handler := s.validatePostEditor(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
			}))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, requestWith("POST", test.user, post, nil, nil))

			if nextCalled != test.wantNext {
				t.Fatalf("next handler called = %v, wanted %v", nextCalled, test.wantNext)
			}
			if !test.wantNext {
				if rec.Code != http.StatusSeeOther {
					t.Fatalf("status code = %d, wanted %d", rec.Code, http.StatusSeeOther)
				}
				if loc := rec.Header().Get("Location"); loc != "/api/posts/5" {
					t.Fatalf("redirect location = %q, wanted %q", loc, "/api/posts/5")
				}
			}
		})
	}
}

func TestValidateCommentEditor(t *testing.T) {
	t.Parallel()
	s := testAPI()
	comment := &blogicum.Comment{ID: 7, PostID: 5, AuthorID: 2}

	tests := map[string]struct {
		user     *blogicum.User
		wantNext bool
	}{
		"owner":           {&blogicum.User{ID: 2}, true},
		"other user":      {&blogicum.User{ID: 3}, false},
		"admin non-owner": {&blogicum.User{ID: 1, Admin: true}, false},
		"anonymous":       {nil, false},
	}
	for name, test := range tests {
		test := test
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			nextCalled := false
			handler := s.validateCommentEditor(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
			}))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, requestWith("POST", test.user, nil, comment, nil))

			if nextCalled != test.wantNext {
				t.Fatalf("next handler called = %v, wanted %v", nextCalled, test.wantNext)
			}
			if !test.wantNext {
				if rec.Code != http.StatusSeeOther {
					t.Fatalf("status code = %d, wanted %d", rec.Code, http.StatusSeeOther)
				}
				if loc := rec.Header().Get("Location"); loc != "/api/posts/5" {
					t.Fatalf("redirect location = %q, wanted %q", loc, "/api/posts/5")
				}
			}
		})
	}
}

// A GET on the delete endpoints only renders the confirmation payload.
// The handlers run against a storage-less API, so any delete attempt
// would be loud and clear.
func TestDeleteConfirmationIsReadOnly(t *testing.T) {
	t.Parallel()
	s := testAPI()

	t.Run("post", func(t *testing.T) {
		t.Parallel()
		post := &blogicum.Post{ID: 5, AuthorID: 2, Title: "A day out"}
		handler := s.validatePostEditor(http.HandlerFunc(s.getPostForDelete))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, requestWith("GET", &blogicum.User{ID: 2}, post, nil, nil))

		if rec.Code != 200 {
			t.Fatalf("status code = %d, wanted 200", rec.Code)
		}
		if body := rec.Body.String(); !strings.Contains(body, `"status":"success"`) || !strings.Contains(body, "A day out") {
			t.Fatalf("unexpected confirmation payload: %s", body)
		}
	})

	t.Run("comment", func(t *testing.T) {
		t.Parallel()
		comment := &blogicum.Comment{ID: 7, PostID: 5, AuthorID: 2, Text: "nice trip"}
		handler := s.validateCommentEditor(http.HandlerFunc(s.getCommentForDelete))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, requestWith("GET", &blogicum.User{ID: 2}, nil, comment, nil))

		if rec.Code != 200 {
			t.Fatalf("status code = %d, wanted 200", rec.Code)
		}
		if body := rec.Body.String(); !strings.Contains(body, `"status":"success"`) || !strings.Contains(body, "nice trip") {
			t.Fatalf("unexpected confirmation payload: %s", body)
		}
	})
}

func TestAddCommentBlankTextRedirects(t *testing.T) {
	t.Parallel()
	s := testAPI()
	post := &blogicum.Post{ID: 5, AuthorID: 2}

	for name, text := range map[string]string{
		"empty":      "",
		"spaces":     "   ",
		"whitespace": " \t\n ",
	} {
		text := text
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			form := url.Values{"text": {text}}
			s.addComment(rec, requestWith("POST", &blogicum.User{ID: 3}, post, nil, form))

			if rec.Code != http.StatusSeeOther {
				t.Fatalf("status code = %d, wanted %d", rec.Code, http.StatusSeeOther)
			}
			if loc := rec.Header().Get("Location"); loc != "/api/posts/5" {
				t.Fatalf("redirect location = %q, wanted %q", loc, "/api/posts/5")
			}
		})
	}
}
