package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/blogicum/blogicum/internal/util"
	"github.com/blogicum/blogicum/sudoapi"
	"github.com/go-chi/chi/v5"
)

// SetupSession adds the user with the specified session token to context, if
// the header exists.
func (s *API) SetupSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sid := getAuthHeader(r)
		if sid == "" {
			next.ServeHTTP(w, r)
			return
		}
		user, err := s.base.SessionUser(r.Context(), sid)
		if err != nil || user == nil {
			next.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), util.UserKey, user)))
	})
}

// MustBeAuthed is middleware to make sure the user creating the request is authenticated
func (s *API) MustBeAuthed(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !util.UserBrief(r).IsAuthed() {
			errorData(w, "You must be authenticated", 401)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// MustBeAdmin is middleware to make sure the user creating the request is an admin
func (s *API) MustBeAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !util.UserBrief(r).IsAdmin() {
			errorData(w, "You must be an admin", 401)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// MustBeVisitor is middleware to make sure the user creating the request is not authenticated
func (s *API) MustBeVisitor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if util.UserBrief(r).IsAuthed() {
			errorData(w, "You must not be authenticated", 401)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *API) validatePostID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		postID, err := strconv.Atoi(chi.URLParam(r, "postID"))
		if err != nil {
			errorData(w, "invalid post ID", 400)
			return
		}
		post, err1 := s.base.Post(r.Context(), postID)
		if err1 != nil {
			err1.WriteError(w)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), util.PostKey, post)))
	})
}

// validatePostVisible hides posts the viewer may not see. It deliberately
// answers 404, not 403, so probing IDs leaks nothing.
func (s *API) validatePostVisible(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.base.IsPostVisible(util.UserBrief(r), util.Post(r)) {
			sudoapi.ErrNotFound.WriteError(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// validatePostEditor guards post mutations. Non-authors are not rejected with
// an error, they are bounced back to the post's detail view with no change
// made.
func (s *API) validatePostEditor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		post := util.Post(r)
		if !s.base.IsPostEditor(util.UserBrief(r), post) {
			http.Redirect(w, r, detailPath(post.ID), http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *API) validateCommentID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		commentID, err := strconv.Atoi(chi.URLParam(r, "commentID"))
		if err != nil {
			errorData(w, "invalid comment ID", 400)
			return
		}
		comment, err1 := s.base.Comment(r.Context(), commentID)
		if err1 != nil {
			err1.WriteError(w)
			return
		}
		if post := util.Post(r); post == nil || comment.PostID != post.ID {
			sudoapi.ErrNotFound.WriteError(w)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), util.CommentKey, comment)))
	})
}

func (s *API) validateCommentEditor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		comment := util.Comment(r)
		if !s.base.IsCommentEditor(util.UserBrief(r), comment) {
			http.Redirect(w, r, detailPath(comment.PostID), http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *API) validateCategorySlug(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		category, err := s.base.CategoryBySlug(r.Context(), chi.URLParam(r, "categorySlug"), util.UserBrief(r))
		if err != nil {
			err.WriteError(w)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), util.CategoryKey, category)))
	})
}

func (s *API) validateLocationID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		locationID, err := strconv.Atoi(chi.URLParam(r, "locationID"))
		if err != nil {
			errorData(w, "invalid location ID", 400)
			return
		}
		location, err1 := s.base.Location(r.Context(), locationID)
		if err1 != nil {
			err1.WriteError(w)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), util.LocationKey, location)))
	})
}

func getAuthHeader(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return header
}
