// Package api holds the JSON REST API surface.
//
// Most handlers decode their input from form data with gorilla/schema and
// respond with the {status, data} envelope from statusData. Authentication is
// a bearer-style session token in the Authorization header.
package api

import (
	"net/http"

	"github.com/blogicum/blogicum/sudoapi"
	"github.com/go-chi/chi/v5"
)

type API struct {
	base *sudoapi.BaseAPI
}

// New declares a new API instance
func New(base *sudoapi.BaseAPI) *API {
	return &API{base}
}

// Handler is the magic behind the API
func (s *API) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.SetupSession)

	r.Route("/auth", func(r chi.Router) {
		r.With(s.MustBeVisitor).Post("/signup", s.signup)
		r.With(s.MustBeVisitor).Post("/login", s.login)
		r.With(s.MustBeAuthed).Post("/logout", s.logout)
	})

	r.Route("/posts", func(r chi.Router) {
		r.Get("/", s.getPosts)
		r.With(s.MustBeAuthed).Post("/", s.createPost)

		r.Route("/{postID}", func(r chi.Router) {
			r.Use(s.validatePostID)
			r.With(s.validatePostVisible).Get("/", s.getPost)

			r.Route("/edit", func(r chi.Router) {
				r.Use(s.MustBeAuthed, s.validatePostEditor)
				r.Get("/", s.getPostForEdit)
				r.Post("/", s.updatePost)
			})
			r.Route("/delete", func(r chi.Router) {
				r.Use(s.MustBeAuthed, s.validatePostEditor)
				r.Get("/", s.getPostForDelete)
				r.Post("/", s.deletePost)
			})

			r.Route("/comments", func(r chi.Router) {
				r.With(s.validatePostVisible).Get("/", s.getComments)
				r.With(s.MustBeAuthed, s.validatePostVisible).Post("/", s.addComment)

				r.Route("/{commentID}", func(r chi.Router) {
					r.Use(s.MustBeAuthed, s.validateCommentID, s.validateCommentEditor)
					r.Route("/edit", func(r chi.Router) {
						r.Get("/", s.getCommentForEdit)
						r.Post("/", s.updateComment)
					})
					r.Route("/delete", func(r chi.Router) {
						r.Get("/", s.getCommentForDelete)
						r.Post("/", s.deleteComment)
					})
				})
			})
		})
	})

	r.Route("/categories", func(r chi.Router) {
		r.Get("/", s.getCategories)
		r.With(s.MustBeAdmin).Post("/", s.createCategory)
		r.Route("/{categorySlug}", func(r chi.Router) {
			r.Use(s.validateCategorySlug)
			r.Get("/", s.getCategoryPosts)
			r.With(s.MustBeAdmin).Post("/update", s.updateCategory)
			r.With(s.MustBeAdmin).Post("/delete", s.deleteCategory)
		})
	})

	r.Route("/locations", func(r chi.Router) {
		r.With(s.MustBeAdmin).Get("/", s.getLocations)
		r.With(s.MustBeAdmin).Post("/", s.createLocation)
		r.Route("/{locationID}", func(r chi.Router) {
			r.Use(s.MustBeAdmin, s.validateLocationID)
			r.Post("/update", s.updateLocation)
			r.Post("/delete", s.deleteLocation)
		})
	})

	r.Get("/users/{username}", s.getUserProfile)
	r.With(s.MustBeAuthed).Post("/user/update", s.updateUser)

	return r
}
