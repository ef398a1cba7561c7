package api

import (
	"net/http"
	"strings"

	"github.com/blogicum/blogicum"
	"github.com/blogicum/blogicum/internal/util"
)

func (s *API) getComments(w http.ResponseWriter, r *http.Request) {
	comments, err := s.base.PostComments(r.Context(), util.Post(r).ID)
	if err != nil {
		err.WriteError(w)
		return
	}
	returnData(w, comments)
}

// addComment bounces invalid input back to the post detail instead of
// erroring out, nothing gets persisted in that case.
func (s *API) addComment(w http.ResponseWriter, r *http.Request) {
	post := util.Post(r)
	text := strings.TrimSpace(r.FormValue("text"))
	if text == "" {
		http.Redirect(w, r, detailPath(post.ID), http.StatusSeeOther)
		return
	}
	id, err := s.base.CreateComment(r.Context(), post, util.UserBrief(r), text)
	if err != nil {
		err.WriteError(w)
		return
	}
	returnData(w, id)
}

func (s *API) getCommentForEdit(w http.ResponseWriter, r *http.Request) {
	returnData(w, util.Comment(r))
}

func (s *API) updateComment(w http.ResponseWriter, r *http.Request) {
	text := r.FormValue("text")
	if err := s.base.UpdateComment(r.Context(), util.Comment(r).ID, blogicum.CommentUpdate{Text: &text}); err != nil {
		err.WriteError(w)
		return
	}
	returnData(w, "Updated comment")
}

func (s *API) getCommentForDelete(w http.ResponseWriter, r *http.Request) {
	returnData(w, util.Comment(r))
}

func (s *API) deleteComment(w http.ResponseWriter, r *http.Request) {
	if err := s.base.DeleteComment(r.Context(), util.Comment(r)); err != nil {
		err.WriteError(w)
		return
	}
	returnData(w, "Deleted comment")
}
