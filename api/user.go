package api

import (
	"net/http"

	"github.com/blogicum/blogicum"
	"github.com/blogicum/blogicum/internal/util"
	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type userProfile struct {
	User  *blogicum.UserBrief `json:"user"`
	Posts []*blogicum.Post    `json:"posts"`
	Page  blogicum.Page       `json:"page"`
}

// getUserProfile lists a user's posts. The owner sees everything they wrote,
// everyone else only what the visibility filter lets through.
func (s *API) getUserProfile(w http.ResponseWriter, r *http.Request) {
	profileUser, err := s.base.UserByName(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		err.WriteError(w)
		return
	}

	lookingUser := util.UserBrief(r)
	filter := blogicum.PostFilter{AuthorID: &profileUser.ID}
	if !(lookingUser.IsAuthed() && lookingUser.ID == profileUser.ID) {
		filter.Look = true
		filter.LookingUser = lookingUser
	}

	posts, page, err := s.base.PaginatedPosts(r.Context(), filter, r.FormValue("page"))
	if err != nil {
		err.WriteError(w)
		return
	}
	returnData(w, userProfile{User: profileUser.Brief(), Posts: posts, Page: page})
}

type userUpdateForm struct {
	Username  *string `json:"username"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
}

func (f userUpdateForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Username, validation.Length(3, 32), is.PrintableASCII),
		validation.Field(&f.Email, is.Email),
	)
}

// updateUser edits the session user's own record. There is no user id
// parameter on purpose: you cannot even express editing someone else.
func (s *API) updateUser(w http.ResponseWriter, r *http.Request) {
	var form userUpdateForm
	if err := parseRequest(r, &form); err != nil {
		errorData(w, err.Error(), 400)
		return
	}
	if err := form.Validate(); err != nil {
		errorData(w, err, 400)
		return
	}
	upd := blogicum.UserUpdate{
		Username:  form.Username,
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
	}
	if err := s.base.UpdateUser(r.Context(), util.User(r).ID, upd); err != nil {
		err.WriteError(w)
		return
	}
	returnData(w, "Updated user")
}
