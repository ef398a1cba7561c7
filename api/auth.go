package api

import (
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type signupForm struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (f signupForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Username, validation.Required, validation.Length(3, 32), is.PrintableASCII),
		validation.Field(&f.Email, validation.Required, is.Email),
		validation.Field(&f.Password, validation.Required, validation.Length(6, 128)),
	)
}

func (s *API) signup(w http.ResponseWriter, r *http.Request) {
	var auth signupForm
	if err := parseRequest(r, &auth); err != nil {
		errorData(w, err.Error(), 400)
		return
	}
	if err := auth.Validate(); err != nil {
		errorData(w, err, 400)
		return
	}

	uid, err := s.base.Signup(r.Context(), auth.Email, auth.Username, auth.Password)
	if err != nil {
		err.WriteError(w)
		return
	}

	sid, err := s.base.CreateSession(r.Context(), uid)
	if err != nil {
		err.WriteError(w)
		return
	}
	returnData(w, sid)
}

type loginForm struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (f loginForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Username, validation.Required),
		validation.Field(&f.Password, validation.Required),
	)
}

func (s *API) login(w http.ResponseWriter, r *http.Request) {
	var auth loginForm
	if err := parseRequest(r, &auth); err != nil {
		errorData(w, err.Error(), 400)
		return
	}
	if err := auth.Validate(); err != nil {
		errorData(w, err, 400)
		return
	}

	uid, err := s.base.Login(r.Context(), auth.Username, auth.Password)
	if err != nil {
		err.WriteError(w)
		return
	}

	sid, err := s.base.CreateSession(r.Context(), uid)
	if err != nil {
		err.WriteError(w)
		return
	}
	returnData(w, sid)
}

func (s *API) logout(w http.ResponseWriter, r *http.Request) {
	sid := getAuthHeader(r)
	if sid == "" {
		errorData(w, "You are already logged out!", 400)
		return
	}
	if err := s.base.RemoveSession(r.Context(), sid); err != nil {
		err.WriteError(w)
		return
	}
	returnData(w, "Logged out")
}
