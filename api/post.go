package api

import (
	"errors"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/blogicum/blogicum"
	"github.com/blogicum/blogicum/internal/config"
	"github.com/blogicum/blogicum/internal/util"
	"github.com/blogicum/blogicum/sudoapi"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

const maxImageSize = 10 * 1024 * 1024 // 10MB

type postList struct {
	Posts []*blogicum.Post `json:"posts"`
	Page  blogicum.Page    `json:"page"`
}

func (s *API) getPosts(w http.ResponseWriter, r *http.Request) {
	posts, page, err := s.base.PaginatedPosts(r.Context(), blogicum.PostFilter{
		Look:        true,
		LookingUser: util.UserBrief(r),
	}, r.FormValue("page"))
	if err != nil {
		err.WriteError(w)
		return
	}
	returnData(w, postList{Posts: posts, Page: page})
}

type fullPost struct {
	*blogicum.Post
	Author   *blogicum.UserBrief `json:"author"`
	Comments []*blogicum.Comment `json:"comments"`
}

func (s *API) getPost(w http.ResponseWriter, r *http.Request) {
	post := util.Post(r)
	author, err := s.base.User(r.Context(), post.AuthorID)
	if err != nil {
		err.WriteError(w)
		return
	}
	comments, err := s.base.PostComments(r.Context(), post.ID)
	if err != nil {
		err.WriteError(w)
		return
	}
	returnData(w, fullPost{Post: post, Author: author.Brief(), Comments: comments})
}

type postForm struct {
	Title   string `json:"title"`
	Text    string `json:"text"`
	PubDate string `json:"pub_date"`

	CategoryID *int `json:"category_id"`
	LocationID *int `json:"location_id"`
}

func (f postForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Title, validation.Required, validation.Length(1, 256)),
		validation.Field(&f.Text, validation.Required),
		validation.Field(&f.PubDate, validation.Required, validation.Date(time.RFC3339)),
	)
}

func (s *API) createPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImageSize); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		errorData(w, "could not parse form", 400)
		return
	}
	var form postForm
	if err := parseRequest(r, &form); err != nil {
		errorData(w, err.Error(), 400)
		return
	}
	if err := form.Validate(); err != nil {
		errorData(w, err, 400)
		return
	}
	pubDate, _ := time.Parse(time.RFC3339, form.PubDate)

	image, err := s.saveImage(r)
	if err != nil {
		err.WriteError(w)
		return
	}

	post := blogicum.Post{
		Title:   form.Title,
		Text:    form.Text,
		PubDate: pubDate,

		CategoryID: form.CategoryID,
		LocationID: form.LocationID,
		Image:      image,

		IsPublished: true,
	}
	pid, err := s.base.CreatePost(r.Context(), &post, util.UserBrief(r))
	if err != nil {
		err.WriteError(w)
		return
	}
	returnData(w, pid)
}

// getPostForEdit returns the raw post for form prefill. No visibility check
// is needed, the editor guard already proved authorship.
func (s *API) getPostForEdit(w http.ResponseWriter, r *http.Request) {
	returnData(w, util.Post(r))
}

type postUpdateForm struct {
	Title   *string `json:"title"`
	Text    *string `json:"text"`
	PubDate *string `json:"pub_date"`

	CategoryID *int `json:"category_id"`
	LocationID *int `json:"location_id"`

	IsPublished *bool `json:"is_published"`
}

func (f postUpdateForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Title, validation.Length(1, 256)),
		validation.Field(&f.PubDate, validation.Date(time.RFC3339)),
	)
}

func (s *API) updatePost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImageSize); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		errorData(w, "could not parse form", 400)
		return
	}
	var form postUpdateForm
	if err := parseRequest(r, &form); err != nil {
		errorData(w, err.Error(), 400)
		return
	}
	if err := form.Validate(); err != nil {
		errorData(w, err, 400)
		return
	}

	upd := blogicum.PostUpdate{
		Title: form.Title,
		Text:  form.Text,

		CategoryID: form.CategoryID,
		LocationID: form.LocationID,

		IsPublished: form.IsPublished,
	}
	if form.PubDate != nil {
		pubDate, _ := time.Parse(time.RFC3339, *form.PubDate)
		upd.PubDate = &pubDate
	}
	if image, err := s.saveImage(r); err != nil {
		err.WriteError(w)
		return
	} else if image != "" {
		upd.Image = &image
	}

	if err := s.base.UpdatePost(r.Context(), util.Post(r).ID, upd); err != nil {
		err.WriteError(w)
		return
	}
	returnData(w, "Updated post")
}

// getPostForDelete renders the confirmation payload. Nothing is mutated on
// GET, only the POST sibling deletes.
func (s *API) getPostForDelete(w http.ResponseWriter, r *http.Request) {
	returnData(w, util.Post(r))
}

func (s *API) deletePost(w http.ResponseWriter, r *http.Request) {
	if err := s.base.DeletePost(r.Context(), util.Post(r)); err != nil {
		err.WriteError(w)
		return
	}
	returnData(w, "Deleted post")
}

// saveImage stores an uploaded post image under the data directory and
// returns its relative path. A request without an image is not an error.
func (s *API) saveImage(r *http.Request) (string, *sudoapi.StatusError) {
	file, fh, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return "", nil
		}
		return "", sudoapi.WrapError(err, "Couldn't read image")
	}
	defer file.Close()

	name := uuid.NewString() + strings.ToLower(filepath.Ext(fh.Filename))
	dir := filepath.Join(config.Common.DataDir, "images")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", sudoapi.WrapError(err, "Couldn't save image")
	}
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", sudoapi.WrapError(err, "Couldn't save image")
	}
	defer f.Close()
	if _, err := io.Copy(f, file); err != nil {
		return "", sudoapi.WrapError(err, "Couldn't save image")
	}
	return path.Join("images", name), nil
}
