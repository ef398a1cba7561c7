package api

import (
	"net/http"

	"github.com/blogicum/blogicum"
	"github.com/blogicum/blogicum/internal/util"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

func (s *API) getCategories(w http.ResponseWriter, r *http.Request) {
	filter := blogicum.CategoryFilter{}
	if !util.UserBrief(r).IsAdmin() {
		published := true
		filter.Published = &published
	}
	categories, err := s.base.Categories(r.Context(), filter)
	if err != nil {
		err.WriteError(w)
		return
	}
	returnData(w, categories)
}

type categoryPage struct {
	Category *blogicum.Category `json:"category"`
	Posts    []*blogicum.Post   `json:"posts"`
	Page     blogicum.Page      `json:"page"`
}

func (s *API) getCategoryPosts(w http.ResponseWriter, r *http.Request) {
	category := util.Category(r)
	posts, page, err := s.base.PaginatedPosts(r.Context(), blogicum.PostFilter{
		CategoryID:  &category.ID,
		Look:        true,
		LookingUser: util.UserBrief(r),
	}, r.FormValue("page"))
	if err != nil {
		err.WriteError(w)
		return
	}
	returnData(w, categoryPage{Category: category, Posts: posts, Page: page})
}

type categoryForm struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Slug        string `json:"slug"`
	IsPublished bool   `json:"is_published"`
}

func (f categoryForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Title, validation.Required, validation.Length(1, 256)),
		validation.Field(&f.Slug, validation.Required, validation.Length(1, 64)),
	)
}

func (s *API) createCategory(w http.ResponseWriter, r *http.Request) {
	var form categoryForm
	if err := parseRequest(r, &form); err != nil {
		errorData(w, err.Error(), 400)
		return
	}
	if err := form.Validate(); err != nil {
		errorData(w, err, 400)
		return
	}
	id, err := s.base.CreateCategory(r.Context(), form.Title, form.Description, form.Slug, form.IsPublished)
	if err != nil {
		err.WriteError(w)
		return
	}
	returnData(w, id)
}

type categoryUpdateForm struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Slug        *string `json:"slug"`
	IsPublished *bool   `json:"is_published"`
}

func (s *API) updateCategory(w http.ResponseWriter, r *http.Request) {
	var form categoryUpdateForm
	if err := parseRequest(r, &form); err != nil {
		errorData(w, err.Error(), 400)
		return
	}
	upd := blogicum.CategoryUpdate{
		Title:       form.Title,
		Description: form.Description,
		Slug:        form.Slug,
		IsPublished: form.IsPublished,
	}
	if err := s.base.UpdateCategory(r.Context(), util.Category(r).ID, upd); err != nil {
		err.WriteError(w)
		return
	}
	returnData(w, "Updated category")
}

func (s *API) deleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := s.base.DeleteCategory(r.Context(), util.Category(r)); err != nil {
		err.WriteError(w)
		return
	}
	returnData(w, "Deleted category")
}

func (s *API) getLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := s.base.Locations(r.Context(), blogicum.LocationFilter{})
	if err != nil {
		err.WriteError(w)
		return
	}
	returnData(w, locations)
}

type locationForm struct {
	Name        string `json:"name"`
	IsPublished bool   `json:"is_published"`
}

func (f locationForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Name, validation.Required, validation.Length(1, 256)),
	)
}

func (s *API) createLocation(w http.ResponseWriter, r *http.Request) {
	var form locationForm
	if err := parseRequest(r, &form); err != nil {
		errorData(w, err.Error(), 400)
		return
	}
	if err := form.Validate(); err != nil {
		errorData(w, err, 400)
		return
	}
	id, err := s.base.CreateLocation(r.Context(), form.Name, form.IsPublished)
	if err != nil {
		err.WriteError(w)
		return
	}
	returnData(w, id)
}

type locationUpdateForm struct {
	Name        *string `json:"name"`
	IsPublished *bool   `json:"is_published"`
}

func (s *API) updateLocation(w http.ResponseWriter, r *http.Request) {
	var form locationUpdateForm
	if err := parseRequest(r, &form); err != nil {
		errorData(w, err.Error(), 400)
		return
	}
	upd := blogicum.LocationUpdate{
		Name:        form.Name,
		IsPublished: form.IsPublished,
	}
	if err := s.base.UpdateLocation(r.Context(), util.Location(r).ID, upd); err != nil {
		err.WriteError(w)
		return
	}
	returnData(w, "Updated location")
}

func (s *API) deleteLocation(w http.ResponseWriter, r *http.Request) {
	if err := s.base.DeleteLocation(r.Context(), util.Location(r)); err != nil {
		err.WriteError(w)
		return
	}
	returnData(w, "Deleted location")
}
