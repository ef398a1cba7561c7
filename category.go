package blogicum

import "time"

type Category struct {
	ID        int       `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Title       string `json:"title"`
	Description string `json:"description"`

	Slug        string `json:"slug"` // unique, used in URL
	IsPublished bool   `json:"is_published"`
}

type CategoryFilter struct {
	ID   *int    `json:"id"`
	Slug *string `json:"slug"`

	Published *bool `json:"published"`

	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

type CategoryUpdate struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Slug        *string `json:"slug"`
	IsPublished *bool   `json:"is_published"`
}

type Location struct {
	ID        int       `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Name        string `json:"name"`
	IsPublished bool   `json:"is_published"`
}

type LocationFilter struct {
	ID *int `json:"id"`

	Published *bool `json:"published"`

	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

type LocationUpdate struct {
	Name        *string `json:"name"`
	IsPublished *bool   `json:"is_published"`
}
