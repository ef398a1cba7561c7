package blogicum

import "time"

type Post struct {
	ID        int       `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	AuthorID  int       `json:"author_id"`

	Title   string    `json:"title"`
	Text    string    `json:"text"`
	PubDate time.Time `json:"pub_date"`

	CategoryID *int   `json:"category_id"`
	LocationID *int   `json:"location_id"`
	Image      string `json:"image,omitempty"`

	IsPublished bool `json:"is_published"`

	// CategoryPublished is filled by the storage layer from the category
	// join. It is nil when the post has no category.
	CategoryPublished *bool `json:"-"`

	// CommentCount is only filled on listing queries.
	CommentCount int `json:"comment_count"`
}

// VisibleTo reports whether the post may be shown to the given viewer.
// The author always sees their own posts. Everyone else sees the post only
// if it is published, its category (if any) is published and its
// publication date is not in the future.
//
// NOTE: This must be kept in sync with the SQL filter in db/post.go
func (p *Post) VisibleTo(user *UserBrief, now time.Time) bool {
	if p == nil {
		return false
	}
	if user.IsAuthed() && user.ID == p.AuthorID {
		return true
	}
	if !p.IsPublished {
		return false
	}
	if p.CategoryPublished != nil && !*p.CategoryPublished {
		return false
	}
	return !p.PubDate.After(now)
}

type PostFilter struct {
	ID       *int  `json:"id"`
	IDs      []int `json:"ids"`
	AuthorID *int  `json:"author_id"`

	CategoryID   *int    `json:"category_id"`
	CategorySlug *string `json:"category_slug"`
	LocationID   *int    `json:"location_id"`

	Limit  int `json:"limit"`
	Offset int `json:"offset"`

	// Look toggles the visibility filter, applied on behalf of LookingUser.
	Look        bool       `json:"-"`
	LookingUser *UserBrief `json:"-"`

	Ordering  string `json:"ordering"`
	Ascending bool   `json:"ascending"`
}

type PostUpdate struct {
	Title   *string    `json:"title"`
	Text    *string    `json:"text"`
	PubDate *time.Time `json:"pub_date"`

	// A zero CategoryID/LocationID clears the reference.
	CategoryID *int `json:"category_id"`
	LocationID *int `json:"location_id"`

	Image *string `json:"image"`

	IsPublished *bool `json:"is_published"`
}
