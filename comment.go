package blogicum

import "time"

type Comment struct {
	ID        int       `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	PostID   int `json:"post_id"`
	AuthorID int `json:"author_id"`

	Text string `json:"text"`
}

type CommentFilter struct {
	ID       *int `json:"id"`
	PostID   *int `json:"post_id"`
	AuthorID *int `json:"author_id"`

	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

type CommentUpdate struct {
	Text *string `json:"text"`
}
