package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/blogicum/blogicum"
	"github.com/jackc/pgx/v5"
)

type dbComment struct {
	ID        int       `db:"id"`
	CreatedAt time.Time `db:"created_at"`

	PostID   int `db:"post_id"`
	AuthorID int `db:"author_id"`

	Text string `db:"text"`
}

func (s *DB) Comment(ctx context.Context, filter blogicum.CommentFilter) (*blogicum.Comment, error) {
	filter.Limit = 1
	return toSingular(ctx, filter, s.Comments)
}

// Comments returns matching comments, oldest first.
func (s *DB) Comments(ctx context.Context, filter blogicum.CommentFilter) ([]*blogicum.Comment, error) {
	fb := newFilterBuilder()
	commentParams(filter, fb)

	q := fmt.Sprintf("SELECT * FROM comments WHERE %s ORDER BY created_at ASC, id ASC %s", fb.Where(), FormatLimitOffset(filter.Limit, filter.Offset))
	rows, _ := s.conn.Query(ctx, q, fb.Args()...)
	comments, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[dbComment])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return mapper(comments, s.internalToComment), nil
}

func (s *DB) CreateComment(ctx context.Context, postID int, authorID int, text string) (int, error) {
	if text == "" || postID == 0 || authorID == 0 {
		return -1, blogicum.ErrMissingRequired
	}
	rows, _ := s.conn.Query(ctx,
		"INSERT INTO comments (post_id, author_id, text) VALUES ($1, $2, $3) RETURNING id",
		postID, authorID, text,
	)
	id, err := pgx.CollectOneRow(rows, pgx.RowTo[int])
	if err != nil {
		return -1, err
	}
	return id, nil
}

func (s *DB) UpdateComment(ctx context.Context, id int, upd blogicum.CommentUpdate) error {
	ub := newUpdateBuilder()
	if v := upd.Text; v != nil {
		ub.AddUpdate("text = %s", v)
	}
	if ub.CheckUpdates() != nil {
		return ub.CheckUpdates()
	}
	fb := ub.MakeFilter()
	fb.AddConstraint("id = %s", id)
	_, err := s.conn.Exec(ctx, "UPDATE comments SET "+fb.WithUpdate(), fb.Args()...)
	return err
}

func (s *DB) DeleteComment(ctx context.Context, id int) error {
	_, err := s.conn.Exec(ctx, "DELETE FROM comments WHERE id = $1", id)
	return err
}

func commentParams(filter blogicum.CommentFilter, fb *filterBuilder) {
	if v := filter.ID; v != nil {
		fb.AddConstraint("id = %s", v)
	}
	if v := filter.PostID; v != nil {
		fb.AddConstraint("post_id = %s", v)
	}
	if v := filter.AuthorID; v != nil {
		fb.AddConstraint("author_id = %s", v)
	}
}

func (s *DB) internalToComment(c *dbComment) *blogicum.Comment {
	return &blogicum.Comment{
		ID:        c.ID,
		CreatedAt: c.CreatedAt,

		PostID:   c.PostID,
		AuthorID: c.AuthorID,

		Text: c.Text,
	}
}
