package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/blogicum/blogicum"
	"github.com/jackc/pgx/v5"
)

type dbCategory struct {
	ID        int       `db:"id"`
	CreatedAt time.Time `db:"created_at"`

	Title       string `db:"title"`
	Description string `db:"description"`

	Slug        string `db:"slug"`
	IsPublished bool   `db:"is_published"`
}

func (s *DB) Category(ctx context.Context, filter blogicum.CategoryFilter) (*blogicum.Category, error) {
	filter.Limit = 1
	return toSingular(ctx, filter, s.Categories)
}

func (s *DB) Categories(ctx context.Context, filter blogicum.CategoryFilter) ([]*blogicum.Category, error) {
	fb := newFilterBuilder()
	categoryParams(filter, fb)

	q := fmt.Sprintf("SELECT * FROM categories WHERE %s ORDER BY title ASC, id ASC %s", fb.Where(), FormatLimitOffset(filter.Limit, filter.Offset))
	rows, _ := s.conn.Query(ctx, q, fb.Args()...)
	categories, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[dbCategory])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return mapper(categories, s.internalToCategory), nil
}

func (s *DB) CreateCategory(ctx context.Context, title, description, slug string, published bool) (int, error) {
	if title == "" || slug == "" {
		return -1, blogicum.ErrMissingRequired
	}
	rows, _ := s.conn.Query(ctx,
		"INSERT INTO categories (title, description, slug, is_published) VALUES ($1, $2, $3, $4) RETURNING id",
		title, description, slug, published,
	)
	id, err := pgx.CollectOneRow(rows, pgx.RowTo[int])
	if err != nil {
		return -1, err
	}
	return id, nil
}

func (s *DB) UpdateCategory(ctx context.Context, id int, upd blogicum.CategoryUpdate) error {
	ub := newUpdateBuilder()
	if v := upd.Title; v != nil {
		ub.AddUpdate("title = %s", v)
	}
	if v := upd.Description; v != nil {
		ub.AddUpdate("description = %s", v)
	}
	if v := upd.Slug; v != nil {
		ub.AddUpdate("slug = %s", v)
	}
	if v := upd.IsPublished; v != nil {
		ub.AddUpdate("is_published = %s", v)
	}
	if ub.CheckUpdates() != nil {
		return ub.CheckUpdates()
	}
	fb := ub.MakeFilter()
	fb.AddConstraint("id = %s", id)
	_, err := s.conn.Exec(ctx, "UPDATE categories SET "+fb.WithUpdate(), fb.Args()...)
	return err
}

// DeleteCategory nulls out the category reference on the posts that used it,
// which the schema enforces with ON DELETE SET NULL.
func (s *DB) DeleteCategory(ctx context.Context, id int) error {
	_, err := s.conn.Exec(ctx, "DELETE FROM categories WHERE id = $1", id)
	return err
}

func categoryParams(filter blogicum.CategoryFilter, fb *filterBuilder) {
	if v := filter.ID; v != nil {
		fb.AddConstraint("id = %s", v)
	}
	if v := filter.Slug; v != nil {
		fb.AddConstraint("slug = %s", v)
	}
	if v := filter.Published; v != nil {
		fb.AddConstraint("is_published = %s", v)
	}
}

func (s *DB) internalToCategory(cat *dbCategory) *blogicum.Category {
	return &blogicum.Category{
		ID:        cat.ID,
		CreatedAt: cat.CreatedAt,

		Title:       cat.Title,
		Description: cat.Description,

		Slug:        cat.Slug,
		IsPublished: cat.IsPublished,
	}
}
