package db

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/blogicum/blogicum"
	"github.com/jackc/pgx/v5"
)

type dbPost struct {
	ID        int       `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	AuthorID  int       `db:"author_id"`

	Title   string    `db:"title"`
	Text    string    `db:"text"`
	PubDate time.Time `db:"pub_date"`

	CategoryID *int   `db:"category_id"`
	LocationID *int   `db:"location_id"`
	Image      string `db:"image"`

	IsPublished bool `db:"is_published"`

	CategoryPublished *bool `db:"category_published"`
	CommentCount      int   `db:"comment_count"`
}

func (s *DB) Post(ctx context.Context, filter blogicum.PostFilter) (*blogicum.Post, error) {
	filter.Limit = 1
	return toSingular(ctx, filter, s.Posts)
}

func (s *DB) Posts(ctx context.Context, filter blogicum.PostFilter) ([]*blogicum.Post, error) {
	sb := sq.Select(
		"posts.*",
		"categories.is_published AS category_published",
		"(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) AS comment_count",
	).From("posts").
		LeftJoin("categories ON categories.id = posts.category_id").
		Where(postFilterWhere(filter)).
		OrderBy(getPostOrdering(filter.Ordering, filter.Ascending)...).
		PlaceholderFormat(sq.Dollar)

	if filter.Limit > 0 {
		sb = sb.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		sb = sb.Offset(uint64(filter.Offset))
	}

	query, args, err := sb.ToSql()
	if err != nil {
		return nil, err
	}

	rows, _ := s.conn.Query(ctx, query, args...)
	posts, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[dbPost])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return mapper(posts, s.internalToPost), nil
}

func (s *DB) CountPosts(ctx context.Context, filter blogicum.PostFilter) (int, error) {
	query, args, err := sq.Select("COUNT(*)").From("posts").
		LeftJoin("categories ON categories.id = posts.category_id").
		Where(postFilterWhere(filter)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return -1, err
	}

	var cnt int
	if err := s.conn.QueryRow(ctx, query, args...).Scan(&cnt); err != nil {
		return -1, err
	}
	return cnt, nil
}

func (s *DB) CreatePost(ctx context.Context, post *blogicum.Post) (int, error) {
	if post.Title == "" || post.Text == "" || post.AuthorID == 0 {
		return -1, blogicum.ErrMissingRequired
	}
	rows, _ := s.conn.Query(ctx, `
		INSERT INTO posts (title, text, pub_date, author_id, category_id, location_id, image, is_published)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
		post.Title, post.Text, post.PubDate, post.AuthorID,
		post.CategoryID, post.LocationID, post.Image, post.IsPublished,
	)
	id, err := pgx.CollectOneRow(rows, pgx.RowTo[int])
	if err != nil {
		return -1, err
	}
	return id, nil
}

func (s *DB) UpdatePost(ctx context.Context, id int, upd blogicum.PostUpdate) error {
	ub := newUpdateBuilder()
	if v := upd.Title; v != nil {
		ub.AddUpdate("title = %s", v)
	}
	if v := upd.Text; v != nil {
		ub.AddUpdate("text = %s", v)
	}
	if v := upd.PubDate; v != nil {
		ub.AddUpdate("pub_date = %s", v)
	}
	if v := upd.CategoryID; v != nil {
		if *v == 0 {
			ub.AddUpdate("category_id = NULL")
		} else {
			ub.AddUpdate("category_id = %s", v)
		}
	}
	if v := upd.LocationID; v != nil {
		if *v == 0 {
			ub.AddUpdate("location_id = NULL")
		} else {
			ub.AddUpdate("location_id = %s", v)
		}
	}
	if v := upd.Image; v != nil {
		ub.AddUpdate("image = %s", v)
	}
	if v := upd.IsPublished; v != nil {
		ub.AddUpdate("is_published = %s", v)
	}
	if ub.CheckUpdates() != nil {
		return ub.CheckUpdates()
	}
	fb := ub.MakeFilter()
	fb.AddConstraint("id = %s", id)
	_, err := s.conn.Exec(ctx, "UPDATE posts SET "+fb.WithUpdate(), fb.Args()...)
	return err
}

func (s *DB) DeletePost(ctx context.Context, id int) error {
	_, err := s.conn.Exec(ctx, "DELETE FROM posts WHERE id = $1", id)
	return err
}

func postFilterWhere(filter blogicum.PostFilter) sq.Sqlizer {
	wh := sq.And{}
	if v := filter.ID; v != nil {
		wh = append(wh, sq.Eq{"posts.id": *v})
	}
	if v := filter.IDs; v != nil {
		wh = append(wh, sq.Eq{"posts.id": v})
	}
	if v := filter.AuthorID; v != nil {
		wh = append(wh, sq.Eq{"posts.author_id": *v})
	}
	if v := filter.CategoryID; v != nil {
		wh = append(wh, sq.Eq{"posts.category_id": *v})
	}
	if v := filter.CategorySlug; v != nil {
		wh = append(wh, sq.Eq{"categories.slug": *v})
	}
	if v := filter.LocationID; v != nil {
		wh = append(wh, sq.Eq{"posts.location_id": *v})
	}

	if filter.Look {
		wh = append(wh, postVisibleExpr(filter.LookingUser))
	}

	if len(wh) == 0 {
		return sq.Expr("1 = 1")
	}
	return wh
}

// postVisibleExpr must be kept in sync with (*blogicum.Post).VisibleTo
func postVisibleExpr(user *blogicum.UserBrief) sq.Sqlizer {
	userID := 0
	if user != nil {
		userID = user.ID
	}

	return sq.Or{
		sq.Expr("posts.author_id = ?", userID),
		sq.And{
			sq.Expr("posts.is_published = true"),
			sq.Expr("posts.pub_date <= NOW()"),
			sq.Or{
				sq.Expr("posts.category_id IS NULL"),
				sq.Expr("categories.is_published = true"),
			},
		},
	}
}

func getPostOrdering(ordering string, ascending bool) []string {
	ord := " DESC"
	if ascending {
		ord = " ASC"
	}
	switch ordering {
	case "created_at":
		return []string{"posts.created_at" + ord, "posts.id DESC"}
	case "id":
		return []string{"posts.id" + ord}
	default:
		return []string{"posts.pub_date" + ord, "posts.id DESC"}
	}
}

func (s *DB) internalToPost(p *dbPost) *blogicum.Post {
	return &blogicum.Post{
		ID:        p.ID,
		CreatedAt: p.CreatedAt,
		AuthorID:  p.AuthorID,

		Title:   p.Title,
		Text:    p.Text,
		PubDate: p.PubDate,

		CategoryID: p.CategoryID,
		LocationID: p.LocationID,
		Image:      p.Image,

		IsPublished: p.IsPublished,

		CategoryPublished: p.CategoryPublished,
		CommentCount:      p.CommentCount,
	}
}
