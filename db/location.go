package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/blogicum/blogicum"
	"github.com/jackc/pgx/v5"
)

type dbLocation struct {
	ID        int       `db:"id"`
	CreatedAt time.Time `db:"created_at"`

	Name        string `db:"name"`
	IsPublished bool   `db:"is_published"`
}

func (s *DB) Location(ctx context.Context, filter blogicum.LocationFilter) (*blogicum.Location, error) {
	filter.Limit = 1
	return toSingular(ctx, filter, s.Locations)
}

func (s *DB) Locations(ctx context.Context, filter blogicum.LocationFilter) ([]*blogicum.Location, error) {
	fb := newFilterBuilder()
	if v := filter.ID; v != nil {
		fb.AddConstraint("id = %s", v)
	}
	if v := filter.Published; v != nil {
		fb.AddConstraint("is_published = %s", v)
	}

	q := fmt.Sprintf("SELECT * FROM locations WHERE %s ORDER BY name ASC, id ASC %s", fb.Where(), FormatLimitOffset(filter.Limit, filter.Offset))
	rows, _ := s.conn.Query(ctx, q, fb.Args()...)
	locations, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[dbLocation])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return mapper(locations, s.internalToLocation), nil
}

func (s *DB) CreateLocation(ctx context.Context, name string, published bool) (int, error) {
	if name == "" {
		return -1, blogicum.ErrMissingRequired
	}
	rows, _ := s.conn.Query(ctx, "INSERT INTO locations (name, is_published) VALUES ($1, $2) RETURNING id", name, published)
	id, err := pgx.CollectOneRow(rows, pgx.RowTo[int])
	if err != nil {
		return -1, err
	}
	return id, nil
}

func (s *DB) UpdateLocation(ctx context.Context, id int, upd blogicum.LocationUpdate) error {
	ub := newUpdateBuilder()
	if v := upd.Name; v != nil {
		ub.AddUpdate("name = %s", v)
	}
	if v := upd.IsPublished; v != nil {
		ub.AddUpdate("is_published = %s", v)
	}
	if ub.CheckUpdates() != nil {
		return ub.CheckUpdates()
	}
	fb := ub.MakeFilter()
	fb.AddConstraint("id = %s", id)
	_, err := s.conn.Exec(ctx, "UPDATE locations SET "+fb.WithUpdate(), fb.Args()...)
	return err
}

func (s *DB) DeleteLocation(ctx context.Context, id int) error {
	_, err := s.conn.Exec(ctx, "DELETE FROM locations WHERE id = $1", id)
	return err
}

func (s *DB) internalToLocation(loc *dbLocation) *blogicum.Location {
	return &blogicum.Location{
		ID:        loc.ID,
		CreatedAt: loc.CreatedAt,

		Name:        loc.Name,
		IsPublished: loc.IsPublished,
	}
}
