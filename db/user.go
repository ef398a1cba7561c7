package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/blogicum/blogicum"
	"github.com/jackc/pgx/v5"
)

type dbUser struct {
	ID        int       `db:"id"`
	CreatedAt time.Time `db:"created_at"`

	Username  string `db:"username"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	Email     string `db:"email"`
	Password  string `db:"password"`
	Admin     bool   `db:"admin"`
}

func (s *DB) User(ctx context.Context, filter blogicum.UserFilter) (*blogicum.User, error) {
	filter.Limit = 1
	return toSingular(ctx, filter, s.Users)
}

func (s *DB) Users(ctx context.Context, filter blogicum.UserFilter) ([]*blogicum.User, error) {
	fb := newFilterBuilder()
	userParams(filter, fb)

	q := fmt.Sprintf("SELECT * FROM users WHERE %s ORDER BY id ASC %s", fb.Where(), FormatLimitOffset(filter.Limit, filter.Offset))
	rows, _ := s.conn.Query(ctx, q, fb.Args()...)
	users, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[dbUser])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return mapper(users, s.internalToUser), nil
}

func (s *DB) UserExists(ctx context.Context, username string, email string) (bool, error) {
	var exists bool
	err := s.conn.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM users WHERE lower(username) = lower($1) OR lower(email) = lower($2))",
		username, email,
	).Scan(&exists)
	return exists, err
}

func (s *DB) CreateUser(ctx context.Context, user *blogicum.User) error {
	if user.Username == "" || user.Email == "" || user.Password == "" {
		return blogicum.ErrMissingRequired
	}
	rows, _ := s.conn.Query(ctx, `
		INSERT INTO users (username, first_name, last_name, email, password, admin)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		user.Username, user.FirstName, user.LastName, user.Email, user.Password, user.Admin,
	)
	id, err := pgx.CollectOneRow(rows, pgx.RowTo[int])
	if err != nil {
		return err
	}
	user.ID = id
	return nil
}

func (s *DB) UpdateUser(ctx context.Context, id int, upd blogicum.UserUpdate) error {
	ub := newUpdateBuilder()
	if v := upd.Username; v != nil {
		ub.AddUpdate("username = %s", v)
	}
	if v := upd.FirstName; v != nil {
		ub.AddUpdate("first_name = %s", v)
	}
	if v := upd.LastName; v != nil {
		ub.AddUpdate("last_name = %s", v)
	}
	if v := upd.Email; v != nil {
		ub.AddUpdate("email = %s", v)
	}
	if v := upd.PwdHash; v != nil {
		ub.AddUpdate("password = %s", v)
	}
	if v := upd.Admin; v != nil {
		ub.AddUpdate("admin = %s", v)
	}
	if ub.CheckUpdates() != nil {
		return ub.CheckUpdates()
	}
	fb := ub.MakeFilter()
	fb.AddConstraint("id = %s", id)
	_, err := s.conn.Exec(ctx, "UPDATE users SET "+fb.WithUpdate(), fb.Args()...)
	return err
}

func userParams(filter blogicum.UserFilter, fb *filterBuilder) {
	if v := filter.ID; v != nil {
		fb.AddConstraint("id = %s", v)
	}
	if v := filter.Username; v != nil {
		fb.AddConstraint("lower(username) = lower(%s)", v)
	}
	if v := filter.Email; v != nil {
		fb.AddConstraint("lower(email) = lower(%s)", v)
	}
	if v := filter.SessionID; v != nil {
		fb.AddConstraint("EXISTS (SELECT 1 FROM sessions WHERE sessions.id = %s AND sessions.user_id = users.id AND sessions.created_at > %s)", v, time.Now().Add(-sessionLifetime))
	}
}

func (s *DB) internalToUser(user *dbUser) *blogicum.User {
	return &blogicum.User{
		ID:        user.ID,
		CreatedAt: user.CreatedAt,

		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Password:  user.Password,
		Admin:     user.Admin,
	}
}
