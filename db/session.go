package db

import (
	"context"
	"time"

	"github.com/blogicum/blogicum"
)

// sessionLifetime is the single source of truth for session expiry. The
// lookup constraint in user.go derives its cutoff from it too.
const sessionLifetime = 30 * 24 * time.Hour

func (s *DB) CreateSession(ctx context.Context, uid int) (string, error) {
	sid := blogicum.RandomString(16)
	_, err := s.conn.Exec(ctx, "INSERT INTO sessions (id, user_id) VALUES ($1, $2)", sid, uid)
	if err != nil {
		return "", err
	}
	return sid, nil
}

func (s *DB) RemoveSession(ctx context.Context, sid string) error {
	_, err := s.conn.Exec(ctx, "DELETE FROM sessions WHERE id = $1", sid)
	return err
}

// RemoveExpiredSessions cleans up sessions past their lifetime.
func (s *DB) RemoveExpiredSessions(ctx context.Context) error {
	_, err := s.conn.Exec(ctx, "DELETE FROM sessions WHERE created_at < $1", time.Now().Add(-sessionLifetime))
	return err
}
