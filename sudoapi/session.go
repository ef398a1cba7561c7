package sudoapi

import (
	"context"
	"log/slog"

	"github.com/blogicum/blogicum"
)

func (s *BaseAPI) CreateSession(ctx context.Context, uid int) (string, *StatusError) {
	sid, err := s.db.CreateSession(ctx, uid)
	if err != nil {
		slog.WarnContext(ctx, "Failed to create session", slog.Any("err", err))
		return "", WrapError(err, "Failed to create session")
	}
	return sid, nil
}

func (s *BaseAPI) RemoveSession(ctx context.Context, sid string) *StatusError {
	if err := s.db.RemoveSession(ctx, sid); err != nil {
		return WrapError(err, "Failed to remove session")
	}
	return nil
}

// SessionUser resolves a session token to its user. A missing or expired
// session returns nil without an error.
func (s *BaseAPI) SessionUser(ctx context.Context, sid string) (*blogicum.User, *StatusError) {
	if sid == "" {
		return nil, nil
	}
	user, err := s.db.User(ctx, blogicum.UserFilter{SessionID: &sid})
	if err != nil {
		return nil, WrapError(err, "Failed to get session user")
	}
	return user, nil
}

// CleanupSessions is meant to run periodically in the background.
func (s *BaseAPI) CleanupSessions(ctx context.Context) {
	if err := s.db.RemoveExpiredSessions(ctx); err != nil {
		slog.WarnContext(ctx, "Couldn't remove expired sessions", slog.Any("err", err))
	}
}
