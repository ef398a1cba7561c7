package sudoapi

import (
	"context"

	"github.com/blogicum/blogicum"
)

func (s *BaseAPI) User(ctx context.Context, id int) (*blogicum.User, *StatusError) {
	user, err := s.db.User(ctx, blogicum.UserFilter{ID: &id})
	if err != nil {
		return nil, WrapError(err, "Couldn't find user")
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

func (s *BaseAPI) UserByName(ctx context.Context, username string) (*blogicum.User, *StatusError) {
	user, err := s.db.User(ctx, blogicum.UserFilter{Username: &username})
	if err != nil {
		return nil, WrapError(err, "Couldn't find user")
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// UpdateUser may only ever be called with the acting user's own ID. Handlers
// take the ID from the session, never from the request, so a mismatch is
// structurally impossible.
func (s *BaseAPI) UpdateUser(ctx context.Context, userID int, upd blogicum.UserUpdate) *StatusError {
	if upd.Username != nil && *upd.Username == "" {
		return Statusf(400, "Username can't be empty!")
	}
	if err := s.db.UpdateUser(ctx, userID, upd); err != nil {
		return WrapError(err, "Couldn't update user")
	}
	return nil
}
