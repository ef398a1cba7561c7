package sudoapi

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/asaskevich/govalidator"
	"github.com/blogicum/blogicum"
	"golang.org/x/crypto/bcrypt"
)

// Login verifies the credentials and returns the matching user ID.
// It is the caller's responsibility to actually create and manage the session.
func (s *BaseAPI) Login(ctx context.Context, username, pwd string) (int, *StatusError) {
	user, err := s.db.User(ctx, blogicum.UserFilter{Username: &username})
	if err != nil || user == nil {
		return -1, Statusf(400, "Invalid username or password")
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(pwd))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return -1, Statusf(400, "Invalid username or password")
	} else if err != nil {
		// This should never happen. It means that bcrypt suffered something
		slog.WarnContext(ctx, "bcrypt failure", slog.Any("err", err))
		return -1, ErrUnknownError
	}

	return user.ID, nil
}

// Signup validates and creates the user. The first registered user becomes
// the administrator.
func (s *BaseAPI) Signup(ctx context.Context, email, username, pwd string) (int, *StatusError) {
	username = strings.TrimSpace(username)
	if !(len(username) >= 3 && len(username) <= 32 && govalidator.IsPrintableASCII(username)) {
		return -1, Statusf(400, "Invalid username.")
	}
	if len(pwd) < 6 || len(pwd) > 128 {
		return -1, Statusf(400, "Invalid password length.")
	}
	if !govalidator.IsExistingEmail(email) {
		return -1, Statusf(400, "Invalid email.")
	}

	if exists, err := s.db.UserExists(ctx, username, email); err != nil || exists {
		return -1, Statusf(400, "User matching email or username already exists!")
	}

	hash, err := blogicum.HashPassword(pwd)
	if err != nil {
		return -1, WrapError(err, "Couldn't hash password")
	}

	user := blogicum.User{
		Username: username,
		Email:    email,
		Password: hash,
	}
	if err := s.db.CreateUser(ctx, &user); err != nil {
		slog.WarnContext(ctx, "Couldn't create user", slog.Any("err", err))
		return -1, Statusf(500, "Couldn't create user")
	}

	if user.ID == 1 {
		var adm = true
		if err := s.db.UpdateUser(ctx, user.ID, blogicum.UserUpdate{Admin: &adm}); err != nil {
			slog.WarnContext(ctx, "Couldn't mark first user as admin", slog.Any("err", err))
		}
	}

	return user.ID, nil
}
