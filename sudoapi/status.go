package sudoapi

import (
	"github.com/blogicum/blogicum"
)

var (
	ErrNoUpdates       = blogicum.ErrNoUpdates
	ErrMissingRequired = blogicum.ErrMissingRequired

	ErrNotFound     = blogicum.ErrNotFound
	ErrUnknownError = blogicum.ErrUnknownError
)

type StatusError = blogicum.StatusError

// Reimplement Statusf and WrapError functions here for faster reference

func Statusf(status int, format string, args ...any) *StatusError {
	return blogicum.Statusf(status, format, args...)
}

func WrapError(err error, text string) *StatusError {
	return blogicum.WrapError(err, text)
}
