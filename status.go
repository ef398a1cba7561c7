package blogicum

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
)

var (
	ErrNoUpdates       = Statusf(400, "No updates specified")
	ErrMissingRequired = Statusf(400, "Missing required fields")

	ErrNotFound     = Statusf(404, "Not found")
	ErrUnknownError = Statusf(500, "Unknown error occurred")
)

var _ error = &StatusError{}

type StatusError struct {
	Code int
	Text string

	WrappedError error
}

func (s *StatusError) LogValue() slog.Value {
	if s == nil {
		return slog.Value{}
	}
	return slog.StringValue(s.Text)
}

func (s *StatusError) Error() string {
	return s.Text
}

func (s *StatusError) Unwrap() error {
	return s.WrappedError
}

func (s *StatusError) Is(target error) bool {
	if err, ok := target.(*StatusError); ok {
		return err.Text == s.Text
	}
	return false
}

func (s *StatusError) WriteError(w http.ResponseWriter) {
	StatusData(w, "error", s.Text, s.Code)
}

func Statusf(status int, format string, args ...any) *StatusError {
	return &StatusError{Code: status, Text: fmt.Sprintf(format, args...)}
}

func WrapError(err error, text string) *StatusError {
	return &StatusError{Code: ErrorCode(err), Text: text, WrappedError: err}
}

func ErrorCode(err error) int {
	if err == nil {
		return 200
	}
	var err2 *StatusError
	if errors.As(err, &err2) {
		return err2.Code
	}
	return 500
}
