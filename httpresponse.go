package blogicum

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
)

// StatusData writes the standard JSON envelope used by all endpoints.
func StatusData(w http.ResponseWriter, status string, retData any, statusCode int) {
	if err, ok := retData.(*StatusError); ok {
		err.WriteError(w)
		return
	}
	if err, ok := retData.(error); ok {
		// Errors that know how to marshal themselves, like the field-keyed
		// validation errors, are kept structured.
		if _, ok := retData.(json.Marshaler); !ok {
			retData = err.Error()
		}
	}
	w.Header().Add("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	err := json.NewEncoder(w).Encode(struct {
		Status string `json:"status"`
		Data   any    `json:"data"`
	}{
		Status: status,
		Data:   retData,
	})
	if err != nil {
		if strings.Contains(err.Error(), "broken pipe") {
			return
		}
		slog.Error("Couldn't send return data", slog.Any("err", err))
	}
}
