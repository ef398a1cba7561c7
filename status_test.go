package blogicum

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"
)

func TestErrorCode(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		err  error
		want int
	}{
		"nil":           {nil, 200},
		"plain":         {errors.New("boom"), 500},
		"status":        {Statusf(404, "missing"), 404},
		"wrapped":       {fmt.Errorf("context: %w", Statusf(400, "bad")), 400},
		"wrap of plain": {WrapError(errors.New("boom"), "storage failed"), 500},
	}
	for name, test := range tests {
		test := test
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if got := ErrorCode(test.err); got != test.want {
				t.Fatalf("ErrorCode() = %d, wanted %d", got, test.want)
			}
		})
	}
}

func TestWriteError(t *testing.T) {
	t.Parallel()
	w := httptest.NewRecorder()
	Statusf(404, "Not found").WriteError(w)

	if w.Code != 404 {
		t.Fatalf("status code = %d, wanted 404", w.Code)
	}
	var body struct {
		Status string `json:"status"`
		Data   string `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body.Status != "error" || body.Data != "Not found" {
		t.Fatalf("unexpected body: %+v", body)
	}
}
