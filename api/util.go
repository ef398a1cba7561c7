package api

import (
	"fmt"
	"net/http"

	"github.com/blogicum/blogicum"
	"github.com/gorilla/schema"
)

var decoder *schema.Decoder

func init() {
	decoder = schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	decoder.SetAliasTag("json")
}

func returnData(w http.ResponseWriter, retData any) {
	statusData(w, "success", retData, 200)
}

func statusData(w http.ResponseWriter, status string, retData any, statusCode int) {
	blogicum.StatusData(w, status, retData, statusCode)
}

func errorData(w http.ResponseWriter, retData any, errCode int) {
	statusData(w, "error", retData, errCode)
}

func parseRequest[T any](r *http.Request, query *T) error {
	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("could not parse form: %w", err)
	}
	if err := decoder.Decode(query, r.Form); err != nil {
		return fmt.Errorf("invalid request parameters: %w", err)
	}
	return nil
}

// detailPath is where ownership denials and comment writes land.
func detailPath(postID int) string {
	return fmt.Sprintf("/api/posts/%d", postID)
}
