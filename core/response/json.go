package response

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrymomot/routekit/core/handler"
)

// JSON creates an application/json response with 200 OK status. The
// value is encoded straight to the response writer, so large payloads
// are never buffered in full.
func JSON(v any) handler.Response {
	return JSONWithStatus(v, http.StatusOK)
}

// JSONWithStatus creates an application/json response with a custom
// status code. A zero status defaults to 200, or 204 when the value is
// nil. Statuses that forbid a body (204, 304) skip encoding entirely.
func JSONWithStatus(v any, status int) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")

		if status == 0 {
			if v == nil {
				status = http.StatusNoContent
			} else {
				status = http.StatusOK
			}
		}
		w.WriteHeader(status)

		switch status {
		case http.StatusNoContent, http.StatusNotModified:
			return nil
		}
		return json.NewEncoder(w).Encode(v)
	}
}
