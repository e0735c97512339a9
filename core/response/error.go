package response

import (
	"net/http"

	"github.com/dmitrymomot/routekit/core/handler"
)

// Error returns a response that yields the given error instead of
// writing anything, deferring rendering to the engine's error handler.
func Error(err error) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		return err
	}
}
