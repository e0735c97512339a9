package response

import (
	"net/http"

	"github.com/dmitrymomot/routekit/core/handler"
)

// Render executes resp against the context's writer. A rendering error
// falls back to a plain 500 so the client always gets something.
func Render(ctx handler.Context, resp handler.Response) {
	if err := resp(ctx.ResponseWriter(), ctx.Request()); err != nil {
		http.Error(ctx.ResponseWriter(), err.Error(), http.StatusInternalServerError)
	}
}

// write builds a Response sending the given body, content type, and
// status. Zero status means 200.
func write(body []byte, contentType string, status int) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		if contentType != "" {
			w.Header().Set("Content-Type", contentType)
		}
		if status == 0 {
			status = http.StatusOK
		}
		w.WriteHeader(status)
		if len(body) == 0 {
			return nil
		}
		_, err := w.Write(body)
		return err
	}
}

// String creates a text/plain response with 200 OK status.
func String(content string) handler.Response {
	return write([]byte(content), "text/plain; charset=utf-8", http.StatusOK)
}

// StringWithStatus creates a text/plain response with a custom status.
func StringWithStatus(content string, status int) handler.Response {
	return write([]byte(content), "text/plain; charset=utf-8", status)
}

// HTML creates a text/html response with 200 OK status.
func HTML(content string) handler.Response {
	return write([]byte(content), "text/html; charset=utf-8", http.StatusOK)
}

// HTMLWithStatus creates a text/html response with a custom status.
func HTMLWithStatus(content string, status int) handler.Response {
	return write([]byte(content), "text/html; charset=utf-8", status)
}

// Bytes creates a response with a custom content type and 200 OK status.
func Bytes(content []byte, contentType string) handler.Response {
	return write(content, contentType, http.StatusOK)
}

// BytesWithStatus creates a response with a custom content type and status.
func BytesWithStatus(content []byte, contentType string, status int) handler.Response {
	return write(content, contentType, status)
}

// NoContent creates a 204 No Content response.
func NoContent() handler.Response {
	return write(nil, "", http.StatusNoContent)
}

// Status creates an empty response with the given status code.
func Status(code int) handler.Response {
	return write(nil, "", code)
}
