package response_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/routekit/core/handler"
	"github.com/dmitrymomot/routekit/core/response"
	"github.com/dmitrymomot/routekit/core/router"
)

func get(t *testing.T, e *router.Engine[*router.Context], path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	return w
}

func TestHTTPError(t *testing.T) {
	t.Parallel()

	err := response.ErrNotFound.WithMessage("user not found").WithDetails(map[string]any{"id": "42"})
	assert.Equal(t, http.StatusNotFound, err.StatusCode())
	assert.Equal(t, "user not found", err.Error())
	assert.Equal(t, "42", err.Details["id"])

	// WithError does not mutate the original's details.
	wrapped := err.WithError(errors.New("sql: no rows"))
	assert.Equal(t, "sql: no rows", wrapped.Details["cause"])
	assert.NotContains(t, err.Details, "cause")
}

func TestErrorHandler(t *testing.T) {
	t.Parallel()

	e := router.New(router.WithErrorHandler(response.ErrorHandler[*router.Context]))
	e.Get("/missing", func(ctx *router.Context) handler.Response {
		return response.Error(response.ErrNotFound)
	})

	w := get(t, e, "/missing")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Not Found")
}

func TestJSONErrorHandler(t *testing.T) {
	t.Parallel()

	e := router.New(router.WithErrorHandler(response.JSONErrorHandler[*router.Context]))
	e.Get("/conflict", func(ctx *router.Context) handler.Response {
		return response.Error(response.ErrConflict.WithMessage("email already taken"))
	})

	w := get(t, e, "/conflict")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"code":"conflict","message":"email already taken"}`, w.Body.String())
}

func TestJSONErrorHandlerPlainError(t *testing.T) {
	t.Parallel()

	e := router.New(router.WithErrorHandler(response.JSONErrorHandler[*router.Context]))
	e.Get("/boom", func(ctx *router.Context) handler.Response {
		return response.Error(errors.New("disk full"))
	})

	w := get(t, e, "/boom")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"internal_server_error"`)
	assert.Contains(t, w.Body.String(), "disk full")
}
