package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrymomot/routekit/core/handler"
)

var (
	// ErrNotFound reports that no route is registered for the request's
	// method and path. It is a structured outcome, not a failure: the
	// error handler turns it into a 404 response.
	ErrNotFound = errors.New("route not found")

	// ErrNilResponse reports a handler that returned a nil Response.
	ErrNilResponse = errors.New("nil response")

	// ErrNoContextFactory reports a custom context type used without a
	// WithContextFactory option.
	ErrNoContextFactory = errors.New("no context factory provided")

	// ErrInvalidPattern reports a route pattern that does not start
	// with '/'.
	ErrInvalidPattern = errors.New("invalid route pattern")

	// ErrFrozen reports route or middleware registration after serving
	// has started. Routing structures are frozen at first dispatch and
	// shared without locks, so late mutation is a programming error.
	ErrFrozen = errors.New("engine is frozen: register routes and middleware before serving")
)

// notFoundResponse is the terminal outcome for unmatched routes. It
// renders nothing itself; the returned ErrNotFound travels back to the
// engine's error handler, so outer middleware still observes the
// response on the way out.
func notFoundResponse(w http.ResponseWriter, r *http.Request) error {
	return ErrNotFound
}

// statusCode is implemented by errors that carry their own HTTP status.
type statusCode interface {
	StatusCode() int
}

// defaultErrorHandler renders errors as plain text. ErrNotFound maps
// to 404, errors implementing statusCode keep their own status, and
// everything else is a 500.
func defaultErrorHandler[C handler.Context](ctx C, err error) {
	w := ctx.ResponseWriter()
	if ww, ok := w.(*responseWriter); ok && ww.Written() {
		return
	}

	status := http.StatusInternalServerError
	var sc statusCode
	switch {
	case errors.Is(err, ErrNotFound):
		status = http.StatusNotFound
	case errors.As(err, &sc):
		status = sc.StatusCode()
	}

	http.Error(w, err.Error(), status)
}

// PanicError gives external error handlers access to a recovered panic:
// the original panic value and the stack captured at the panic point.
type PanicError interface {
	error
	Value() any
	Stack() []byte
}

type panicError struct {
	value any
	stack []byte
}

func (e *panicError) Error() string {
	return fmt.Sprintf("panic: %v", e.value)
}

func (e *panicError) Value() any {
	return e.value
}

func (e *panicError) Stack() []byte {
	return e.stack
}

// Unwrap lets errors.Is/As see through panics that carried an error value.
func (e *panicError) Unwrap() error {
	if err, ok := e.value.(error); ok {
		return err
	}
	return nil
}
