package response

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/routekit/core/handler"
)

// statusCode is implemented by errors carrying their own HTTP status.
type statusCode interface {
	StatusCode() int
}

// convertToHTTPError normalizes any error into an HTTPError: existing
// HTTPErrors pass through, errors with a StatusCode method keep their
// status, and everything else becomes a 500 with the original error
// recorded as the cause.
func convertToHTTPError(err error) HTTPError {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	status := http.StatusInternalServerError
	var sc statusCode
	if errors.As(err, &sc) {
		status = sc.StatusCode()
	}

	baseErr, ok := httpErrorsByStatus[status]
	if !ok {
		baseErr = HTTPError{Status: status, Code: "error", Message: http.StatusText(status)}
	}
	return baseErr.WithError(err)
}

// ErrorHandler renders errors as plain text with the status derived
// from the error. Suitable as the engine's WithErrorHandler argument.
func ErrorHandler[C handler.Context](ctx C, err error) {
	httpErr := convertToHTTPError(err)
	Render(ctx, StringWithStatus(httpErr.Error(), httpErr.Status))
}

// JSONErrorHandler renders errors as structured JSON bodies.
func JSONErrorHandler[C handler.Context](ctx C, err error) {
	httpErr := convertToHTTPError(err)
	Render(ctx, JSONWithStatus(httpErr, httpErr.Status))
}
