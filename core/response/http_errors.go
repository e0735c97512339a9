package response

import "net/http"

// HTTPError is a structured error response carrying an HTTP status, a
// machine-readable code, and an optional details map.
type HTTPError struct {
	Status  int            `json:"-"`
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// NewHTTPError creates a 500-status error with a custom message.
func NewHTTPError(message string) HTTPError {
	return HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    "internal_server_error",
		Message: message,
	}
}

// Error implements the error interface.
func (e HTTPError) Error() string {
	return e.Message
}

// StatusCode exposes the HTTP status, letting the engine's default
// error handler honor it without knowing about this package.
func (e HTTPError) StatusCode() int {
	return e.Status
}

// WithMessage returns a copy with a custom message.
func (e HTTPError) WithMessage(message string) HTTPError {
	e.Message = message
	return e
}

// WithDetails returns a copy with additional details.
func (e HTTPError) WithDetails(details map[string]any) HTTPError {
	e.Details = details
	return e
}

// WithError returns a copy recording err as the cause detail.
func (e HTTPError) WithError(err error) HTTPError {
	details := make(map[string]any, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	details["cause"] = err.Error()
	e.Details = details
	return e
}

func httpError(status int, code string) HTTPError {
	return HTTPError{Status: status, Code: code, Message: http.StatusText(status)}
}

// Predefined errors for the statuses handlers commonly return.
var (
	ErrBadRequest           = httpError(http.StatusBadRequest, "bad_request")
	ErrUnauthorized         = httpError(http.StatusUnauthorized, "unauthorized")
	ErrForbidden            = httpError(http.StatusForbidden, "forbidden")
	ErrNotFound             = httpError(http.StatusNotFound, "not_found")
	ErrMethodNotAllowed     = httpError(http.StatusMethodNotAllowed, "method_not_allowed")
	ErrNotAcceptable        = httpError(http.StatusNotAcceptable, "not_acceptable")
	ErrRequestTimeout       = httpError(http.StatusRequestTimeout, "request_timeout")
	ErrConflict             = httpError(http.StatusConflict, "conflict")
	ErrGone                 = httpError(http.StatusGone, "gone")
	ErrUnsupportedMediaType = httpError(http.StatusUnsupportedMediaType, "unsupported_media_type")
	ErrUnprocessableEntity  = httpError(http.StatusUnprocessableEntity, "unprocessable_entity")
	ErrTooManyRequests      = httpError(http.StatusTooManyRequests, "too_many_requests")
	ErrInternalServerError  = httpError(http.StatusInternalServerError, "internal_server_error")
	ErrNotImplemented       = httpError(http.StatusNotImplemented, "not_implemented")
	ErrBadGateway           = httpError(http.StatusBadGateway, "bad_gateway")
	ErrServiceUnavailable   = httpError(http.StatusServiceUnavailable, "service_unavailable")
	ErrGatewayTimeout       = httpError(http.StatusGatewayTimeout, "gateway_timeout")
)

var httpErrorsByStatus = map[int]HTTPError{
	http.StatusBadRequest:           ErrBadRequest,
	http.StatusUnauthorized:         ErrUnauthorized,
	http.StatusForbidden:            ErrForbidden,
	http.StatusNotFound:             ErrNotFound,
	http.StatusMethodNotAllowed:     ErrMethodNotAllowed,
	http.StatusNotAcceptable:        ErrNotAcceptable,
	http.StatusRequestTimeout:       ErrRequestTimeout,
	http.StatusConflict:             ErrConflict,
	http.StatusGone:                 ErrGone,
	http.StatusUnsupportedMediaType: ErrUnsupportedMediaType,
	http.StatusUnprocessableEntity:  ErrUnprocessableEntity,
	http.StatusTooManyRequests:      ErrTooManyRequests,
	http.StatusInternalServerError:  ErrInternalServerError,
	http.StatusNotImplemented:       ErrNotImplemented,
	http.StatusBadGateway:           ErrBadGateway,
	http.StatusServiceUnavailable:   ErrServiceUnavailable,
	http.StatusGatewayTimeout:       ErrGatewayTimeout,
}
