package handler

import "net/http"

// Response is a function that renders an HTTP response.
// It sets headers and status code and writes the body.
// Rendering errors are passed to the framework's error handler.
type Response func(w http.ResponseWriter, r *http.Request) error

// HandlerFunc is a type-safe HTTP request handler with custom context support.
type HandlerFunc[C Context] func(ctx C) Response

// ErrorHandler handles errors during request processing.
type ErrorHandler[C Context] func(ctx C, err error)

// Middleware wraps a handler to add cross-cutting behavior. The wrapped
// handler is the continuation: a middleware runs its pre-logic, invokes
// next at most once, and may inspect or replace the response it returns.
// Skipping next short-circuits everything downstream; middleware wrapped
// outside still observes the short-circuit response on the way out.
// The continuation is single-use by contract; calling it twice is
// unspecified behavior.
type Middleware[C Context] func(next HandlerFunc[C]) HandlerFunc[C]
