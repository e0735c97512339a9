package router

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/routekit/core/handler"
)

// Option configures an Engine during creation.
type Option[C handler.Context] func(*Engine[C])

// WithErrorHandler sets a custom error handler for the engine.
func WithErrorHandler[C handler.Context](h handler.ErrorHandler[C]) Option[C] {
	return func(e *Engine[C]) {
		if h != nil {
			e.errorHandler = h
		}
	}
}

// WithMiddleware adds global middleware to the engine.
func WithMiddleware[C handler.Context](middlewares ...handler.Middleware[C]) Option[C] {
	return func(e *Engine[C]) {
		e.middlewares = append(e.middlewares, middlewares...)
	}
}

// WithContextFactory sets the factory used to build the request
// context. Required when C is anything other than *Context.
func WithContextFactory[C handler.Context](f func(http.ResponseWriter, *http.Request) C) Option[C] {
	return func(e *Engine[C]) {
		e.newContext = f
	}
}

// WithLogger sets the logger used for panics that occur after the
// response has been written. Defaults to a no-op logger.
func WithLogger[C handler.Context](logger *slog.Logger) Option[C] {
	return func(e *Engine[C]) {
		if logger != nil {
			e.logger = logger
		}
	}
}
