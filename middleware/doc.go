// Package middleware provides composable HTTP middleware for common
// cross-cutting concerns: request IDs, structured request logging,
// client IP extraction, rate limiting, CORS, security headers, Basic
// authentication, Prometheus metrics, and language negotiation.
//
// All middleware follows the same pattern: a generic function over the
// handler.Context type parameter, a zero-config constructor for common
// cases, a WithConfig constructor for customization, and a Get helper
// for values the middleware stores in the context. Every config struct
// carries a Skip predicate for bypassing the middleware per request.
//
// # Usage
//
//	import (
//		"github.com/dmitrymomot/routekit/core/router"
//		"github.com/dmitrymomot/routekit/middleware"
//	)
//
//	app := router.New[*router.Context]()
//	app.Use(
//		middleware.RequestID[*router.Context](),
//		middleware.Logging[*router.Context](),
//		middleware.ClientIP[*router.Context](),
//	)
//
//	api := app.Group("/api")
//	api.Use(middleware.RateLimit[*router.Context](middleware.RateLimitConfig{
//		Limiter: limiter,
//	}))
//
// Middleware registered on the app wraps every request, including
// unmatched ones; middleware registered on a group wraps only requests
// dispatched to that group's prefix. Within a chain, the first
// registered middleware is the outermost.
//
// # Execution order
//
// Order matters. A sensible baseline: RequestID first so every log line
// carries an ID, Logging next so it observes everything below it, then
// ClientIP (RateLimit's default key extractor reads its context value),
// then CORS and SecurityHeaders, then request gates like RateLimit and
// BasicAuth closest to the handlers.
package middleware
