package router

import "github.com/dmitrymomot/routekit/core/handler"

// chain composes a middleware list and a terminal continuation into a
// single handler. Wrapping happens in reverse so the first middleware
// in the list runs its pre-logic first and its post-logic last (the
// onion order). An empty list returns the endpoint untouched, which is
// also the dispatch fast path: composed chains are built once at
// freeze time, never per request.
func chain[C handler.Context](middlewares []handler.Middleware[C], endpoint handler.HandlerFunc[C]) handler.HandlerFunc[C] {
	h := endpoint
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}
