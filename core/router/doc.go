// Package router provides a trie-based HTTP dispatch engine with
// typed contexts, middleware composition, and prefix-scoped route
// groups.
//
// # Basic Usage
//
// Create an engine, register routes, and serve:
//
//	import "github.com/dmitrymomot/routekit/core/router"
//
//	e := router.New[*router.Context]()
//
//	e.Get("/users", listUsersHandler)
//	e.Post("/users", createUserHandler)
//	e.Get("/users/:id", getUserHandler)
//
//	http.ListenAndServe(":8080", e)
//
// # Patterns
//
// Patterns are matched segment by segment. A ':' segment binds any
// single segment to a named parameter; a '*' segment binds the whole
// remaining path, which may be empty:
//
//	e.Get("/p/:lang/doc", docHandler)      // /p/go/doc -> lang=go
//	e.Get("/static/*filepath", fileServer) // /static/css/app.css -> filepath=css/app.css
//	                                       // /static -> filepath=""
//
// When a path segment could match both a literal child and a dynamic
// one at the same depth, candidates are tried in registration order,
// with backtracking when a candidate's subtree dead-ends.
//
// # Scopes
//
// Group mounts routes under a prefix with their own middleware stack.
// Requests dispatch through exactly one scope, chosen by the longest
// matching prefix:
//
//	api := e.Group("/api")
//	api.Use(authMiddleware)
//	api.Get("/users", listUsersHandler) // serves /api/users
//
//	v2 := e.Group("/api/v2") // shadows /api for paths under /api/v2
//
// # Middleware
//
// Middleware wraps handlers in onion order: the first registered runs
// its pre-logic first and its post-logic last. Global middleware (Use
// on the engine) runs before scope middleware. A middleware that does
// not call next short-circuits everything further in; outer post-logic
// still runs:
//
//	e.Use(func(next handler.HandlerFunc[*router.Context]) handler.HandlerFunc[*router.Context] {
//		return func(ctx *router.Context) handler.Response {
//			start := time.Now()
//			resp := next(ctx)
//			log.Printf("%s %s took %v", ctx.Request().Method, ctx.Request().URL.Path, time.Since(start))
//			return resp
//		}
//	})
//
// # Freeze Semantics
//
// The first request freezes the engine: scopes are ordered, middleware
// chains are composed once, and the routing structures become
// read-only. Registering routes or middleware after that panics.
// Register everything before serving.
package router
