package router

import (
	"strings"

	"github.com/dmitrymomot/routekit/core/handler"
)

// Scope is a group of routes mounted under a shared path prefix with
// its own middleware stack. Scope middleware runs after the engine's
// global middleware and only for requests whose path falls under the
// scope's prefix.
//
// Scopes are independent: a request is dispatched through exactly one
// scope, selected by longest matching prefix. Nesting is expressed by
// prefix, not by chaining Group calls.
type Scope[C handler.Context] struct {
	engine      *Engine[C]
	prefix      string
	router      *methodRouter[C]
	middlewares []handler.Middleware[C]

	// combined and dispatch are the full middleware chain (global then
	// scope-local) and its composition around the route dispatcher,
	// precomputed when the engine freezes.
	combined []handler.Middleware[C]
	dispatch handler.HandlerFunc[C]
}

func newScope[C handler.Context](e *Engine[C], prefix string) *Scope[C] {
	return &Scope[C]{
		engine: e,
		prefix: prefix,
		router: newMethodRouter[C](),
	}
}

// Use appends middleware to the scope. Panics if the engine has
// already started serving.
func (s *Scope[C]) Use(middlewares ...handler.Middleware[C]) {
	s.engine.checkFrozen()
	s.middlewares = append(s.middlewares, middlewares...)
}

// AddRoute registers a handler for the given method and pattern. The
// pattern is relative to the scope's prefix: a scope mounted at /api
// with pattern /users serves /api/users. Registering the same method
// and pattern twice replaces the earlier handler.
//
// Panics if the pattern does not start with '/' or if the engine has
// already started serving.
func (s *Scope[C]) AddRoute(method, pattern string, fn handler.HandlerFunc[C]) {
	s.engine.checkFrozen()
	if !strings.HasPrefix(pattern, "/") {
		panic("router: route pattern must start with '/': " + pattern)
	}
	full := s.prefix + pattern
	if full != "/" {
		full = strings.TrimSuffix(full, "/")
	}
	s.router.addRoute(method, full, fn)
}

// Get registers a GET route.
func (s *Scope[C]) Get(pattern string, fn handler.HandlerFunc[C]) {
	s.AddRoute("GET", pattern, fn)
}

// Post registers a POST route.
func (s *Scope[C]) Post(pattern string, fn handler.HandlerFunc[C]) {
	s.AddRoute("POST", pattern, fn)
}

// Put registers a PUT route.
func (s *Scope[C]) Put(pattern string, fn handler.HandlerFunc[C]) {
	s.AddRoute("PUT", pattern, fn)
}

// Delete registers a DELETE route.
func (s *Scope[C]) Delete(pattern string, fn handler.HandlerFunc[C]) {
	s.AddRoute("DELETE", pattern, fn)
}

// Patch registers a PATCH route.
func (s *Scope[C]) Patch(pattern string, fn handler.HandlerFunc[C]) {
	s.AddRoute("PATCH", pattern, fn)
}

// Head registers a HEAD route.
func (s *Scope[C]) Head(pattern string, fn handler.HandlerFunc[C]) {
	s.AddRoute("HEAD", pattern, fn)
}

// Options registers an OPTIONS route.
func (s *Scope[C]) Options(pattern string, fn handler.HandlerFunc[C]) {
	s.AddRoute("OPTIONS", pattern, fn)
}

// contains reports whether the request path falls under the scope's
// prefix. The root scope (empty prefix) contains every path.
func (s *Scope[C]) contains(path string) bool {
	return s.prefix == "" || strings.HasPrefix(path, s.prefix)
}
