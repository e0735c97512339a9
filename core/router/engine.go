package router

import (
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/dmitrymomot/routekit/core/handler"
)

// Route describes a registered route for introspection.
type Route struct {
	Method  string
	Pattern string
}

// Engine dispatches HTTP requests through middleware chains to routed
// handlers. Configure it in two phases: register scopes, routes, and
// middleware first, then serve. The engine freezes itself on the first
// request and panics on registration after that, which is what lets it
// serve concurrently without any locking.
type Engine[C handler.Context] struct {
	root         *Scope[C]
	scopes       []*Scope[C]
	middlewares  []handler.Middleware[C]
	errorHandler handler.ErrorHandler[C]
	newContext   func(http.ResponseWriter, *http.Request) C
	logger       *slog.Logger

	freezeOnce sync.Once
	frozen     atomic.Bool

	// ordered holds all scopes sorted by descending prefix length, the
	// root scope last. Built at freeze; read-only afterwards.
	ordered []*Scope[C]
}

// New creates an engine. The zero configuration serves the default
// *Context; custom context types require WithContextFactory.
func New[C handler.Context](opts ...Option[C]) *Engine[C] {
	e := &Engine[C]{
		errorHandler: defaultErrorHandler[C],
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	e.root = newScope(e, "")

	for _, opt := range opts {
		opt(e)
	}

	if e.newContext == nil {
		e.newContext = func(w http.ResponseWriter, r *http.Request) C {
			var zero C
			if _, ok := any(zero).(*Context); ok {
				return any(newContext(w, r)).(C)
			}
			panic(ErrNoContextFactory)
		}
	}

	return e
}

// Use appends global middleware, run for every request regardless of
// which scope it dispatches through. Panics once serving has started.
func (e *Engine[C]) Use(middlewares ...handler.Middleware[C]) {
	e.checkFrozen()
	e.middlewares = append(e.middlewares, middlewares...)
}

// Group creates a scope mounted at the given prefix. Requests are
// dispatched through the scope with the longest prefix matching their
// path, so /api/v1 shadows /api for paths under it.
//
// Panics if the prefix does not start with '/': request paths always
// do, so a bare prefix could never match anything.
func (e *Engine[C]) Group(prefix string) *Scope[C] {
	e.checkFrozen()
	if !strings.HasPrefix(prefix, "/") {
		panic("router: scope prefix must start with '/': " + prefix)
	}
	s := newScope(e, prefix)
	e.scopes = append(e.scopes, s)
	return s
}

// AddRoute registers a handler on the root scope.
func (e *Engine[C]) AddRoute(method, pattern string, fn handler.HandlerFunc[C]) {
	e.root.AddRoute(method, pattern, fn)
}

// Get registers a GET route on the root scope.
func (e *Engine[C]) Get(pattern string, fn handler.HandlerFunc[C]) {
	e.root.Get(pattern, fn)
}

// Post registers a POST route on the root scope.
func (e *Engine[C]) Post(pattern string, fn handler.HandlerFunc[C]) {
	e.root.Post(pattern, fn)
}

// Put registers a PUT route on the root scope.
func (e *Engine[C]) Put(pattern string, fn handler.HandlerFunc[C]) {
	e.root.Put(pattern, fn)
}

// Delete registers a DELETE route on the root scope.
func (e *Engine[C]) Delete(pattern string, fn handler.HandlerFunc[C]) {
	e.root.Delete(pattern, fn)
}

// Patch registers a PATCH route on the root scope.
func (e *Engine[C]) Patch(pattern string, fn handler.HandlerFunc[C]) {
	e.root.Patch(pattern, fn)
}

// Head registers a HEAD route on the root scope.
func (e *Engine[C]) Head(pattern string, fn handler.HandlerFunc[C]) {
	e.root.Head(pattern, fn)
}

// Options registers an OPTIONS route on the root scope.
func (e *Engine[C]) Options(pattern string, fn handler.HandlerFunc[C]) {
	e.root.Options(pattern, fn)
}

// Routes returns every registered route across all scopes, with
// patterns fully qualified by their scope prefix.
func (e *Engine[C]) Routes() []Route {
	routes := e.root.router.routes()
	for _, s := range e.scopes {
		routes = append(routes, s.router.routes()...)
	}
	return routes
}

func (e *Engine[C]) checkFrozen() {
	if e.frozen.Load() {
		panic(ErrFrozen)
	}
}

// freeze snapshots the routing configuration: scopes are ordered by
// descending prefix length and each scope's full middleware chain
// (global then scope-local) is composed around its route dispatcher
// once, instead of per request.
func (e *Engine[C]) freeze() {
	e.frozen.Store(true)

	e.ordered = make([]*Scope[C], 0, len(e.scopes)+1)
	e.ordered = append(e.ordered, e.scopes...)
	sort.SliceStable(e.ordered, func(i, j int) bool {
		return len(e.ordered[i].prefix) > len(e.ordered[j].prefix)
	})
	e.ordered = append(e.ordered, e.root)

	for _, s := range e.ordered {
		s.combined = make([]handler.Middleware[C], 0, len(e.middlewares)+len(s.middlewares))
		s.combined = append(s.combined, e.middlewares...)
		s.combined = append(s.combined, s.middlewares...)
		s.dispatch = chain(s.combined, s.router.handleRequest)
	}
}

// selectScope returns the scope owning the path: the longest matching
// prefix wins, and the root scope catches everything else.
func (e *Engine[C]) selectScope(path string) *Scope[C] {
	for _, s := range e.ordered {
		if s.contains(path) {
			return s
		}
	}
	return e.root
}

// ServeHTTP implements http.Handler.
func (e *Engine[C]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	e.freezeOnce.Do(e.freeze)

	ww := newResponseWriter(w)

	path := r.URL.Path
	if path == "" {
		path = "/"
	}

	ctx := e.newContext(ww, r)

	defer func() {
		if p := recover(); p != nil {
			panicErr := &panicError{
				value: p,
				stack: debug.Stack(),
			}

			if ww.Written() {
				// Too late for an error response; log and move on.
				e.logger.Error("panic after response written",
					"value", panicErr.value,
					"stack", string(panicErr.stack),
					"path", r.URL.Path,
					"method", r.Method,
					"status", ww.Status(),
				)
			} else {
				e.errorHandler(ctx, panicErr)
			}
		}
	}()

	scope := e.selectScope(path)

	response := scope.dispatch(ctx)
	if response == nil {
		e.errorHandler(ctx, ErrNilResponse)
		return
	}

	if err := response(ww, r); err != nil {
		e.errorHandler(ctx, err)
	}
}
