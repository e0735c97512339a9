package router

import (
	"strings"

	"github.com/dmitrymomot/routekit/core/handler"
)

// methodRouter keeps one trie per HTTP method. A method with no
// registered routes has no entry at all, which reads as "no match"
// during lookup.
type methodRouter[C handler.Context] struct {
	roots map[string]*node[C]
}

func newMethodRouter[C handler.Context]() *methodRouter[C] {
	return &methodRouter[C]{roots: make(map[string]*node[C])}
}

func (r *methodRouter[C]) addRoute(method, pattern string, endpoint handler.HandlerFunc[C]) {
	root, ok := r.roots[method]
	if !ok {
		root = &node[C]{}
		r.roots[method] = root
	}
	root.insert(pattern, splitPattern(pattern), 0, endpoint)
}

// getRoute resolves a method and path to a terminal node plus the
// parameter values derived from the matched pattern's precomputed
// bindings. A ':' binding takes the path segment at its position; a
// '*' binding takes the '/'-join of all segments from its position to
// the end, which may be empty.
func (r *methodRouter[C]) getRoute(method, path string) (*node[C], map[string]string) {
	root, ok := r.roots[method]
	if !ok {
		return nil, nil
	}

	segments := splitPattern(path)
	matched := root.search(segments, 0)
	if matched == nil {
		return nil, nil
	}

	var params map[string]string
	if len(matched.bindings) > 0 {
		params = make(map[string]string, len(matched.bindings))
		for _, b := range matched.bindings {
			switch {
			case b.catchAll && b.index < len(segments):
				params[b.name] = strings.Join(segments[b.index:], "/")
			case b.catchAll:
				params[b.name] = ""
			case b.index < len(segments):
				params[b.name] = segments[b.index]
			}
		}
	}
	return matched, params
}

// handleRequest is the terminal continuation of a middleware chain: it
// resolves the context's method and path, merges route-derived params
// into the context, and invokes the bound handler. Route-derived
// values overwrite same-name params set earlier by middleware; that
// precedence is part of the routing contract.
func (r *methodRouter[C]) handleRequest(ctx C) handler.Response {
	req := ctx.Request()
	matched, params := r.getRoute(req.Method, req.URL.Path)
	if matched == nil {
		return notFoundResponse
	}

	for name, value := range params {
		ctx.SetParam(name, value)
	}
	return matched.endpoint(ctx)
}

// routes lists every registered (method, pattern) pair.
func (r *methodRouter[C]) routes() []Route {
	var all []Route
	for method, root := range r.roots {
		var patterns []string
		root.collectPatterns(&patterns)
		for _, pattern := range patterns {
			all = append(all, Route{Method: method, Pattern: pattern})
		}
	}
	return all
}
