package router

import (
	"strings"

	"github.com/dmitrymomot/routekit/core/handler"
)

// paramBinding records where a named parameter sits in a registered
// pattern, precomputed at registration so lookups never re-parse the
// pattern. A catch-all binding is always the last one, if present.
type paramBinding struct {
	index    int
	name     string
	catchAll bool
}

// node is one segment of the routing trie. A node with a non-empty
// pattern is a terminal: it represents a fully registered route and
// holds the bound handler. The empty pattern is the "not registered"
// sentinel, so intermediate nodes never match on their own.
type node[C handler.Context] struct {
	segment  string
	pattern  string
	children []*node[C]
	dynamic  bool // segment starts with ':' or '*'
	catchAll bool // segment starts with '*'
	endpoint handler.HandlerFunc[C]
	bindings []paramBinding
}

// splitPattern splits a pattern or request path into segments, dropping
// empty ones. Parsing stops after the first '*' segment: a pattern may
// carry only one catch-all and anything after it is never registered.
func splitPattern(pattern string) []string {
	parts := strings.Split(pattern, "/")
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		segments = append(segments, part)
		if part[0] == '*' {
			break
		}
	}
	return segments
}

// parseBindings scans pattern segments for ':' and '*' sigils and
// records their positions and names.
func parseBindings(segments []string) []paramBinding {
	var bindings []paramBinding
	for i, seg := range segments {
		switch seg[0] {
		case ':':
			bindings = append(bindings, paramBinding{index: i, name: seg[1:]})
		case '*':
			bindings = append(bindings, paramBinding{index: i, name: seg[1:], catchAll: true})
			return bindings
		}
	}
	return bindings
}

// insert walks the trie one segment at a time, creating nodes as
// needed, and marks the final node terminal. Re-registering an
// identical pattern silently overwrites the previous handler.
//
// Dynamic segments of the same kind at the same depth collapse onto
// one child node regardless of their names; the bindings of the
// last-registered pattern decide the names seen by handlers.
func (n *node[C]) insert(pattern string, segments []string, depth int, endpoint handler.HandlerFunc[C]) {
	if depth == len(segments) {
		n.pattern = pattern
		n.endpoint = endpoint
		n.bindings = parseBindings(segments)
		return
	}

	seg := segments[depth]
	child := n.matchInsert(seg)
	if child == nil {
		child = &node[C]{
			segment:  seg,
			dynamic:  seg[0] == ':' || seg[0] == '*',
			catchAll: seg[0] == '*',
		}
		n.children = append(n.children, child)
	}
	child.insert(pattern, segments, depth+1, endpoint)
}

// matchInsert finds the child an inserted segment descends into: an
// exact literal match, or a dynamic child of the same kind. Params and
// catch-alls stay distinct siblings; a param child must keep matching
// exactly one segment while a catch-all consumes the rest.
func (n *node[C]) matchInsert(seg string) *node[C] {
	catchAll := seg[0] == '*'
	dynamic := catchAll || seg[0] == ':'
	for _, child := range n.children {
		if child.segment == seg || (child.dynamic && dynamic && child.catchAll == catchAll) {
			return child
		}
	}
	return nil
}

// search descends segment by segment, trying candidate children in
// insertion order and backtracking when a subtree fails. A catch-all
// node terminates the descent immediately, consuming all remaining
// segments including none at all.
func (n *node[C]) search(segments []string, depth int) *node[C] {
	if n.catchAll {
		if n.pattern == "" {
			return nil
		}
		return n
	}

	if depth == len(segments) {
		if n.pattern != "" {
			return n
		}
		// A trailing catch-all may bind zero remaining segments.
		for _, child := range n.children {
			if child.catchAll && child.pattern != "" {
				return child
			}
		}
		return nil
	}

	seg := segments[depth]
	for _, child := range n.children {
		if child.segment == seg || child.dynamic {
			if found := child.search(segments, depth+1); found != nil {
				return found
			}
		}
	}
	return nil
}

// collectPatterns appends every registered pattern in pre-order.
func (n *node[C]) collectPatterns(patterns *[]string) {
	if n.pattern != "" {
		*patterns = append(*patterns, n.pattern)
	}
	for _, child := range n.children {
		child.collectPatterns(patterns)
	}
}
