package router

import (
	"io"
	"net/http"
	"sync"
	"time"
)

// Context is the default request context used when the engine is
// instantiated as Engine[*Context]. It carries the request, the
// response writer, route parameters, and arbitrary per-request values
// set by middleware. It satisfies context.Context by delegating to the
// request's context, so it can be passed straight into downstream
// APIs that expect one.
//
// A Context is bound to a single request and must not be retained
// after the handler returns.
type Context struct {
	w      http.ResponseWriter
	r      *http.Request
	params map[string]string
	values map[any]any

	bodyOnce sync.Once
	body     []byte
	bodyErr  error
}

func newContext(w http.ResponseWriter, r *http.Request) *Context {
	return &Context{w: w, r: r}
}

// Deadline implements context.Context.
func (c *Context) Deadline() (deadline time.Time, ok bool) {
	return c.r.Context().Deadline()
}

// Done implements context.Context.
func (c *Context) Done() <-chan struct{} {
	return c.r.Context().Done()
}

// Err implements context.Context.
func (c *Context) Err() error {
	return c.r.Context().Err()
}

// Value returns per-request values set via SetValue, falling back to
// the request's own context for everything else.
func (c *Context) Value(key any) any {
	if v, ok := c.values[key]; ok {
		return v
	}
	return c.r.Context().Value(key)
}

// Request returns the underlying HTTP request.
func (c *Context) Request() *http.Request {
	return c.r
}

// ResponseWriter returns the response writer for the request.
func (c *Context) ResponseWriter() http.ResponseWriter {
	return c.w
}

// Param returns the route parameter for key, or "" if not set. For a
// route /users/:id matched against /users/42, Param("id") is "42".
// Catch-all parameters hold the remaining path, which may be empty.
func (c *Context) Param(key string) string {
	return c.params[key]
}

// SetParam sets a route parameter. Parameters derived from the matched
// route are written after middleware runs, so they win over values a
// middleware put under the same name.
func (c *Context) SetParam(key, val string) {
	if c.params == nil {
		c.params = make(map[string]string)
	}
	c.params[key] = val
}

// SetValue stores an arbitrary per-request value retrievable through
// Value. Keys follow the context.Context convention: use unexported
// struct types to avoid collisions between packages.
func (c *Context) SetValue(key, val any) {
	if c.values == nil {
		c.values = make(map[any]any)
	}
	c.values[key] = val
}

// Body reads and returns the request body. The body is consumed on the
// first call and cached, so middleware and handler can both read it.
func (c *Context) Body() ([]byte, error) {
	c.bodyOnce.Do(func() {
		if c.r.Body == nil {
			return
		}
		defer c.r.Body.Close()
		c.body, c.bodyErr = io.ReadAll(c.r.Body)
	})
	return c.body, c.bodyErr
}
