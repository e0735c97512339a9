package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/routekit/core/handler"
	"github.com/dmitrymomot/routekit/core/router"
)

// echoParam returns a handler that writes the named route parameter.
func echoParam(name string) handler.HandlerFunc[*router.Context] {
	return func(ctx *router.Context) handler.Response {
		return func(w http.ResponseWriter, r *http.Request) error {
			w.Write([]byte(ctx.Param(name)))
			return nil
		}
	}
}

// textHandler returns a handler that writes a fixed body.
func textHandler(body string) handler.HandlerFunc[*router.Context] {
	return func(ctx *router.Context) handler.Response {
		return func(w http.ResponseWriter, r *http.Request) error {
			w.Write([]byte(body))
			return nil
		}
	}
}

func get(t *testing.T, e *router.Engine[*router.Context], path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	return w
}

func TestLiteralRoutes(t *testing.T) {
	t.Parallel()

	e := router.New[*router.Context]()
	e.Get("/", textHandler("root"))
	e.Get("/about", textHandler("about"))
	e.Get("/about/team", textHandler("team"))

	assert.Equal(t, "root", get(t, e, "/").Body.String())
	assert.Equal(t, "about", get(t, e, "/about").Body.String())
	assert.Equal(t, "team", get(t, e, "/about/team").Body.String())

	// Literal patterns match only their exact path.
	assert.Equal(t, http.StatusNotFound, get(t, e, "/abou").Code)
	assert.Equal(t, http.StatusNotFound, get(t, e, "/about/team/extra").Code)
	assert.Equal(t, http.StatusNotFound, get(t, e, "/team").Code)
}

func TestTrailingSlashEquivalence(t *testing.T) {
	t.Parallel()

	e := router.New[*router.Context]()
	e.Get("/users", textHandler("users"))

	// Empty segments are dropped, so these are the same path.
	assert.Equal(t, "users", get(t, e, "/users").Body.String())
	assert.Equal(t, "users", get(t, e, "/users/").Body.String())
	assert.Equal(t, "users", get(t, e, "//users//").Body.String())
}

func TestParamRoutes(t *testing.T) {
	t.Parallel()

	e := router.New[*router.Context]()
	e.Get("/p/:lang/doc", echoParam("lang"))
	e.Get("/users/:id", echoParam("id"))

	assert.Equal(t, "go", get(t, e, "/p/go/doc").Body.String())
	assert.Equal(t, "rust", get(t, e, "/p/rust/doc").Body.String())
	assert.Equal(t, "42", get(t, e, "/users/42").Body.String())

	// A param binds exactly one segment.
	assert.Equal(t, http.StatusNotFound, get(t, e, "/p/go").Code)
	assert.Equal(t, http.StatusNotFound, get(t, e, "/p/go/doc/extra").Code)
}

func TestMultipleParams(t *testing.T) {
	t.Parallel()

	e := router.New[*router.Context]()
	e.Get("/users/:userID/posts/:postID", func(ctx *router.Context) handler.Response {
		return func(w http.ResponseWriter, r *http.Request) error {
			w.Write([]byte(ctx.Param("userID") + ":" + ctx.Param("postID")))
			return nil
		}
	})

	assert.Equal(t, "7:99", get(t, e, "/users/7/posts/99").Body.String())
}

func TestCatchAllRoutes(t *testing.T) {
	t.Parallel()

	e := router.New[*router.Context]()
	e.Get("/static/*filepath", echoParam("filepath"))

	assert.Equal(t, "app.css", get(t, e, "/static/app.css").Body.String())
	assert.Equal(t, "css/app.css", get(t, e, "/static/css/app.css").Body.String())
	assert.Equal(t, "a/b/c/d", get(t, e, "/static/a/b/c/d").Body.String())

	// A catch-all also matches zero remaining segments.
	assert.Equal(t, http.StatusOK, get(t, e, "/static").Code)
	assert.Equal(t, "", get(t, e, "/static").Body.String())
	assert.Equal(t, "", get(t, e, "/static/").Body.String())
}

func TestBacktracking(t *testing.T) {
	t.Parallel()

	e := router.New[*router.Context]()
	// /files/special/meta only exists under the literal child; a path
	// like /files/special/data must fall back to the param sibling.
	e.Get("/files/special/meta", textHandler("meta"))
	e.Get("/files/:name/data", echoParam("name"))

	assert.Equal(t, "meta", get(t, e, "/files/special/meta").Body.String())
	assert.Equal(t, "special", get(t, e, "/files/special/data").Body.String())
	assert.Equal(t, "other", get(t, e, "/files/other/data").Body.String())
}

func TestRegistrationOrderTieBreak(t *testing.T) {
	t.Parallel()

	// Candidates at the same depth are tried in registration order,
	// so a param registered first shadows a later literal sibling.
	e := router.New[*router.Context]()
	e.Get("/x/:name", func(ctx *router.Context) handler.Response {
		return func(w http.ResponseWriter, r *http.Request) error {
			w.Write([]byte("param:" + ctx.Param("name")))
			return nil
		}
	})
	e.Get("/x/about", textHandler("literal"))

	assert.Equal(t, "param:about", get(t, e, "/x/about").Body.String())

	// Registered the other way around, the literal wins for its path.
	e2 := router.New[*router.Context]()
	e2.Get("/x/about", textHandler("literal"))
	e2.Get("/x/:name", echoParam("name"))

	assert.Equal(t, "literal", get(t, e2, "/x/about").Body.String())
	assert.Equal(t, "other", get(t, e2, "/x/other").Body.String())
}

func TestCatchAllBesideParamSibling(t *testing.T) {
	t.Parallel()

	t.Run("param registered first", func(t *testing.T) {
		e := router.New[*router.Context]()
		e.Get("/a/:x/end", echoParam("x"))
		e.Get("/a/*y", echoParam("y"))

		// The catch-all must stay a distinct sibling and keep
		// consuming every remaining segment.
		assert.Equal(t, "b/c", get(t, e, "/a/b/c").Body.String())
		assert.Equal(t, "b", get(t, e, "/a/b/end").Body.String())
		assert.Equal(t, "", get(t, e, "/a").Body.String())
	})

	t.Run("catch-all registered first", func(t *testing.T) {
		e := router.New[*router.Context]()
		e.Get("/a/*y", echoParam("y"))
		e.Get("/a/:x/end", echoParam("x"))

		assert.Equal(t, "b/c", get(t, e, "/a/b/c").Body.String())
		assert.Equal(t, "b/end", get(t, e, "/a/b/end").Body.String())
	})
}

func TestParamNamesCollapse(t *testing.T) {
	t.Parallel()

	// Params at the same depth share one trie node; each terminal
	// pattern keeps its own bindings, so names stay per-route.
	e := router.New[*router.Context]()
	e.Get("/v/:id/meta", echoParam("id"))
	e.Get("/v/:slug/body", echoParam("slug"))

	assert.Equal(t, "42", get(t, e, "/v/42/meta").Body.String())
	assert.Equal(t, "hello", get(t, e, "/v/hello/body").Body.String())
}

func TestDuplicateRegistrationOverwrites(t *testing.T) {
	t.Parallel()

	e := router.New[*router.Context]()
	e.Get("/dup", textHandler("first"))
	e.Get("/dup", textHandler("second"))

	assert.Equal(t, "second", get(t, e, "/dup").Body.String())
}

func TestIntermediateNodeIsNotARoute(t *testing.T) {
	t.Parallel()

	e := router.New[*router.Context]()
	e.Get("/a/b/c", textHandler("deep"))

	// /a and /a/b exist as trie nodes but are not registered routes.
	assert.Equal(t, http.StatusNotFound, get(t, e, "/a").Code)
	assert.Equal(t, http.StatusNotFound, get(t, e, "/a/b").Code)
	assert.Equal(t, "deep", get(t, e, "/a/b/c").Body.String())
}

func TestMethodIsolation(t *testing.T) {
	t.Parallel()

	e := router.New[*router.Context]()
	e.Get("/resource", textHandler("get"))
	e.Post("/resource", textHandler("post"))

	assert.Equal(t, "get", get(t, e, "/resource").Body.String())

	req := httptest.NewRequest(http.MethodPost, "/resource", nil)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	assert.Equal(t, "post", w.Body.String())

	// No DELETE routes registered at all.
	req = httptest.NewRequest(http.MethodDelete, "/resource", nil)
	w = httptest.NewRecorder()
	e.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInvalidPatternPanics(t *testing.T) {
	t.Parallel()

	e := router.New[*router.Context]()
	assert.Panics(t, func() {
		e.Get("no-leading-slash", textHandler("x"))
	})
}
