// Package response provides constructors for the Response values
// returned by handlers: plain text, HTML, JSON, redirects, raw bytes,
// and structured HTTP errors, plus ready-made error handlers for the
// dispatch engine.
//
// A Response writes itself to the client when the engine invokes it;
// returning an error from a Response defers rendering to the engine's
// error handler:
//
//	e.Get("/users/:id", func(ctx *router.Context) handler.Response {
//		user, err := store.Find(ctx.Param("id"))
//		if err != nil {
//			return response.Error(response.ErrNotFound)
//		}
//		return response.JSON(user)
//	})
//
// Pair the JSON constructors with JSONErrorHandler for a uniform API
// surface:
//
//	e := router.New(router.WithErrorHandler(response.JSONErrorHandler[*router.Context]))
package response
