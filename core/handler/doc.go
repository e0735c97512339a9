// Package handler defines the core abstractions for HTTP request
// processing: type-safe handlers over custom context types, composable
// middleware, and a clean split between response generation and rendering.
//
// A handler produces a Response value; rendering it to the wire happens
// later, in the dispatch layer:
//
//	func hello(ctx handler.Context) handler.Response {
//		name := ctx.Param("name")
//		return func(w http.ResponseWriter, r *http.Request) error {
//			_, err := fmt.Fprintf(w, "Hello, %s!", name)
//			return err
//		}
//	}
//
// Middleware composes handlers; the wrapped handler is the continuation
// for everything after that point in the chain:
//
//	func timing[C handler.Context]() handler.Middleware[C] {
//		return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
//			return func(ctx C) handler.Response {
//				start := time.Now()
//				resp := next(ctx)
//				log.Printf("took %s", time.Since(start))
//				return resp
//			}
//		}
//	}
//
// Custom context types implement Context and flow through the generic
// type parameter, so application handlers get typed access to
// request-scoped state without assertions.
package handler
