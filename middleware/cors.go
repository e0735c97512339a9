package middleware

import (
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/dmitrymomot/routekit/core/handler"
)

// CORSConfig configures Cross-Origin Resource Sharing policies.
type CORSConfig struct {
	// Skip allows bypassing CORS handling for specific requests
	Skip func(ctx handler.Context) bool

	// AllowOrigins lists allowed origins; empty or "*" allows all.
	AllowOrigins []string

	// AllowMethods lists allowed HTTP methods
	// (default: GET, HEAD, PUT, PATCH, POST, DELETE)
	AllowMethods []string

	// AllowHeaders lists allowed request headers
	AllowHeaders []string

	// ExposeHeaders lists headers exposed to the client
	ExposeHeaders []string

	// AllowCredentials permits cookies and authorization headers.
	// Incompatible with wildcard origins.
	AllowCredentials bool

	// MaxAge is the preflight cache lifetime in seconds
	MaxAge int

	// AllowOriginFunc overrides AllowOrigins with custom validation.
	// Returns the origin value to send and whether it is allowed.
	AllowOriginFunc func(origin string) (string, bool)
}

// CORS returns a CORS middleware allowing all origins. Fine for
// development; production should use CORSWithConfig with an explicit
// origin list.
func CORS[C handler.Context]() handler.Middleware[C] {
	return CORSWithConfig[C](CORSConfig{})
}

// CORSWithConfig returns a CORS middleware with custom configuration.
// Preflight OPTIONS requests are answered directly and never reach the
// router; actual requests get the response headers appended on the way
// out.
func CORSWithConfig[C handler.Context](cfg CORSConfig) handler.Middleware[C] {
	if len(cfg.AllowMethods) == 0 {
		cfg.AllowMethods = []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPut,
			http.MethodPatch,
			http.MethodPost,
			http.MethodDelete,
		}
	}
	if len(cfg.AllowHeaders) == 0 {
		cfg.AllowHeaders = []string{
			"Accept",
			"Accept-Language",
			"Content-Language",
			"Content-Type",
			"Origin",
			"Authorization",
			"X-Request-ID",
		}
	}

	allowMethods := strings.Join(cfg.AllowMethods, ",")
	allowHeaders := strings.Join(cfg.AllowHeaders, ",")
	exposeHeaders := strings.Join(cfg.ExposeHeaders, ",")

	allowedOrigins := make(map[string]bool, len(cfg.AllowOrigins))
	for _, origin := range cfg.AllowOrigins {
		allowedOrigins[origin] = true
	}

	resolveOrigin := func(origin string) (string, bool) {
		if cfg.AllowOriginFunc != nil {
			return cfg.AllowOriginFunc(origin)
		}
		if len(cfg.AllowOrigins) == 0 || allowedOrigins["*"] {
			return "*", true
		}
		if allowedOrigins[origin] {
			return origin, true
		}
		return "", false
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			req := ctx.Request()
			origin := req.Header.Get("Origin")
			allowedOrigin, allowed := resolveOrigin(origin)

			// Preflight: OPTIONS plus Access-Control-Request-Method.
			if req.Method == http.MethodOptions && req.Header.Get("Access-Control-Request-Method") != "" {
				requestMethod := req.Header.Get("Access-Control-Request-Method")
				if !allowed || !slices.Contains(cfg.AllowMethods, requestMethod) {
					return func(w http.ResponseWriter, r *http.Request) error {
						w.WriteHeader(http.StatusForbidden)
						return nil
					}
				}

				return func(w http.ResponseWriter, r *http.Request) error {
					h := w.Header()
					h.Set("Access-Control-Allow-Origin", allowedOrigin)
					h.Set("Access-Control-Allow-Methods", allowMethods)
					h.Set("Access-Control-Allow-Headers", allowHeaders)
					if cfg.AllowCredentials && allowedOrigin != "*" {
						h.Set("Access-Control-Allow-Credentials", "true")
					}
					if cfg.MaxAge > 0 {
						h.Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
					}
					h.Add("Vary", "Origin")
					w.WriteHeader(http.StatusNoContent)
					return nil
				}
			}

			resp := next(ctx)

			if !allowed {
				return resp
			}

			return func(w http.ResponseWriter, r *http.Request) error {
				h := w.Header()
				h.Set("Access-Control-Allow-Origin", allowedOrigin)
				if cfg.AllowCredentials && allowedOrigin != "*" {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
				if exposeHeaders != "" {
					h.Set("Access-Control-Expose-Headers", exposeHeaders)
				}
				h.Add("Vary", "Origin")
				return resp(w, r)
			}
		}
	}
}
