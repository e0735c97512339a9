package middleware

import (
	"crypto/subtle"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/routekit/core/handler"
	"github.com/dmitrymomot/routekit/core/response"
)

type basicAuthUserContextKey struct{}

// BasicAuthConfig configures HTTP Basic authentication.
type BasicAuthConfig struct {
	// Skip allows bypassing authentication for specific requests
	Skip func(ctx handler.Context) bool

	// Realm is reported in the WWW-Authenticate challenge
	// (default: "Restricted")
	Realm string

	// Credentials maps usernames to bcrypt password hashes.
	// Ignored when Validator is set.
	Credentials map[string]string

	// Validator overrides Credentials with custom validation
	Validator func(ctx handler.Context, username, password string) bool
}

// BasicAuth returns a Basic authentication middleware backed by a
// username to bcrypt-hash map.
func BasicAuth[C handler.Context](credentials map[string]string) handler.Middleware[C] {
	return BasicAuthWithConfig[C](BasicAuthConfig{Credentials: credentials})
}

// BasicAuthWithConfig returns a Basic authentication middleware with
// custom configuration. The authenticated username is stored in the
// request context and readable via GetBasicAuthUser.
func BasicAuthWithConfig[C handler.Context](cfg BasicAuthConfig) handler.Middleware[C] {
	if cfg.Realm == "" {
		cfg.Realm = "Restricted"
	}
	if cfg.Validator == nil && cfg.Credentials == nil {
		panic("middleware: basic auth requires credentials or a validator")
	}

	validate := cfg.Validator
	if validate == nil {
		// Burned against unknown usernames so they cost the same as
		// wrong passwords.
		dummyHash, _ := bcrypt.GenerateFromPassword([]byte("routekit"), bcrypt.DefaultCost)
		validate = func(_ handler.Context, username, password string) bool {
			hash, ok := cfg.Credentials[username]
			if !ok {
				_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
				return false
			}
			return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
		}
	}

	challenge := `Basic realm="` + cfg.Realm + `", charset="UTF-8"`

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			username, password, ok := ctx.Request().BasicAuth()
			if !ok || !validate(ctx, username, password) {
				return func(w http.ResponseWriter, r *http.Request) error {
					w.Header().Set("WWW-Authenticate", challenge)
					return response.ErrUnauthorized
				}
			}

			ctx.SetValue(basicAuthUserContextKey{}, username)
			return next(ctx)
		}
	}
}

// GetBasicAuthUser extracts the authenticated username from the
// context. Returns an empty string if authentication did not run.
func GetBasicAuthUser(ctx handler.Context) string {
	if username, ok := ctx.Value(basicAuthUserContextKey{}).(string); ok {
		return username
	}
	return ""
}

// SecureCompare performs constant-time string comparison for use in
// custom Validator implementations handling plaintext secrets.
func SecureCompare(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
