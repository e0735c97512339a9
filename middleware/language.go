package middleware

import (
	"golang.org/x/text/language"

	"github.com/dmitrymomot/routekit/core/handler"
)

type languageContextKey struct{}

// LanguageConfig configures Accept-Language negotiation.
type LanguageConfig struct {
	// Skip allows bypassing negotiation for specific requests
	Skip func(ctx handler.Context) bool

	// Supported lists the languages the application serves. The first
	// entry is the fallback when negotiation fails.
	Supported []language.Tag

	// QueryParam optionally checks a query parameter (e.g. "lang")
	// before the Accept-Language header
	QueryParam string

	// SetHeader adds a Content-Language response header with the
	// negotiated tag
	SetHeader bool
}

// Language returns a middleware that negotiates the request language
// against the supported list and stores the result in the context.
func Language[C handler.Context](supported ...language.Tag) handler.Middleware[C] {
	return LanguageWithConfig[C](LanguageConfig{Supported: supported, SetHeader: true})
}

// LanguageWithConfig returns a language negotiation middleware with
// custom configuration.
func LanguageWithConfig[C handler.Context](cfg LanguageConfig) handler.Middleware[C] {
	if len(cfg.Supported) == 0 {
		cfg.Supported = []language.Tag{language.English}
	}
	matcher := language.NewMatcher(cfg.Supported)

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			req := ctx.Request()
			accept := req.Header.Get("Accept-Language")
			if cfg.QueryParam != "" {
				if v := req.URL.Query().Get(cfg.QueryParam); v != "" {
					accept = v
				}
			}

			// Matcher falls back to Supported[0] on unparseable or
			// empty input. The index maps the match back to the exact
			// supported tag, stripping any inferred extensions.
			tags, _, _ := language.ParseAcceptLanguage(accept)
			_, idx, _ := matcher.Match(tags...)
			tag := cfg.Supported[idx]

			ctx.SetValue(languageContextKey{}, tag)
			if cfg.SetHeader {
				ctx.ResponseWriter().Header().Set("Content-Language", tag.String())
			}
			return next(ctx)
		}
	}
}

// GetLanguage extracts the negotiated language from the context.
// Returns language.Und if the middleware did not run.
func GetLanguage(ctx handler.Context) language.Tag {
	if tag, ok := ctx.Value(languageContextKey{}).(language.Tag); ok {
		return tag
	}
	return language.Und
}
