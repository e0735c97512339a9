package middleware

import (
	"strconv"

	"github.com/dmitrymomot/routekit/core/handler"
)

// SecurityHeadersConfig configures browser security response headers.
// Zero-value fields leave the corresponding header unset.
type SecurityHeadersConfig struct {
	// Skip allows bypassing the middleware for specific requests
	Skip func(ctx handler.Context) bool

	// ContentSecurityPolicy restricts resource loading sources
	ContentSecurityPolicy string

	// XFrameOptions controls embedding in frames (DENY, SAMEORIGIN)
	XFrameOptions string

	// XContentTypeOptions prevents MIME sniffing when set to "nosniff"
	XContentTypeOptions string

	// ReferrerPolicy controls Referer header on outgoing navigation
	ReferrerPolicy string

	// PermissionsPolicy restricts browser feature access
	PermissionsPolicy string

	// HSTSMaxAge is the Strict-Transport-Security max-age in seconds
	HSTSMaxAge int

	// HSTSIncludeSubdomains extends HSTS to all subdomains
	HSTSIncludeSubdomains bool

	// HSTSPreload opts into browser preload lists. Requires
	// HSTSIncludeSubdomains and a max-age of at least one year.
	HSTSPreload bool
}

// StrictSecurity is a locked-down preset for APIs and applications
// that serve no third-party content.
var StrictSecurity = SecurityHeadersConfig{
	ContentSecurityPolicy: "default-src 'self'; frame-ancestors 'none'",
	XFrameOptions:         "DENY",
	XContentTypeOptions:   "nosniff",
	ReferrerPolicy:        "no-referrer",
	PermissionsPolicy:     "camera=(), microphone=(), geolocation=()",
	HSTSMaxAge:            31536000,
	HSTSIncludeSubdomains: true,
}

// BalancedSecurity is a preset suitable for typical web applications
// that load same-origin assets and inline styles.
var BalancedSecurity = SecurityHeadersConfig{
	ContentSecurityPolicy: "default-src 'self'; style-src 'self' 'unsafe-inline'; img-src 'self' data:",
	XFrameOptions:         "SAMEORIGIN",
	XContentTypeOptions:   "nosniff",
	ReferrerPolicy:        "strict-origin-when-cross-origin",
	HSTSMaxAge:            31536000,
}

// DevelopmentSecurity keeps MIME sniffing protection but omits HSTS
// and CSP so local HTTP development is not disrupted.
var DevelopmentSecurity = SecurityHeadersConfig{
	XFrameOptions:       "SAMEORIGIN",
	XContentTypeOptions: "nosniff",
	ReferrerPolicy:      "strict-origin-when-cross-origin",
}

// SecurityHeaders returns a middleware applying the BalancedSecurity
// preset.
func SecurityHeaders[C handler.Context]() handler.Middleware[C] {
	return SecurityHeadersWithConfig[C](BalancedSecurity)
}

// SecurityHeadersWithConfig returns a middleware that sets the
// configured security headers on every response.
func SecurityHeadersWithConfig[C handler.Context](cfg SecurityHeadersConfig) handler.Middleware[C] {
	hsts := ""
	if cfg.HSTSMaxAge > 0 {
		hsts = "max-age=" + strconv.Itoa(cfg.HSTSMaxAge)
		if cfg.HSTSIncludeSubdomains {
			hsts += "; includeSubDomains"
		}
		if cfg.HSTSPreload && cfg.HSTSIncludeSubdomains && cfg.HSTSMaxAge >= 31536000 {
			hsts += "; preload"
		}
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			h := ctx.ResponseWriter().Header()
			if cfg.ContentSecurityPolicy != "" {
				h.Set("Content-Security-Policy", cfg.ContentSecurityPolicy)
			}
			if cfg.XFrameOptions != "" {
				h.Set("X-Frame-Options", cfg.XFrameOptions)
			}
			if cfg.XContentTypeOptions != "" {
				h.Set("X-Content-Type-Options", cfg.XContentTypeOptions)
			}
			if cfg.ReferrerPolicy != "" {
				h.Set("Referrer-Policy", cfg.ReferrerPolicy)
			}
			if cfg.PermissionsPolicy != "" {
				h.Set("Permissions-Policy", cfg.PermissionsPolicy)
			}
			if hsts != "" && ctx.Request().TLS != nil {
				h.Set("Strict-Transport-Security", hsts)
			}

			return next(ctx)
		}
	}
}
