// Package clientip extracts real client IP addresses from HTTP
// requests behind proxies, load balancers, and CDNs.
//
// Headers are checked in priority order (CF-Connecting-IP,
// DO-Connecting-IP, X-Forwarded-For leftmost entry, X-Real-IP)
// before falling back to the connection's RemoteAddr. Every candidate
// is parsed and normalized; unspecified addresses are rejected.
//
//	ip := clientip.GetIP(r)
//	result, err := limiter.Allow(r.Context(), ip)
//
// GetIP never panics and always returns a non-empty string, which
// makes it safe to use directly as a rate limit or logging key.
package clientip
