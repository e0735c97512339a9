package server

import "time"

// Conservative defaults for internet-facing listeners. Each one is
// overridable through Config env vars or the matching option.
const (
	// DefaultReadTimeout bounds reading a full request, header and body.
	DefaultReadTimeout = 15 * time.Second

	// DefaultWriteTimeout bounds writing a full response.
	DefaultWriteTimeout = 15 * time.Second

	// DefaultIdleTimeout closes keep-alive connections with no activity.
	DefaultIdleTimeout = 60 * time.Second

	// DefaultShutdownTimeout is the drain window Stop grants in-flight
	// requests before giving up.
	DefaultShutdownTimeout = 30 * time.Second

	// DefaultMaxHeaderBytes caps request header size at 1 MB.
	DefaultMaxHeaderBytes = 1 << 20
)
