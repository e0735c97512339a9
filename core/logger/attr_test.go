package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/routekit/core/logger"
)

func TestError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}), "nil error yields the empty attr")
}

func TestGroup(t *testing.T) {
	t.Parallel()

	attr := logger.Group("req", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "req", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())

	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestTimingAttrs(t *testing.T) {
	t.Parallel()

	d := 5 * time.Second
	attr := logger.Duration(d)
	require.Equal(t, "duration", attr.Key)
	assert.Equal(t, d, attr.Value.Duration())

	attr = logger.Latency(100 * time.Millisecond)
	require.Equal(t, "latency", attr.Key)
	assert.Equal(t, 100*time.Millisecond, attr.Value.Duration())

	start := time.Now().Add(-500 * time.Millisecond)
	attr = logger.Elapsed(start)
	require.Equal(t, "elapsed", attr.Key)
	assert.GreaterOrEqual(t, attr.Value.Duration(), 500*time.Millisecond)
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	attr := logger.RequestID("req-123")
	require.Equal(t, "request_id", attr.Key)
	assert.Equal(t, "req-123", attr.Value.String())

	empty := logger.RequestID("")
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestHTTPAttrs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		attr      slog.Attr
		wantKey   string
		wantValue string
	}{
		{"method", logger.Method("GET"), "method", "GET"},
		{"path", logger.Path("/api/users"), "path", "/api/users"},
		{"client ip", logger.ClientIP("192.0.2.1"), "client_ip", "192.0.2.1"},
		{"user agent", logger.UserAgent("Mozilla/5.0"), "user_agent", "Mozilla/5.0"},
		{"remote addr", logger.RemoteAddr("192.0.2.1:4242"), "remote_addr", "192.0.2.1:4242"},
		{"query", logger.Query("page=2"), "query", "page=2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.wantKey, tt.attr.Key)
			assert.Equal(t, tt.wantValue, tt.attr.Value.String())
		})
	}
}

func TestNumericAttrs(t *testing.T) {
	t.Parallel()

	attr := logger.StatusCode(200)
	require.Equal(t, "status_code", attr.Key)
	assert.Equal(t, int64(200), attr.Value.Int64())

	attr = logger.BytesOut(2048)
	require.Equal(t, "bytes_out", attr.Key)
	assert.Equal(t, int64(2048), attr.Value.Int64())
}

func TestMetadataAttrs(t *testing.T) {
	t.Parallel()

	attr := logger.Component("http")
	require.Equal(t, "component", attr.Key)
	assert.Equal(t, "http", attr.Value.String())

	attr = logger.Event("request_completed")
	require.Equal(t, "event", attr.Key)
	assert.Equal(t, "request_completed", attr.Value.String())
}

func TestKey(t *testing.T) {
	t.Parallel()

	attr := logger.Key("custom", "value")
	require.Equal(t, "custom", attr.Key)
	assert.Equal(t, "value", attr.Value.Any())

	type payload struct {
		Name string
	}
	p := payload{Name: "test"}
	attr = logger.Key("data", p)
	require.Equal(t, "data", attr.Key)
	assert.Equal(t, p, attr.Value.Any())

	empty := logger.Key("key", nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}
