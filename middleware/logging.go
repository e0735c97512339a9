package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/routekit/core/handler"
	"github.com/dmitrymomot/routekit/core/logger"
	"github.com/dmitrymomot/routekit/core/router"
)

// LoggingConfig configures the request/response logging middleware.
type LoggingConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx handler.Context) bool

	// Logger is the slog logger to use (default: slog.Default())
	Logger *slog.Logger

	// LogLevel for successful requests (default: slog.LevelInfo).
	// 4xx responses log at warn, 5xx at error regardless.
	LogLevel slog.Level

	// SlowRequestThreshold promotes slow requests to warn level (default: 5s)
	SlowRequestThreshold time.Duration

	// Component name for structured logging (default: "http")
	Component string
}

// Logging creates a request logging middleware with default
// configuration: one line per completed request at info level.
func Logging[C handler.Context]() handler.Middleware[C] {
	return LoggingWithConfig[C](LoggingConfig{})
}

// LoggingWithLogger creates a logging middleware with a custom logger.
func LoggingWithLogger[C handler.Context](log *slog.Logger) handler.Middleware[C] {
	return LoggingWithConfig[C](LoggingConfig{Logger: log})
}

// LoggingWithConfig creates a request logging middleware with custom
// configuration. The status code and response size are captured by
// wrapping the writer at render time, so the log line reflects what
// actually went to the client, including error handler output that
// bubbled up past this middleware.
func LoggingWithConfig[C handler.Context](cfg LoggingConfig) handler.Middleware[C] {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.LogLevel == 0 {
		cfg.LogLevel = slog.LevelInfo
	}
	if cfg.SlowRequestThreshold <= 0 {
		cfg.SlowRequestThreshold = 5 * time.Second
	}
	if cfg.Component == "" {
		cfg.Component = "http"
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			start := time.Now()
			req := ctx.Request()
			requestID, _ := GetRequestID(ctx)

			response := next(ctx)

			return func(w http.ResponseWriter, r *http.Request) error {
				wrapped := &loggingWriter{ResponseWriter: w, statusCode: http.StatusOK}
				err := response(wrapped, r)
				elapsed := time.Since(start)

				// Errors surfaced without a write are rendered by the
				// engine's error handler after this point; derive the
				// status they will produce so the log line matches.
				if err != nil && !wrapped.written {
					wrapped.statusCode = http.StatusInternalServerError
					var sc interface{ StatusCode() int }
					switch {
					case errors.As(err, &sc):
						wrapped.statusCode = sc.StatusCode()
					case errors.Is(err, router.ErrNotFound):
						wrapped.statusCode = http.StatusNotFound
					}
				}

				attrs := []slog.Attr{
					logger.Component(cfg.Component),
					logger.Method(req.Method),
					logger.Path(req.URL.Path),
					logger.StatusCode(wrapped.statusCode),
					logger.BytesOut(wrapped.size),
					logger.Duration(elapsed),
					logger.RemoteAddr(req.RemoteAddr),
					logger.RequestID(requestID),
				}
				if req.URL.RawQuery != "" {
					attrs = append(attrs, logger.Query(req.URL.RawQuery))
				}

				level := cfg.LogLevel
				switch {
				case wrapped.statusCode >= 500:
					level = slog.LevelError
					attrs = append(attrs, logger.Error(err))
				case wrapped.statusCode >= 400:
					level = slog.LevelWarn
				case elapsed > cfg.SlowRequestThreshold:
					level = slog.LevelWarn
					attrs = append(attrs, slog.Bool("slow_request", true))
				}

				cfg.Logger.LogAttrs(req.Context(), level, "request completed", attrs...)
				return err
			}
		}
	}
}

// loggingWriter captures the status code and body size on the way out.
type loggingWriter struct {
	http.ResponseWriter
	statusCode int
	size       int64
	written    bool
}

func (lw *loggingWriter) WriteHeader(statusCode int) {
	if !lw.written {
		lw.statusCode = statusCode
		lw.written = true
	}
	lw.ResponseWriter.WriteHeader(statusCode)
}

func (lw *loggingWriter) Write(b []byte) (int, error) {
	if !lw.written {
		lw.statusCode = http.StatusOK
		lw.written = true
	}
	n, err := lw.ResponseWriter.Write(b)
	lw.size += int64(n)
	return n, err
}
