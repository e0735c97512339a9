package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/dmitrymomot/routekit/core/handler"
	"github.com/dmitrymomot/routekit/core/router"
)

// MetricsConfig configures the Prometheus metrics middleware.
type MetricsConfig struct {
	// Skip allows bypassing metrics collection for specific requests
	Skip func(ctx handler.Context) bool

	// Namespace is the metrics namespace (default: "routekit")
	Namespace string

	// Subsystem is the metrics subsystem
	Subsystem string

	// ConstLabels are constant labels added to all metrics
	ConstLabels prometheus.Labels

	// Buckets are the request duration histogram buckets
	// (default: prometheus.DefBuckets)
	Buckets []float64

	// Registry is the Prometheus registerer
	// (default: prometheus.DefaultRegisterer)
	Registry prometheus.Registerer

	// PathLabel derives the path label from the request. Override to
	// collapse parameterized paths and keep label cardinality bounded.
	// Defaults to the raw URL path.
	PathLabel func(ctx handler.Context) string
}

type httpMetrics struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	requestsInFlight prometheus.Gauge
	responseSize     *prometheus.HistogramVec
}

func newHTTPMetrics(cfg MetricsConfig) *httpMetrics {
	factory := promauto.With(cfg.Registry)

	return &httpMetrics{
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "requests_total",
			Help:        "Total number of HTTP requests by method, path and status",
			ConstLabels: cfg.ConstLabels,
		}, []string{"method", "path", "status"}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "request_duration_seconds",
			Help:        "HTTP request processing duration in seconds",
			ConstLabels: cfg.ConstLabels,
			Buckets:     cfg.Buckets,
		}, []string{"method", "path"}),

		requestsInFlight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "requests_in_flight",
			Help:        "Number of HTTP requests currently being served",
			ConstLabels: cfg.ConstLabels,
		}),

		responseSize: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "response_size_bytes",
			Help:        "HTTP response body size in bytes",
			ConstLabels: cfg.ConstLabels,
			Buckets:     []float64{256, 1024, 4096, 16384, 65536, 262144, 1048576},
		}, []string{"method", "path"}),
	}
}

// Metrics returns a Prometheus metrics middleware with defaults,
// registering collectors against prometheus.DefaultRegisterer.
//
// Expose the scrape endpoint separately:
//
//	http.Handle("/metrics", promhttp.Handler())
func Metrics[C handler.Context]() handler.Middleware[C] {
	return MetricsWithConfig[C](MetricsConfig{})
}

// MetricsWithConfig returns a Prometheus metrics middleware with
// custom configuration. Collectors are registered once per middleware
// instance; creating two instances against the same registry panics on
// duplicate registration, so construct it once and share it.
func MetricsWithConfig[C handler.Context](cfg MetricsConfig) handler.Middleware[C] {
	if cfg.Namespace == "" {
		cfg.Namespace = "routekit"
	}
	if cfg.Buckets == nil {
		cfg.Buckets = prometheus.DefBuckets
	}
	if cfg.Registry == nil {
		cfg.Registry = prometheus.DefaultRegisterer
	}
	if cfg.PathLabel == nil {
		cfg.PathLabel = func(ctx handler.Context) string {
			if path := ctx.Request().URL.Path; path != "" {
				return path
			}
			return "/"
		}
	}

	m := newHTTPMetrics(cfg)

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			method := ctx.Request().Method
			path := cfg.PathLabel(ctx)

			m.requestsInFlight.Inc()
			start := time.Now()

			resp := next(ctx)

			return func(w http.ResponseWriter, r *http.Request) error {
				mw := &metricsWriter{ResponseWriter: w, statusCode: http.StatusOK}
				err := resp(mw, r)
				if err != nil && !mw.written {
					mw.statusCode = http.StatusInternalServerError
					var sc interface{ StatusCode() int }
					switch {
					case errors.As(err, &sc):
						mw.statusCode = sc.StatusCode()
					case errors.Is(err, router.ErrNotFound):
						mw.statusCode = http.StatusNotFound
					}
				}

				m.requestsInFlight.Dec()
				m.requestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
				m.requestsTotal.WithLabelValues(method, path, strconv.Itoa(mw.statusCode)).Inc()
				m.responseSize.WithLabelValues(method, path).Observe(float64(mw.size))
				return err
			}
		}
	}
}

type metricsWriter struct {
	http.ResponseWriter
	statusCode int
	size       int
	written    bool
}

func (w *metricsWriter) WriteHeader(statusCode int) {
	if !w.written {
		w.statusCode = statusCode
		w.written = true
	}
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *metricsWriter) Write(b []byte) (int, error) {
	if !w.written {
		w.written = true
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}
