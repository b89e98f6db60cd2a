package middleware

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the Prometheus metrics middleware.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "markup").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for render duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus metrics middleware.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the duration histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "markup",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the render metrics registered with one registry.
//
// Metrics collected:
//   - markup_renders_total: renders by page and status
//   - markup_render_duration_seconds: render duration by page
//   - markup_render_bytes: bytes accepted by the destination, by page
//   - markup_render_errors_total: failed renders by page and error type
//   - markup_renders_in_flight: renders currently running
type Metrics struct {
	rendersTotal   *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
	renderBytes    *prometheus.HistogramVec
	renderErrors   *prometheus.CounterVec
	inFlight       prometheus.Gauge
}

// NewMetrics creates and registers the render metrics.
// It panics if they are already registered with the chosen registry.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		rendersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "renders_total",
			Help:        "Total number of page renders",
			ConstLabels: config.ConstLabels,
		}, []string{"page", "status"}),

		renderDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_duration_seconds",
			Help:        "Render duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"page"}),

		renderBytes: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_bytes",
			Help:        "Bytes written per render",
			ConstLabels: config.ConstLabels,
			Buckets:     prometheus.ExponentialBuckets(256, 4, 8), // 256B to 4MB
		}, []string{"page"}),

		renderErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_errors_total",
			Help:        "Total number of failed renders",
			ConstLabels: config.ConstLabels,
		}, []string{"page", "error_type"}),

		inFlight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "renders_in_flight",
			Help:        "Number of renders currently running",
			ConstLabels: config.ConstLabels,
		}),
	}
}

// Middleware returns middleware recording into m.
func (m *Metrics) Middleware() Middleware {
	return func(next Renderer) Renderer {
		return RendererFunc(func(ctx context.Context, name string, w io.Writer, src io.WriterTo) (int64, error) {
			m.inFlight.Inc()
			defer m.inFlight.Dec()

			start := time.Now()
			n, err := next.Render(ctx, name, w, src)
			m.renderDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
			m.renderBytes.WithLabelValues(name).Observe(float64(n))

			status := "success"
			if err != nil {
				status = "error"
				m.renderErrors.WithLabelValues(name, categorizeError(err)).Inc()
			}
			m.rendersTotal.WithLabelValues(name, status).Inc()
			return n, err
		})
	}
}

// categorizeError maps an error to a low-cardinality label.
func categorizeError(err error) string {
	switch {
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, os.ErrDeadlineExceeded):
		return "timeout"
	case errors.Is(err, syscall.EPIPE), errors.Is(err, syscall.ECONNRESET), errors.Is(err, io.ErrClosedPipe):
		return "disconnected"
	case errors.Is(err, io.ErrShortWrite):
		return "short_write"
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "timeout"):
		return "timeout"
	case strings.Contains(msg, "broken pipe"), strings.Contains(msg, "connection reset"):
		return "disconnected"
	default:
		return "internal"
	}
}
