package middleware

import (
	"context"
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Default tracer name.
const defaultTracerName = "markup"

// TracingConfig configures the OpenTelemetry middleware.
type TracingConfig struct {
	// TracerName is the name of the tracer (default: "markup").
	TracerName string

	// Provider supplies the tracer. Default: otel.GetTracerProvider().
	Provider trace.TracerProvider

	// Filter determines which pages to trace.
	// If nil, all pages are traced.
	Filter func(name string) bool
}

// TracingOption configures the OpenTelemetry middleware.
type TracingOption func(*TracingConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) TracingOption {
	return func(c *TracingConfig) {
		c.TracerName = name
	}
}

// WithTracerProvider sets the tracer provider.
func WithTracerProvider(tp trace.TracerProvider) TracingOption {
	return func(c *TracingConfig) {
		c.Provider = tp
	}
}

// WithPageFilter sets a filter function for pages.
func WithPageFilter(filter func(name string) bool) TracingOption {
	return func(c *TracingConfig) {
		c.Filter = filter
	}
}

// Tracing creates middleware that starts a span for every render.
//
// The span is named "markup.render <page>", carries the page name and the
// number of bytes written, and records the error of a failed render.
func Tracing(opts ...TracingOption) Middleware {
	config := TracingConfig{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&config)
	}
	if config.Provider == nil {
		config.Provider = otel.GetTracerProvider()
	}
	tracer := config.Provider.Tracer(config.TracerName)

	return func(next Renderer) Renderer {
		return RendererFunc(func(ctx context.Context, name string, w io.Writer, src io.WriterTo) (int64, error) {
			if config.Filter != nil && !config.Filter(name) {
				return next.Render(ctx, name, w, src)
			}

			ctx, span := tracer.Start(ctx, "markup.render "+name,
				trace.WithSpanKind(trace.SpanKindInternal),
				trace.WithAttributes(attribute.String("markup.page", name)),
			)
			defer span.End()

			n, err := next.Render(ctx, name, w, src)
			span.SetAttributes(attribute.Int64("markup.bytes", n))
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			} else {
				span.SetStatus(codes.Ok, "")
			}
			return n, err
		})
	}
}
