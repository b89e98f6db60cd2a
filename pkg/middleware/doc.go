// Package middleware instruments rendering.
//
// A Renderer writes a named page into an io.Writer. Middleware wraps a
// Renderer to observe each render without the page knowing about it:
//
//   - Metrics records Prometheus counters and histograms per page
//   - Tracing starts an OpenTelemetry span per render
//   - Logging writes a structured slog record per render
//
// Compose them with Chain. The first middleware is the outermost:
//
//	m := middleware.NewMetrics(middleware.WithNamespace("site"))
//	r := middleware.Chain(middleware.Direct,
//	    middleware.Logging(logger),
//	    middleware.Tracing(),
//	    m.Middleware(),
//	)
//	n, err := r.Render(ctx, "home", w, page)
//
// Expose the metrics with promhttp:
//
//	http.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
package middleware
