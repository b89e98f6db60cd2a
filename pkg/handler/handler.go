package handler

import (
	"log/slog"
	"net/http"

	"github.com/vango-dev/markup/pkg/markup"
	"github.com/vango-dev/markup/pkg/middleware"
)

// ContentTypeHTML is the default Content-Type of served pages.
const ContentTypeHTML = "text/html; charset=utf-8"

// Options configures Handler and NewRouter.
type Options struct {
	// Renderer renders pages. Default: middleware.Direct.
	Renderer middleware.Renderer

	// Logger receives render failures. Default: slog.Default().
	Logger *slog.Logger

	// ContentType overrides ContentTypeHTML.
	ContentType string
}

func (o Options) withDefaults() Options {
	if o.Renderer == nil {
		o.Renderer = middleware.Direct
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	if o.ContentType == "" {
		o.ContentType = ContentTypeHTML
	}
	return o
}

// Handler returns an http.Handler that renders m as the page called name.
//
// If rendering fails before anything reached the client, the response is a
// 500. Once bytes are out the status is fixed, so the failure is only logged.
func Handler(name string, m markup.Markup, opts Options) http.Handler {
	opts = opts.withDefaults()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		servePage(w, r, name, m, opts)
	})
}

func servePage(w http.ResponseWriter, r *http.Request, name string, m markup.Markup, opts Options) {
	w.Header().Set("Content-Type", opts.ContentType)
	if r.Method == http.MethodHead {
		w.WriteHeader(http.StatusOK)
		return
	}

	n, err := opts.Renderer.Render(r.Context(), name, w, m)
	if err == nil {
		return
	}

	opts.Logger.ErrorContext(r.Context(), "page render failed",
		slog.String("page", name),
		slog.String("path", r.URL.Path),
		slog.Int64("written", n),
		slog.Any("error", err),
	)
	if n == 0 {
		w.Header().Del("Content-Type")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
