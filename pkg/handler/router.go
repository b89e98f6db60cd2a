package handler

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vango-dev/markup/pkg/markup"
	"github.com/vango-dev/markup/pkg/middleware"
	"github.com/vango-dev/markup/pkg/render"
	"github.com/vango-dev/markup/pkg/sink"
)

// RouterConfig configures NewRouter.
type RouterConfig struct {
	Options

	// MetricsPath mounts Prometheus metrics when non-empty.
	MetricsPath string

	// Gatherer is served on MetricsPath. Default: prometheus.DefaultGatherer.
	Gatherer prometheus.Gatherer

	// Upgrader upgrades /live requests. The zero value only accepts
	// same-origin requests.
	Upgrader websocket.Upgrader
}

// NewRouter returns a chi router serving the pages in reg.
func NewRouter(reg *Registry, cfg RouterConfig) chi.Router {
	cfg.Options = cfg.Options.withDefaults()
	if cfg.Gatherer == nil {
		cfg.Gatherer = prometheus.DefaultGatherer
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		servePage(w, req, "index", indexPage(reg.Names()), cfg.Options)
	})

	r.Get("/pages/{name}", func(w http.ResponseWriter, req *http.Request) {
		name := chi.URLParam(req, "name")
		m, ok := reg.Lookup(name)
		if !ok {
			http.NotFound(w, req)
			return
		}
		servePage(w, req, name, m, cfg.Options)
	})

	r.Get("/live/{name}", func(w http.ResponseWriter, req *http.Request) {
		name := chi.URLParam(req, "name")
		m, ok := reg.Lookup(name)
		if !ok {
			http.NotFound(w, req)
			return
		}
		serveLive(w, req, name, m, cfg)
	})

	if cfg.MetricsPath != "" {
		r.Handle(cfg.MetricsPath, promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}

	return r
}

func serveLive(w http.ResponseWriter, req *http.Request, name string, m markup.Markup, cfg RouterConfig) {
	conn, err := cfg.Upgrader.Upgrade(w, req, nil)
	if err != nil {
		// Upgrade has already replied with an HTTP error.
		cfg.Logger.DebugContext(req.Context(), "websocket upgrade failed", slog.Any("error", err))
		return
	}
	defer conn.Close()

	src := middleware.Bind(req.Context(), cfg.Renderer, name, m)
	if err := sink.WriteMessage(conn, src); err != nil {
		cfg.Logger.ErrorContext(req.Context(), "live render failed",
			slog.String("page", name),
			slog.Any("error", err),
		)
		return
	}

	_ = conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

// indexPage lists names as links to their pages.
func indexPage(names []string) markup.Markup {
	body := markup.New(func(w markup.Sink) error {
		if err := markup.Raw(w, "<h1>Pages</h1>\n<ul>\n"); err != nil {
			return err
		}
		for _, name := range names {
			if err := markup.Raw(w, `<li><a href="/pages/`); err != nil {
				return err
			}
			if err := markup.EscapedAttr(w, url.PathEscape(name)); err != nil {
				return err
			}
			if err := markup.Raw(w, `">`); err != nil {
				return err
			}
			if err := markup.Escaped(w, name); err != nil {
				return err
			}
			if err := markup.Raw(w, "</a></li>\n"); err != nil {
				return err
			}
		}
		return markup.Raw(w, "</ul>\n")
	})
	return render.Document(render.PageData{Title: "Pages", Body: body})
}
