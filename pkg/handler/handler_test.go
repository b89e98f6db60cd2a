package handler

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/vango-dev/markup/pkg/markup"
	"github.com/vango-dev/markup/pkg/middleware"
)

func greeting(name string) markup.Markup {
	return markup.New(func(w markup.Sink) error {
		if err := markup.Raw(w, "<p>Hello, "); err != nil {
			return err
		}
		if err := markup.Escaped(w, name); err != nil {
			return err
		}
		return markup.Raw(w, "</p>")
	})
}

func quietLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, nil))
}

func TestHandler(t *testing.T) {
	h := Handler("greeting", greeting("<Pinkie>"), Options{})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != ContentTypeHTML {
		t.Errorf("Content-Type = %q", ct)
	}
	if got := rec.Body.String(); got != "<p>Hello, &lt;Pinkie&gt;</p>" {
		t.Errorf("body = %q", got)
	}
}

func TestHandlerHead(t *testing.T) {
	h := Handler("greeting", greeting("x"), Options{})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodHead, "/", nil))
	if rec.Code != http.StatusOK || rec.Body.Len() != 0 {
		t.Errorf("HEAD = %d %q", rec.Code, rec.Body.String())
	}
}

func TestHandlerFailureBeforeOutput(t *testing.T) {
	errTemplate := errors.New("template failed")
	m := markup.New(func(markup.Sink) error { return errTemplate })

	var logs bytes.Buffer
	h := Handler("broken", m, Options{Logger: quietLogger(&logs)})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/broken", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if !strings.Contains(logs.String(), "template failed") || !strings.Contains(logs.String(), "page=broken") {
		t.Errorf("log = %q", logs.String())
	}
}

func TestHandlerFailureAfterOutput(t *testing.T) {
	errTemplate := errors.New("template failed")
	m := markup.New(func(w markup.Sink) error {
		if err := markup.Raw(w, "<p>partial"); err != nil {
			return err
		}
		return errTemplate
	})

	var logs bytes.Buffer
	h := Handler("partial", m, Options{Logger: quietLogger(&logs)})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 once output started", rec.Code)
	}
	if rec.Body.String() != "<p>partial" {
		t.Errorf("body = %q", rec.Body.String())
	}
	if !strings.Contains(logs.String(), "written=10") {
		t.Errorf("log = %q", logs.String())
	}
}

func TestHandlerUsesRenderer(t *testing.T) {
	var rendered []string
	r := middleware.RendererFunc(func(ctx context.Context, name string, w io.Writer, src io.WriterTo) (int64, error) {
		rendered = append(rendered, name)
		return src.WriteTo(w)
	})

	h := Handler("greeting", greeting("x"), Options{Renderer: r, ContentType: "text/plain"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if len(rendered) != 1 || rendered[0] != "greeting" {
		t.Errorf("rendered = %v", rendered)
	}
	if rec.Header().Get("Content-Type") != "text/plain" {
		t.Errorf("Content-Type = %q", rec.Header().Get("Content-Type"))
	}
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	reg.Register("b", greeting("b"))
	reg.Register("a", greeting("a"))

	if got := strings.Join(reg.Names(), ","); got != "a,b" {
		t.Errorf("Names() = %q", got)
	}
	m, ok := reg.Lookup("a")
	if !ok || m.String() != "<p>Hello, a</p>" {
		t.Errorf("Lookup(a) = %q, %v", m.String(), ok)
	}
	if _, ok := reg.Lookup("missing"); ok {
		t.Error("Lookup(missing) should fail")
	}
}

func newTestRouter(t *testing.T) (*httptest.Server, *middleware.Metrics) {
	t.Helper()
	reg := NewRegistry()
	reg.Register("greeting", greeting("<Pinkie>"))
	reg.Register("a&b", greeting("amp"))

	promReg := prometheus.NewRegistry()
	metrics := middleware.NewMetrics(middleware.WithRegistry(promReg))

	var logs bytes.Buffer
	router := NewRouter(reg, RouterConfig{
		Options: Options{
			Renderer: middleware.Chain(middleware.Direct, metrics.Middleware()),
			Logger:   quietLogger(&logs),
		},
		MetricsPath: "/metrics",
		Gatherer:    promReg,
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, metrics
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp.StatusCode, string(body)
}

func TestRouterPages(t *testing.T) {
	srv, _ := newTestRouter(t)

	code, body := get(t, srv.URL+"/pages/greeting")
	if code != http.StatusOK || body != "<p>Hello, &lt;Pinkie&gt;</p>" {
		t.Errorf("GET /pages/greeting = %d %q", code, body)
	}

	code, _ = get(t, srv.URL+"/pages/missing")
	if code != http.StatusNotFound {
		t.Errorf("GET /pages/missing = %d, want 404", code)
	}
}

func TestRouterIndex(t *testing.T) {
	srv, _ := newTestRouter(t)

	code, body := get(t, srv.URL+"/")
	if code != http.StatusOK {
		t.Fatalf("GET / = %d", code)
	}
	for _, want := range []string{
		"<title>Pages</title>",
		`<li><a href="/pages/a&amp;b">a&amp;b</a></li>`,
		`<li><a href="/pages/greeting">greeting</a></li>`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("index missing %q:\n%s", want, body)
		}
	}
}

func TestRouterMetrics(t *testing.T) {
	srv, _ := newTestRouter(t)

	get(t, srv.URL+"/pages/greeting")
	code, body := get(t, srv.URL+"/metrics")
	if code != http.StatusOK {
		t.Fatalf("GET /metrics = %d", code)
	}
	if !strings.Contains(body, `markup_renders_total{page="greeting",status="success"} 1`) {
		t.Errorf("metrics missing render counter:\n%s", body)
	}
}

func TestRouterLive(t *testing.T) {
	srv, _ := newTestRouter(t)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/live/greeting"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer conn.Close()

	typ, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage: %v", err)
	}
	if typ != websocket.TextMessage || string(data) != "<p>Hello, &lt;Pinkie&gt;</p>" {
		t.Errorf("message = %d %q", typ, data)
	}

	_, _, err = conn.ReadMessage()
	if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
		t.Errorf("expected normal closure, got %v", err)
	}
}

func TestRouterLiveUnknownPage(t *testing.T) {
	srv, _ := newTestRouter(t)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/live/missing"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err == nil {
		t.Fatal("expected dial to fail for an unknown page")
	}
	if resp == nil || resp.StatusCode != http.StatusNotFound {
		t.Errorf("response = %v", resp)
	}
}
