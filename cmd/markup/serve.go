package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/vango-dev/markup/internal/config"
	"github.com/vango-dev/markup/internal/errors"
	"github.com/vango-dev/markup/pkg/handler"
	"github.com/vango-dev/markup/pkg/middleware"
)

const shutdownTimeout = 5 * time.Second

func serveCmd(c *cli) *cobra.Command {
	var (
		host string
		port int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the demo pages for preview",
		Long: `Serve starts a preview server for the registered pages.

Routes:
  /               index of pages
  /pages/{name}   the page rendered over HTTP
  /live/{name}    the page sent as one WebSocket text message
  /metrics        Prometheus metrics (server.metricsPath in markup.json)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFromWorkingDir()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("host") {
				cfg.Server.Host = host
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			srv := newServer(cfg, c.logger)
			return runServer(cmd.Context(), srv, c.logger)
		},
	}

	cmd.Flags().StringVar(&host, "host", config.DefaultHost, "Host to listen on")
	cmd.Flags().IntVarP(&port, "port", "p", config.DefaultPort, "Port to listen on")

	return cmd
}

// newServer wires the page registry, render instrumentation and router.
func newServer(cfg *config.Config, logger *slog.Logger) *http.Server {
	reg := handler.NewRegistry()
	registerPages(reg)

	promReg := prometheus.NewRegistry()
	promReg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := middleware.NewMetrics(
		middleware.WithNamespace(cfg.Metrics.Namespace),
		middleware.WithRegistry(promReg),
	)

	renderer := middleware.Chain(middleware.Direct,
		metrics.Middleware(),
		middleware.Tracing(middleware.WithTracerName(cfg.Tracing.TracerName)),
		middleware.Logging(logger),
	)

	routerCfg := handler.RouterConfig{
		Options: handler.Options{
			Renderer: renderer,
			Logger:   logger,
		},
		Gatherer: promReg,
	}
	if cfg.MetricsEnabled() {
		routerCfg.MetricsPath = cfg.Server.MetricsPath
	}

	return &http.Server{
		Addr:              cfg.Address(),
		Handler:           handler.NewRouter(reg, routerCfg),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func runServer(ctx context.Context, srv *http.Server, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	logger.Info("preview server listening", slog.String("url", "http://"+srv.Addr))

	select {
	case err := <-errCh:
		return errors.New("E060").Wrap(err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.New("E060").Wrap(err)
	}
	return nil
}
