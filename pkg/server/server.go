// Package server serves the spinesort browser UI and JSON API.
//
// Routes:
//
//	GET  /          color list form
//	POST /          sort the submitted form and re-render the page
//	POST /api/sort  JSON {text, method, groups} → grouped colors
//	GET  /healthz   liveness and build info
//	GET  /metrics   Prometheus exposition (when a gatherer is configured)
package server

import (
	"context"
	stderrors "errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/matzehuels/spinesort/pkg/errors"
	"github.com/matzehuels/spinesort/pkg/pipeline"
)

const shutdownTimeout = 5 * time.Second

// Config configures a [Server].
type Config struct {
	// Addr is the listen address used by Run.
	Addr string

	// Defaults preselects the method and group count shown on the form and
	// fills in fields omitted from API requests.
	Defaults pipeline.Options

	// Logger receives request logs. Nil discards.
	Logger *log.Logger

	// Gatherer is exposed on /metrics. Nil disables the endpoint.
	Gatherer prometheus.Gatherer
}

// Server is the HTTP front end.
type Server struct {
	cfg    Config
	logger *log.Logger
	runner *pipeline.Runner
	router *chi.Mux
}

// New constructs a Server and its routes.
func New(cfg Config) (*Server, error) {
	if cfg.Logger == nil {
		cfg.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if err := cfg.Defaults.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if cfg.Addr != "" {
		if err := errors.ValidateListenAddr(cfg.Addr); err != nil {
			return nil, err
		}
	}

	s := &Server{
		cfg:    cfg,
		logger: cfg.Logger,
		runner: pipeline.NewRunner(cfg.Logger),
	}
	s.routes()
	return s, nil
}

// Router returns the HTTP handler.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) routes() {
	r := chi.NewRouter()
	r.Use(s.requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(securityHeadersMiddleware)

	r.Get("/", s.handleIndex)
	r.Post("/", s.handleSortForm)
	r.Post("/api/sort", s.handleAPISort)
	r.Get("/healthz", s.handleHealthz)
	if s.cfg.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.cfg.Gatherer, promhttp.HandlerOpts{}))
	}

	s.router = r
}

// Run listens on the configured address and serves until ctx is canceled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is canceled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	httpServer := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       2 * time.Minute,
		MaxHeaderBytes:    1 << 20,
	}

	serverErr := make(chan error, 1)
	go func() {
		s.logger.Info("serving", "addr", ln.Addr().String())
		if err := httpServer.Serve(ln); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.logger.Info("shutting down")
		return httpServer.Shutdown(shutdownCtx)
	case err := <-serverErr:
		return err
	}
}
