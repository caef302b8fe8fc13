// Package server exposes the transform pipeline over HTTP.
//
// Routes:
//
//	POST /api/v1/transform        run the pipeline on a request body
//	GET  /api/v1/defaults/{mode}  reset values of a parameter group
//	GET  /api/v1/presets          configured presets
//	GET  /healthz                 liveness
//	GET  /metrics                 Prometheus metrics (when enabled)
//
// Errors are JSON bodies of the form {"code": ..., "message": ...}.
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

	"github.com/matzehuels/ordinatrix/pkg/config"
	"github.com/matzehuels/ordinatrix/pkg/observability"
	"github.com/matzehuels/ordinatrix/pkg/pipeline"
)

const shutdownTimeout = 5 * time.Second

// Server serves the HTTP API.
type Server struct {
	Config  *config.Config
	Runner  *pipeline.Runner
	Logger  *log.Logger
	Metrics http.Handler // mounted at /metrics when non-nil
}

// New creates a server. A nil logger logs nowhere.
func New(cfg *config.Config, logger *log.Logger, metrics http.Handler) *Server {
	if cfg == nil {
		c := config.Default()
		cfg = &c
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Server{
		Config:  cfg,
		Runner:  pipeline.NewRunner(logger),
		Logger:  logger,
		Metrics: metrics,
	}
}

// Handler returns the chi router with all routes and middleware.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.instrument)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.health)
	if s.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.Metrics)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/transform", s.transform)
		r.Get("/defaults/{mode}", s.defaults)
		r.Get("/presets", s.presets)
	})
	return r
}

// ListenAndServe serves on the configured address until ctx is cancelled,
// then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.Config.Server.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() {
		s.Logger.Info("listening", "addr", ln.Addr().String())
		errc <- srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// unmatchedRoute labels requests that matched no route, keeping metric
// cardinality bounded.
const unmatchedRoute = "unmatched"

// instrument reports requests to the HTTP hooks and logs them. It runs
// outside Recoverer, and reports in a deferred call so panicking handlers
// still complete their in-flight accounting.
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		observability.HTTP().OnRequest(r.Context(), r.Method, r.URL.Path)

		defer func() {
			route := unmatchedRoute
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			elapsed := time.Since(start)
			observability.HTTP().OnResponse(r.Context(), r.Method, route, status, elapsed)
			s.Logger.Debug("request",
				"method", r.Method,
				"route", route,
				"status", status,
				"duration", elapsed,
				"request_id", middleware.GetReqID(r.Context()))
		}()

		next.ServeHTTP(ww, r)
	})
}
