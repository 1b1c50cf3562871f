// Package server provides the HTTP server for the Mergington High
// School activity signup service.
//
// The server exposes a small REST API over the in-memory activity
// store plus a static web UI for students.
//
// # Endpoints
//
//   - GET / - Redirects to the web UI
//   - GET /static/ - Web UI (embedded in the binary)
//   - GET /health - Simple health check, returns "ok"
//   - GET /activities - All activities with their current rosters
//   - POST /activities/{activity}/signup?email={email} - Sign a student up
//   - DELETE /activities/{activity}/participants/{email} - Remove a student
//   - GET /metrics - Prometheus scrape endpoint
//
// # Example
//
//	srv, err := server.New(logger, server.WithListenAddr(":8080"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := srv.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
package server

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mergington/activities/metrics"
	"github.com/mergington/activities/roster"
	"github.com/mergington/activities/server/cron"
	"github.com/mergington/activities/server/handlers"
	"github.com/mergington/activities/server/report"
)

//go:embed static
var staticFiles embed.FS

const (
	defaultReadTimeout     = 10 * time.Second
	defaultWriteTimeout    = 10 * time.Second
	defaultShutdownTimeout = 5 * time.Second
	defaultListenAddr      = ":8080"
)

// Server is the HTTP server for the activity signup service.
type Server struct {
	addr          string
	logger        *slog.Logger
	store         *roster.Store
	scrape        *metrics.ScrapeRegistry
	httpServer    *http.Server
	reportTrigger *cron.CronTrigger
	pushRegistry  metrics.Registry
	pushSchedule  string
}

// Option configures a Server.
type Option func(*Server) error

// WithListenAddr configures the address the server listens on.
// Default is ":8080".
func WithListenAddr(addr string) Option {
	return func(s *Server) error {
		s.addr = addr
		return nil
	}
}

// WithRosterReports configures scheduled roster occupancy pushes to a
// remote write endpoint. The spec follows standard cron format
// (5 fields: minute, hour, day, month, weekday).
func WithRosterReports(registry metrics.Registry, spec string) Option {
	return func(s *Server) error {
		s.pushRegistry = registry
		s.pushSchedule = spec
		return nil
	}
}

// New creates a new Server seeded with the fixed activity list.
func New(logger *slog.Logger, opts ...Option) (*Server, error) {
	scrape, err := metrics.NewScrapeRegistry()
	if err != nil {
		return nil, fmt.Errorf("creating metrics registry: %w", err)
	}

	s := &Server{
		addr:   defaultListenAddr,
		logger: logger,
		store:  roster.NewStore(),
		scrape: scrape,
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	if s.pushRegistry != nil {
		reporter, err := report.New(s.store, s.pushRegistry, logger)
		if err != nil {
			return nil, fmt.Errorf("creating roster reporter: %w", err)
		}
		trigger, err := cron.NewCronTrigger(s.pushSchedule, reporter, logger)
		if err != nil {
			return nil, fmt.Errorf("creating report trigger: %w", err)
		}
		s.reportTrigger = trigger
	}

	return s, nil
}

// Logger returns the server's logger.
func (s *Server) Logger() *slog.Logger {
	return s.logger
}

// Store returns the activity store. Tests use it to arrange rosters.
func (s *Server) Store() *roster.Store {
	return s.store
}

// NextReport returns the next scheduled roster report time, or nil if
// no report schedule is configured.
func (s *Server) NextReport() *time.Time {
	if s.reportTrigger == nil {
		return nil
	}
	next := s.reportTrigger.NextRun()
	return &next
}

// Run starts the HTTP server and blocks until the context is cancelled.
// It performs a graceful shutdown when the context is done.
// If a report trigger is configured, it will be started automatically.
func (s *Server) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	if err := s.registerRoutes(mux); err != nil {
		return err
	}

	s.httpServer = &http.Server{
		Addr:         s.addr,
		Handler:      mux,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
	}

	if s.reportTrigger != nil {
		s.logger.Info("starting roster report trigger",
			"next_report", s.reportTrigger.NextRun(),
		)
		s.reportTrigger.Start(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting server", "addr", s.addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	}
}

func (s *Server) registerRoutes(mux *http.ServeMux) error {
	signups, err := s.scrape.NewCounterVec(prometheus.CounterOpts{
		Name: "signups_total",
		Help: "Signup attempts by activity and outcome.",
	}, []string{"activity", "outcome"})
	if err != nil {
		return fmt.Errorf("registering signup counter: %w", err)
	}
	withdrawals, err := s.scrape.NewCounterVec(prometheus.CounterOpts{
		Name: "withdrawals_total",
		Help: "Unregister attempts by activity and outcome.",
	}, []string{"activity", "outcome"})
	if err != nil {
		return fmt.Errorf("registering withdrawal counter: %w", err)
	}

	activitiesHandler := handlers.NewActivitiesHandler(s.store)
	signupHandler := handlers.NewSignupHandler(s.logger, s.store, signups)
	unregisterHandler := handlers.NewUnregisterHandler(s.logger, s.store, withdrawals)

	// API endpoints
	mux.HandleFunc("GET /health", handlers.HandleHealth)
	mux.Handle("GET /activities", activitiesHandler)
	mux.Handle("POST /activities/{activity}/signup", signupHandler)
	mux.Handle("DELETE /activities/{activity}/participants/{email}", unregisterHandler)
	mux.Handle("GET /metrics", s.scrape.Handler())

	// Static files (web UI)
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		return fmt.Errorf("creating static file system: %w", err)
	}
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
	})

	return nil
}
