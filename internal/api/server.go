// Package api implements the warevis HTTP API.
//
// The API is a thin shell over the pipeline Runner: it decodes requests,
// delegates to the runner, and maps structured error codes onto HTTP status
// codes. No geometry logic lives here.
//
// Endpoints:
//
//	POST   /api/warehouse/create    resolve a configuration and persist it
//	POST   /api/warehouse/validate  dry-run a configuration
//	GET    /api/warehouse/{id}      fetch a stored warehouse
//	DELETE /api/warehouse/{id}      remove a stored warehouse
//	GET    /api/warehouses          list stored warehouse IDs
//	GET    /api/health              liveness probe
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/palletlab/warevis/pkg/pipeline"
)

// Server serves the warehouse API.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
	http   *http.Server
}

// New creates a server around the given runner.
func New(addr string, runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{runner: runner, logger: logger}
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)
	// The API carries no credentials, so browser dashboards on any origin
	// may call it.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/warehouses", s.handleList)
		r.Route("/warehouse", func(r chi.Router) {
			r.Post("/create", s.handleCreate)
			r.Post("/validate", s.handleValidate)
			r.Get("/{id}", s.handleGet)
			r.Delete("/{id}", s.handleDelete)
		})
	})

	return r
}

// ListenAndServe starts the server and blocks until ctx is canceled or the
// listener fails. Shutdown drains in-flight requests for up to 10 seconds.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() {
		s.logger.Info("api server listening", "addr", s.http.Addr)
		errc <- s.http.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.logger.Info("api server shutting down")
	return s.http.Shutdown(shutdownCtx)
}

// Handler exposes the routed handler, primarily for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}
