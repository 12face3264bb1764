// Package server exposes the dialogue engine and stored data over HTTP.
package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/alexanderramin/fitbuddy/internal/app"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	app    *app.App
	log    *slog.Logger
	router chi.Router
}

// New creates a new Server with all routes configured.
func New(a *app.App, log *slog.Logger) *Server {
	s := &Server{
		app:    a,
		log:    log,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))

	s.router.Get("/healthz", s.handleHealth)

	s.router.Post("/api/v1/turn", s.handleTurn)
	s.router.Get("/api/v1/profile", s.handleGetProfile)
	s.router.Get("/api/v1/plans/latest", s.handleLatestPlan)
	s.router.Get("/api/v1/plans/{id}", s.handleGetPlan)
	s.router.Get("/api/v1/schedule", s.handleSchedule)
}
