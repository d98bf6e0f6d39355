package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"bm_discord_relay/internal/config"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

// Server is the liveness HTTP endpoint: hosting platforms ping it to keep
// the process alive and health checks read it.
type Server struct {
	router  *chi.Mux
	server  *http.Server
	started time.Time
}

func New(port int) *Server {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/ping"))

	s := &Server{
		router:  router,
		started: time.Now(),
	}

	router.Get("/", s.aliveRoute)

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
		IdleTimeout:  config.ServerIdleTimeout,
	}

	return s
}

// aliveRoute reports that the bot process is running
func (s *Server) aliveRoute(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, struct {
		Status  string `json:"status"`
		Started string `json:"started"`
		Uptime  string `json:"uptime"`
	}{
		Status:  "alive",
		Started: s.started.UTC().Format(time.RFC3339),
		Uptime:  time.Since(s.started).Round(time.Second).String(),
	})
}

// ListenAndServe starts the HTTP server and blocks until it stops
func (s *Server) ListenAndServe() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
