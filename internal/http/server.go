// Package http serves the Global node's admin surface: health, basic
// metrics, and store statistics. It never mutates the store.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

const (
	contentTypeJSON        = "application/json"
	defaultHTTPPort        = "8080"
	defaultShutdownTimeout = time.Second * 5
)

// iStats is the read-only view of the Global node the admin server needs.
// It allows using a fake store in tests.
type iStats interface {
	Keys() int
	Members() int
	Queues() int
}

// Server represents the admin HTTP server.
type Server struct {
	stats      iStats
	httpServer *http.Server
	addr       string
}

func NewServer(stats iStats, port string) *Server {
	if port == "" {
		port = defaultHTTPPort
	}
	return &Server{
		stats: stats,
		addr:  ":" + port,
	}
}

// Start starts the server
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:              s.addr,
		Handler:           s.createRouter(),
		ReadHeaderTimeout: time.Second,
	}

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("admin HTTP server error", "error", err)
		}
	}()

	slog.Info("admin HTTP server started", "addr", s.addr)
	return nil
}

// Stop stops the server
func (s *Server) Stop() error {
	if s.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
		defer cancel()

		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown admin HTTP server: %w", err)
		}
	}
	return nil
}

// createRouter builds chi router
func (s *Server) createRouter() http.Handler {
	r := chi.NewRouter()

	r.Get("/health", s.handleHealth)
	r.Get("/metrics", s.handleMetrics)
	r.Get("/api/stats", s.handleStats)

	return r
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Warn("Error encoding response", "error", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, NewOKResponse())
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	body := fmt.Sprintf(
		"# dstore global metrics\ndstore_keys %d\ndstore_members %d\ndstore_queues %d\n",
		s.stats.Keys(), s.stats.Members(), s.stats.Queues(),
	)
	if _, err := w.Write([]byte(body)); err != nil {
		slog.Warn("Failed to write metrics response", "error", err)
	}
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, Stats{
		Keys:    s.stats.Keys(),
		Members: s.stats.Members(),
		Queues:  s.stats.Queues(),
	})
}
