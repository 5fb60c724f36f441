package observability

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type HealthStatus struct {
	Status      string    `json:"status"`
	LastRun     time.Time `json:"last_run,omitempty"`
	LastRunOK   bool      `json:"last_run_ok"`
	FilesInLast int       `json:"files_in_last_run"`
}

// Server exposes /metrics and /health while watch mode is running.
type Server struct {
	addr   string
	server *http.Server

	mu     sync.Mutex
	health HealthStatus
}

func NewServer(addr string) *Server {
	return &Server{
		addr:   addr,
		health: HealthStatus{Status: "up"},
	}
}

func (s *Server) RecordRun(files int, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.health.LastRun = time.Now().UTC()
	s.health.LastRunOK = ok
	s.health.FilesInLast = files
}

func (s *Server) Start() error {
	mux := http.NewServeMux()

	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		status := s.health
		s.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		if !status.LastRunOK && !status.LastRun.IsZero() {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		json.NewEncoder(w).Encode(status)
	})

	s.server = &http.Server{
		Addr:    s.addr,
		Handler: mux,
	}

	slog.Info("observability server starting", "addr", s.addr)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("observability server failed", "error", err)
		}
	}()

	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
