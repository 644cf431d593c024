// Package server exposes the meeting-minutes workflow over an HTTP API for
// the browser frontend.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Server wraps the HTTP server with its handler set.
type Server struct {
	deps Deps
	srv  *http.Server
}

// New creates the HTTP server listening on the configured address.
func New(deps Deps) *Server {
	mux := http.NewServeMux()
	registerRoutes(mux, NewHandlers(deps))

	return &Server{
		deps: deps,
		srv: &http.Server{
			Addr:              deps.Config.Server.Addr,
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// ListenAndServe runs the server until the context is cancelled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.deps.Logger.Info(ctx, "HTTP server listening on %s", s.srv.Addr)

	go func() {
		<-ctx.Done()
		s.deps.Logger.Info(ctx, "Shutting down HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			s.deps.Logger.Error(ctx, "HTTP server shutdown error: %v", err)
		}
	}()

	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Handler returns the underlying http.Handler (useful for testing).
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}
