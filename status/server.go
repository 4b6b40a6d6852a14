package status

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"
)

const shutdownTimeout = 2 * time.Second

// Server exposes a Registry on /metrics
type Server struct {
	registry *Registry
	srv      *http.Server
	ln       net.Listener
}

// NewServer creates an idle metrics server for addr
func NewServer(registry *Registry, addr string) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", registry.Handler())
	return &Server{
		registry: registry,
		srv:      &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: time.Second},
	}
}

// Name returns the service name used in logs
func (s *Server) Name() string {
	return "status"
}

// Start binds the listener and serves in the background
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("metrics listen %s: %w", s.srv.Addr, err)
	}
	s.ln = ln
	go func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("metrics server: %v", err)
		}
	}()
	log.Printf("metrics on http://%s/metrics", ln.Addr())
	return nil
}

// Addr returns the bound address, empty before Start
func (s *Server) Addr() string {
	if s.ln == nil {
		return ""
	}
	return s.ln.Addr().String()
}

// Stop shuts the server down, waiting briefly for in-flight scrapes
func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.srv.Shutdown(ctx)
}
