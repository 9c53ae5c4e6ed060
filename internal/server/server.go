package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/bowerhall/name/internal/identity"
)

type Config struct {
	// Port to listen on; 0 picks a free port.
	Port int
}

// Server answers every request with the same identity line.
type Server struct {
	cfg  Config
	http *http.Server
	ln   net.Listener
}

func New(cfg Config, id identity.Identity) *Server {
	return &Server{
		cfg: cfg,
		http: &http.Server{
			Handler:           withRequestID(Handler(id)),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Handler writes id for any method and path.
func Handler(id identity.Identity) http.Handler {
	body := []byte(id.String())
	length := strconv.Itoa(len(body))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Content-Length", length)
		w.WriteHeader(http.StatusOK)
		w.Write(body)
	})
}

// Listen binds the listener so bind failures surface before serving.
func (s *Server) Listen() error {
	addr := net.JoinHostPort("", strconv.Itoa(s.cfg.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}

	s.ln = ln
	return nil
}

// Addr returns the bound address, or nil before Listen.
func (s *Server) Addr() net.Addr {
	if s.ln == nil {
		return nil
	}
	return s.ln.Addr()
}

// Serve blocks until the server is shut down. It returns nil after Shutdown.
func (s *Server) Serve() error {
	if s.ln == nil {
		return errors.New("server not listening")
	}

	if err := s.http.Serve(s.ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

// Shutdown closes the listener and waits for idle connections until ctx ends.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
