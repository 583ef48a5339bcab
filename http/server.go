package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// ServerOptions configures the HTTP server. Zero values fall back to the
// defaults below.
type ServerOptions struct {
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
}

func (o ServerOptions) withDefaults() ServerOptions {
	if o.ReadTimeout == 0 {
		o.ReadTimeout = 30 * time.Second
	}
	if o.ReadHeaderTimeout == 0 {
		o.ReadHeaderTimeout = 10 * time.Second
	}
	if o.WriteTimeout == 0 {
		o.WriteTimeout = 30 * time.Second
	}
	if o.IdleTimeout == 0 {
		o.IdleTimeout = 120 * time.Second
	}
	if o.ShutdownTimeout == 0 {
		o.ShutdownTimeout = 30 * time.Second
	}
	return o
}

// Server owns the listening socket. Every successful Start must be paired
// with a Stop to release the port; a stopped Server can be started again.
type Server struct {
	handler http.Handler
	opts    ServerOptions

	mu       sync.Mutex
	srv      *http.Server
	listener net.Listener
	done     chan struct{}
}

// NewServer returns a Server for handler. It does not listen until Start.
func NewServer(handler http.Handler, opts ServerOptions) *Server {
	return &Server{
		handler: handler,
		opts:    opts.withDefaults(),
	}
}

// Start binds a listener on port and returns once it is accepting
// connections. Port 0 picks a free port; see Addr. Bind failures, such as the
// port being in use, are returned wrapped.
func (s *Server) Start(ctx context.Context, port int) error {
	if port < 0 || port > 65535 {
		return fmt.Errorf("start server: %w: %d", ErrInvalidPort, port)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.srv != nil {
		return ErrAlreadyStarted
	}

	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", net.JoinHostPort("", strconv.Itoa(port)))
	if err != nil {
		return fmt.Errorf("listen on port %d: %w", port, err)
	}

	srv := &http.Server{
		Handler:           s.handler,
		ReadTimeout:       s.opts.ReadTimeout,
		ReadHeaderTimeout: s.opts.ReadHeaderTimeout,
		WriteTimeout:      s.opts.WriteTimeout,
		IdleTimeout:       s.opts.IdleTimeout,
		ErrorLog:          slog.NewLogLogger(slog.Default().Handler(), slog.LevelError),
	}
	done := make(chan struct{})

	go func() {
		defer close(done)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "err", err)
		}
	}()

	s.srv = srv
	s.listener = ln
	s.done = done

	slog.Info("server listening", "addr", ln.Addr().String())
	return nil
}

// Stop gracefully shuts the server down, waiting up to ShutdownTimeout for
// in-flight requests, and returns once the listener is closed. Stop on a
// server that is not running is a no-op.
//
// The server reports as stopped (Addr is nil) as soon as Stop begins; the
// drain runs without holding the lock.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	srv, ln, done := s.srv, s.listener, s.done
	s.srv = nil
	s.listener = nil
	s.done = nil
	s.mu.Unlock()

	if srv == nil {
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, s.opts.ShutdownTimeout)
	defer cancel()

	err := srv.Shutdown(shutdownCtx)
	if err != nil {
		_ = srv.Close()
	}
	<-done

	if err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}

	slog.Info("server stopped", "addr", ln.Addr().String())
	return nil
}

// Addr returns the bound address, or nil when the server is not running.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Port returns the bound TCP port, or 0 when the server is not running.
func (s *Server) Port() int {
	addr, ok := s.Addr().(*net.TCPAddr)
	if !ok {
		return 0
	}
	return addr.Port
}

// Done returns a channel closed when the current run stops serving, or nil
// when the server is not running.
func (s *Server) Done() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.done
}
