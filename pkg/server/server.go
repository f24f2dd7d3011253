package server

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"sync"
	"syscall"

	"github.com/coreos/go-systemd/v22/daemon"
	"golang.org/x/time/rate"
)

const (
	defaultName    = "coapi-validator"
	defaultVersion = "dev"
)

// Server hosts API handlers next to health, readiness and metrics endpoints.
type Server struct {
	name     string
	version  string
	config   *Config
	handlers map[string]http.HandlerFunc
	limiter  *rate.Limiter

	mu       sync.RWMutex
	ready    bool
	listener net.Addr
}

// Option configures a Server.
type Option func(*Server)

// WithName sets the service name reported by the default route.
func WithName(name string) Option {
	return func(s *Server) {
		s.name = name
	}
}

// WithVersion sets the service version reported by the default route.
func WithVersion(version string) Option {
	return func(s *Server) {
		s.version = version
	}
}

// WithHandler registers API handlers by path. They are rate limited and
// their request bodies are size limited.
func WithHandler(handlers map[string]http.HandlerFunc) Option {
	return func(s *Server) {
		for path, h := range handlers {
			s.handlers[path] = h
		}
	}
}

// WithConfig replaces the default configuration.
func WithConfig(cfg *Config) Option {
	return func(s *Server) {
		if cfg != nil {
			s.config = cfg
		}
	}
}

// New creates a server. Without WithConfig it uses DefaultConfig.
func New(opts ...Option) *Server {
	s := &Server{
		name:     defaultName,
		version:  defaultVersion,
		handlers: make(map[string]http.HandlerFunc),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.config == nil {
		s.config = DefaultConfig()
	}
	s.limiter = rate.NewLimiter(s.config.RateLimit, s.config.RateLimitBurst)
	return s
}

// Handler returns the fully wired HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.setupRoutes()
}

// SetReady flips the readiness reported by /ready.
func (s *Server) SetReady(ready bool) {
	s.mu.Lock()
	s.ready = ready
	s.mu.Unlock()
}

// IsReady reports whether the server accepts traffic.
func (s *Server) IsReady() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// Addr returns the bound listen address once Run has started listening.
func (s *Server) Addr() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.String()
}

// Run serves until ctx is canceled or SIGINT/SIGTERM arrives, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	if err := s.config.Validate(); err != nil {
		return fmt.Errorf("invalid server config: %w", err)
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", s.config.addr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.config.addr(), err)
	}

	srv := &http.Server{
		Handler:           s.setupRoutes(),
		ReadTimeout:       s.config.ReadTimeout,
		ReadHeaderTimeout: s.config.ReadTimeout,
		WriteTimeout:      s.config.WriteTimeout,
		IdleTimeout:       s.config.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	s.mu.Lock()
	s.listener = ln.Addr()
	s.ready = true
	s.mu.Unlock()

	notify(daemon.SdNotifyReady)
	slog.Info("server started",
		"name", s.name,
		"version", s.version,
		"address", ln.Addr().String(),
	)

	select {
	case err := <-errCh:
		s.SetReady(false)
		if err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.SetReady(false)
	notify(daemon.SdNotifyStopping)
	slog.Info("shutting down server", "timeout", s.config.ShutdownTimeout)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

// notify informs systemd of a state change. Outside systemd it is a no-op.
func notify(state string) {
	sent, err := daemon.SdNotify(false, state)
	if err != nil {
		slog.Warn("systemd notification failed", "state", state, "error", err)
		return
	}
	if sent {
		slog.Debug("systemd notified", "state", state)
	}
}
