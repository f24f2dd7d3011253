package server

import (
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/coapi/validator/pkg/errors"
	"github.com/coapi/validator/pkg/serializer"
)

// setupRoutes configures all HTTP routes and middleware
func (s *Server) setupRoutes() http.Handler {
	mux := http.NewServeMux()

	// Default handler
	mux.HandleFunc("/", s.common("/", s.handleDefault))

	// System endpoints (no rate limiting)
	mux.HandleFunc("/health", s.common("/health", s.handleHealth))
	mux.HandleFunc("/ready", s.common("/ready", s.handleReady))
	mux.Handle("/metrics", promhttp.Handler())

	// API endpoints with middleware
	for path, h := range s.handlers {
		mux.HandleFunc(path, s.withMiddleware(path, h))
	}

	return mux
}

func (s *Server) routes() []string {
	routes := make([]string, 0, len(s.handlers)+3)
	for path := range s.handlers {
		routes = append(routes, path)
	}
	sort.Strings(routes)
	return append(routes, "/health", "/ready", "/metrics")
}

func (s *Server) handleDefault(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		WriteError(w, r, http.StatusNotFound, errors.ErrCodeNotFound,
			"route not found", false, map[string]any{"path": r.URL.Path})
		return
	}

	slog.Debug("handling default route",
		"path", r.URL.Path,
		"method", r.Method,
		"remote_addr", r.RemoteAddr,
		"user_agent", r.UserAgent(),
	)

	resp := struct {
		Name      string   `json:"name" yaml:"name"`
		Version   string   `json:"version" yaml:"version"`
		Ready     bool     `json:"ready" yaml:"ready"`
		Timestamp string   `json:"timestamp" yaml:"timestamp"`
		Routes    []string `json:"routes" yaml:"routes"`
	}{
		Name:      s.name,
		Version:   s.version,
		Ready:     s.IsReady(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Routes:    s.routes(),
	}

	serializer.RespondJSON(w, http.StatusOK, resp)
}
