package server

import (
	"context"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/coapi/validator/pkg/errors"
)

type contextKey string

const (
	contextKeyRequestID contextKey = "requestID"

	// RequestIDHeader carries the request id in both directions.
	RequestIDHeader = "X-Request-Id"
)

// RequestIDFromContext returns the id assigned to the current request.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(contextKeyRequestID).(string)
	return id
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	if r.status == 0 {
		r.status = code
	}
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	return r.ResponseWriter.Write(b)
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// withMiddleware wraps API handlers: common handling plus rate limiting and
// a request body limit.
func (s *Server) withMiddleware(path string, next http.HandlerFunc) http.HandlerFunc {
	return s.common(path, s.rateLimit(s.limitBody(next)))
}

// common wraps every route with metrics, request ids, version negotiation
// and panic recovery.
func (s *Server) common(path string, next http.HandlerFunc) http.HandlerFunc {
	return instrument(path, requestID(apiVersion(recoverPanic(next))))
}

func instrument(path string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		httpInFlight.Inc()
		defer httpInFlight.Dec()

		rec := &statusRecorder{ResponseWriter: w}
		next(rec, r)

		if rec.status == 0 {
			rec.status = http.StatusOK
		}
		elapsed := time.Since(start)
		httpRequestsTotal.WithLabelValues(path, strconv.Itoa(rec.status)).Inc()
		httpRequestDuration.WithLabelValues(path).Observe(elapsed.Seconds())

		slog.Debug("request served",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", elapsed,
			"request_id", rec.Header().Get(RequestIDHeader),
		)
	}
}

func requestID(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.New().String()
		}
		w.Header().Set(RequestIDHeader, id)
		next(w, r.WithContext(context.WithValue(r.Context(), contextKeyRequestID, id)))
	}
}

func apiVersion(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(APIVersionHeader, negotiateAPIVersion(r))
		next(w, r)
	}
}

func recoverPanic(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rv := recover(); rv != nil {
				slog.Error("panic while serving request",
					"path", r.URL.Path,
					"panic", rv,
					"stack", string(debug.Stack()),
				)
				WriteError(w, r, http.StatusInternalServerError, errors.ErrCodeInternal,
					"internal server error", true, nil)
			}
		}()
		next(w, r)
	}
}

func (s *Server) rateLimit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow() {
			w.Header().Set("Retry-After", "1")
			WriteError(w, r, http.StatusTooManyRequests, errors.ErrCodeRateLimitExceeded,
				"rate limit exceeded", true, map[string]any{
					"limit": float64(s.config.RateLimit),
					"burst": s.config.RateLimitBurst,
				})
			return
		}
		next(w, r)
	}
}

func (s *Server) limitBody(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, s.config.MaxBodyBytes)
		}
		next(w, r)
	}
}
