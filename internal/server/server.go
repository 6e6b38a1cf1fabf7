// Package server exposes a minimal HTTP surface over the arithmetic
// engine: a health check, a Prometheus metrics endpoint, and a
// calculation endpoint for scripted/automated callers that would rather
// not shell out to the CLI.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/agbru/bigint/internal/bigint"
	"github.com/agbru/bigint/internal/logging"
)

// Server serves the HTTP surface described in the package doc.
type Server struct {
	addr     string
	security SecurityConfig
	metrics  *Metrics
	logger   logging.Logger
	http     *http.Server
}

// New builds a Server bound to addr, using the given logger for request
// diagnostics and the default security policy.
func New(addr string, logger logging.Logger) *Server {
	return &Server{
		addr:     addr,
		security: DefaultSecurityConfig(),
		metrics:  NewMetrics(),
		logger:   logger,
	}
}

func (s *Server) mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.wrap(s.handleHealth))
	mux.HandleFunc("/metrics", s.wrap(s.handleMetrics))
	mux.HandleFunc("/calc", s.wrap(s.handleCalc))
	return mux
}

func (s *Server) wrap(h http.HandlerFunc) http.HandlerFunc {
	return SecurityMiddleware(s.security, s.metricsMiddleware(h))
}

// ListenAndServe starts the HTTP server and blocks until ctx is
// cancelled, at which point it shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.http = &http.Server{
		Addr:    s.addr,
		Handler: s.mux(),
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", logging.String("addr", s.addr))
		errCh <- s.http.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	}
}

// metricsMiddleware tracks in-flight request count, total requests by
// path/status, and request duration, then calls next.
func (s *Server) metricsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.metrics.IncrementActiveRequests()
		defer s.metrics.DecrementActiveRequests()

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rec, r)

		s.metrics.requestsTotal.WithLabelValues(r.URL.Path, fmt.Sprintf("%d", rec.status)).Inc()
		s.metrics.requestDuration.WithLabelValues(r.URL.Path).Observe(time.Since(start).Seconds())
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// handleHealth answers liveness probes.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// handleMetrics serves the Prometheus exposition format.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.metrics.WritePrometheus(w, r)
}

// calcRequest is the JSON body accepted by /calc.
type calcRequest struct {
	Op   string `json:"op"`
	A    string `json:"a"`
	B    string `json:"b"`
	Base int    `json:"base"`
}

// calcResponse is the JSON body returned by /calc.
type calcResponse struct {
	Result string `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// handleCalc evaluates a single binary operation submitted as JSON.
// Operands whose decimal digit count would exceed the configured
// MaxOperandBits are rejected before any arithmetic runs.
func (s *Server) handleCalc(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req calcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeCalcError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Base == 0 {
		req.Base = 10
	}
	maxDigits := s.security.MaxOperandBits/3 + 1
	if len(req.A) > maxDigits || len(req.B) > maxDigits {
		writeCalcError(w, http.StatusRequestEntityTooLarge, "operand exceeds maximum size")
		return
	}

	lhs, ok := bigint.TryParseInt[uint32](req.A, req.Base)
	if !ok {
		writeCalcError(w, http.StatusBadRequest, "invalid operand a")
		return
	}
	rhs, ok := bigint.TryParseInt[uint32](req.B, req.Base)
	if !ok {
		writeCalcError(w, http.StatusBadRequest, "invalid operand b")
		return
	}

	result, err := evalOp(req.Op, lhs, rhs)
	if err != nil {
		writeCalcError(w, http.StatusBadRequest, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(calcResponse{Result: result.ToString(req.Base, false, bigint.ShowBaseNone)})
}

func evalOp(op string, lhs, rhs *bigint.Int[uint32]) (*bigint.Int[uint32], error) {
	switch op {
	case "+":
		return lhs.Add(rhs), nil
	case "-":
		return lhs.Sub(rhs), nil
	case "*":
		return lhs.Mul(rhs), nil
	case "/":
		if rhs.IsZero() {
			return nil, fmt.Errorf("division by zero")
		}
		return lhs.Div(rhs), nil
	case "%":
		if rhs.IsZero() {
			return nil, fmt.Errorf("division by zero")
		}
		return lhs.Mod(rhs), nil
	case "&":
		return lhs.And(rhs), nil
	case "|":
		return lhs.Or(rhs), nil
	case "^":
		return lhs.Xor(rhs), nil
	default:
		return nil, fmt.Errorf("unsupported operator %q", op)
	}
}

func writeCalcError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(calcResponse{Error: msg})
}
