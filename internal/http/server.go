// Package http exposes the JSON API of the finance tracker.
package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/whoknows1409/Finance-Tracker-AI/internal/log"
	"github.com/whoknows1409/Finance-Tracker-AI/internal/middleware/ratelimit"
	"github.com/whoknows1409/Finance-Tracker-AI/internal/middleware/trace"
	"github.com/whoknows1409/Finance-Tracker-AI/internal/services"
)

type Server struct {
	http.Server

	ledger *services.LedgerService
	chat   *services.ChatService
	stocks *services.StockService

	logger       *log.Logger
	rateLimiter  *ratelimit.Limiter
	started      time.Time
	shutdownOnce sync.Once
}

// NewServer wires routes and middleware, returning a ready-to-run server.
func NewServer(addr string, ledger *services.LedgerService, chat *services.ChatService, stocks *services.StockService, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}

	s := &Server{
		ledger:      ledger,
		chat:        chat,
		stocks:      stocks,
		logger:      logger.WithComponent(log.ComponentHTTP),
		rateLimiter: ratelimit.NewLimiter(ratelimit.DefaultConfig()),
		started:     time.Now(),
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)

	mux.HandleFunc("GET /api/transactions", s.handleListTransactions)
	mux.HandleFunc("POST /api/transactions", s.handleCreateTransaction)
	mux.HandleFunc("DELETE /api/transactions/{id}", s.handleDeleteTransaction)
	mux.HandleFunc("GET /api/analytics/summary", s.handleSummary)
	mux.HandleFunc("POST /api/chat", s.handleChat)
	mux.HandleFunc("GET /api/chat/history/{session_id}", s.handleChatHistory)
	mux.HandleFunc("GET /api/stocks/analyze", s.handleMethodHint)
	mux.HandleFunc("POST /api/stocks/analyze", s.handleAnalyzeStock)
	mux.HandleFunc("GET /api/stocks/{symbol}", s.handleStockQuote)

	tracer := trace.NewMiddleware(s.logger)
	s.Server = http.Server{
		Addr:              addr,
		Handler:           tracer.Middleware(s.withSecurity(mux)),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return s
}

// withSecurity adds security headers and rate-limits mutating requests.
func (s *Server) withSecurity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost || r.Method == http.MethodDelete {
			clientIP := trace.ClientIP(r)
			if !s.rateLimiter.Allow(clientIP) {
				s.logger.WarnContext(r.Context(), "Rate limit exceeded",
					log.FieldClientIP, clientIP,
					log.FieldMethod, r.Method,
					log.FieldPath, r.URL.Path)
				w.Header().Set("Retry-After", "60")
				respondError(w, http.StatusTooManyRequests, "rate limit exceeded, try again later")
				return
			}
		}

		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		w.Header().Set("Content-Security-Policy", "default-src 'none'")

		next.ServeHTTP(w, r)
	})
}

// Shutdown stops the server and its background goroutines.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		s.rateLimiter.Stop()
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    time.Since(s.started).String(),
	})
}

// handleReady verifies the transaction store answers before reporting
// readiness.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]string)
	status := "ready"
	httpStatus := http.StatusOK

	if _, err := s.ledger.List(ctx); err != nil {
		checks["store"] = "failed: " + err.Error()
		status = "not_ready"
		httpStatus = http.StatusServiceUnavailable
	} else {
		checks["store"] = "ok"
	}

	respondJSON(w, httpStatus, map[string]any{
		"status":    status,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"checks":    checks,
	})
}

// handleMethodHint catches GETs on POST-only routes with a clear message.
func (s *Server) handleMethodHint(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", "POST")
	respondError(w, http.StatusMethodNotAllowed, "use POST")
}
