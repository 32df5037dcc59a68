// Package httpapi serves the troubleshooting assistant over a small JSON API
// consumed by the web UI.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/launchpad-assist/internal/core/domain"
	"github.com/custodia-labs/launchpad-assist/internal/core/ports/driving"
	"github.com/custodia-labs/launchpad-assist/internal/logger"
)

// MaxBodyBytes bounds the size of a request body.
const MaxBodyBytes = 1 << 20

// ErrMissingAskService is returned when the server is built without an ask service.
var ErrMissingAskService = errors.New("ask service is required")

// Config configures the API server.
type Config struct {
	// Addr is the listen address, for example ":4000".
	Addr string

	// AllowedOrigins are the origins accepted for cross-origin requests.
	// Requests without an Origin header are always accepted.
	AllowedOrigins []string

	// RateLimit is the sustained number of /ask requests per second.
	// Zero disables limiting.
	RateLimit float64

	// RateBurst is the burst size on top of RateLimit.
	RateBurst int
}

// ConfigFromSettings derives the server configuration from settings.
func ConfigFromSettings(s *domain.Settings) Config {
	return Config{
		Addr:           fmt.Sprintf(":%d", s.Server.Port),
		AllowedOrigins: s.Server.AllowedOrigins,
		RateLimit:      s.Server.RateLimit,
		RateBurst:      s.Server.RateBurst,
	}
}

// Server is the JSON API server.
type Server struct {
	ask     driving.AskService
	cfg     Config
	origins map[string]bool
	limiter *rate.Limiter
}

// NewServer creates a server answering through ask.
func NewServer(ask driving.AskService, cfg Config) (*Server, error) {
	if ask == nil {
		return nil, ErrMissingAskService
	}

	origins := make(map[string]bool, len(cfg.AllowedOrigins))
	for _, o := range cfg.AllowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins[o] = true
		}
	}

	limit := rate.Limit(cfg.RateLimit)
	if cfg.RateLimit <= 0 {
		limit = rate.Inf
	}
	burst := cfg.RateBurst
	if burst < 1 {
		burst = 1
	}

	return &Server{
		ask:     ask,
		cfg:     cfg,
		origins: origins,
		limiter: rate.NewLimiter(limit, burst),
	}, nil
}

// Handler returns the HTTP handler with all routes registered.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ask", s.handleAsk)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/kb/stats", s.handleStats)
	return s.withCORS(mux)
}

// Run listens on the configured address.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx) //nolint:errcheck
	}()

	logger.Info("API listening on %s", s.cfg.Addr)
	err := httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// withCORS applies the origin allow-list and answers preflight requests.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" {
			if !s.origins[origin] {
				logger.Debug("rejected origin %q", origin)
				writeError(w, http.StatusForbidden, "origin not allowed")
				return
			}
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Methods", "GET, POST")
			h.Set("Access-Control-Allow-Headers", "Content-Type")
			h.Add("Vary", "Origin")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type askRequest struct {
	Question string `json:"question"`
	Language string `json:"language"`
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if !s.limiter.Allow() {
		writeError(w, http.StatusTooManyRequests, domain.ErrRateLimited.Error())
		return
	}

	var req askRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	resp, err := s.ask.Ask(r.Context(), req.Question, domain.LocaleOrDefault(req.Language))
	if err != nil {
		if errors.Is(err, domain.ErrEmptyQuestion) || errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		logger.Error("ask failed: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, resp.Normalise())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	stats, err := s.ask.Stats(r.Context())
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Debug("writing response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
