// Package server implements the HTTP API for the shopping assistant.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/richinex/phonewise/agent"
)

// Server is the HTTP API server.
type Server struct {
	addr   string
	agent  *agent.Agent
	logger zerolog.Logger
	server *http.Server
}

// NewServer creates a new API server.
func NewServer(addr string, a *agent.Agent, logger zerolog.Logger) *Server {
	return &Server{
		addr:   addr,
		agent:  a,
		logger: logger.With().Str("component", "server").Logger(),
	}
}

// Handler builds the route table. Exposed for tests.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Chat endpoints
	mux.HandleFunc("POST /api/chat", s.handleChat)
	mux.HandleFunc("POST /api/chat/stream", s.handleChatStream)
	mux.HandleFunc("POST /api/clear", s.handleClear)

	// Catalog endpoints
	mux.HandleFunc("GET /api/phones", s.handlePhoneList)
	mux.HandleFunc("GET /api/phones/{id}", s.handlePhoneGet)
	mux.HandleFunc("POST /api/compare", s.handleCompare)

	// Health
	mux.HandleFunc("GET /health", s.handleHealth)

	return s.withLogging(mux)
}

// Start begins serving HTTP requests and blocks until shutdown.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         s.addr,
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // Long for streaming responses
	}

	s.logger.Info().Str("addr", s.addr).Msg("starting API server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

// writeJSON encodes v as JSON to w. Errors here typically mean the
// client disconnected mid-response, which is not actionable.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Debug().Err(err).Msg("failed to write JSON response")
	}
}

func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
