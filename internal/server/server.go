// Package server provides the HTTP API for resume analysis: the
// analyze endpoint (relayed or served locally) and liveness probes.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/trackmycareer/careertrack/internal/analysis"
	"github.com/trackmycareer/careertrack/internal/config"
	"github.com/trackmycareer/careertrack/internal/relay"
)

// Forwarder posts analyze uploads to the external backend. Satisfied
// by *relay.Forwarder; narrowed to an interface for tests.
type Forwarder interface {
	Forward(ctx context.Context, fields relay.Fields) ([]byte, error)
}

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	cfg        *config.Config
	validate   *validator.Validate

	// exactly one of these is active: forwarder in relay mode,
	// analyzer in local mode
	forwarder Forwarder
	analyzer  *analysis.Analyzer
}

// New creates a server in relay or local mode depending on cfg.
func New(cfg *config.Config, analyzer *analysis.Analyzer) *Server {
	s := &Server{
		cfg:      cfg,
		validate: validator.New(),
		analyzer: analyzer,
	}
	if cfg.RelayMode() {
		s.forwarder = relay.NewForwarder(cfg.BackendURL, cfg.ForwardTimeout, cfg.ForwardRetries)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /analyze", s.handleAnalyze)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /{$}", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.ForwardTimeout + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		mode := "local"
		if s.cfg.RelayMode() {
			mode = "relay -> " + s.cfg.BackendURL
		}
		log.Printf("Server starting on %s (%s mode)", s.httpServer.Addr, mode)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
