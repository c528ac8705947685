package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/autoresume/internal/db"
	"github.com/jonathan/autoresume/internal/rewriting"
	"github.com/jonathan/autoresume/internal/types"
)

// maxBodyBytes bounds request bodies
const maxBodyBytes = 1 << 20

// BuildStore persists builds. *db.DB implements it.
type BuildStore interface {
	SaveBuild(ctx context.Context, raw *types.RawResume, resume *types.Resume) (uuid.UUID, error)
	GetBuild(ctx context.Context, id uuid.UUID) (*types.BuildRecord, error)
	ListBuilds(ctx context.Context, limit int) ([]types.BuildSummary, error)
}

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	engine     *rewriting.Engine
	store      BuildStore
	closeStore func()
	logger     *zap.Logger
	cfg        Config
}

// Config holds server configuration
type Config struct {
	Port          int
	DatabaseURL   string
	MaxXyzBullets int
	TabooPhrases  []string
	// Strict rejects resumes with field validation issues instead of reporting them as warnings
	Strict bool
}

// New creates a server over the given engine. When cfg.DatabaseURL is set the
// build table is created if needed and builds are persisted.
func New(ctx context.Context, cfg Config, engine *rewriting.Engine, logger *zap.Logger) (*Server, error) {
	var (
		store      BuildStore
		closeStore func()
	)
	if cfg.DatabaseURL != "" {
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := database.EnsureSchema(ctx); err != nil {
			database.Close()
			return nil, err
		}
		store, closeStore = database, database.Close
	}

	s := NewWithStore(cfg, engine, store, logger)
	s.closeStore = closeStore
	return s, nil
}

// NewWithStore creates a server with an explicit store. A nil store disables persistence.
func NewWithStore(cfg Config, engine *rewriting.Engine, store BuildStore, logger *zap.Logger) *Server {
	if engine == nil {
		engine = rewriting.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		engine: engine,
		store:  store,
		logger: logger,
		cfg:    cfg,
	}

	// Setup router
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// Engine endpoints
	mux.HandleFunc("POST /v1/bullets", s.handleBullets)
	mux.HandleFunc("POST /v1/star", s.handleStar)
	mux.HandleFunc("POST /v1/xyz", s.handleXyz)
	mux.HandleFunc("POST /v1/classify", s.handleClassify)
	mux.HandleFunc("POST /v1/lint", s.handleLint)

	// Resume builds
	mux.HandleFunc("POST /v1/resumes", s.handleBuildResume)
	mux.HandleFunc("GET /v1/resumes", s.handleListBuilds)
	mux.HandleFunc("GET /v1/resumes/{id}", s.handleGetBuild)
	mux.HandleFunc("GET /v1/resumes/{id}/html", s.handleGetBuildHTML)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler returns the root handler, middleware included
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start listens until ctx is cancelled or the process receives SIGINT/SIGTERM,
// then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr), zap.Bool("persistence", s.store != nil))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.closeStore != nil {
		s.closeStore()
	}
	s.logger.Info("server stopped")
	return nil
}

// withCORS adds CORS headers
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

// statusRecorder captures the response status for request logs
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// decodeJSON decodes a bounded request body into dst
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()}
	}
	return nil
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("error encoding JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// writeError maps err to a status code and writes it
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", zap.Error(err))
	}
	s.errorResponse(w, status, err.Error())
}
