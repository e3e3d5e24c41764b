// Package server assembles the HTTP surface: the Huma API, middleware,
// metrics and optional static frontend.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/google/uuid"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/fermm870-del/prompt-system-pro/internal/api/router"
	"github.com/fermm870-del/prompt-system-pro/internal/config"
	"github.com/fermm870-del/prompt-system-pro/internal/logging"
	"github.com/fermm870-del/prompt-system-pro/internal/service"
	"github.com/fermm870-del/prompt-system-pro/internal/telemetry"
)

// Server wraps the configured http.Server.
type Server struct {
	httpServer *http.Server
	logger     *zap.Logger
}

// New builds the full handler chain. The browser client is an external
// collaborator: when cfg.WebDir exists it is served at the root, otherwise
// only the API surface is mounted.
func New(cfg *config.Config, svc service.PromptService, metrics *telemetry.Metrics, logger *zap.Logger, version string) *Server {
	mux := http.NewServeMux()

	humaConfig := huma.DefaultConfig("Prompt System Pro", version)
	humaConfig.Info.Description = "Hierarchical prompt library with one-shot generation and stateless chat."
	// Disable $schema property injection in responses
	humaConfig.CreateHooks = []func(huma.Config) huma.Config{}

	api := humago.New(mux, humaConfig)
	router.RegisterRoutes(api, svc, version)

	mux.Handle("GET /metrics", metrics.Handler())

	if info, err := os.Stat(cfg.WebDir); err == nil && info.IsDir() {
		mux.Handle("/", http.FileServer(http.Dir(cfg.WebDir)))
		logger.Info("serving static frontend", zap.String("dir", cfg.WebDir))
	}

	handler := withRequestID(withBodyLimit(cfg.MaxBodyBytes, withRequestCount(metrics, mux)))
	handler = cors.AllowAll().Handler(handler)

	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.ServerAddress,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// Handler exposes the assembled handler chain, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(shutdownCtx)
}

// withRequestID assigns each request an id, honoring one supplied by the
// client, and echoes it back in the response.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get("X-Request-Id")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", reqID)
		next.ServeHTTP(w, r.WithContext(logging.SetRequestID(r.Context(), reqID)))
	})
}

// withBodyLimit caps request bodies; the store accepts arbitrary prompt text
// but the transport enforces a ceiling.
func withBodyLimit(maxBytes int64, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
		}
		next.ServeHTTP(w, r)
	})
}

func withRequestCount(metrics *telemetry.Metrics, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metrics.RequestsTotal.WithLabelValues(r.Method, r.URL.Path).Inc()
		next.ServeHTTP(w, r)
	})
}
