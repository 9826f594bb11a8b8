// Package server provides the HTTP API for generating word clouds.
//
// The server exposes a small JSON API on top of the shared pipeline:
//
//	POST /v1/cloud   generate a word cloud image from request text
//	GET  /healthz    liveness probe
//	GET  /version    build information
//
// Rendered images are cached by a hash of the request options, so
// repeated identical requests skip the layout and render stages.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/wordhaze/wordhaze/pkg/cache"
	"github.com/wordhaze/wordhaze/pkg/pipeline"
)

// DefaultAddr is the default listen address for the HTTP server.
const DefaultAddr = ":8080"

// DefaultCacheTTL bounds how long a rendered image stays cached.
const DefaultCacheTTL = time.Hour

// shutdownTimeout bounds how long in-flight requests may run during
// graceful shutdown.
const shutdownTimeout = 10 * time.Second

// Server handles word-cloud generation requests over HTTP.
type Server struct {
	logger   *log.Logger
	runner   *pipeline.Runner
	cache    cache.Cache
	cacheTTL time.Duration
	fontPath string
	router   chi.Router
}

// Option customizes a Server.
type Option func(*Server)

// WithCache sets the render cache. The default is an in-memory cache.
func WithCache(c cache.Cache) Option {
	return func(s *Server) {
		if c != nil {
			s.cache = c
		}
	}
}

// WithCacheTTL sets how long rendered images stay cached.
func WithCacheTTL(ttl time.Duration) Option {
	return func(s *Server) { s.cacheTTL = ttl }
}

// WithFont sets the font file or system font name used for all requests.
// Requests cannot choose fonts; the font is server configuration.
func WithFont(font string) Option {
	return func(s *Server) { s.fontPath = font }
}

// New creates a Server with its routes registered.
func New(logger *log.Logger, opts ...Option) *Server {
	s := &Server{
		logger:   logger,
		runner:   pipeline.NewRunner(logger),
		cache:    cache.NewMemoryCache(),
		cacheTTL: DefaultCacheTTL,
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Get("/version", s.handleVersion)
	r.Post("/v1/cloud", s.handleCloud)

	s.router = r
	return s
}

// Handler returns the server's HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Serve listens on addr until ctx is canceled, then shuts down
// gracefully. It always closes the render cache before returning.
func (s *Server) Serve(ctx context.Context, addr string) error {
	if addr == "" {
		addr = DefaultAddr
	}
	defer s.cache.Close()

	srv := &http.Server{
		Addr:    addr,
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.logger.Info("server listening", "addr", addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
