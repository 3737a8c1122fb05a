// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It is the composition root for stores, services and handlers.
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/taibuivan/noctoon/internal/core/chapter"
	"github.com/taibuivan/noctoon/internal/core/series"
	"github.com/taibuivan/noctoon/internal/library/favorite"
	"github.com/taibuivan/noctoon/internal/library/progress"
	"github.com/taibuivan/noctoon/internal/platform/config"
	"github.com/taibuivan/noctoon/internal/platform/constants"
	"github.com/taibuivan/noctoon/internal/platform/middleware"
	"github.com/taibuivan/noctoon/internal/users/auth"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     chi.Router
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
type Handlers struct {
	// Liveness is the /health handler. It answers 200 while the process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler. It answers 503 when a backend is down.
	Readiness http.HandlerFunc

	Auth     *auth.Handler
	Series   *series.Handler
	Chapter  *chapter.Handler
	Favorite *favorite.Handler
	Progress *progress.Handler
}

// # Router

// NewRouter builds the chi router with the full middleware chain and every
// route group. Cancelling context stops the rate limiter's sweeper.
func NewRouter(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) chi.Router {
	r := chi.NewRouter()
	limiter := middleware.NewRateLimiter(context, constants.DefaultRateLimitRPS, constants.DefaultRateLimitBurst)

	// # Middleware Chain
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(limiter.Handler)
	r.Use(middleware.PanicRecovery())
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	adminGate := middleware.AdminGate(cfg.EnforceAdmin)
	r.Route("/api", func(api chi.Router) {
		h.Series.RegisterRoutes(api, adminGate)
		h.Chapter.RegisterRoutes(api, adminGate)
		api.Mount("/auth", h.Auth.Routes())
		api.Mount("/favorites", h.Favorite.Routes())
		api.Mount("/reading-progress", h.Progress.Routes())
	})

	return r
}

// # Server Initialization

// NewServer wraps [NewRouter] in an [http.Server] listening on cfg.ServerPort.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := NewRouter(context, cfg, log, verifier, h)

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server_starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
