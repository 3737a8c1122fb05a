// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Noctoon HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables (and .env when present).
//  3. Select the store: PostgreSQL (with migrations) or process memory.
//  4. Connect to Redis when configured.
//  5. Wire services and HTTP handlers, then seed demo data.
//  6. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/taibuivan/noctoon/internal/api"
	"github.com/taibuivan/noctoon/internal/platform/cache"
	"github.com/taibuivan/noctoon/internal/platform/config"
	"github.com/taibuivan/noctoon/internal/platform/constants"
	"github.com/taibuivan/noctoon/internal/platform/middleware"
	"github.com/taibuivan/noctoon/internal/platform/migration"
	pgstore "github.com/taibuivan/noctoon/internal/platform/postgres"
	redisstore "github.com/taibuivan/noctoon/internal/platform/redis"
	"github.com/taibuivan/noctoon/internal/platform/sec"
	"github.com/taibuivan/noctoon/internal/seed"
	"github.com/taibuivan/noctoon/internal/users/auth"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.Bool("postgres", cfg.UsesPostgres()),
		slog.Bool("redis", cfg.UsesRedis()),
		slog.Bool("enforce_admin", cfg.EnforceAdmin),
	)

	// Startup gets a deadline so misconfiguration fails fast.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	var health api.HealthDependencies

	// ── 3. Store ──────────────────────────────────────────────────────────
	stores := api.MemoryStores()
	if cfg.UsesPostgres() {
		must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

		pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
		must(log, err, "connect to postgres")
		defer func() {
			log.Info("postgres_pool_closing")
			pool.Close()
		}()

		stores = api.PostgresStores(pool)
		health.CheckDatabase = func(ctx context.Context) error { return pgstore.Ping(ctx, pool) }
	} else {
		log.Warn("memory_store_selected", slog.String("hint", "set DATABASE_URL to persist data"))
	}

	// ── 4. Cache ──────────────────────────────────────────────────────────
	var catalogCache cache.Cache = cache.Noop{}
	if cfg.UsesRedis() {
		rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("redis_client_closing")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis_close_failed", slog.Any("error", cerr))
			}
		}()

		catalogCache = cache.NewRedis(rdb, cfg.CacheTTL, log)
		health.CheckCache = func(ctx context.Context) error { return redisstore.Ping(ctx, rdb) }
	}

	// ── 5. Domain Wiring ──────────────────────────────────────────────────
	// Interfaces stay nil (not typed nil) when JWT_SECRET is absent.
	var (
		verifier middleware.TokenVerifier
		tokens   auth.TokenProvider
	)
	if cfg.JWTSecret != "" {
		tokenService, err := sec.NewTokenService(cfg.JWTSecret, constants.AuthIssuer)
		must(log, err, "initialize jwt service")
		verifier, tokens = tokenService, tokenService
	}

	services := api.NewServices(stores, catalogCache, tokens, log)

	if cfg.SeedDemo {
		_, err := seed.Demo(startupCtx, seed.Target{
			Series:   stores.Series,
			Chapters: stores.Chapters,
			Accounts: services.Accounts,
			Cache:    catalogCache,
		}, log)
		must(log, err, "seed demo data")
	}

	liveness, readiness := api.NewHealthHandlers(health, log)

	// ── 6. HTTP Server ────────────────────────────────────────────────────
	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, verifier, services.Handlers(liveness, readiness))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_failed", slog.Any("error", err))
	}

	log.Info("server_shutting_down", slog.Duration("timeout", constants.ShutdownTimeout))

	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown_failed", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped")
}

func newLogger(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", constants.AppName))
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned
// and handled explicitly.
func must(log *slog.Logger, err error, step string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("step", step),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
