// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/noctoon/internal/core/chapter"
	"github.com/taibuivan/noctoon/internal/core/series"
	"github.com/taibuivan/noctoon/internal/library/favorite"
	"github.com/taibuivan/noctoon/internal/library/progress"
	"github.com/taibuivan/noctoon/internal/platform/cache"
	"github.com/taibuivan/noctoon/internal/users/auth"
)

// # Stores

// Stores is the persistence backend of every domain.
type Stores struct {
	Series    series.Repository
	Chapters  chapter.Repository
	Favorites favorite.Repository
	Progress  progress.Repository
	Users     auth.UserRepository
}

// MemoryStores keeps all data in process memory. Nothing survives a restart.
func MemoryStores() Stores {
	return Stores{
		Series:    series.NewMemoryRepository(),
		Chapters:  chapter.NewMemoryRepository(),
		Favorites: favorite.NewMemoryRepository(),
		Progress:  progress.NewMemoryRepository(),
		Users:     auth.NewMemoryUserRepository(),
	}
}

// PostgresStores persists every domain through pool.
func PostgresStores(pool *pgxpool.Pool) Stores {
	return Stores{
		Series:    series.NewPostgresRepository(pool),
		Chapters:  chapter.NewPostgresRepository(pool),
		Favorites: favorite.NewPostgresRepository(pool),
		Progress:  progress.NewPostgresRepository(pool),
		Users:     auth.NewPostgresUserRepository(pool),
	}
}

// # Services

// Services holds the use-case layer built on top of [Stores].
type Services struct {
	Series    *series.Service
	Chapters  *chapter.Service
	Favorites *favorite.Service
	Progress  *progress.Service
	Accounts  *auth.Service
}

// NewServices wires the services. A nil catalogCache disables caching and a
// nil tokens provider disables token issuance at login.
func NewServices(stores Stores, catalogCache cache.Cache, tokens auth.TokenProvider, logger *slog.Logger) *Services {
	seriesService := series.NewService(stores.Series, catalogCache, logger)

	accounts := auth.NewService(stores.Users, logger)
	if tokens != nil {
		accounts.WithTokens(tokens)
	}

	return &Services{
		Series:    seriesService,
		Chapters:  chapter.NewService(stores.Chapters, seriesService, logger),
		Favorites: favorite.NewService(stores.Favorites, seriesService, logger),
		Progress:  progress.NewService(stores.Progress, seriesService, logger, time.Now),
		Accounts:  accounts,
	}
}

// Handlers builds the HTTP handlers for services plus the given health checks.
func (services *Services) Handlers(liveness, readiness http.HandlerFunc) Handlers {
	return Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      auth.NewHandler(services.Accounts),
		Series:    series.NewHandler(services.Series),
		Chapter:   chapter.NewHandler(services.Chapters),
		Favorite:  favorite.NewHandler(services.Favorites),
		Progress:  progress.NewHandler(services.Progress),
	}
}
