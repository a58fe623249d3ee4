// Command server runs the Store Rating storefront: a gateway in front of
// the Store Rating API that owns the session cookie, the cached typed
// client and the role-guarded destinations.
//
// @title        Store Rating Storefront
// @version      1.0
// @description  Session, cached store listings and role dashboards in front of the Store Rating API.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	_ "github.com/storeratings/storefront/docs"
	"github.com/storeratings/storefront/internal/api"
	"github.com/storeratings/storefront/internal/core/ports"
	"github.com/storeratings/storefront/internal/infrastructure/config"
	"github.com/storeratings/storefront/internal/session"
	"github.com/storeratings/storefront/internal/upstream"
	"github.com/storeratings/storefront/internal/upstream/cache"
	"github.com/storeratings/storefront/internal/upstream/refresh"
	"github.com/storeratings/storefront/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		responseCache ports.Cache
		rdb           *redis.Client
	)
	switch cfg.Cache.Backend {
	case config.CacheRedis:
		client, err := cache.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB, 5*time.Second)
		if err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis connection failed")
		}
		rdb = client
		responseCache = cache.NewRedis(client, cfg.Cache.TTL)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("response cache: redis")
	default:
		responseCache = cache.NewMemory(cfg.Cache.TTL)
		log.Info().Msg("response cache: in-memory")
	}

	backend := upstream.NewClient(cfg.BackendURL, responseCache, log)
	refresher := refresh.New(0, log)
	refresher.Start(ctx)
	backend.SetRefresher(refresher)

	sessions := session.NewStore(cfg.SessionCookie, log)
	e := api.NewRouter(backend, sessions, cfg.BackendURL, rdb, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("backend", cfg.BackendURL).Msg("storefront listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	if rdb != nil {
		_ = rdb.Close()
	}
}
