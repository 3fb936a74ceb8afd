package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/abcmusic/library-web/internal/core/ports"
	"github.com/abcmusic/library-web/internal/core/service"
	"github.com/abcmusic/library-web/internal/infrastructure/backend"
	"github.com/abcmusic/library-web/internal/infrastructure/config"
	sessionstore "github.com/abcmusic/library-web/internal/infrastructure/session"
	"github.com/abcmusic/library-web/internal/web"
	"github.com/abcmusic/library-web/internal/web/cookie"
	"github.com/abcmusic/library-web/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.IsDevelopment(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	secret := cfg.CookieSecret
	if secret == "" {
		if !cfg.IsDevelopment() {
			log.Fatal().Msg("COOKIE_SECRET is required outside development")
		}
		log.Warn().Msg("COOKIE_SECRET not set; using an insecure development secret")
		secret = "dev-only-insecure-secret"
	}
	codec := cookie.NewCodec(secret)

	var store ports.SessionStore
	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		var err error
		rdb, err = sessionstore.Connect(ctx, sessionstore.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("failed to connect to redis")
		}
		store = sessionstore.NewRedisStore(rdb, cfg.SessionTTL)
	} else {
		log.Warn().Msg("REDIS_ADDR not set; sessions will not survive restarts")
		store = sessionstore.NewMemoryStore()
	}

	api := backend.New(cfg.BackendBaseURL, nil, log)
	sessions := service.NewSessionService(api, store, cfg.SessionTTL, log)

	e, err := web.NewRouter(web.Deps{
		Sessions:      sessions,
		Library:       service.NewLibraryService(api, log),
		Lessons:       service.NewLessonService(api, log),
		Dashboards:    service.NewDashboardService(api),
		Profiles:      service.NewProfileService(api, sessions, log),
		Backend:       api,
		Codec:         codec,
		SessionTTL:    cfg.SessionTTL,
		SecureCookies: !cfg.IsDevelopment(),
		Redis:         rdb,
		Logger:        log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build router")
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("backend", cfg.BackendBaseURL).Msg("starting web frontend")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	if rdb != nil {
		_ = rdb.Close()
	}
}
