// Copyright (c) 2026 ArtCine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the ArtCine HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables (and an optional .env).
//  3. Connect to the configured store (MongoDB, or PostgreSQL plus migrations).
//  4. Connect to Redis when login throttling is enabled.
//  5. Wire domain services and HTTP handlers.
//  6. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/taibuivan/artcine/internal/api"
	"github.com/taibuivan/artcine/internal/core/movie"
	"github.com/taibuivan/artcine/internal/platform/config"
	"github.com/taibuivan/artcine/internal/platform/constants"
	"github.com/taibuivan/artcine/internal/platform/migration"
	mongostore "github.com/taibuivan/artcine/internal/platform/mongo"
	pgstore "github.com/taibuivan/artcine/internal/platform/postgres"
	redisstore "github.com/taibuivan/artcine/internal/platform/redis"
	"github.com/taibuivan/artcine/internal/platform/sec"
	"github.com/taibuivan/artcine/internal/users/account"
	"github.com/taibuivan/artcine/internal/users/auth"
)

// stores bundles the store implementations selected by STORE_DRIVER.
type stores struct {
	name     string
	accounts account.Store
	movies   movie.Store
	ping     func(ctx context.Context) error
	close    func()
}

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	log := newLogger(os.Stdout, slog.LevelInfo)
	slog.SetDefault(log)

	log.Info("[ArtCine] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	logOutput := io.Writer(os.Stdout)
	if cfg.AccessLogPath != "" {
		file, err := os.OpenFile(cfg.AccessLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		must(log, err, "open access log")
		defer file.Close()
		logOutput = io.MultiWriter(os.Stdout, file)
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	log = newLogger(logOutput, level)
	slog.SetDefault(log)
	log.Debug("debug_logging_enabled")

	log.Info("configuration_loaded",
		slog.String("app", constants.AppName),
		slog.String("version", constants.AppVersion),
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("store", cfg.StoreDriver),
		slog.Bool("login_throttle", cfg.ThrottleEnabled()),
	)

	startupCtx, startupCancel := context.WithTimeout(context.Background(), constants.StartupTimeout)
	defer startupCancel()

	// ── 3. Store ──────────────────────────────────────────────────────────
	store, err := openStores(startupCtx, cfg, log)
	must(log, err, "connect to "+cfg.StoreDriver)
	defer store.close()

	// ── 4. Redis (optional) ───────────────────────────────────────────────
	var (
		limiter    auth.AttemptLimiter
		checkCache func(ctx context.Context) error
	)
	if cfg.ThrottleEnabled() {
		rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing redis client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis close error", slog.Any("error", cerr))
			}
		}()

		limiter = auth.NewRedisAttemptLimiter(rdb, cfg.LoginMaxAttempts, cfg.LoginLockoutWindow)
		checkCache = func(ctx context.Context) error { return redisstore.Ping(ctx, rdb) }
	}

	// ── 5. Security ───────────────────────────────────────────────────────
	hasher := sec.NewPasswordHasher(cfg.BcryptCost)
	tokens, err := sec.NewTokenService(cfg.JWTSecret, constants.AccessTokenTTL)
	must(log, err, "initialize token service")

	// ── 6. Health handlers ────────────────────────────────────────────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		StoreName:  store.name,
		CheckStore: store.ping,
		CheckCache: checkCache,
	}, log)

	// ── 7. Domain Wiring ──────────────────────────────────────────────────
	movieService := movie.NewService(store.movies, log)
	accountService := account.NewService(store.accounts, hasher, movieService, log)
	authService := auth.NewService(auth.NewAuthenticator(store.accounts, hasher), tokens, limiter, log)
	guard := auth.NewGuard(tokens, store.accounts)

	// ── 8. HTTP Server ────────────────────────────────────────────────────
	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, guard, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      auth.NewHandler(authService),
		Account:   account.NewHandler(accountService),
		Movie:     movie.NewHandler(movieService),
	})

	// ── 9. Graceful Shutdown ──────────────────────────────────────────────
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
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		return
	}

	log.Info("server stopped cleanly")
}

func newLogger(output io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(output, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", "artcine"))
}

// openStores connects to the backend named by cfg.StoreDriver.
func openStores(ctx context.Context, cfg *config.Config, log *slog.Logger) (*stores, error) {
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		pool, err := pgstore.NewPool(ctx, cfg.ConnectionURI, log)
		if err != nil {
			return nil, err
		}
		if _, err := migration.RunUp(ctx, cfg.ConnectionURI, cfg.MigrationPath, log); err != nil {
			pool.Close()
			return nil, err
		}
		return &stores{
			name:     config.DriverPostgres,
			accounts: account.NewPostgresStore(pool),
			movies:   movie.NewPostgresStore(pool),
			ping:     func(ctx context.Context) error { return pgstore.Ping(ctx, pool) },
			close: func() {
				log.Info("closing postgres pool")
				pool.Close()
			},
		}, nil

	default:
		client, database, err := mongostore.NewClient(ctx, cfg.ConnectionURI, cfg.MongoDatabase, log)
		if err != nil {
			return nil, err
		}
		if err := mongostore.EnsureIndexes(ctx, database, log); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}
		return &stores{
			name:     config.DriverMongo,
			accounts: account.NewMongoStore(database),
			movies:   movie.NewMongoStore(database),
			ping:     func(ctx context.Context) error { return mongostore.Ping(ctx, client) },
			close: func() {
				log.Info("closing mongo client")
				if err := client.Disconnect(context.Background()); err != nil {
					log.Error("mongo disconnect error", slog.Any("error", err))
				}
			},
		}, nil
	}
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned
// and handled explicitly.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
