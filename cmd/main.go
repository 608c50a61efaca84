package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "sponsored-ads/internal/adapter/http"
	"sponsored-ads/internal/adapter/memory"
	"sponsored-ads/internal/adapter/postgres"
	redisadapter "sponsored-ads/internal/adapter/redis"
	"sponsored-ads/internal/adapter/usecase"
	"sponsored-ads/internal/config"
	"sponsored-ads/internal/core/port"
	"sponsored-ads/internal/db"
)

// main is the entry point of the sponsored listings engine. It loads
// configuration, optionally runs database migrations, initializes the
// database pool, the click limiter and the repositories, then starts
// the HTTP server. On receiving a termination signal it gracefully
// shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		opts := &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}
		if cfg.Log.JSONFormat() {
			handler = slog.NewJSONHandler(os.Stdout, opts)
		} else {
			handler = slog.NewTextHandler(os.Stdout, opts)
		}
		logger = slog.New(handler)
	}

	// Optionally run migrations if configured. We use the Psql sub-config.
	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Psql.RunSeed {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("demo data seeded")
		}
	}

	// The Redis-backed limiter enforces the click limit cluster-wide.
	// Without Redis each instance falls back to its own in-memory
	// window, which multiplies the permitted rate by the instance count.
	var limiter port.ClickLimiter
	if cfg.Redis.Enabled() {
		client, err := db.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			logger.Error("redis connection error", slog.Any("error", err))
			os.Exit(1)
		}
		defer client.Close()
		limiter = redisadapter.NewClickLimiter(client, cfg.Ads.ClickLimit, cfg.Ads.ClickWindow)
		logger.Info("using redis click limiter", slog.String("addr", cfg.Redis.Addr))
	} else {
		limiter = memory.NewClickLimiter(cfg.Ads.ClickLimit, cfg.Ads.ClickWindow)
		logger.Warn("redis not configured, using in-process click limiter")
	}

	repo := postgres.NewCampaignRepository(pool)
	svc := usecase.NewAdsUseCase(repo, limiter, usecase.Config{
		MaxPlacements:  cfg.Ads.MaxPlacements,
		CandidateLimit: cfg.Ads.CandidateLimit,
		Currency:       cfg.Ads.Currency,
	})

	handler := httpadapter.NewHandler(svc, logger, cfg.Auth.Secret)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: time.Duration(cfg.HTTP.ReadHeaderTimeoutSec) * time.Second,
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
