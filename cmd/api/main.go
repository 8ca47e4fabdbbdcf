// Quotify API server.
//
// @title           Quotify API
// @version         1.0
// @description     Quote sharing service with random selection, community
// @description     suggestions, moderation and likes.
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/quotify/quotify-api/internal/api"
	"github.com/quotify/quotify-api/internal/core/ports"
	"github.com/quotify/quotify-api/internal/infrastructure/aiquote"
	"github.com/quotify/quotify-api/internal/infrastructure/config"
	redisinfra "github.com/quotify/quotify-api/internal/infrastructure/db/redis"
	"github.com/quotify/quotify-api/internal/infrastructure/db/sqlite"
	"github.com/quotify/quotify-api/pkg/logger"
)

func main() {
	// A missing .env is fine; the environment may carry everything.
	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Database ---
	db, err := sqlite.Connect(cfg.Database.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	if err := sqlite.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}
	if err := sqlite.Seed(ctx, db, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}
	log.Info().Str("path", cfg.Database.Path).Msg("database ready")

	// --- Redis (optional) ---
	rdb, err := redisinfra.Connect(ctx, redisinfra.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, AI throttling disabled")
		rdb = nil
	}

	// --- AI generation (optional) ---
	var aiClient ports.AiQuoteClient
	if cfg.DeepSeek.APIKey != "" {
		var gate aiquote.Gate
		if rdb != nil {
			gate = redisinfra.NewThrottle(rdb, cfg.DeepSeek.MinDelay)
		}
		aiClient = aiquote.NewClient(cfg.DeepSeek.BaseURL, cfg.DeepSeek.APIKey, cfg.DeepSeek.Model, gate, log)
	} else {
		log.Warn().Msg("DEEPSEEK_API_KEY not set, AI generation disabled")
		aiClient = aiquote.Disabled{}
	}

	// --- HTTP server ---
	e := api.NewRouter(db, rdb, aiClient, cfg)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("quotify api started")

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
