package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/matchpoint/dating-api/internal/api"
	"github.com/matchpoint/dating-api/internal/core/service"
	"github.com/matchpoint/dating-api/internal/infrastructure/config"
	mongodb "github.com/matchpoint/dating-api/internal/infrastructure/db/mongo"
	redisdb "github.com/matchpoint/dating-api/internal/infrastructure/db/redis"
	"github.com/matchpoint/dating-api/internal/infrastructure/queue"
	"github.com/matchpoint/dating-api/pkg/logger"
)

// @title        Matchpoint Dating API
// @version      1.0
// @description  REST backend for the Matchpoint dating application.
// @host         localhost:9000
// @BasePath     /
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
		Service: "dating-api",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()
	log.Info().Str("database", cfg.Mongo.Database).Msg("mongodb connected")

	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create indexes")
	}
	if cfg.SeedDemo {
		if err := userRepo.SeedDemoUsers(ctx, log); err != nil {
			log.Warn().Err(err).Msg("demo user seeding failed")
		}
	}

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()
	log.Info().Str("addr", cfg.Redis.Addr).Msg("redis connected")

	matchCache := redisdb.NewMatchCache(rdb)

	invalidator := queue.NewInvalidator(0, matchCache, log)
	invalidator.Start(ctx)

	// --- Services ---
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, 24*time.Hour)
	userService := service.NewUserService(userRepo, matchCache, log)
	matchService := service.NewMatchService(userRepo, matchCache, log)
	ratingService := service.NewRatingService(userRepo, invalidator, log)

	e := api.NewRouter(api.Deps{
		Auth:      authService,
		Users:     userService,
		Matches:   matchService,
		Ratings:   ratingService,
		Mongo:     db,
		Redis:     rdb,
		JWTSecret: cfg.JWTSecret,
		Logger:    log,
	})

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Msg("server listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
