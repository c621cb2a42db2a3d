package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/talha-mahmood/Linkedin-list/internal/api"
	"github.com/talha-mahmood/Linkedin-list/internal/core/domain"
	"github.com/talha-mahmood/Linkedin-list/internal/infrastructure/bus"
	"github.com/talha-mahmood/Linkedin-list/internal/infrastructure/config"
	mongostore "github.com/talha-mahmood/Linkedin-list/internal/infrastructure/db/mongo"
	redisstore "github.com/talha-mahmood/Linkedin-list/internal/infrastructure/db/redis"
	"github.com/talha-mahmood/Linkedin-list/pkg/logger"
)

const (
	connectTimeout  = 10 * time.Second
	shutdownTimeout = 10 * time.Second
	tokenTTL        = 24 * time.Hour
)

// @title        Network Categorizer API
// @version      1.0
// @description  Local backend for tagging professional-network profiles with categories and notes.
// @BasePath     /
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Development(),
	})

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	mongoClient, db, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect")
		}
	}()

	rdb, err := redisstore.Connect(ctx, redisstore.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("redis close")
		}
	}()

	if err := bootstrap(ctx, db, log); err != nil {
		log.Fatal().Err(err).Msg("bootstrap failed")
	}

	broadcasts := bus.New(log)

	e := api.NewRouter(db, rdb, broadcasts, api.RouterConfig{
		JWTSecret: cfg.JWTSecret,
		DevMode:   cfg.Development(),
		TokenTTL:  tokenTTL,
	}, log)

	// --- Start the server ---
	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	// --- Wait for a shutdown signal ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}

// bootstrap creates indexes and seeds the default categories and settings on
// first run. The settings document doubles as the install marker: once it
// exists the seed never runs again, so user deletions of the seeded
// categories stick.
func bootstrap(ctx context.Context, db *mongo.Database, log zerolog.Logger) error {
	categoryRepo := mongostore.NewCategoryRepository(db)
	connectionRepo := mongostore.NewConnectionRepository(db)
	settingsRepo := mongostore.NewSettingsRepository(db)

	if err := categoryRepo.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("category indexes: %w", err)
	}
	if err := connectionRepo.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("connection indexes: %w", err)
	}

	installed, err := settingsRepo.Exists(ctx)
	if err != nil {
		return fmt.Errorf("check install marker: %w", err)
	}
	if installed {
		return nil
	}

	for _, cat := range domain.DefaultCategories() {
		if err := categoryRepo.Insert(ctx, &cat); err != nil {
			return fmt.Errorf("seed category %s: %w", cat.ID, err)
		}
	}
	if err := settingsRepo.Put(ctx, domain.DefaultSettings()); err != nil {
		return fmt.Errorf("seed settings: %w", err)
	}

	log.Info().Int("categories", len(domain.DefaultCategories())).Msg("seeded default data")
	return nil
}
