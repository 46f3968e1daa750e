package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"video-catalog-api/internal/config"
	categorydomain "video-catalog-api/internal/domain/category"
	videodomain "video-catalog-api/internal/domain/video"
	"video-catalog-api/internal/infrastructure/database"
	"video-catalog-api/internal/infrastructure/logger"
	"video-catalog-api/internal/infrastructure/observability"
	categoryrepo "video-catalog-api/internal/infrastructure/repository/category"
	videorepo "video-catalog-api/internal/infrastructure/repository/video"
	"video-catalog-api/internal/interfaces/httpserver"
	"video-catalog-api/internal/webhook"
)

// @title Video Catalog API
// @version 1.0
// @description Catalog service for videos and their categories with filtering and pagination.
// @BasePath /
type Application struct {
	httpServer *httpserver.HTTPServer
	log        zerolog.Logger
}

func NewApplication(httpServer *httpserver.HTTPServer, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		log:        log,
	}
}

func (a *Application) Start(ctx context.Context) error {
	return a.httpServer.Run(ctx)
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize observability")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown telemetry")
		}
	}()

	db, err := database.Connect(database.Config{
		DSN:             cfg.DatabaseURL,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}

	if err := database.Migrate(ctx, db, log); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	categoryRepository := categoryrepo.NewPostgresRepository(db)
	categoryService := categorydomain.NewService(categoryRepository)

	notifier := webhook.NewHTTPNotifier(cfg.WebhookURL, cfg.WebhookTimeout, log)

	videoRepository := videorepo.NewPostgresRepository(db)
	videoService := videodomain.NewService(videoRepository, categoryService, notifier, log)

	httpServer := httpserver.New(cfg, log, videoService, categoryService)
	app := NewApplication(httpServer, log)

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
