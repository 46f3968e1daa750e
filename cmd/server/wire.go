//go:build wireinject

package main

import (
	"context"

	"github.com/google/wire"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"video-catalog-api/internal/config"
	categorydomain "video-catalog-api/internal/domain/category"
	videodomain "video-catalog-api/internal/domain/video"
	"video-catalog-api/internal/infrastructure/database"
	"video-catalog-api/internal/infrastructure/logger"
	categoryrepo "video-catalog-api/internal/infrastructure/repository/category"
	videorepo "video-catalog-api/internal/infrastructure/repository/video"
	"video-catalog-api/internal/interfaces/httpserver"
	"video-catalog-api/internal/webhook"
)

var catalogSet = wire.NewSet(
	videorepo.NewPostgresRepository,
	wire.Bind(new(videodomain.Repository), new(*videorepo.PostgresRepository)),
	categoryrepo.NewPostgresRepository,
	wire.Bind(new(categorydomain.Repository), new(*categoryrepo.PostgresRepository)),
	categorydomain.NewService,
	newCategoryResolver,
	newNotifier,
	wire.Bind(new(webhook.Notifier), new(*webhook.HTTPNotifier)),
	videodomain.NewService,
)

// BuildApplication demonstrates how to assemble the catalog service with Wire.
func BuildApplication(ctx context.Context) (*Application, error) {
	wire.Build(
		config.Load,
		logger.New,
		newDatabaseConfig,
		newGormDB,
		catalogSet,
		httpserver.New,
		NewApplication,
	)
	return nil, nil
}

func newDatabaseConfig(cfg *config.Config) database.Config {
	return database.Config{
		DSN:             cfg.DatabaseURL,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
	}
}

func newGormDB(ctx context.Context, cfg database.Config, log zerolog.Logger) (*gorm.DB, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(ctx, db, log); err != nil {
		return nil, err
	}
	return db, nil
}

func newCategoryResolver(categoryService categorydomain.Service) videodomain.CategoryResolver {
	return categoryService
}

func newNotifier(cfg *config.Config, log zerolog.Logger) *webhook.HTTPNotifier {
	return webhook.NewHTTPNotifier(cfg.WebhookURL, cfg.WebhookTimeout, log)
}
