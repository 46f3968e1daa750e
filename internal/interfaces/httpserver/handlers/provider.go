package handlers

import (
	"github.com/rs/zerolog"

	"video-catalog-api/internal/domain/category"
	"video-catalog-api/internal/domain/video"
)

// Provider wires all HTTP handlers for dependency injection.
type Provider struct {
	Video    *VideoHandler
	Category *CategoryHandler
}

// NewProvider constructs the handler provider with domain services.
func NewProvider(videoService video.Service, categoryService category.Service, log zerolog.Logger) *Provider {
	return &Provider{
		Video:    NewVideoHandler(videoService, log),
		Category: NewCategoryHandler(categoryService, log),
	}
}
