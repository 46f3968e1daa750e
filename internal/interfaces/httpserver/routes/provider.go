// Package routes attaches the catalog API surface to the gin engine. The
// gallery front end consumes the endpoints unversioned, so everything hangs
// off the root.
package routes

import (
	"github.com/gin-gonic/gin"

	"video-catalog-api/internal/interfaces/httpserver/handlers"
)

// Provider coordinates all route registrations.
type Provider struct {
	handlers *handlers.Provider
}

// NewProvider constructs the route provider.
func NewProvider(handlerProvider *handlers.Provider) *Provider {
	return &Provider{handlers: handlerProvider}
}

// Register attaches all routes to the gin engine.
func (p *Provider) Register(engine *gin.Engine) {
	registerVideoRoutes(engine, p.handlers.Video)
	registerCategoryRoutes(engine, p.handlers.Category)
}
