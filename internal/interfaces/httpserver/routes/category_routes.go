package routes

import (
	"github.com/gin-gonic/gin"

	"video-catalog-api/internal/interfaces/httpserver/handlers"
)

func registerCategoryRoutes(router gin.IRoutes, handler *handlers.CategoryHandler) {
	router.GET("/categories", handler.List)
	router.POST("/categories", handler.Create)
}
