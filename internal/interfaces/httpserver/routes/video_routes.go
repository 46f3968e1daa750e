package routes

import (
	"github.com/gin-gonic/gin"

	"video-catalog-api/internal/interfaces/httpserver/handlers"
)

func registerVideoRoutes(router gin.IRoutes, handler *handlers.VideoHandler) {
	router.GET("/videos", handler.List)
	router.GET("/videos/:id", handler.Get)
	router.POST("/videos", handler.Create)
	router.PUT("/videos/:id", handler.Update)
	router.DELETE("/videos/:id", handler.Delete)
}
