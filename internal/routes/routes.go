package routes

import (
	"net/http"

	"gamestore_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts every HTTP route under /api/v1.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.UserHandler.RegisterRoutes(api)
		appHandlers.GeoHandler.RegisterRoutes(api)
		appHandlers.GameHandler.RegisterRoutes(api)
		appHandlers.CategoryHandler.RegisterRoutes(api)
		appHandlers.SubscriptionHandler.RegisterRoutes(api)
		appHandlers.CartHandler.RegisterRoutes(api)
		appHandlers.LibraryHandler.RegisterRoutes(api)
		appHandlers.AdminHandler.RegisterRoutes(api)
	}
}
