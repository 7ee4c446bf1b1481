package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sunileswar-collab/BusinessCheck/internal/handlers"
)

// Register mounts every handler under /api and adds the health probe.
func Register(router *gin.Engine, h *handlers.AppHandlers) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	h.Auth.RegisterRoutes(api)
	h.Company.RegisterRoutes(api)
	h.Files.RegisterRoutes(api)
}
