package transport

import (
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/ds124wfegd/digit-canvas/internal/transport/middleware"
)

func InitRoutes(handler *BoardHandler, templatesDir string) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.Logger())
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	api := router.Group("/api")
	{
		api.POST("/slots/:digit/strokes", handler.ApplyStroke)
		api.POST("/slots/:digit/clear", handler.ClearSlot)
		api.GET("/slots/:digit/preview", handler.Preview)
		api.POST("/clear", handler.ClearBoard)
		api.POST("/submit", handler.SubmitBatch)
	}

	router.Static("/static", templatesDir)

	router.GET("/", func(c *gin.Context) {
		handler.EnsureSession(c)
		c.File(filepath.Join(templatesDir, "index.html"))
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":     "ok",
			"service":    "digit-canvas",
			"configured": handler.service.Configured(),
		})
	})
	return router
}
