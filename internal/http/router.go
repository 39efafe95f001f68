package http

import (
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies, improving testability
// and reducing parameter count.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())

	if cfg.CORSAllowOrigin != "" {
		router.Use(CORSMiddleware(cfg.CORSAllowOrigin))
	}

	// Apply security headers to all responses
	router.Use(SecurityHeadersMiddleware())

	health := NewHealthController(cfg.Catalog, cfg.Version)
	phrases := NewPhraseController(cfg.Selector, cfg.Catalog)
	static := NewStaticController(cfg.StaticPath, cfg.IndexFile)

	ping := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	}

	// Every route answers HEAD as well, matching the Allow header of 405 responses
	readRoutes := map[string]gin.HandlerFunc{
		// Health endpoints
		"/health": health.Status,
		"/ping":   ping,

		// Phrase API
		"/api/phrase":       phrases.GetPhrase,
		"/api/difficulties": phrases.ListDifficulties,
	}
	for route, handler := range readRoutes {
		router.GET(route, handler)
		router.HEAD(route, handler)
	}

	// Front-end bundle
	router.GET("/", static.Index)
	router.HEAD("/", static.Index)
	router.NoRoute(static.Asset)

	return router
}
