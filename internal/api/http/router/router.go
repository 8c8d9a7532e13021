package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/shopsense/internal/api/http/handler"
	"github.com/dtroode/shopsense/internal/api/http/middleware"
	"github.com/dtroode/shopsense/internal/logger"
)

// Router assembles the HTTP routes from the handlers.
type Router struct {
	catalog   *handler.Catalog
	analytics *handler.Analytics
	logger    *logger.Logger
}

// New creates a new Router.
func New(catalog *handler.Catalog, analytics *handler.Analytics, logger *logger.Logger) *Router {
	return &Router{
		catalog:   catalog,
		analytics: analytics,
		logger:    logger,
	}
}

// Register builds the gin engine with middleware and all routes.
func (r *Router) Register() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery(), middleware.Logging(r.logger))

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api")
	{
		api.GET("/users/:id", r.catalog.GetUser)
		api.GET("/products/:id", r.catalog.GetProduct)

		api.GET("/users/:id/profile", r.analytics.GetProfile)
		api.GET("/users/:id/recommendations", r.analytics.GetRecommendations)
		api.GET("/users/:id/similar", r.analytics.GetSimilarUsers)
		api.GET("/users/:id/next-purchase", r.analytics.GetNextPurchase)
		api.GET("/search", r.analytics.EnhancedSearch)
	}

	return engine
}
