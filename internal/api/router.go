package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-content-api/internal/config"
	"github.com/portfolio-content-api/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(requestIDMiddleware())
	router.Use(loggingMiddleware(log))
	router.Use(metricsMiddleware())
	router.Use(corsMiddleware(cfg.Server.AllowOrigin))

	// Handlers
	blogHandler := NewBlogHandler(services, log)
	projectHandler := NewProjectHandler(services, log)
	contentHandler := NewContentHandler(services, log)

	// Health, stats and metrics
	router.GET("/health", healthCheck)
	router.GET("/stats", statsHandler(services, log))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiGroup := router.Group("/api")
	{
		blog := apiGroup.Group("/blog")
		{
			blog.GET("", blogHandler.ListPosts)
			blog.GET("/categories", blogHandler.Categories)
			blog.GET("/tags", blogHandler.Tags)
			blog.GET("/posts/:slug", blogHandler.GetPost)
		}

		apiGroup.GET("/search", blogHandler.Search)

		projects := apiGroup.Group("/projects")
		{
			projects.GET("", projectHandler.ListProjects)
			projects.GET("/:slug", projectHandler.GetProject)
		}

		pages := apiGroup.Group("/pages")
		{
			pages.GET("/hero", contentHandler.Hero)
			pages.GET("/about", contentHandler.About)
			pages.GET("/contact", contentHandler.Contact)
		}

		apiGroup.GET("/content/*path", contentHandler.GetDocument)

		// Sync job status only exists with the database mirror
		if services.Sync != nil {
			syncHandler := NewSyncHandler(services, log)
			apiGroup.GET("/sync/jobs/:job_id", syncHandler.GetJob)
		}
	}

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "portfolio-content-api",
	})
}

// statsHandler returns content collection counts
func statsHandler(services *service.Services, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := services.Stats.Stats(c.Request.Context())
		if err != nil {
			respondError(c, log, err, "Failed to compute stats")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"content":   stats,
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}
