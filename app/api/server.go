package api

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

// NewServer creates a new HTTP server with all routes configured
func NewServer(handler *Handler) *gin.Engine {
	// Set Gin mode (can be controlled via GIN_MODE environment variable)
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// Middleware
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Formatter: func(param gin.LogFormatterParams) string {
			return fmt.Sprintf("%s - [%s] \"%s %s %s %d %s \"%s\" %s\"\n",
				param.ClientIP,
				param.TimeStamp.Format(time.RFC3339),
				param.Method,
				param.Path,
				param.Request.Proto,
				param.StatusCode,
				param.Latency,
				param.Request.UserAgent(),
				param.ErrorMessage,
			)
		},
	}))

	r.Use(gin.Recovery())

	// CORS middleware for API endpoints
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Routes
	setupRoutes(r, handler)

	return r
}

// setupRoutes configures all the application routes
func setupRoutes(r *gin.Engine, handler *Handler) {
	api := r.Group("/api")
	{
		api.GET("/blogs", handler.GetBlogs)
		api.GET("/blogs/sources", handler.GetSources)
		api.GET("/blogs/categories", handler.GetCategories)
		api.GET("/blogs/:id", handler.GetBlogDetail)

		api.POST("/refresh", handler.Refresh)
		api.GET("/job-status", handler.GetJobStatus)
		api.POST("/clear-cache", handler.ClearCache)

		api.POST("/auth/register", handler.Register)
		api.POST("/auth/login", handler.Login)
		api.POST("/auth/logout", handler.Logout)
		api.GET("/auth/me", handler.GetCurrentUser)

		user := api.Group("/user")
		user.Use(handler.requireSession())
		{
			user.GET("/sources", handler.GetUserSources)
			user.POST("/sources", handler.AddUserSource)
			user.DELETE("/sources/:id", handler.DeleteUserSource)
		}
	}

	// Health endpoint
	r.GET("/health", handler.GetHealth)

	// Root endpoint with basic information
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service":     "TechDigest",
			"description": "Tech blog aggregator with AI-generated article summaries",
			"endpoints": map[string]string{
				"blogs":      "/api/blogs?source=<id>&category=<id>&days=<n>",
				"detail":     "/api/blogs/<id>",
				"sources":    "/api/blogs/sources",
				"categories": "/api/blogs/categories",
				"refresh":    "/api/refresh (POST)",
				"job_status": "/api/job-status",
				"health":     "/health",
			},
		})
	})

	// Favicon handler (return 204 to avoid 404s)
	r.GET("/favicon.ico", func(c *gin.Context) {
		c.Status(204)
	})
}
