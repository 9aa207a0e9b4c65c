package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"random-number-api/internal/config"
	"random-number-api/internal/middleware"
	"random-number-api/internal/models"
	"random-number-api/internal/services"
)

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	RandomService services.RandomService
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, cfg *RouterConfig) {
	// Create handlers
	randomHandler := NewRandomHandler(cfg.RandomService)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, models.HealthCheck{
			Status:    "healthy",
			Timestamp: time.Now().UTC(),
			Version:   "1.0.1",
			Mode:      config.GetDeploymentMode(),
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Random number routes
		random := v1.Group("/random")
		{
			random.GET("", randomHandler.GetRandomNumber)
			random.GET("/draw", randomHandler.GetDraw)
			random.GET("/sample", randomHandler.SampleDistribution)
		}
	}
}

// SetupMiddleware configures global middleware
func SetupMiddleware(router *gin.Engine) {
	// Request ID and correlation ID
	router.Use(middleware.RequestID())
	router.Use(middleware.CorrelationID())

	// CORS
	router.Use(middleware.CORS())

	// Security headers
	router.Use(middleware.SecurityHeaders())

	// Rate limiting (100 requests per second, burst of 200)
	router.Use(middleware.RateLimiter(100, 200))

	// Structured logging
	router.Use(middleware.StructuredLogger())

	// Performance monitoring (log requests over 1 second)
	router.Use(middleware.PerformanceMonitor(time.Second))

	// Error tracking
	router.Use(middleware.ErrorTracker())

	// Centralized error handling
	router.Use(middleware.ErrorHandler())
}

// SetupDevelopmentRoutes adds development-only routes
func SetupDevelopmentRoutes(router *gin.Engine) {
	dev := router.Group("/dev")
	{
		// Configuration info
		dev.GET("/config", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"range": gin.H{
					"min": models.MinValue,
					"max": models.MaxValue,
				},
				"mode":        config.GetDeploymentMode(),
				"api_version": "1.0.1",
				"swagger_url": "/swagger/index.html",
			})
		})
	}
}
