package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ebook-backend/internal/shared/middleware"
	"ebook-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
		middleware.ClientIPMiddleware(),
	)

	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", healthCheckHandler(c))

		setupContentRoutes(v1, c)
		setupPDFRoutes(v1, c)
		setupStatsRoutes(v1, c)
		setupTestimonialRoutes(v1, c)
	}

	return router
}

// ========================================
// CONTENT ROUTES
// ========================================
func setupContentRoutes(v1 *gin.RouterGroup, c *container.Container) {
	ebook := v1.Group("/ebook")
	{
		ebook.GET("/content", c.ContentHandler.GetContent)
	}
}

// ========================================
// PDF ROUTES
// ========================================
func setupPDFRoutes(v1 *gin.RouterGroup, c *container.Container) {
	v1.POST("/generate-pdf", c.PDFHandler.GeneratePDF)
	v1.GET("/download-pdf/:token", c.PDFHandler.DownloadPDF)
}

// ========================================
// STATS ROUTES
// ========================================
func setupStatsRoutes(v1 *gin.RouterGroup, c *container.Container) {
	v1.GET("/stats", c.StatsHandler.GetStatistics)
}

// ========================================
// TESTIMONIAL ROUTES
// ========================================
func setupTestimonialRoutes(v1 *gin.RouterGroup, c *container.Container) {
	v1.GET("/testimonials", c.TestimonialHandler.List)
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
			"services":  gin.H{},
		}

		// Check database
		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		// Check redis
		redisStatus := "ok"
		if appCtx.Cache == nil {
			redisStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
