package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/verbquiz/api/internal/catalog"
	"github.com/verbquiz/api/internal/config"
	"github.com/verbquiz/api/internal/database"
	"github.com/verbquiz/api/internal/handler"
	"github.com/verbquiz/api/internal/middleware"
	"github.com/verbquiz/api/internal/service"
)

func main() {
	godotenv.Load()
	cfg := config.Load()

	// Initialize database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto migrate
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Seed the verb catalog on first run
	if err := database.Seed(db); err != nil {
		log.Fatalf("Failed to seed verbs: %v", err)
	}

	// Load the verb catalog
	verbCatalog, err := catalog.New(db)
	if err != nil {
		log.Fatalf("Failed to load verb catalog: %v", err)
	}

	// Initialize services
	lifecycle := service.NewLifecycle(db, verbCatalog)
	reporting := service.NewReporting(db)

	// Initialize handlers
	verbHandler := handler.NewVerbHandler(verbCatalog)
	sessionHandler := handler.NewSessionHandler(lifecycle)
	reportHandler := handler.NewReportHandler(reporting)

	// Setup router
	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(middleware.MetricsMiddleware())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	r.LoadHTMLGlob(cfg.TemplateGlob)

	// Health check
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "version": config.Version})
	})

	// Prometheus metrics
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API routes
	api := r.Group("/api")
	{
		// Verbs
		api.GET("/verbs", verbHandler.List)

		// Sessions
		api.POST("/sessions", sessionHandler.Create)
		api.GET("/sessions/pending", sessionHandler.Pending)
		api.PUT("/sessions/:id", sessionHandler.Complete)
		api.PUT("/sessions/:id/pause", sessionHandler.Pause)
	}

	// Parent dashboard
	r.GET("/suivi", reportHandler.Suivi)

	log.Printf("API server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
