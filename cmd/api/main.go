package main

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/interimquest/repo-agent/internal/config"
	"github.com/interimquest/repo-agent/internal/database"
	"github.com/interimquest/repo-agent/internal/handlers"
	"github.com/interimquest/repo-agent/internal/services"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Environment: .env is optional, real deployments inject vars directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Configuration error: ", err)
	}

	// 2. Extraction pipeline (Gemini client is created once and reused).
	ctx := context.Background()
	extractor, err := services.NewGeminiExtractor(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatal("Failed to initialize extractor: ", err)
	}
	extraction := services.NewExtractionService(extractor)

	// 3. Persistence: optional. Without DATABASE_URL the service still
	// serves /extract; /validate and /preferences report the missing
	// configuration.
	var store handlers.PreferenceStore
	if cfg.DatabaseURL != "" {
		db, err := database.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Fatal("Failed to connect to database: ", err)
		}
		store = services.NewPreferenceService(db)
	} else {
		log.Println("DATABASE_URL not set; /validate and /preferences are disabled")
	}

	handler := handlers.NewPreferenceHandler(extraction, store, cfg.GeminiModel)

	// 4. Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// 5. Routes
	r.GET("/health", handler.Health)
	r.POST("/extract", handler.Extract)
	r.POST("/validate", handler.Validate)
	r.GET("/preferences", handler.Preferences)

	log.Println("Server starting on port " + cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start: ", err)
	}
}
