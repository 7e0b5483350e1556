package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/socialweb-app/backend/internal/router"
	"github.com/socialweb-app/backend/internal/views"
	"github.com/socialweb-app/backend/pkg/blobstore"
	"github.com/socialweb-app/backend/pkg/config"
	"github.com/socialweb-app/backend/validators"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connections
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize databases: %v", err)
	}
	defer db.CloseDB() // Ensure database connections are closed when main exits

	// Initialize the media blob store
	ctx := context.Background()
	blobs, err := blobstore.New(ctx, cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey,
		cfg.MinioBucket, cfg.MinioPublicURL, cfg.MinioUseSSL)
	if err != nil {
		log.Fatalf("Failed to initialize blob store: %v", err)
	}

	// Create Echo instance
	e := echo.New()

	// Page templates
	renderer, err := views.NewRenderer("web/templates/*.html")
	if err != nil {
		log.Fatalf("Failed to parse templates: %v", err)
	}
	e.Renderer = renderer

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, cfg, db, blobs)

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
