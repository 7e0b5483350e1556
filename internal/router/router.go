package router

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/socialweb-app/backend/internal/handlers"
	"github.com/socialweb-app/backend/internal/middleware"
	"github.com/socialweb-app/backend/internal/models"
	"github.com/socialweb-app/backend/internal/repositories"
	"github.com/socialweb-app/backend/internal/services"
	"github.com/socialweb-app/backend/internal/session"
	"github.com/socialweb-app/backend/pkg/blobstore"
	"github.com/socialweb-app/backend/pkg/config"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, cfg *config.Config, db *config.DB, blobs *blobstore.Store) {
	// AutoMigrate PostgreSQL models
	err := db.Postgres.AutoMigrate(
		&models.User{},
		&models.Follow{},
		&models.Comment{},
		&models.PostLike{},
		&models.CommentLike{},
		&models.Notification{},
		&models.Message{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(db.Postgres)
	postRepo := repositories.NewMongoPostRepository(db.Mongo.Database(cfg.MongoDatabase))
	commentRepo := repositories.NewPostgresCommentRepository(db.Postgres)
	postLikeRepo := repositories.NewPostgresPostLikeRepository(db.Postgres)
	commentLikeRepo := repositories.NewPostgresCommentLikeRepository(db.Postgres)
	followRepo := repositories.NewPostgresFollowRepository(db.Postgres)
	notificationRepo := repositories.NewPostgresNotificationRepository(db.Postgres)
	messageRepo := repositories.NewPostgresMessageRepository(db.Postgres)

	// --- Initialize Services ---
	notificationService := services.NewNotificationService(notificationRepo, commentRepo, postRepo, userRepo)
	socialService := services.NewSocialService(userRepo, followRepo, notificationService)
	interactionService := services.NewInteractionService(postRepo, commentRepo, postLikeRepo, commentLikeRepo, userRepo, notificationService)
	feedService := services.NewFeedService(postRepo, followRepo, userRepo, postLikeRepo, commentRepo)
	messagingService := services.NewMessagingService(messageRepo, userRepo, followRepo)

	// --- Session authentication ---
	sessionTTL := time.Duration(cfg.SessionTTLHours) * time.Hour
	sessions := session.NewStore(db.Redis, sessionTTL)
	sessionAuth := middleware.SessionAuth(sessions, userRepo)
	log.Println("Session authentication configured.")

	// --- Unprotected routes for authentication ---
	authHandler := handlers.NewAuthHandler(userRepo, sessions, sessionTTL)
	authHandler.RegisterAuthRoutes(e)
	log.Println("Auth routes configured.")

	// --- Protected JSON API ---
	api := e.Group("/api")
	api.Use(sessionAuth)
	log.Println("Session middleware applied to /api group.")

	// User profile routes
	userHandler := handlers.NewUserHandler(userRepo, socialService, notificationService, blobs)
	userHandler.RegisterUserRoutes(api)
	userHandler.RegisterUserPages(e, sessionAuth)
	log.Println("User profile routes configured.")

	// Post and feed routes
	postHandler := handlers.NewPostHandler(postRepo, feedService, notificationService, blobs)
	postHandler.RegisterPostRoutes(api)
	postHandler.RegisterPostPages(e, sessionAuth)
	log.Println("Post routes configured.")

	// Follow routes
	followHandler := handlers.NewFollowHandler(socialService)
	followHandler.RegisterFollowRoutes(api)
	log.Println("Follow routes configured.")

	// Comment routes
	commentHandler := handlers.NewCommentHandler(interactionService)
	commentHandler.RegisterCommentRoutes(api)
	log.Println("Comment routes configured.")

	// Like routes
	likeHandler := handlers.NewLikeHandler(interactionService)
	likeHandler.RegisterLikeRoutes(api)
	log.Println("Like routes configured.")

	// Chat routes
	chatHandler := handlers.NewChatHandler(messagingService, notificationService, blobs)
	chatHandler.RegisterChatRoutes(api)
	chatHandler.RegisterChatPages(e, sessionAuth)
	log.Println("Chat routes configured.")

	// Notification routes
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	notificationHandler.RegisterNotificationRoutes(api)
	notificationHandler.RegisterNotificationPages(e, sessionAuth)
	log.Println("Notification routes configured.")

	log.Println("All routes configured.")
}
