package main

import (
	"log"
	"net/http"

	"gamecollection/config"
	"gamecollection/handlers"
	"gamecollection/models"
	"gamecollection/repository"
	"gamecollection/routes"
	"gamecollection/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database models
	err = db.AutoMigrate(
		&models.User{},
		&models.Game{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	gameRepo := repository.NewGameRepository(db)

	// Initialize services
	sessions := services.NewSessionService()
	authService := services.NewAuthService(userRepo)
	gameService := services.NewGameService(gameRepo, userRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, sessions)
	gameHandler := handlers.NewGameHandler(gameService)

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, _ interface{}) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Internal Server Error",
		})
	}))

	// Setup routes
	routes.SetupRoutes(router, authHandler, gameHandler, sessions)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
