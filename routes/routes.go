package routes

import (
	"net/http"

	"gamecollection/handlers"
	"gamecollection/middleware"
	"gamecollection/services"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	authHandler *handlers.AuthHandler,
	gameHandler *handlers.GameHandler,
	sessions *services.SessionService,
) {
	// Logout lives at the top level and redirects, it is not part of the
	// JSON API surface.
	router.GET("/logout", authHandler.Logout)

	// API routes
	api := router.Group("/api")
	{
		// Auth routes (public)
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)

		// Protected catalog routes
		games := api.Group("/games")
		games.Use(middleware.Auth(sessions))
		{
			games.GET("", gameHandler.ListGames)
			games.POST("", gameHandler.AddGame)
			games.DELETE("", gameHandler.DeleteGame)
		}
	}

	// Unmatched paths and unsupported methods both report Not Found.
	router.HandleMethodNotAllowed = true
	notFound := func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Not Found"})
	}
	router.NoRoute(notFound)
	router.NoMethod(notFound)
}
