package routes

import (
	"net/http"
	"time"

	"fleetdesk/handlers"
	"fleetdesk/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterFleetRoutes registers the vehicle availability endpoints. Authentication
// is optional on purpose: anonymous requests go through and resolve to zero
// allowed categories downstream.
func RegisterFleetRoutes(r *gin.Engine, fh *handlers.FleetHandler) {
	api := r.Group("/api/fleet")
	{
		api.Use(middleware.OptionalAuthMiddleware())
		api.GET("/available", fh.AvailableVehiclesHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Fleetdesk"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, fh *handlers.FleetHandler) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterFleetRoutes(r, fh)
	RegisterHealthRoute(r)
}
