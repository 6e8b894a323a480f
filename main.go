// File: fleetdesk/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fleetdesk/config"
	"fleetdesk/database"
	accessRepo "fleetdesk/database/repository/access"
	bookingRepo "fleetdesk/database/repository/booking"
	driverRepo "fleetdesk/database/repository/driver"
	userRepoPkg "fleetdesk/database/repository/user"
	vehicleRepo "fleetdesk/database/repository/vehicle"
	"fleetdesk/handlers"
	"fleetdesk/middleware"
	"fleetdesk/routes"
	"fleetdesk/services/fleet"
	"fleetdesk/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	accRepo := accessRepo.NewMongoAccessRuleRepo()
	bkgRepo := bookingRepo.NewMongoBookingRepo()
	vehRepo := vehicleRepo.NewMongoVehicleRepo()
	drvRepo := driverRepo.NewMongoDriverRepo()

	// services.
	fleetService := &fleet.DefaultFleetService{
		UserRepo:    userRepo,
		AccessRepo:  accRepo,
		BookingRepo: bkgRepo,
		VehicleRepo: vehRepo,
		DriverRepo:  drvRepo,
	}
	fleetHandler := handlers.NewFleetHandler(fleetService)

	// Register routes.
	routes.RegisterRoutes(router, fleetHandler)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
