// File: tourhub/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tourhub/config"
	"tourhub/database"
	bookingRepoPkg "tourhub/database/repository/booking"
	businessRepoPkg "tourhub/database/repository/business"
	tourRepoPkg "tourhub/database/repository/tour"
	userRepoPkg "tourhub/database/repository/user"
	"tourhub/handlers"
	"tourhub/middleware"
	"tourhub/routes"
	"tourhub/services/booking"
	"tourhub/services/business"
	"tourhub/services/tour"
	"tourhub/services/user"
	"tourhub/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.StartHealthMonitor(database.MongoClient, utils.GetCacheClient())

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	businessRepo := businessRepoPkg.NewMongoBusinessRepo()
	tourRepo := tourRepoPkg.NewMongoTourRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()

	// services.
	userService := &user.DefaultUserService{Repo: userRepo}
	businessService := &business.DefaultBusinessService{Repo: businessRepo}
	tourService := &tour.DefaultTourService{Repo: tourRepo, Cache: utils.GetCacheClient()}
	bookingService := &booking.DefaultBookingService{Repo: bookingRepo, TourRepo: tourRepo}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo:     userRepo,
		BusinessRepo: businessRepo,

		Auth:    handlers.NewAuthHandler(userService),
		Tour:    handlers.NewTourHandler(tourService),
		Booking: handlers.NewBookingHandler(bookingService),

		BusinessAuth:    handlers.NewBusinessAuthHandler(businessService),
		BusinessTour:    handlers.NewBusinessTourHandler(tourService),
		BusinessBooking: handlers.NewBusinessBookingHandler(bookingService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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
