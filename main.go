package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"marketplace/config"
	"marketplace/database"
	bookingRepoPkg "marketplace/database/repository/booking"
	serviceRepoPkg "marketplace/database/repository/service"
	userRepoPkg "marketplace/database/repository/user"
	"marketplace/handlers"
	"marketplace/middleware"
	"marketplace/routes"
	"marketplace/services/booking"
	"marketplace/services/catalog"
	"marketplace/services/user"
	"marketplace/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	db := database.Connect()
	authCache := utils.InitAuthCache()
	utils.StartHealthMonitor(authCache, db.Client())

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	userRepo := userRepoPkg.NewMongoUserRepo(db)
	serviceRepo := serviceRepoPkg.NewMongoServiceRepo(db)
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo(db)

	// Services.
	userService := &user.DefaultUserService{Repo: userRepo}
	if authCache != nil {
		userService.AuthCache = authCache
	}
	catalogService := &catalog.DefaultCatalogService{Repo: serviceRepo}
	bookingService := &booking.DefaultBookingService{Repo: bookingRepo, Services: serviceRepo}

	handlerBundle := handlers.NewHandlerBundle(userService, catalogService, bookingService)
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
