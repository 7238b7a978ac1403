// File: skymate/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"skymate/config"
	"skymate/database"
	bookingRepoPkg "skymate/database/repository/booking"
	idempotencyRepoPkg "skymate/database/repository/idempotency"
	userRepoPkg "skymate/database/repository/user"
	"skymate/handlers"
	"skymate/middleware"
	"skymate/obs"
	"skymate/routes"
	"skymate/services/booking"
	"skymate/services/flights"
	"skymate/services/idempotency"
	"skymate/services/user"
	"skymate/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	metrics := obs.NewMetrics(prometheus.NewRegistry())

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.MetricsMiddleware(metrics))
	router.Use(middleware.RateLimitMiddleware(metrics))
	router.Use(cors.Default())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	idemRepo := idempotencyRepoPkg.NewMongoIdempotencyRepo()

	// The flight provider is chosen once here and injected everywhere it is
	// needed; "mock" is the only backend shipped with the prototype.
	var provider flights.Provider
	switch config.AppConfig.FlightProvider {
	default:
		provider = flights.NewMockProvider()
	}
	provider = flights.NewCachedProvider(
		provider,
		utils.GetCacheClient(),
		time.Duration(config.AppConfig.SearchCacheTTL)*time.Second,
		logger,
	)

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:     bookingRepo,
		Users:    userRepo,
		Provider: provider,
		Logger:   logger,
	}
	guard := idempotency.NewGuard(idemRepo, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Flights:  handlers.NewFlightsHandler(provider, metrics, logger),
		Bookings: handlers.NewBookingHandler(bookingService, guard, metrics, logger),
		Users:    handlers.NewUserHandler(userService, logger),
	}

	routes.RegisterRoutes(router, handlerBundle, metrics)

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
