// File: wheelify/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wheelify/config"
	"wheelify/cron"
	"wheelify/database"
	reservationRepoPkg "wheelify/database/repository/reservation"
	vehicleRepoPkg "wheelify/database/repository/vehicle"
	"wheelify/handlers"
	"wheelify/middleware"
	"wheelify/routes"
	"wheelify/services/booking"
	"wheelify/services/tasks"
	"wheelify/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	reservationRepo := reservationRepoPkg.NewMongoReservationRepo()
	vehicleRepo := vehicleRepoPkg.NewMongoVehicleRepo()
	if mongoRepo, ok := reservationRepo.(*reservationRepoPkg.MongoReservationRepo); ok {
		if err := mongoRepo.EnsureIndexes(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure reservation indexes: %v", err)
		}
	}

	// Session and checkout state live in Redis with a rolling TTL.
	sessionTTL := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
	store := booking.NewRedisSessionStore(
		utils.GetSessionCacheClient(),
		utils.GetCheckoutCacheClient(),
		sessionTTL,
	)

	// Services.
	sessionService := &booking.DefaultSessionService{
		Store:    store,
		Vehicles: vehicleRepo,
	}
	availabilityChecker := &booking.DefaultAvailabilityChecker{
		Reservations: reservationRepo,
	}

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer asynqClient.Close()

	checkoutService := &booking.DefaultCheckoutService{
		Store:        store,
		Reservations: reservationRepo,
		Payments:     booking.NewStripePaymentProcessor(logger),
		Expiry:       &tasks.AsynqExpiryScheduler{Client: asynqClient},
		HoldWindow:   time.Duration(config.AppConfig.PaymentHoldMinutes) * time.Minute,
		Currency:     config.AppConfig.Currency,
	}

	// Background worker releasing unpaid reservations after the hold window.
	cron.InitExpiryWorker(reservationRepo)

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Booking:      handlers.NewBookingHandler(sessionService, availabilityChecker, logger),
		Checkout:     handlers.NewCheckoutHandler(checkoutService, logger),
		Vehicles:     handlers.NewVehicleHandler(vehicleRepo, logger),
		Reservations: handlers.NewReservationHandler(reservationRepo, logger),
	}

	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetSessionCacheClient(), utils.GetCheckoutCacheClient()},
		database.MongoClient,
	)

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
