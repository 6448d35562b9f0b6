package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"agrirent/config"
	"agrirent/cron"
	"agrirent/database"
	bookingRepo "agrirent/database/repository/booking"
	listingRepo "agrirent/database/repository/listing"
	userRepoPkg "agrirent/database/repository/user"
	"agrirent/handlers"
	"agrirent/routes"
	"agrirent/services/booking"
	ai "agrirent/services/intelligence"
	"agrirent/services/user"
	"agrirent/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	stripe.Key = config.AppConfig.StripeKey

	// Repositories.
	bkRepo := bookingRepo.NewMongoBookingRepo()
	lstRepo := listingRepo.NewMongoListingRepo()
	usrRepo := userRepoPkg.NewMongoUserRepo()
	if err := bkRepo.EnsureIndexes(); err != nil {
		logger.Fatal("main: failed to ensure booking indexes", zap.Error(err))
	}
	if err := lstRepo.EnsureIndexes(); err != nil {
		logger.Fatal("main: failed to ensure listing indexes", zap.Error(err))
	}
	if err := usrRepo.EnsureIndexes(); err != nil {
		logger.Fatal("main: failed to ensure user indexes", zap.Error(err))
	}

	// Services.
	reminderScheduler := cron.NewAsynqReminderScheduler()
	defer reminderScheduler.Close()
	bookingService := booking.NewDefaultBookingService(bkRepo, lstRepo, reminderScheduler)

	var interpreter ai.QueryInterpreter
	geminiClient, err := ai.NewGeminiClient(config.AppConfig.GeminiAPIKey)
	if err != nil {
		logger.Warn("main: query interpreter disabled, search falls back to keywords", zap.Error(err))
	} else {
		cache := ai.NewInterpretationCache(utils.GetCacheClient(), 24*time.Hour)
		interpreter = ai.NewDefaultQueryInterpreter(geminiClient, cache)
	}

	// Handler wiring.
	handlers.UserService = &user.DefaultUserService{Repo: usrRepo}
	handlers.ListingRepo = lstRepo
	handlers.BookingService = bookingService
	handlers.PaymentProvider = booking.NewStripePaymentHandler(logger)
	handlers.QueryInterpreter = interpreter

	// Background reminder worker.
	cron.InitReminderWorker()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	routes.RegisterRoutes(router)

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
