package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/sports-ground-booking/internal/config"
	"github.com/iliyamo/sports-ground-booking/internal/database"
	"github.com/iliyamo/sports-ground-booking/internal/handler"
	"github.com/iliyamo/sports-ground-booking/internal/logging"
	"github.com/iliyamo/sports-ground-booking/internal/metrics"
	"github.com/iliyamo/sports-ground-booking/internal/middleware"
	"github.com/iliyamo/sports-ground-booking/internal/queue"
	"github.com/iliyamo/sports-ground-booking/internal/repository"
	"github.com/iliyamo/sports-ground-booking/internal/router"
	"github.com/iliyamo/sports-ground-booking/internal/service"
	"github.com/iliyamo/sports-ground-booking/internal/session"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.New(cfg.Env, cfg.LogLevel)

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		logger.Fatal().Err(err).Msg("database connection failed")
	}
	defer db.Close()

	// Sessions live in Redis, so the server cannot run without it.
	rdb := config.NewRedisClient()
	if rdb == nil {
		logger.Fatal().Msg("redis connection failed")
	}
	defer rdb.Close()

	metrics.Register()

	grounds := repository.NewGroundRepo(db)
	slots := repository.NewSlotRepo(db)
	users := repository.NewUserRepo(db)
	bookings := repository.NewBookingRepo(db)
	payments := repository.NewPaymentRepo(db)
	reports := repository.NewReportRepo(db)

	sessions := session.NewStore(rdb, cfg.SessionSecret, time.Duration(cfg.SessionTTLHours)*time.Hour)

	authSvc := service.NewAuthService(users, cfg.BcryptCost, logger)
	bookingSvc := service.NewBookingService(bookings, slots, grounds, queue.NewPublisher(), logger)
	paymentSvc := service.NewPaymentService(payments, bookings, logger)
	reportSvc := service.NewReportService(reports, grounds, logger)

	seedCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := authSvc.EnsureAdmin(seedCtx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		logger.Fatal().Err(err).Msg("admin seed failed")
	}
	cancel()

	go queue.StartBookingConsumer()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.Use(middleware.Metrics())
	e.Use(middleware.RateLimit(config.LoadRateLimitConfig(), rdb))

	cache := middleware.ResponseCache(config.LoadCacheConfig(), rdb)

	authHandler := handler.NewAuthHandler(authSvc, users, sessions)
	groundHandler := handler.NewGroundHandler(grounds)
	slotHandler := handler.NewSlotHandler(slots, grounds)
	userHandler := handler.NewUserHandler(users, cfg.BcryptCost)
	bookingHandler := handler.NewBookingHandler(bookingSvc)
	paymentHandler := handler.NewPaymentHandler(paymentSvc)
	reportHandler := handler.NewReportHandler(reportSvc)

	router.RegisterSystem(e)
	router.RegisterAuth(e, authHandler, sessions)
	router.RegisterCatalogue(e, groundHandler, slotHandler, cache)
	router.RegisterAdminCatalogue(e, groundHandler, slotHandler, sessions)
	router.RegisterUsers(e, userHandler, sessions)
	router.RegisterBookings(e, bookingHandler, sessions)
	router.RegisterPayments(e, paymentHandler, sessions)
	router.RegisterReports(e, reportHandler, sessions)

	logger.Info().Str("port", cfg.Port).Msg("server starting")
	if err := e.Start(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
