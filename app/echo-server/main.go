package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tripLogger/app/echo-server/router"
	"tripLogger/business/recommend"
	"tripLogger/business/trip"
	userService "tripLogger/business/user"
	"tripLogger/internal/middleware"
	psqlRepo "tripLogger/internal/repository/postgres"
	"tripLogger/internal/rest"
	"tripLogger/pkg/config"
	"tripLogger/pkg/database"
	"tripLogger/pkg/logger"
	"tripLogger/pkg/metrics"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting TripLogger", "version", cfg.App.Version)

	metrics.Init()

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", err)
	}

	logger.Info("Database connected successfully")

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStartup()

	if err := psqlRepo.Migrate(startupCtx, db); err != nil {
		logger.Fatal("Failed to migrate database", err)
	}

	// Init repo
	userRepo := psqlRepo.NewUserRepository(db)
	tripRepo := psqlRepo.NewTripRepository(db)
	destinationRepo := psqlRepo.NewDestinationRepository(db)

	if err := psqlRepo.SeedDestinations(startupCtx, db); err != nil {
		logger.Fatal("Failed to seed destinations", err)
	}
	if err := psqlRepo.SeedDemoUser(startupCtx, userRepo); err != nil {
		logger.Fatal("Failed to seed demo user", err)
	}

	catalog, err := recommend.LoadCatalog(startupCtx, destinationRepo)
	if err != nil {
		logger.Fatal("Failed to load destination catalog", err)
	}
	logger.Info("Destination catalog loaded", "size", catalog.Len())

	tripReader := psqlRepo.NewBreakerTripRepository(tripRepo, psqlRepo.BreakerConfig{
		Name:             "trip-history",
		MaxRequests:      cfg.Breaker.MaxRequests,
		Interval:         cfg.Breaker.Interval,
		Timeout:          cfg.Breaker.Timeout,
		FailureThreshold: cfg.Breaker.FailureThreshold,
	})

	// Init service
	userSvc := userService.NewUserService(userRepo, validator.New(), cfg.JWT.SecretKey, cfg.JWT.TTL)
	tripSvc := trip.NewTripService(tripRepo, catalog)
	recommendSvc := recommend.NewService(tripReader, catalog, recommend.Config{
		BudgetWeight:    cfg.Recommend.BudgetWeight,
		RatingWeight:    cfg.Recommend.RatingWeight,
		TopK:            cfg.Recommend.TopK,
		BudgetProximity: cfg.Recommend.BudgetProximity,
		RatingProximity: cfg.Recommend.RatingProximity,
	})

	// Init handler
	healthHandler := rest.NewHealthHandler(cfg.App.Name)
	userHandler := rest.NewUserHandler(userSvc, cfg.Server.RequestTimeout)
	tripHandler := rest.NewTripHandler(tripSvc, cfg.Server.RequestTimeout)
	recommendHandler := rest.NewRecommendationHandler(recommendSvc, cfg.Server.RequestTimeout)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.TraceID())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.CORS.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	authRequired := middleware.AuthMiddleware(cfg.JWT.SecretKey)

	router.SetupHealthRoutes(e, healthHandler)
	router.SetupAuthRoutes(e, userHandler, authRequired)
	router.SetupTripRoutes(e, tripHandler, authRequired)
	router.SetupRecommendationRoutes(e, recommendHandler, authRequired)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	logger.Info("Server stopped")
}
