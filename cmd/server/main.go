package main

import (
	"log"
	"net/http"

	_ "festivo/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"festivo/internal/auth"
	"festivo/internal/cache"
	"festivo/internal/config"
	"festivo/internal/db"
	"festivo/internal/handler"
	"festivo/internal/model"
	"festivo/internal/repository"
	"festivo/internal/router"
	"festivo/internal/service"
)

// @title Festivo Marketplace API
// @version 1.0
// @description Event-services marketplace API: waitlist, providers, bookings, messages and reviews.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	var (
		userRepo     repository.UserRepository
		businessRepo repository.BusinessRepository
		bookingRepo  repository.BookingRepository
		messageRepo  repository.MessageRepository
		reviewRepo   repository.ReviewRepository
		waitlistRepo repository.WaitlistRepository
	)

	switch cfg.StorageDriver {
	case config.StorageDriverMySQL:
		gormDB, err := db.NewMySQL(cfg.MySQLDSN)
		if err != nil {
			log.Fatalf("database init: %v", err)
		}
		if err := gormDB.AutoMigrate(
			&model.User{},
			&model.Business{},
			&model.Booking{},
			&model.Message{},
			&model.Review{},
			&model.WaitlistEntry{},
		); err != nil {
			log.Fatalf("auto-migrate: %v", err)
		}
		userRepo = repository.NewUserRepository(gormDB)
		businessRepo = repository.NewBusinessRepository(gormDB)
		bookingRepo = repository.NewBookingRepository(gormDB)
		messageRepo = repository.NewMessageRepository(gormDB)
		reviewRepo = repository.NewReviewRepository(gormDB)
		waitlistRepo = repository.NewWaitlistRepository(gormDB)
		log.Printf("storage driver: mysql")
	default:
		// Volatile in-memory storage; all data is lost on restart.
		userRepo = repository.NewMemoryUserRepository()
		businessRepo = repository.NewMemoryBusinessRepository()
		bookingRepo = repository.NewMemoryBookingRepository()
		messageRepo = repository.NewMemoryMessageRepository()
		reviewRepo = repository.NewMemoryReviewRepository()
		waitlistRepo = repository.NewMemoryWaitlistRepository()
		log.Printf("storage driver: memory")
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	userService := service.NewUserService(userRepo)
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	businessService := service.NewBusinessService(businessRepo, cacheClient)
	bookingService := service.NewBookingService(bookingRepo)
	messageService := service.NewMessageService(messageRepo)
	reviewService := service.NewReviewService(reviewRepo)
	waitlistService := service.NewWaitlistService(waitlistRepo)

	// Initialize handlers
	waitlistHandler := handler.NewWaitlistHandler(waitlistService)
	userHandler := handler.NewUserHandler(userService, bookingService)
	authHandler := handler.NewAuthHandler(authService)
	businessHandler := handler.NewBusinessHandler(businessService, bookingService, reviewService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	messageHandler := handler.NewMessageHandler(messageService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	seedHandler := handler.NewSeedHandler(userService, businessService)

	// Register routes
	router.Register(
		e,
		cfg,
		waitlistHandler,
		userHandler,
		authHandler,
		businessHandler,
		bookingHandler,
		messageHandler,
		reviewHandler,
		seedHandler,
	)

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: %s/swagger/index.html", cfg.SwaggerHost)
	} else {
		log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
