package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"festivo/internal/config"
	"festivo/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	waitlistHandler *handler.WaitlistHandler,
	userHandler *handler.UserHandler,
	authHandler *handler.AuthHandler,
	businessHandler *handler.BusinessHandler,
	bookingHandler *handler.BookingHandler,
	messageHandler *handler.MessageHandler,
	reviewHandler *handler.ReviewHandler,
	seedHandler *handler.SeedHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Waitlist
	api.POST("/waitlist", waitlistHandler.Join)

	// Auth
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	// Users
	api.POST("/users", userHandler.Register)
	api.GET("/users/:id/bookings", userHandler.ListBookings)
	api.GET("/users/:id/businesses", businessHandler.ListByUser)

	// Businesses
	api.POST("/businesses", businessHandler.Create)
	api.GET("/businesses", businessHandler.List)
	api.GET("/businesses/:id", businessHandler.Get)
	api.GET("/businesses/:id/bookings", businessHandler.ListBookings)
	api.GET("/businesses/:id/reviews", businessHandler.ListReviews)

	// Bookings
	api.POST("/bookings", bookingHandler.Create)
	api.GET("/bookings/:id", bookingHandler.Get)
	api.PATCH("/bookings/:id/status", bookingHandler.UpdateStatus)

	// Messages
	api.POST("/messages", messageHandler.Send)
	api.GET("/messages/:userId/:otherUserId", messageHandler.Conversation)

	// Reviews
	api.POST("/reviews", reviewHandler.Create)

	// Demo data
	api.GET("/seed/demo", seedHandler.SeedDemo)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}))

	secured.GET("/me", userHandler.Me)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
