package main

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/hostelhub/hostelhub_backend/config"
	"github.com/hostelhub/hostelhub_backend/middleware"
	"github.com/hostelhub/hostelhub_backend/routes"
	"github.com/hostelhub/hostelhub_backend/services"
	"github.com/hostelhub/hostelhub_backend/store"
	"github.com/hostelhub/hostelhub_backend/websocket"
)

// CustomValidator is a custom validator for Echo
type CustomValidator struct {
	validator *validator.Validate
}

// Validate validates the request body
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found")
	}

	// Seed the in-memory demo store
	s := store.New()

	// Create WebSocket hub and subscribe it to store mutations
	wsHub := websocket.NewHub()
	go wsHub.Run()
	s.Subscribe(wsHub)

	// Create a new Echo instance
	e := echo.New()

	// Initialize custom validator
	customValidator := &CustomValidator{validator: validator.New()}
	e.Validator = customValidator

	// Initialize rate limiter
	rateLimiter := middleware.NewRateLimiter()

	// Middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(rateLimiter.RateLimit())

	e.GET("/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"status":  "OK",
			"message": "HostelHub Backend is running",
			"version": "1.0",
		})
	})

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"status": "healthy",
			"store":  "seeded",
		})
	})

	// Initialize services
	mailer := services.NewMailerFromConfig(config.LoadSMTP())
	notifications := services.NewNotificationService(s, mailer)
	payments := services.NewPaymentService(config.PaymentDelay())

	// Setup routes
	routes.SetupRoutes(e, s, wsHub, notifications, payments)

	// Start server
	e.Logger.Fatal(e.Start(":" + config.Port()))
}
