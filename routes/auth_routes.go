package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/hostelhub/hostelhub_backend/controllers"
)

// RegisterAuthRoutes sets up the public authentication routes.
func RegisterAuthRoutes(e *echo.Echo, authController *controllers.AuthController) {
	e.POST("/api/auth/signup", authController.Signup)
	e.POST("/api/auth/login", authController.Login)
	e.POST("/api/auth/logout", authController.Logout)
	e.GET("/api/auth/me", authController.Me)
}
