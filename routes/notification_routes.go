package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/hostelhub/hostelhub_backend/controllers"
	"github.com/hostelhub/hostelhub_backend/middleware"
	"github.com/hostelhub/hostelhub_backend/store"
)

// RegisterNotificationRoutes sets up the session user's notification
// routes.
func RegisterNotificationRoutes(e *echo.Echo, s *store.Store, notificationController *controllers.NotificationController) {
	group := e.Group("/api/notifications", middleware.RequireSession(s))
	group.GET("", notificationController.GetNotifications)
	group.PUT("/:id/read", notificationController.MarkRead)
	group.DELETE("/:id", notificationController.Delete)
}
