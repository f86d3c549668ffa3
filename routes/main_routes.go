package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/hostelhub/hostelhub_backend/controllers"
	"github.com/hostelhub/hostelhub_backend/services"
	"github.com/hostelhub/hostelhub_backend/store"
	"github.com/hostelhub/hostelhub_backend/websocket"
)

// SetupRoutes wires all controllers and registers every route group.
func SetupRoutes(e *echo.Echo, s *store.Store, hub *websocket.Hub, notifications *services.NotificationService, payments *services.PaymentService) {
	bookingService := services.NewBookingService(s, notifications, payments)

	authController := controllers.NewAuthController(s)
	hostelController := controllers.NewHostelController(s)
	roomController := controllers.NewRoomController(s)
	bookingController := controllers.NewBookingController(s, bookingService)
	notificationController := controllers.NewNotificationController(s)
	adminController := controllers.NewAdminController(s, notifications)

	RegisterAuthRoutes(e, authController)
	RegisterHostelRoutes(e, s, hostelController, roomController)
	RegisterBookingRoutes(e, s, bookingController)
	RegisterNotificationRoutes(e, s, notificationController)
	RegisterAdminRoutes(e, s, adminController)

	// Store event stream; clients identify as a demo user via query
	// param to receive their notification pushes.
	e.GET("/api/ws", func(c echo.Context) error {
		return websocket.HandleWebSocket(c, hub, c.QueryParam("user_id"))
	})
}
