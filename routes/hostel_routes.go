package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/hostelhub/hostelhub_backend/controllers"
	"github.com/hostelhub/hostelhub_backend/middleware"
	"github.com/hostelhub/hostelhub_backend/models"
	"github.com/hostelhub/hostelhub_backend/store"
)

// RegisterHostelRoutes sets up browsing (public) and hostel/room
// management (owner) routes.
func RegisterHostelRoutes(e *echo.Echo, s *store.Store, hostelController *controllers.HostelController, roomController *controllers.RoomController) {
	// Public browse routes
	e.GET("/api/hostels", hostelController.GetHostels)
	e.GET("/api/hostels/mine", hostelController.GetMyHostels, middleware.RequireRole(s, models.RoleOwner, models.RoleAdmin))
	e.GET("/api/hostels/:id", hostelController.GetHostel)
	e.GET("/api/hostels/:id/rooms", roomController.GetRooms)

	// Owner management routes
	ownerGroup := e.Group("/api", middleware.RequireRole(s, models.RoleOwner, models.RoleAdmin))
	ownerGroup.POST("/hostels", hostelController.CreateHostel)
	ownerGroup.PUT("/hostels/:id", hostelController.UpdateHostel)
	ownerGroup.DELETE("/hostels/:id", hostelController.DeleteHostel)
	ownerGroup.POST("/hostels/:id/rooms", roomController.AddRoom)
	ownerGroup.PUT("/rooms/:id", roomController.UpdateRoom)
	ownerGroup.DELETE("/rooms/:id", roomController.DeleteRoom)
}
