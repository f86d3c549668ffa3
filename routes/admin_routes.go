package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/hostelhub/hostelhub_backend/controllers"
	"github.com/hostelhub/hostelhub_backend/middleware"
	"github.com/hostelhub/hostelhub_backend/models"
	"github.com/hostelhub/hostelhub_backend/store"
)

// RegisterAdminRoutes sets up the hostel review and platform admin
// routes.
func RegisterAdminRoutes(e *echo.Echo, s *store.Store, adminController *controllers.AdminController) {
	group := e.Group("/api/admin", middleware.RequireRole(s, models.RoleAdmin))
	group.GET("/hostels/pending", adminController.GetPendingHostels)
	group.POST("/hostels/:id/approve", adminController.ApproveHostel)
	group.POST("/hostels/:id/reject", adminController.RejectHostel)
	group.GET("/stats", adminController.GetStats)

	// Resetting the demo is open to everyone; the demo page exposes it
	// without logging in.
	e.POST("/api/demo/reset", adminController.ResetDemo)
}
