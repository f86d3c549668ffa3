package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/hostelhub/hostelhub_backend/controllers"
	"github.com/hostelhub/hostelhub_backend/middleware"
	"github.com/hostelhub/hostelhub_backend/store"
)

// RegisterBookingRoutes sets up the booking/payment flow routes. All of
// them need a logged-in session user.
func RegisterBookingRoutes(e *echo.Echo, s *store.Store, bookingController *controllers.BookingController) {
	group := e.Group("/api/bookings", middleware.RequireSession(s))
	group.POST("", bookingController.CreateBooking)
	group.GET("", bookingController.GetBookings)
	group.POST("/:id/cancel", bookingController.CancelBooking)
}
