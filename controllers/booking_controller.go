package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hostelhub/hostelhub_backend/models"
	"github.com/hostelhub/hostelhub_backend/services"
	"github.com/hostelhub/hostelhub_backend/store"
)

// BookingController handles the booking/payment flow and booking
// queries.
type BookingController struct {
	store    *store.Store
	bookings *services.BookingService
}

// NewBookingController creates a new booking controller.
func NewBookingController(s *store.Store, bookings *services.BookingService) *BookingController {
	return &BookingController{store: s, bookings: bookings}
}

// CreateBooking runs one booking attempt: validate the card fields are
// filled, wait out the simulated gateway, then record booking + payment
// and notify both sides. The confirmation payload carries the reference.
func (bc *BookingController) CreateBooking(c echo.Context) error {
	user := bc.store.CurrentUser()

	var req models.BookingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Please fill all card details",
		})
	}

	receipt, err := bc.bookings.Book(c.Request().Context(), *user, req.HostelID, req.RoomID)
	switch err {
	case nil:
	case services.ErrHostelNotFound, services.ErrRoomNotFound:
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: err.Error(),
		})
	case services.ErrRoomUnavailable:
		return c.JSON(http.StatusConflict, models.Response{
			Status:  http.StatusConflict,
			Message: err.Error(),
		})
	default:
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Payment Failed. Please try again",
		})
	}

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Payment successful",
		Data:    receipt,
	})
}

// GetBookings returns bookings scoped to the session user's role:
// students see their own, owners see their hostels', admins see all.
func (bc *BookingController) GetBookings(c echo.Context) error {
	user := bc.store.CurrentUser()

	all := bc.store.Bookings()
	var bookings []models.Booking

	switch user.Role {
	case models.RoleAdmin:
		bookings = all
	case models.RoleOwner:
		owned := make(map[string]bool)
		for _, h := range bc.store.Hostels() {
			if h.OwnerID == user.ID {
				owned[h.ID] = true
			}
		}
		for _, b := range all {
			if owned[b.HostelID] {
				bookings = append(bookings, b)
			}
		}
	default:
		for _, b := range all {
			if b.UserID == user.ID {
				bookings = append(bookings, b)
			}
		}
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Bookings retrieved successfully",
		Data:    bookings,
	})
}

// CancelBooking cancels a booking the session user owns and frees its
// room.
func (bc *BookingController) CancelBooking(c echo.Context) error {
	user := bc.store.CurrentUser()

	booking, err := bc.bookings.Cancel(*user, c.Param("id"))
	switch err {
	case nil:
	case services.ErrBookingNotFound:
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: err.Error(),
		})
	case services.ErrNotBookingOwner:
		return c.JSON(http.StatusForbidden, models.Response{
			Status:  http.StatusForbidden,
			Message: err.Error(),
		})
	default:
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Booking cancelled",
		Data:    booking,
	})
}
