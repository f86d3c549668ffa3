package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hostelhub/hostelhub_backend/models"
	"github.com/hostelhub/hostelhub_backend/services"
	"github.com/hostelhub/hostelhub_backend/store"
)

// AdminController handles hostel review, platform statistics and the
// demo reset.
type AdminController struct {
	store         *store.Store
	notifications *services.NotificationService
}

// NewAdminController creates a new admin controller.
func NewAdminController(s *store.Store, notifications *services.NotificationService) *AdminController {
	return &AdminController{store: s, notifications: notifications}
}

// GetPendingHostels lists hostels awaiting review.
func (ac *AdminController) GetPendingHostels(c echo.Context) error {
	var pending []models.Hostel
	for _, h := range ac.store.Hostels() {
		if h.Status == models.HostelStatusPending {
			pending = append(pending, h)
		}
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Pending hostels retrieved successfully",
		Data:    pending,
	})
}

// ApproveHostel activates a pending hostel and notifies its owner. The
// review is terminal; there is no re-submission flow.
func (ac *AdminController) ApproveHostel(c echo.Context) error {
	hostel, ok := ac.store.FindHostel(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "Hostel not found",
		})
	}
	if hostel.Status != models.HostelStatusPending {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Hostel is not pending review",
		})
	}

	active := models.HostelStatusActive
	ac.store.UpdateHostel(hostel.ID, models.HostelUpdate{Status: &active})

	ac.notifications.Create(hostel.OwnerID, models.NotificationTypeApproval, map[string]interface{}{
		"hostelId":   hostel.ID,
		"hostelName": hostel.Name,
	})

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Hostel approved successfully",
	})
}

// RejectHostel deactivates a pending hostel and notifies its owner with
// the reason, which must not be empty.
func (ac *AdminController) RejectHostel(c echo.Context) error {
	hostel, ok := ac.store.FindHostel(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "Hostel not found",
		})
	}
	if hostel.Status != models.HostelStatusPending {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Hostel is not pending review",
		})
	}

	var req models.RejectHostelRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Rejection reason is required",
		})
	}

	inactive := models.HostelStatusInactive
	ac.store.UpdateHostel(hostel.ID, models.HostelUpdate{Status: &inactive})

	ac.notifications.Create(hostel.OwnerID, models.NotificationTypeRejection, map[string]interface{}{
		"hostelId":   hostel.ID,
		"hostelName": hostel.Name,
		"reason":     req.Reason,
	})

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Hostel rejected",
	})
}

// GetStats aggregates the counts and revenue figures the admin dashboard
// charts are built from.
func (ac *AdminController) GetStats(c echo.Context) error {
	hostels := map[string]int{}
	for _, h := range ac.store.Hostels() {
		hostels[h.Status]++
	}

	users := map[string]int{}
	for _, u := range ac.store.Users() {
		users[u.Role]++
	}

	bookings := map[string]int{}
	totalRevenue := 0
	for _, b := range ac.store.Bookings() {
		bookings[b.Status]++
		if b.Status == models.BookingStatusPaid {
			totalRevenue += b.Amount
		}
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Stats retrieved successfully",
		Data: map[string]interface{}{
			"hostels":      hostels,
			"users":        users,
			"bookings":     bookings,
			"totalRevenue": totalRevenue,
			"totalRooms":   len(ac.store.Rooms()),
		},
	})
}

// ResetDemo restores the seed data and logs everyone out.
func (ac *AdminController) ResetDemo(c echo.Context) error {
	ac.store.ResetDemo()

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Demo data reset successfully",
	})
}
