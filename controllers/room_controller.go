package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hostelhub/hostelhub_backend/models"
	"github.com/hostelhub/hostelhub_backend/store"
	"github.com/hostelhub/hostelhub_backend/utils"
)

// RoomController handles owner-side room management.
type RoomController struct {
	store *store.Store
}

// NewRoomController creates a new room controller.
func NewRoomController(s *store.Store) *RoomController {
	return &RoomController{store: s}
}

// GetRooms returns the rooms of a hostel.
func (rc *RoomController) GetRooms(c echo.Context) error {
	hostel, ok := rc.store.FindHostel(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "Hostel not found",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Rooms retrieved successfully",
		Data:    rc.store.GetRoomsByHostel(hostel.ID),
	})
}

// AddRoom adds a room to a hostel the session owner owns. New rooms
// start out available.
func (rc *RoomController) AddRoom(c echo.Context) error {
	hostel, ok := rc.store.FindHostel(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "Hostel not found",
		})
	}
	if !rc.ownsHostel(hostel) {
		return c.JSON(http.StatusForbidden, models.Response{
			Status:  http.StatusForbidden,
			Message: "Only the hostel owner can manage rooms",
		})
	}

	var req models.RoomRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Room type and price are required",
		})
	}

	room := models.Room{
		ID:          utils.NewID("r"),
		HostelID:    hostel.ID,
		Type:        req.Type,
		Price:       req.Price,
		IsAvailable: true,
	}
	rc.store.AddRoom(room)

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Room added successfully",
		Data:    room,
	})
}

// UpdateRoom shallow-merges changes into a room, including the manual
// availability toggle owners use on their dashboard.
func (rc *RoomController) UpdateRoom(c echo.Context) error {
	room, ok := rc.store.FindRoom(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "Room not found",
		})
	}
	hostel, _ := rc.store.FindHostel(room.HostelID)
	if !rc.ownsHostel(hostel) {
		return c.JSON(http.StatusForbidden, models.Response{
			Status:  http.StatusForbidden,
			Message: "Only the hostel owner can manage rooms",
		})
	}

	var patch models.RoomUpdate
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	rc.store.UpdateRoom(room.ID, patch)
	updated, _ := rc.store.FindRoom(room.ID)

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Room updated successfully",
		Data:    updated,
	})
}

// DeleteRoom removes a room. Existing bookings keep their room id even
// though it now dangles; the demo data model accepts that.
func (rc *RoomController) DeleteRoom(c echo.Context) error {
	room, ok := rc.store.FindRoom(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "Room not found",
		})
	}
	hostel, _ := rc.store.FindHostel(room.HostelID)
	if !rc.ownsHostel(hostel) {
		return c.JSON(http.StatusForbidden, models.Response{
			Status:  http.StatusForbidden,
			Message: "Only the hostel owner can manage rooms",
		})
	}

	rc.store.DeleteRoom(room.ID)

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Room deleted successfully",
	})
}

func (rc *RoomController) ownsHostel(hostel models.Hostel) bool {
	user := rc.store.CurrentUser()
	return user != nil && (user.ID == hostel.OwnerID || user.Role == models.RoleAdmin)
}
