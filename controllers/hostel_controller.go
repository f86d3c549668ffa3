package controllers

import (
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hostelhub/hostelhub_backend/models"
	"github.com/hostelhub/hostelhub_backend/store"
	"github.com/hostelhub/hostelhub_backend/utils"
)

// HostelController handles browsing and owner-side hostel management.
type HostelController struct {
	store *store.Store
}

// NewHostelController creates a new hostel controller.
func NewHostelController(s *store.Store) *HostelController {
	return &HostelController{store: s}
}

// GetHostels is the public browse endpoint. It returns active hostels
// filtered by search text (location or nearby school, case-insensitive
// substring), price range and amenities (all requested amenities must be
// present), sorted by relevance (seed order), price or recency. Each
// listing carries room availability counts so the UI can show "fully
// booked" without a second request.
func (hc *HostelController) GetHostels(c echo.Context) error {
	search := strings.ToLower(c.QueryParam("search"))
	minPrice, _ := strconv.Atoi(c.QueryParam("minPrice"))
	maxPrice, err := strconv.Atoi(c.QueryParam("maxPrice"))
	if err != nil || maxPrice <= 0 {
		maxPrice = int(^uint(0) >> 1)
	}
	var amenities []string
	if raw := c.QueryParam("amenities"); raw != "" {
		amenities = strings.Split(raw, ",")
	}

	var listings []models.HostelListing
	for _, h := range hc.store.Hostels() {
		if h.Status != models.HostelStatusActive {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(h.Location), search) &&
			!strings.Contains(strings.ToLower(h.NearbySchool), search) {
			continue
		}
		if h.Price < minPrice || h.Price > maxPrice {
			continue
		}
		if !hasAllAmenities(h.Amenities, amenities) {
			continue
		}

		listing := models.HostelListing{Hostel: h}
		for _, r := range hc.store.GetRoomsByHostel(h.ID) {
			listing.TotalRooms++
			if r.IsAvailable {
				listing.AvailableRooms++
			}
		}
		listings = append(listings, listing)
	}

	switch c.QueryParam("sortBy") {
	case "price-low":
		sort.SliceStable(listings, func(i, j int) bool { return listings[i].Price < listings[j].Price })
	case "price-high":
		sort.SliceStable(listings, func(i, j int) bool { return listings[i].Price > listings[j].Price })
	case "newest":
		sort.SliceStable(listings, func(i, j int) bool { return listings[i].CreatedAt.After(listings[j].CreatedAt) })
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Hostels retrieved successfully",
		Data:    listings,
	})
}

func hasAllAmenities(have, want []string) bool {
	for _, w := range want {
		found := false
		for _, a := range have {
			if a == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// GetHostel returns one hostel with its rooms.
func (hc *HostelController) GetHostel(c echo.Context) error {
	hostel, ok := hc.store.FindHostel(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "Hostel not found",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Hostel retrieved successfully",
		Data: map[string]interface{}{
			"hostel": hostel,
			"rooms":  hc.store.GetRoomsByHostel(hostel.ID),
		},
	})
}

// GetMyHostels returns the session owner's hostels, all statuses
// included, for the owner dashboard.
func (hc *HostelController) GetMyHostels(c echo.Context) error {
	user := hc.store.CurrentUser()

	var mine []models.Hostel
	for _, h := range hc.store.Hostels() {
		if h.OwnerID == user.ID {
			mine = append(mine, h)
		}
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Hostels retrieved successfully",
		Data:    mine,
	})
}

// CreateHostel adds a new pending listing owned by the session owner.
// It stays invisible to browse until an admin approves it.
func (hc *HostelController) CreateHostel(c echo.Context) error {
	user := hc.store.CurrentUser()

	var req models.HostelRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Name, location, nearby school and price are required",
		})
	}

	images := req.Images
	if len(images) == 0 {
		images = []string{"/hostel.jpg"}
	}

	hostel := models.Hostel{
		ID:           utils.NewID("h"),
		Name:         req.Name,
		Location:     req.Location,
		NearbySchool: req.NearbySchool,
		Price:        req.Price,
		Amenities:    req.Amenities,
		Images:       images,
		OwnerID:      user.ID,
		Status:       models.HostelStatusPending,
		CreatedAt:    time.Now(),
	}
	hc.store.AddHostel(hostel)

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Hostel submitted for approval",
		Data:    hostel,
	})
}

// UpdateHostel shallow-merges changes into a hostel the session owner
// owns. Status is not editable here; only admin review moves it.
func (hc *HostelController) UpdateHostel(c echo.Context) error {
	hostel, ok := hc.store.FindHostel(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "Hostel not found",
		})
	}
	if !hc.isOwner(hostel) {
		return c.JSON(http.StatusForbidden, models.Response{
			Status:  http.StatusForbidden,
			Message: "Only the hostel owner can do this",
		})
	}

	var patch models.HostelUpdate
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	patch.Status = nil

	hc.store.UpdateHostel(hostel.ID, patch)
	updated, _ := hc.store.FindHostel(hostel.ID)

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Hostel updated successfully",
		Data:    updated,
	})
}

// DeleteHostel removes a hostel and all of its rooms.
func (hc *HostelController) DeleteHostel(c echo.Context) error {
	hostel, ok := hc.store.FindHostel(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "Hostel not found",
		})
	}
	if !hc.isOwner(hostel) {
		return c.JSON(http.StatusForbidden, models.Response{
			Status:  http.StatusForbidden,
			Message: "Only the hostel owner can do this",
		})
	}

	hc.store.DeleteHostel(hostel.ID)

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Hostel deleted successfully",
	})
}

// isOwner reports whether the session user owns the hostel or is an
// admin. This mirrors the demo's soft role gating, not real
// authorization.
func (hc *HostelController) isOwner(hostel models.Hostel) bool {
	user := hc.store.CurrentUser()
	return user != nil && (user.ID == hostel.OwnerID || user.Role == models.RoleAdmin)
}
