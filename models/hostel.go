package models

import "time"

// Hostel statuses. A hostel is created as "pending" and only moves to
// "active" or "inactive" through admin review.
const (
	HostelStatusPending  = "pending"
	HostelStatusActive   = "active"
	HostelStatusInactive = "inactive"
)

// Hostel model
type Hostel struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Location     string    `json:"location"`
	NearbySchool string    `json:"nearbySchool"`
	Price        int       `json:"price"` // Naira, whole units
	Amenities    []string  `json:"amenities"`
	Images       []string  `json:"images"`
	OwnerID      string    `json:"owner_id"`
	Status       string    `json:"status"` // "pending", "active", "inactive"
	CreatedAt    time.Time `json:"createdAt"`
}

// HostelUpdate is a partial update; nil fields are left unchanged.
type HostelUpdate struct {
	Name         *string   `json:"name,omitempty"`
	Location     *string   `json:"location,omitempty"`
	NearbySchool *string   `json:"nearbySchool,omitempty"`
	Price        *int      `json:"price,omitempty"`
	Amenities    *[]string `json:"amenities,omitempty"`
	Images       *[]string `json:"images,omitempty"`
	Status       *string   `json:"status,omitempty"`
}

// HostelRequest is the payload for creating or editing a hostel listing.
type HostelRequest struct {
	Name         string   `json:"name" validate:"required"`
	Location     string   `json:"location" validate:"required"`
	NearbySchool string   `json:"nearbySchool" validate:"required"`
	Price        int      `json:"price" validate:"required,gt=0"`
	Amenities    []string `json:"amenities"`
	Images       []string `json:"images"`
}

// HostelListing is a hostel enriched with room availability counts for
// the browse view.
type HostelListing struct {
	Hostel
	TotalRooms     int `json:"totalRooms"`
	AvailableRooms int `json:"availableRooms"`
}
