package models

// Room model
type Room struct {
	ID          string `json:"id"`
	HostelID    string `json:"hostel_id"`
	Type        string `json:"type"`
	Price       int    `json:"price"` // Naira, whole units
	IsAvailable bool   `json:"is_available"`
}

// RoomUpdate is a partial update; nil fields are left unchanged.
type RoomUpdate struct {
	Type        *string `json:"type,omitempty"`
	Price       *int    `json:"price,omitempty"`
	IsAvailable *bool   `json:"is_available,omitempty"`
}

// RoomRequest is the payload for adding a room to a hostel.
type RoomRequest struct {
	Type  string `json:"type" validate:"required"`
	Price int    `json:"price" validate:"required,gt=0"`
}
