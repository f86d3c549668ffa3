package models

import "time"

// Booking statuses
const (
	BookingStatusPending   = "pending"
	BookingStatusPaid      = "paid"
	BookingStatusCancelled = "cancelled"
)

// Booking model. Reference links the booking to its payment and is
// immutable once set.
type Booking struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	RoomID    string    `json:"room_id"`
	HostelID  string    `json:"hostel_id"`
	Amount    int       `json:"amount"` // Naira, whole units
	Status    string    `json:"status"` // "pending", "paid", "cancelled"
	Reference string    `json:"reference"`
	CreatedAt time.Time `json:"createdAt"`
}

// BookingUpdate is a partial update; nil fields are left unchanged.
// Reference is deliberately absent.
type BookingUpdate struct {
	Status *string `json:"status,omitempty"`
}

// BookingRequest is the payload for the booking/payment flow. Card fields
// only need to be non-empty; no real card validation happens in the demo.
type BookingRequest struct {
	HostelID   string `json:"hostelId" validate:"required"`
	RoomID     string `json:"roomId" validate:"required"`
	CardNumber string `json:"cardNumber" validate:"required"`
	ExpiryDate string `json:"expiryDate" validate:"required"`
	CVV        string `json:"cvv" validate:"required"`
}

// BookingReceipt is returned after a completed booking flow.
type BookingReceipt struct {
	Booking Booking `json:"booking"`
	Payment Payment `json:"payment"`
}
