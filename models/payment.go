package models

import "time"

// Payment statuses
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

// Payment model. Each payment belongs to exactly one booking by
// convention and shares its reference.
type Payment struct {
	ID        string    `json:"id"`
	BookingID string    `json:"booking_id"`
	Reference string    `json:"reference"`
	Status    string    `json:"status"` // "pending", "completed", "failed"
	Amount    int       `json:"amount"` // Naira, whole units
	CreatedAt time.Time `json:"createdAt"`
}
