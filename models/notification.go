package models

import "time"

// Notification types
const (
	NotificationTypeBooking      = "booking"
	NotificationTypePayment      = "payment"
	NotificationTypeApproval     = "approval"
	NotificationTypeRejection    = "rejection"
	NotificationTypeCancellation = "cancellation"
	NotificationTypeSystem       = "system"
)

// Notification model
type Notification struct {
	ID        string                 `json:"id"`
	UserID    string                 `json:"user_id"` // recipient
	Type      string                 `json:"type"`
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	Read      bool                   `json:"read"`
	Data      map[string]interface{} `json:"data,omitempty"`
	CreatedAt time.Time              `json:"createdAt"`
}
