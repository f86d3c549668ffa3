package services

import (
	"fmt"
	"log"
	"time"

	"github.com/hostelhub/hostelhub_backend/models"
	"github.com/hostelhub/hostelhub_backend/store"
	"github.com/hostelhub/hostelhub_backend/utils"
)

// NotificationService creates in-app notifications and mirrors each one
// as an email to the recipient.
type NotificationService struct {
	store  *store.Store
	mailer Mailer
}

// NewNotificationService creates a new notification service.
func NewNotificationService(s *store.Store, mailer Mailer) *NotificationService {
	return &NotificationService{store: s, mailer: mailer}
}

// Create builds a notification for the given recipient, appends it to
// the store and fires the email side effect. Title and message always
// come from the NotificationMessage templates, so the canned copy has a
// single source of truth.
func (ns *NotificationService) Create(userID, notifType string, data map[string]interface{}) models.Notification {
	title, message := NotificationMessage(notifType, data)

	notification := models.Notification{
		ID:        utils.NewID("notif-"),
		UserID:    userID,
		Type:      notifType,
		Title:     title,
		Message:   message,
		Read:      false,
		Data:      data,
		CreatedAt: time.Now(),
	}
	ns.store.AddNotification(notification)

	// Fire and forget; a delivery failure never fails the caller's flow.
	if user, ok := ns.store.FindUser(userID); ok {
		if err := ns.mailer.Send(user.Email, title, message); err != nil {
			log.Printf("Failed to send notification email to %s: %v", user.Email, err)
		}
	} else {
		log.Printf("Notification recipient %s not found, skipping email", userID)
	}

	return notification
}

// NotificationMessage maps a notification type and payload to its canned
// title and message.
func NotificationMessage(notifType string, data map[string]interface{}) (title, message string) {
	switch notifType {
	case models.NotificationTypeBooking:
		return "New Booking Received",
			fmt.Sprintf("New booking at %s for %s room. Amount: ₦%s. Reference: %s",
				dataString(data, "hostelName"), dataString(data, "roomType"),
				utils.FormatAmount(dataAmount(data)), dataString(data, "reference"))
	case models.NotificationTypePayment:
		return "Payment Successful",
			fmt.Sprintf("Your payment of ₦%s has been received for your booking at %s. Reference: %s",
				utils.FormatAmount(dataAmount(data)), dataString(data, "hostelName"),
				dataString(data, "reference"))
	case models.NotificationTypeApproval:
		return "Hostel Approved",
			fmt.Sprintf("Your hostel %q has been approved and is now live on HostelHub!",
				dataString(data, "hostelName"))
	case models.NotificationTypeRejection:
		return "Hostel Rejected",
			fmt.Sprintf("Your hostel application for %q was not approved. Reason: %s",
				dataString(data, "hostelName"), dataString(data, "reason"))
	case models.NotificationTypeCancellation:
		return "Booking Cancelled",
			fmt.Sprintf("Your booking at %s has been cancelled. Refund will be processed within 3-5 business days.",
				dataString(data, "hostelName"))
	default:
		if msg := dataString(data, "message"); msg != "" {
			return "System Notification", msg
		}
		return "System Notification", "You have a new notification"
	}
}

func dataString(data map[string]interface{}, key string) string {
	if data == nil {
		return ""
	}
	if s, ok := data[key].(string); ok {
		return s
	}
	return ""
}

func dataAmount(data map[string]interface{}) int {
	if data == nil {
		return 0
	}
	switch v := data["amount"].(type) {
	case int:
		return v
	case float64:
		return int(v)
	default:
		return 0
	}
}
