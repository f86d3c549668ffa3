package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostelhub/hostelhub_backend/models"
	"github.com/hostelhub/hostelhub_backend/store"
)

// fakeMailer records sent emails for assertions.
type fakeMailer struct {
	to, subject, body []string
}

func (m *fakeMailer) Send(to, subject, body string) error {
	m.to = append(m.to, to)
	m.subject = append(m.subject, subject)
	m.body = append(m.body, body)
	return nil
}

func TestCreateNotification(t *testing.T) {
	s := store.New()
	mailer := &fakeMailer{}
	ns := NewNotificationService(s, mailer)

	n := ns.Create("2", models.NotificationTypeApproval, map[string]interface{}{
		"hostelName": "Prime Living",
	})

	assert.True(t, strings.HasPrefix(n.ID, "notif-"))
	assert.Equal(t, "2", n.UserID)
	assert.False(t, n.Read)
	assert.Equal(t, "Hostel Approved", n.Title)
	assert.Contains(t, n.Message, "Prime Living")

	// Appended to the store, newest first for the recipient.
	notifications := s.GetUserNotifications("2")
	require.NotEmpty(t, notifications)
	assert.Equal(t, n.ID, notifications[0].ID)

	// Email side effect went to the recipient's address.
	require.Len(t, mailer.to, 1)
	assert.Equal(t, "tunde@owner.com", mailer.to[0])
	assert.Equal(t, n.Title, mailer.subject[0])
	assert.Equal(t, n.Message, mailer.body[0])
}

func TestCreateNotificationUnknownRecipientSkipsEmail(t *testing.T) {
	s := store.New()
	mailer := &fakeMailer{}
	ns := NewNotificationService(s, mailer)

	ns.Create("ghost", models.NotificationTypeSystem, nil)

	assert.Empty(t, mailer.to)
	assert.Len(t, s.GetUserNotifications("ghost"), 1)
}

func TestNotificationMessage(t *testing.T) {
	tests := []struct {
		name      string
		notifType string
		data      map[string]interface{}
		title     string
		contains  []string
	}{
		{
			name:      "booking",
			notifType: models.NotificationTypeBooking,
			data: map[string]interface{}{
				"hostelName": "Campus Haven", "roomType": "Shared (4-bed)",
				"amount": 120000, "reference": "PAYABC123XYZ",
			},
			title:    "New Booking Received",
			contains: []string{"Campus Haven", "Shared (4-bed)", "₦120,000", "PAYABC123XYZ"},
		},
		{
			name:      "payment",
			notifType: models.NotificationTypePayment,
			data: map[string]interface{}{
				"hostelName": "Campus Haven", "amount": 120000, "reference": "PAYABC123XYZ",
			},
			title:    "Payment Successful",
			contains: []string{"₦120,000", "Campus Haven", "PAYABC123XYZ"},
		},
		{
			name:      "rejection",
			notifType: models.NotificationTypeRejection,
			data:      map[string]interface{}{"hostelName": "Prime Living", "reason": "Incomplete documents"},
			title:     "Hostel Rejected",
			contains:  []string{"Prime Living", "Incomplete documents"},
		},
		{
			name:      "cancellation",
			notifType: models.NotificationTypeCancellation,
			data:      map[string]interface{}{"hostelName": "Unity Suites"},
			title:     "Booking Cancelled",
			contains:  []string{"Unity Suites", "Refund"},
		},
		{
			name:      "system with message",
			notifType: models.NotificationTypeSystem,
			data:      map[string]interface{}{"message": "Maintenance tonight"},
			title:     "System Notification",
			contains:  []string{"Maintenance tonight"},
		},
		{
			name:      "system without message",
			notifType: models.NotificationTypeSystem,
			data:      nil,
			title:     "System Notification",
			contains:  []string{"You have a new notification"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, message := NotificationMessage(tt.notifType, tt.data)
			assert.Equal(t, tt.title, title)
			for _, want := range tt.contains {
				assert.Contains(t, message, want)
			}
		})
	}
}
