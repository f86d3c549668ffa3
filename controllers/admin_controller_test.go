package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostelhub/hostelhub_backend/models"
	"github.com/hostelhub/hostelhub_backend/services"
	"github.com/hostelhub/hostelhub_backend/store"
)

func newAdminController(t *testing.T) (*store.Store, *AdminController) {
	t.Helper()
	s := store.New()
	notifications := services.NewNotificationService(s, &services.LogMailer{})
	return s, NewAdminController(s, notifications)
}

func TestGetPendingHostels(t *testing.T) {
	_, ac := newAdminController(t)
	e := newTestEcho()

	rec := doJSON(t, e, ac.GetPendingHostels, http.MethodGet, "/api/admin/hostels/pending", "")

	require.Equal(t, http.StatusOK, rec.Code)
	data := responseBody(t, rec)["data"].([]interface{})
	require.Len(t, data, 1)
	hostel := data[0].(map[string]interface{})
	assert.Equal(t, "h6", hostel["id"])
}

func TestApproveHostel(t *testing.T) {
	s, ac := newAdminController(t)
	e := newTestEcho()

	rec := doJSON(t, e, ac.ApproveHostel, http.MethodPost, "/api/admin/hostels/h6/approve", "",
		"id", "h6")
	require.Equal(t, http.StatusOK, rec.Code)

	hostel, ok := s.FindHostel("h6")
	require.True(t, ok)
	assert.Equal(t, models.HostelStatusActive, hostel.Status)

	// The owner hears about it.
	notifs := s.GetUserNotifications(hostel.OwnerID)
	require.NotEmpty(t, notifs)
	assert.Equal(t, models.NotificationTypeApproval, notifs[0].Type)
	assert.Contains(t, notifs[0].Message, "Prime Living")

	// Review is terminal; a second approval is rejected.
	rec = doJSON(t, e, ac.ApproveHostel, http.MethodPost, "/api/admin/hostels/h6/approve", "",
		"id", "h6")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestApproveHostelNotFound(t *testing.T) {
	_, ac := newAdminController(t)
	e := newTestEcho()

	rec := doJSON(t, e, ac.ApproveHostel, http.MethodPost, "/api/admin/hostels/nope/approve", "",
		"id", "nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRejectHostel(t *testing.T) {
	t.Run("reason required", func(t *testing.T) {
		s, ac := newAdminController(t)
		e := newTestEcho()

		rec := doJSON(t, e, ac.RejectHostel, http.MethodPost, "/api/admin/hostels/h6/reject",
			`{"reason":""}`, "id", "h6")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Rejection reason is required", responseBody(t, rec)["message"])

		hostel, _ := s.FindHostel("h6")
		assert.Equal(t, models.HostelStatusPending, hostel.Status)
	})

	t.Run("deactivates and carries the reason to the owner", func(t *testing.T) {
		s, ac := newAdminController(t)
		e := newTestEcho()

		rec := doJSON(t, e, ac.RejectHostel, http.MethodPost, "/api/admin/hostels/h6/reject",
			`{"reason":"Incomplete fire safety documentation"}`, "id", "h6")
		require.Equal(t, http.StatusOK, rec.Code)

		hostel, _ := s.FindHostel("h6")
		assert.Equal(t, models.HostelStatusInactive, hostel.Status)

		notifs := s.GetUserNotifications(hostel.OwnerID)
		require.NotEmpty(t, notifs)
		assert.Equal(t, models.NotificationTypeRejection, notifs[0].Type)
		assert.Contains(t, notifs[0].Message, "Incomplete fire safety documentation")
	})

	t.Run("only pending hostels can be rejected", func(t *testing.T) {
		_, ac := newAdminController(t)
		e := newTestEcho()

		rec := doJSON(t, e, ac.RejectHostel, http.MethodPost, "/api/admin/hostels/h1/reject",
			`{"reason":"Nope"}`, "id", "h1")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetStats(t *testing.T) {
	_, ac := newAdminController(t)
	e := newTestEcho()

	rec := doJSON(t, e, ac.GetStats, http.MethodGet, "/api/admin/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)

	data := responseBody(t, rec)["data"].(map[string]interface{})

	hostels := data["hostels"].(map[string]interface{})
	assert.Equal(t, float64(7), hostels["active"])
	assert.Equal(t, float64(1), hostels["pending"])

	users := data["users"].(map[string]interface{})
	assert.Equal(t, float64(4), users["student"])
	assert.Equal(t, float64(3), users["owner"])
	assert.Equal(t, float64(1), users["admin"])

	bookings := data["bookings"].(map[string]interface{})
	assert.Equal(t, float64(5), bookings["paid"])

	assert.Equal(t, float64(670000), data["totalRevenue"])
	assert.Equal(t, float64(19), data["totalRooms"])
}

func TestResetDemoEndpoint(t *testing.T) {
	s, ac := newAdminController(t)
	e := newTestEcho()

	user, _ := s.FindUserByEmail("zainab@admin.com")
	s.SetCurrentUser(&user)
	s.DeleteHostel("h1")
	require.Len(t, s.Hostels(), 7)

	rec := doJSON(t, e, ac.ResetDemo, http.MethodPost, "/api/demo/reset", "")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Len(t, s.Hostels(), 8)
	assert.Len(t, s.Rooms(), 19)
	assert.Nil(t, s.CurrentUser())
}
