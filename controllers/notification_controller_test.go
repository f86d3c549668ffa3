package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostelhub/hostelhub_backend/store"
)

func TestGetNotifications(t *testing.T) {
	s := store.New()
	nc := NewNotificationController(s)
	e := newTestEcho()
	loginAs(t, s, "chioma@student.com")

	rec := doJSON(t, e, nc.GetNotifications, http.MethodGet, "/api/notifications", "")
	require.Equal(t, http.StatusOK, rec.Code)

	data := responseBody(t, rec)["data"].([]interface{})
	require.Len(t, data, 2)
	// Newest first.
	assert.Equal(t, "n4", data[0].(map[string]interface{})["id"])
	assert.Equal(t, "n1", data[1].(map[string]interface{})["id"])
}

func TestMarkNotificationRead(t *testing.T) {
	s := store.New()
	nc := NewNotificationController(s)
	e := newTestEcho()
	loginAs(t, s, "chioma@student.com")

	rec := doJSON(t, e, nc.MarkRead, http.MethodPut, "/api/notifications/n1/read", "", "id", "n1")
	require.Equal(t, http.StatusOK, rec.Code)

	for _, n := range s.GetUserNotifications("1") {
		if n.ID == "n1" {
			assert.True(t, n.Read)
		}
	}

	rec = doJSON(t, e, nc.MarkRead, http.MethodPut, "/api/notifications/nope/read", "", "id", "nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// n2 belongs to the owner, not the session student.
	rec = doJSON(t, e, nc.MarkRead, http.MethodPut, "/api/notifications/n2/read", "", "id", "n2")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteNotificationEndpoint(t *testing.T) {
	s := store.New()
	nc := NewNotificationController(s)
	e := newTestEcho()
	loginAs(t, s, "chioma@student.com")

	rec := doJSON(t, e, nc.Delete, http.MethodDelete, "/api/notifications/n1", "", "id", "n1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, s.GetUserNotifications("1"), 1)

	rec = doJSON(t, e, nc.Delete, http.MethodDelete, "/api/notifications/n1", "", "id", "n1")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// The owner's n2 is out of the session student's reach.
	rec = doJSON(t, e, nc.Delete, http.MethodDelete, "/api/notifications/n2", "", "id", "n2")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Len(t, s.GetUserNotifications("2"), 1)
}
