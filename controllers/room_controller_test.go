package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostelhub/hostelhub_backend/store"
)

func TestGetRooms(t *testing.T) {
	s := store.New()
	rc := NewRoomController(s)
	e := newTestEcho()

	rec := doJSON(t, e, rc.GetRooms, http.MethodGet, "/api/hostels/h1/rooms", "", "id", "h1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, responseBody(t, rec)["data"].([]interface{}), 3)

	rec = doJSON(t, e, rc.GetRooms, http.MethodGet, "/api/hostels/nope/rooms", "", "id", "nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddRoom(t *testing.T) {
	t.Run("owner adds an available room", func(t *testing.T) {
		s := store.New()
		rc := NewRoomController(s)
		e := newTestEcho()
		loginAs(t, s, "tunde@owner.com")

		rec := doJSON(t, e, rc.AddRoom, http.MethodPost, "/api/hostels/h1/rooms",
			`{"type":"Shared (2-bed)","price":165000}`, "id", "h1")

		require.Equal(t, http.StatusCreated, rec.Code)
		data := responseBody(t, rec)["data"].(map[string]interface{})
		assert.Equal(t, "h1", data["hostel_id"])
		assert.Equal(t, true, data["is_available"])
		assert.Len(t, s.GetRoomsByHostel("h1"), 4)
	})

	t.Run("non-owner is refused", func(t *testing.T) {
		s := store.New()
		rc := NewRoomController(s)
		e := newTestEcho()
		loginAs(t, s, "ibrahim@owner.com")

		rec := doJSON(t, e, rc.AddRoom, http.MethodPost, "/api/hostels/h1/rooms",
			`{"type":"Shared (2-bed)","price":165000}`, "id", "h1")

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Len(t, s.GetRoomsByHostel("h1"), 3)
	})

	t.Run("price must be positive", func(t *testing.T) {
		s := store.New()
		rc := NewRoomController(s)
		e := newTestEcho()
		loginAs(t, s, "tunde@owner.com")

		rec := doJSON(t, e, rc.AddRoom, http.MethodPost, "/api/hostels/h1/rooms",
			`{"type":"Shared (2-bed)","price":0}`, "id", "h1")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUpdateRoomAvailabilityToggle(t *testing.T) {
	s := store.New()
	rc := NewRoomController(s)
	e := newTestEcho()
	loginAs(t, s, "tunde@owner.com")

	// r3 is seeded unavailable; the owner frees it up.
	rec := doJSON(t, e, rc.UpdateRoom, http.MethodPut, "/api/rooms/r3",
		`{"is_available":true}`, "id", "r3")
	require.Equal(t, http.StatusOK, rec.Code)

	room, ok := s.FindRoom("r3")
	require.True(t, ok)
	assert.True(t, room.IsAvailable)
	assert.Equal(t, 200000, room.Price)
}

func TestUpdateRoomNotOwned(t *testing.T) {
	s := store.New()
	rc := NewRoomController(s)
	e := newTestEcho()
	loginAs(t, s, "ibrahim@owner.com")

	rec := doJSON(t, e, rc.UpdateRoom, http.MethodPut, "/api/rooms/r1",
		`{"price":1}`, "id", "r1")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	room, _ := s.FindRoom("r1")
	assert.Equal(t, 150000, room.Price)
}

func TestDeleteRoom(t *testing.T) {
	s := store.New()
	rc := NewRoomController(s)
	e := newTestEcho()
	loginAs(t, s, "tunde@owner.com")

	rec := doJSON(t, e, rc.DeleteRoom, http.MethodDelete, "/api/rooms/r2", "", "id", "r2")
	require.Equal(t, http.StatusOK, rec.Code)

	_, ok := s.FindRoom("r2")
	assert.False(t, ok)
	assert.Len(t, s.GetRoomsByHostel("h1"), 2)
}
