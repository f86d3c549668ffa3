package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hostelhub/hostelhub_backend/models"
	"github.com/hostelhub/hostelhub_backend/store"
)

// NotificationController serves the session user's in-app notifications.
type NotificationController struct {
	store *store.Store
}

// NewNotificationController creates a new notification controller.
func NewNotificationController(s *store.Store) *NotificationController {
	return &NotificationController{store: s}
}

// GetNotifications returns the session user's notifications, newest
// first.
func (nc *NotificationController) GetNotifications(c echo.Context) error {
	user := nc.store.CurrentUser()

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Notifications retrieved successfully",
		Data:    nc.store.GetUserNotifications(user.ID),
	})
}

// MarkRead flips the read flag on one of the session user's
// notifications. Other recipients' notifications are out of reach.
func (nc *NotificationController) MarkRead(c echo.Context) error {
	user := nc.store.CurrentUser()
	if !nc.store.MarkNotificationRead(user.ID, c.Param("id")) {
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "Notification not found",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Notification marked as read",
	})
}

// Delete permanently removes one of the session user's notifications.
func (nc *NotificationController) Delete(c echo.Context) error {
	user := nc.store.CurrentUser()
	if !nc.store.DeleteNotification(user.ID, c.Param("id")) {
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "Notification not found",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Notification deleted",
	})
}
