package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/hostelhub/hostelhub_backend/models"
	"github.com/hostelhub/hostelhub_backend/store"
	"github.com/hostelhub/hostelhub_backend/utils"
)

// Booking flow failures surfaced to the HTTP layer.
var (
	ErrHostelNotFound    = errors.New("Hostel not found")
	ErrRoomNotFound      = errors.New("Room not found")
	ErrRoomUnavailable   = errors.New("Room is no longer available")
	ErrBookingNotFound   = errors.New("Booking not found")
	ErrNotBookingOwner   = errors.New("Booking belongs to another user")
	ErrBookingCancelled  = errors.New("Booking is already cancelled")
)

// BookingService drives the booking/payment flow: charge the simulated
// gateway, then record the booking and payment and notify both sides.
type BookingService struct {
	store         *store.Store
	notifications *NotificationService
	payments      *PaymentService
}

// NewBookingService creates a new booking service.
func NewBookingService(s *store.Store, notifications *NotificationService, payments *PaymentService) *BookingService {
	return &BookingService{store: s, notifications: notifications, payments: payments}
}

// Book runs one booking attempt for the given user. On success exactly
// one paid booking and one completed payment exist, sharing a fresh
// reference, the room is marked unavailable, and two notifications go
// out: one to the payer, one to the hostel's owner.
//
// Booking an unavailable room is rejected here. The original demo never
// flipped the availability flag on booking, which allowed the same room
// to be sold twice; this implementation closes that gap.
func (bs *BookingService) Book(ctx context.Context, user models.User, hostelID, roomID string) (models.BookingReceipt, error) {
	hostel, ok := bs.store.FindHostel(hostelID)
	if !ok {
		return models.BookingReceipt{}, ErrHostelNotFound
	}

	room, ok := bs.store.FindRoom(roomID)
	if !ok || room.HostelID != hostel.ID {
		return models.BookingReceipt{}, ErrRoomNotFound
	}

	// The reservation is taken before charging: availability check and
	// flip are one atomic store operation, so a concurrent attempt for
	// the same room loses here instead of double-selling during the
	// gateway delay.
	if !bs.store.ReserveRoom(room.ID) {
		return models.BookingReceipt{}, ErrRoomUnavailable
	}

	// Nothing is recorded until the gateway approves; an aborted charge
	// hands the reservation back and leaves no orphan records behind.
	reference, err := bs.payments.Charge(ctx, room.Price)
	if err != nil {
		bs.store.ReleaseRoom(room.ID)
		return models.BookingReceipt{}, err
	}

	now := time.Now()
	booking := models.Booking{
		ID:        utils.NewID("BK"),
		UserID:    user.ID,
		RoomID:    room.ID,
		HostelID:  hostel.ID,
		Amount:    room.Price,
		Status:    models.BookingStatusPaid,
		Reference: reference,
		CreatedAt: now,
	}
	payment := models.Payment{
		ID:        utils.NewID("PM"),
		BookingID: booking.ID,
		Reference: reference,
		Status:    models.PaymentStatusCompleted,
		Amount:    room.Price,
		CreatedAt: now,
	}

	bs.store.AddBooking(booking)
	bs.store.AddPayment(payment)

	bs.notifications.Create(user.ID, models.NotificationTypePayment, map[string]interface{}{
		"hostelName": hostel.Name,
		"amount":     room.Price,
		"reference":  reference,
	})
	bs.notifications.Create(hostel.OwnerID, models.NotificationTypeBooking, map[string]interface{}{
		"hostelName": hostel.Name,
		"roomType":   room.Type,
		"amount":     room.Price,
		"reference":  reference,
	})

	log.Printf("Booking %s confirmed for user %s, reference %s", booking.ID, user.ID, reference)
	return models.BookingReceipt{Booking: booking, Payment: payment}, nil
}

// Cancel marks a booking cancelled, frees its room and notifies the
// student. Only the booking's owner or an admin may cancel.
func (bs *BookingService) Cancel(user models.User, bookingID string) (models.Booking, error) {
	booking, ok := bs.store.FindBooking(bookingID)
	if !ok {
		return models.Booking{}, ErrBookingNotFound
	}
	if booking.UserID != user.ID && user.Role != models.RoleAdmin {
		return models.Booking{}, ErrNotBookingOwner
	}
	if booking.Status == models.BookingStatusCancelled {
		return models.Booking{}, ErrBookingCancelled
	}

	cancelled := models.BookingStatusCancelled
	bs.store.UpdateBooking(booking.ID, models.BookingUpdate{Status: &cancelled})
	booking.Status = cancelled

	available := true
	bs.store.UpdateRoom(booking.RoomID, models.RoomUpdate{IsAvailable: &available})

	hostelName := booking.HostelID
	if hostel, ok := bs.store.FindHostel(booking.HostelID); ok {
		hostelName = hostel.Name
	}
	bs.notifications.Create(booking.UserID, models.NotificationTypeCancellation, map[string]interface{}{
		"hostelName": hostelName,
		"bookingId":  booking.ID,
	})

	return booking, nil
}
