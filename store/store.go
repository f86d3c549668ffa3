package store

import (
	"sort"
	"sync"

	"github.com/hostelhub/hostelhub_backend/models"
)

// Store is the single source of truth for the demo: every collection
// plus the active session user live here, in process memory, seeded from
// fixed mock data. There is no persistence; ResetDemo restores the seed.
//
// The store is an explicit dependency handed to controllers and
// services, never a package-level global. The mutex only exists because
// Echo serves requests concurrently; the modeled domain still has a
// single logical writer (one demo session).
type Store struct {
	mu sync.RWMutex

	currentUser   *models.User
	users         []models.User
	hostels       []models.Hostel
	rooms         []models.Room
	bookings      []models.Booking
	payments      []models.Payment
	notifications []models.Notification

	subscribers []Subscriber
}

// New returns a store populated with the demo seed data and no session
// user.
func New() *Store {
	s := &Store{}
	s.seed()
	return s
}

// SetCurrentUser replaces the session user. Passing nil logs out.
func (s *Store) SetCurrentUser(user *models.User) {
	s.mu.Lock()
	if user != nil {
		u := *user
		s.currentUser = &u
	} else {
		s.currentUser = nil
	}
	s.mu.Unlock()

	event := Event{Entity: "session", Action: "updated"}
	if user != nil {
		event.ID = user.ID
	}
	s.publish(event)
}

// CurrentUser returns a copy of the session user, or nil when nobody is
// logged in.
func (s *Store) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.currentUser == nil {
		return nil
	}
	u := *s.currentUser
	return &u
}

// Users returns a snapshot of all users.
func (s *Store) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.User(nil), s.users...)
}

// AddUser appends a user. Uniqueness of the email is the caller's
// concern (the auth service checks before appending).
func (s *Store) AddUser(user models.User) {
	s.mu.Lock()
	s.users = append(s.users, user)
	s.mu.Unlock()
	s.publish(Event{Entity: "user", Action: "created", ID: user.ID})
}

// FindUserByEmail does an exact, case-sensitive match.
func (s *Store) FindUserByEmail(email string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, true
		}
	}
	return models.User{}, false
}

// FindUser looks a user up by id.
func (s *Store) FindUser(id string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// Hostels returns a snapshot of all hostels.
func (s *Store) Hostels() []models.Hostel {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Hostel(nil), s.hostels...)
}

// FindHostel looks a hostel up by id.
func (s *Store) FindHostel(id string) (models.Hostel, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, h := range s.hostels {
		if h.ID == id {
			return h, true
		}
	}
	return models.Hostel{}, false
}

// AddHostel appends a hostel.
func (s *Store) AddHostel(hostel models.Hostel) {
	s.mu.Lock()
	s.hostels = append(s.hostels, hostel)
	s.mu.Unlock()
	s.publish(Event{Entity: "hostel", Action: "created", ID: hostel.ID})
}

// UpdateHostel shallow-merges the patch into the hostel with the given
// id; nil patch fields are left untouched (last write wins per field).
func (s *Store) UpdateHostel(id string, patch models.HostelUpdate) bool {
	s.mu.Lock()
	updated := false
	for i := range s.hostels {
		if s.hostels[i].ID != id {
			continue
		}
		h := &s.hostels[i]
		if patch.Name != nil {
			h.Name = *patch.Name
		}
		if patch.Location != nil {
			h.Location = *patch.Location
		}
		if patch.NearbySchool != nil {
			h.NearbySchool = *patch.NearbySchool
		}
		if patch.Price != nil {
			h.Price = *patch.Price
		}
		if patch.Amenities != nil {
			h.Amenities = *patch.Amenities
		}
		if patch.Images != nil {
			h.Images = *patch.Images
		}
		if patch.Status != nil {
			h.Status = *patch.Status
		}
		updated = true
		break
	}
	s.mu.Unlock()

	if updated {
		s.publish(Event{Entity: "hostel", Action: "updated", ID: id})
	}
	return updated
}

// DeleteHostel removes the hostel and cascades to every room that
// belongs to it. Bookings are left as-is, matching the demo's behavior.
func (s *Store) DeleteHostel(id string) {
	s.mu.Lock()
	hostels := s.hostels[:0]
	for _, h := range s.hostels {
		if h.ID != id {
			hostels = append(hostels, h)
		}
	}
	s.hostels = hostels

	rooms := s.rooms[:0]
	for _, r := range s.rooms {
		if r.HostelID != id {
			rooms = append(rooms, r)
		}
	}
	s.rooms = rooms
	s.mu.Unlock()

	s.publish(Event{Entity: "hostel", Action: "deleted", ID: id})
}

// Rooms returns a snapshot of all rooms.
func (s *Store) Rooms() []models.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Room(nil), s.rooms...)
}

// FindRoom looks a room up by id.
func (s *Store) FindRoom(id string) (models.Room, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.rooms {
		if r.ID == id {
			return r, true
		}
	}
	return models.Room{}, false
}

// AddRoom appends a room.
func (s *Store) AddRoom(room models.Room) {
	s.mu.Lock()
	s.rooms = append(s.rooms, room)
	s.mu.Unlock()
	s.publish(Event{Entity: "room", Action: "created", ID: room.ID})
}

// UpdateRoom shallow-merges the patch into the room with the given id.
func (s *Store) UpdateRoom(id string, patch models.RoomUpdate) bool {
	s.mu.Lock()
	updated := false
	for i := range s.rooms {
		if s.rooms[i].ID != id {
			continue
		}
		r := &s.rooms[i]
		if patch.Type != nil {
			r.Type = *patch.Type
		}
		if patch.Price != nil {
			r.Price = *patch.Price
		}
		if patch.IsAvailable != nil {
			r.IsAvailable = *patch.IsAvailable
		}
		updated = true
		break
	}
	s.mu.Unlock()

	if updated {
		s.publish(Event{Entity: "room", Action: "updated", ID: id})
	}
	return updated
}

// ReserveRoom checks that the room is available and marks it unavailable
// in one step under the write lock, so of any number of concurrent
// booking attempts for the same room exactly one wins.
func (s *Store) ReserveRoom(id string) bool {
	s.mu.Lock()
	reserved := false
	for i := range s.rooms {
		if s.rooms[i].ID == id && s.rooms[i].IsAvailable {
			s.rooms[i].IsAvailable = false
			reserved = true
			break
		}
	}
	s.mu.Unlock()

	if reserved {
		s.publish(Event{Entity: "room", Action: "updated", ID: id})
	}
	return reserved
}

// ReleaseRoom makes a reserved room available again. Callers use it to
// back out a reservation whose payment step failed.
func (s *Store) ReleaseRoom(id string) {
	available := true
	s.UpdateRoom(id, models.RoomUpdate{IsAvailable: &available})
}

// DeleteRoom removes a room. Bookings referencing it are not touched, so
// dangling room references are possible, as in the original demo data
// model.
func (s *Store) DeleteRoom(id string) {
	s.mu.Lock()
	rooms := s.rooms[:0]
	for _, r := range s.rooms {
		if r.ID != id {
			rooms = append(rooms, r)
		}
	}
	s.rooms = rooms
	s.mu.Unlock()

	s.publish(Event{Entity: "room", Action: "deleted", ID: id})
}

// GetRoomsByHostel returns the rooms belonging to a hostel.
func (s *Store) GetRoomsByHostel(hostelID string) []models.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var rooms []models.Room
	for _, r := range s.rooms {
		if r.HostelID == hostelID {
			rooms = append(rooms, r)
		}
	}
	return rooms
}

// Bookings returns a snapshot of all bookings.
func (s *Store) Bookings() []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Booking(nil), s.bookings...)
}

// FindBooking looks a booking up by id.
func (s *Store) FindBooking(id string) (models.Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.bookings {
		if b.ID == id {
			return b, true
		}
	}
	return models.Booking{}, false
}

// AddBooking appends a booking. No referential check is made against
// rooms or hostels; the booking service does that before calling.
func (s *Store) AddBooking(booking models.Booking) {
	s.mu.Lock()
	s.bookings = append(s.bookings, booking)
	s.mu.Unlock()
	s.publish(Event{Entity: "booking", Action: "created", ID: booking.ID})
}

// UpdateBooking shallow-merges the patch into the booking with the given
// id. The reference cannot be changed once set.
func (s *Store) UpdateBooking(id string, patch models.BookingUpdate) bool {
	s.mu.Lock()
	updated := false
	for i := range s.bookings {
		if s.bookings[i].ID != id {
			continue
		}
		if patch.Status != nil {
			s.bookings[i].Status = *patch.Status
		}
		updated = true
		break
	}
	s.mu.Unlock()

	if updated {
		s.publish(Event{Entity: "booking", Action: "updated", ID: id})
	}
	return updated
}

// Payments returns a snapshot of all payments.
func (s *Store) Payments() []models.Payment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Payment(nil), s.payments...)
}

// AddPayment appends a payment.
func (s *Store) AddPayment(payment models.Payment) {
	s.mu.Lock()
	s.payments = append(s.payments, payment)
	s.mu.Unlock()
	s.publish(Event{Entity: "payment", Action: "created", ID: payment.ID})
}

// Notifications returns a snapshot of all notifications.
func (s *Store) Notifications() []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Notification(nil), s.notifications...)
}

// AddNotification appends a notification.
func (s *Store) AddNotification(notification models.Notification) {
	s.mu.Lock()
	s.notifications = append(s.notifications, notification)
	s.mu.Unlock()
	s.publish(Event{
		Entity: "notification",
		Action: "created",
		ID:     notification.ID,
		UserID: notification.UserID,
	})
}

// MarkNotificationRead flips the read flag on a notification addressed
// to the given user; notifications of other recipients are not reachable
// this way. Read notifications never become unread again.
func (s *Store) MarkNotificationRead(userID, id string) bool {
	s.mu.Lock()
	updated := false
	for i := range s.notifications {
		if s.notifications[i].ID == id && s.notifications[i].UserID == userID {
			s.notifications[i].Read = true
			updated = true
			break
		}
	}
	s.mu.Unlock()

	if updated {
		s.publish(Event{Entity: "notification", Action: "updated", ID: id})
	}
	return updated
}

// DeleteNotification permanently removes a notification addressed to
// the given user.
func (s *Store) DeleteNotification(userID, id string) bool {
	s.mu.Lock()
	deleted := false
	notifications := s.notifications[:0]
	for _, n := range s.notifications {
		if n.ID == id && n.UserID == userID {
			deleted = true
			continue
		}
		notifications = append(notifications, n)
	}
	s.notifications = notifications
	s.mu.Unlock()

	if deleted {
		s.publish(Event{Entity: "notification", Action: "deleted", ID: id})
	}
	return deleted
}

// GetUserNotifications returns the notifications addressed to a user,
// newest first.
func (s *Store) GetUserNotifications(userID string) []models.Notification {
	s.mu.RLock()
	var result []models.Notification
	for _, n := range s.notifications {
		if n.UserID == userID {
			result = append(result, n)
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result
}

// ResetDemo restores every collection to the original seed data and
// clears the session user.
func (s *Store) ResetDemo() {
	s.mu.Lock()
	s.currentUser = nil
	s.seedLocked()
	s.mu.Unlock()

	s.publish(Event{Entity: "demo", Action: "reset"})
}

func (s *Store) seed() {
	s.mu.Lock()
	s.seedLocked()
	s.mu.Unlock()
}
