package store

import (
	"time"

	"github.com/hostelhub/hostelhub_backend/models"
)

// Demo seed data: 8 users, 8 hostels, 19 rooms, 5 bookings, 5 payments
// and 4 notifications. ResetDemo restores exactly these records.

func seedUsers() []models.User {
	return []models.User{
		{ID: "1", Name: "Chioma Adeyemi", Email: "chioma@student.com", Role: models.RoleStudent, Password: "password"},
		{ID: "2", Name: "Tunde Okonkwo", Email: "tunde@owner.com", Role: models.RoleOwner, Password: "password"},
		{ID: "3", Name: "Zainab Ahmed", Email: "zainab@admin.com", Role: models.RoleAdmin, Password: "password"},
		{ID: "4", Name: "Amara Okoro", Email: "amara@student.com", Role: models.RoleStudent, Password: "password"},
		{ID: "5", Name: "Ibrahim Hassan", Email: "ibrahim@owner.com", Role: models.RoleOwner, Password: "password"},
		{ID: "6", Name: "Grace Eze", Email: "grace@student.com", Role: models.RoleStudent, Password: "password"},
		{ID: "7", Name: "David Obi", Email: "david@student.com", Role: models.RoleStudent, Password: "password"},
		{ID: "8", Name: "Fatima Abubakar", Email: "fatima@owner.com", Role: models.RoleOwner, Password: "password"},
	}
}

func seedHostels(now time.Time) []models.Hostel {
	daysAgo := func(d int) time.Time { return now.AddDate(0, 0, -d) }
	return []models.Hostel{
		{
			ID: "h1", Name: "Elite Heights Hostel", Location: "Yaba, Lagos", NearbySchool: "UNILAG",
			Price: 150000, Amenities: []string{"WiFi", "AC", "Security", "Water", "Generator", "Parking"},
			Images: []string{"/modern-hostel-room-with-ac.jpg"}, OwnerID: "2",
			Status: models.HostelStatusActive, CreatedAt: daysAgo(30),
		},
		{
			ID: "h2", Name: "Campus Haven", Location: "Ibadan", NearbySchool: "UNIBEN",
			Price: 120000, Amenities: []string{"WiFi", "Security", "Water", "Laundry", "Gym"},
			Images: []string{"/comfortable-student-accommodation.jpg"}, OwnerID: "2",
			Status: models.HostelStatusActive, CreatedAt: daysAgo(25),
		},
		{
			ID: "h3", Name: "Academic Plaza", Location: "Ile-Ife", NearbySchool: "OAU",
			Price: 100000, Amenities: []string{"WiFi", "AC", "Study Area", "Security", "Water"},
			Images: []string{"/student-hostel-near-university.jpg"}, OwnerID: "2",
			Status: models.HostelStatusActive, CreatedAt: daysAgo(20),
		},
		{
			ID: "h4", Name: "Unity Suites", Location: "Lekki, Lagos", NearbySchool: "Lagos State University",
			Price: 180000, Amenities: []string{"WiFi", "AC", "Security", "Pool", "Gym", "Restaurant"},
			Images: []string{"/premium-student-hostel-accommodation.jpg"}, OwnerID: "5",
			Status: models.HostelStatusActive, CreatedAt: daysAgo(15),
		},
		{
			ID: "h5", Name: "Scholar's Rest", Location: "Enugu", NearbySchool: "UNEC",
			Price: 95000, Amenities: []string{"WiFi", "Security", "Water", "Study Lounge"},
			Images: []string{"/affordable-hostel-for-university-students.jpg"}, OwnerID: "5",
			Status: models.HostelStatusActive, CreatedAt: daysAgo(10),
		},
		{
			ID: "h6", Name: "Prime Living", Location: "Port Harcourt", NearbySchool: "UNIPORT",
			Price: 140000, Amenities: []string{"WiFi", "AC", "Generator", "Security", "Water", "Kitchen"},
			Images: []string{"/spacious-hostel-room-with-facilities.jpg"}, OwnerID: "5",
			Status: models.HostelStatusPending, CreatedAt: daysAgo(5),
		},
		{
			ID: "h7", Name: "Tech Hub Accommodation", Location: "Kano", NearbySchool: "BUK",
			Price: 110000, Amenities: []string{"WiFi", "AC", "Security", "Study Area", "Generator"},
			Images: []string{"/modern-hostel-room-with-ac.jpg"}, OwnerID: "8",
			Status: models.HostelStatusActive, CreatedAt: daysAgo(8),
		},
		{
			ID: "h8", Name: "Student's Paradise", Location: "Portharcourt", NearbySchool: "University of Portharcourt",
			Price: 125000, Amenities: []string{"WiFi", "AC", "Pool", "Gym", "Security", "Water"},
			Images: []string{"/comfortable-student-accommodation.jpg"}, OwnerID: "8",
			Status: models.HostelStatusActive, CreatedAt: daysAgo(3),
		},
	}
}

func seedRooms() []models.Room {
	return []models.Room{
		{ID: "r1", HostelID: "h1", Type: "Shared (4-bed)", Price: 150000, IsAvailable: true},
		{ID: "r2", HostelID: "h1", Type: "Ensuite (Double)", Price: 180000, IsAvailable: true},
		{ID: "r3", HostelID: "h1", Type: "Ensuite (Single)", Price: 200000, IsAvailable: false},
		{ID: "r4", HostelID: "h2", Type: "Shared (4-bed)", Price: 120000, IsAvailable: true},
		{ID: "r5", HostelID: "h2", Type: "Ensuite (Double)", Price: 150000, IsAvailable: false},
		{ID: "r6", HostelID: "h2", Type: "Shared (2-bed)", Price: 135000, IsAvailable: true},
		{ID: "r7", HostelID: "h3", Type: "Shared (4-bed)", Price: 100000, IsAvailable: true},
		{ID: "r8", HostelID: "h3", Type: "Ensuite (Double)", Price: 130000, IsAvailable: true},
		{ID: "r9", HostelID: "h4", Type: "Ensuite (Double)", Price: 180000, IsAvailable: true},
		{ID: "r10", HostelID: "h4", Type: "Premium Suite (Double)", Price: 220000, IsAvailable: false},
		{ID: "r11", HostelID: "h5", Type: "Shared (4-bed)", Price: 95000, IsAvailable: true},
		{ID: "r12", HostelID: "h5", Type: "Ensuite (Double)", Price: 120000, IsAvailable: true},
		{ID: "r13", HostelID: "h6", Type: "Shared (4-bed)", Price: 140000, IsAvailable: true},
		{ID: "r14", HostelID: "h6", Type: "Ensuite (Double)", Price: 170000, IsAvailable: true},
		{ID: "r15", HostelID: "h7", Type: "Shared (4-bed)", Price: 110000, IsAvailable: true},
		{ID: "r16", HostelID: "h7", Type: "Ensuite (Double)", Price: 140000, IsAvailable: true},
		{ID: "r17", HostelID: "h8", Type: "Shared (4-bed)", Price: 125000, IsAvailable: true},
		{ID: "r18", HostelID: "h8", Type: "Ensuite (Double)", Price: 155000, IsAvailable: false},
		{ID: "r19", HostelID: "h8", Type: "Premium Suite (Double)", Price: 200000, IsAvailable: true},
	}
}

func seedBookings(now time.Time) []models.Booking {
	daysAgo := func(d int) time.Time { return now.AddDate(0, 0, -d) }
	return []models.Booking{
		{ID: "BK1001", UserID: "1", RoomID: "r1", HostelID: "h1", Amount: 150000, Status: models.BookingStatusPaid, Reference: "PAY20240115A", CreatedAt: daysAgo(30)},
		{ID: "BK1002", UserID: "4", RoomID: "r4", HostelID: "h2", Amount: 120000, Status: models.BookingStatusPaid, Reference: "PAY20240120B", CreatedAt: daysAgo(25)},
		{ID: "BK1003", UserID: "6", RoomID: "r7", HostelID: "h3", Amount: 100000, Status: models.BookingStatusPaid, Reference: "PAY20240125C", CreatedAt: daysAgo(20)},
		{ID: "BK1004", UserID: "7", RoomID: "r9", HostelID: "h4", Amount: 180000, Status: models.BookingStatusPaid, Reference: "PAY20240201D", CreatedAt: daysAgo(15)},
		{ID: "BK1005", UserID: "1", RoomID: "r12", HostelID: "h5", Amount: 120000, Status: models.BookingStatusPaid, Reference: "PAY20240210E", CreatedAt: daysAgo(8)},
	}
}

func seedPayments(now time.Time) []models.Payment {
	daysAgo := func(d int) time.Time { return now.AddDate(0, 0, -d) }
	return []models.Payment{
		{ID: "PM1001", BookingID: "BK1001", Reference: "PAY20240115A", Status: models.PaymentStatusCompleted, Amount: 150000, CreatedAt: daysAgo(30)},
		{ID: "PM1002", BookingID: "BK1002", Reference: "PAY20240120B", Status: models.PaymentStatusCompleted, Amount: 120000, CreatedAt: daysAgo(25)},
		{ID: "PM1003", BookingID: "BK1003", Reference: "PAY20240125C", Status: models.PaymentStatusCompleted, Amount: 100000, CreatedAt: daysAgo(20)},
		{ID: "PM1004", BookingID: "BK1004", Reference: "PAY20240201D", Status: models.PaymentStatusCompleted, Amount: 180000, CreatedAt: daysAgo(15)},
		{ID: "PM1005", BookingID: "BK1005", Reference: "PAY20240210E", Status: models.PaymentStatusCompleted, Amount: 120000, CreatedAt: daysAgo(8)},
	}
}

func seedNotifications(now time.Time) []models.Notification {
	daysAgo := func(d int) time.Time { return now.AddDate(0, 0, -d) }
	return []models.Notification{
		{
			ID: "n1", UserID: "1", Type: models.NotificationTypePayment,
			Title:   "Payment Confirmed",
			Message: "Your booking payment of ₦150,000 has been successfully processed",
			Read:    false,
			Data:    map[string]interface{}{"bookingId": "BK1001", "amount": 150000},
			CreatedAt: daysAgo(30),
		},
		{
			ID: "n2", UserID: "2", Type: models.NotificationTypeApproval,
			Title:   "Hostel Approved",
			Message: "Your hostel 'Elite Heights Hostel' has been approved and is now live",
			Read:    true,
			Data:    map[string]interface{}{"hostelId": "h1"},
			CreatedAt: daysAgo(28),
		},
		{
			ID: "n3", UserID: "4", Type: models.NotificationTypeBooking,
			Title:   "Booking Confirmed",
			Message: "Your reservation at Campus Haven is confirmed for the upcoming semester",
			Read:    true,
			Data:    map[string]interface{}{"hostelId": "h2", "bookingId": "BK1002"},
			CreatedAt: daysAgo(25),
		},
		{
			ID: "n4", UserID: "1", Type: models.NotificationTypeSystem,
			Title:   "Welcome to HostelHub",
			Message: "Complete your profile to get better hostel recommendations",
			Read:    false,
			CreatedAt: now.Add(-2 * time.Hour),
		},
	}
}

// seedLocked replaces every collection with fresh seed data. The caller
// must hold the write lock.
func (s *Store) seedLocked() {
	now := time.Now()
	s.users = seedUsers()
	s.hostels = seedHostels(now)
	s.rooms = seedRooms()
	s.bookings = seedBookings(now)
	s.payments = seedPayments(now)
	s.notifications = seedNotifications(now)
}
