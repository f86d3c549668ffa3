package models

// LoginRequest is the payload for logging in. Matching is an exact,
// case-sensitive comparison against the seeded users.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SignupRequest is the payload for creating an account. Admins cannot be
// created through signup.
type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=student owner"`
}

// RejectHostelRequest carries the free-text reason an admin must provide
// when rejecting a hostel listing.
type RejectHostelRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// Response model
type Response struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}
