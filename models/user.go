package models

// User roles
const (
	RoleStudent = "student"
	RoleOwner   = "owner"
	RoleAdmin   = "admin"
)

// User model. Passwords are stored and compared as plaintext; this is a
// demo application with fixed seed accounts, not a real identity system.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"` // "student", "owner", "admin"
	Password string `json:"password,omitempty"`
}

// Sanitized returns a copy of the user safe to include in responses.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}
