package services

import (
	"errors"

	"github.com/hostelhub/hostelhub_backend/models"
	"github.com/hostelhub/hostelhub_backend/store"
	"github.com/hostelhub/hostelhub_backend/utils"
)

// Auth failures surfaced to the caller. The login message is generic on
// purpose: it never reveals whether the email exists.
var (
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrEmailExists        = errors.New("Email already exists")
)

// AuthService implements the demo's login/signup/logout operations.
// Passwords are compared as plaintext against the in-memory users; there
// is no hashing, no token and no lockout.
type AuthService struct {
	store *store.Store
}

// NewAuthService creates a new auth service.
func NewAuthService(s *store.Store) *AuthService {
	return &AuthService{store: s}
}

// Login matches email and password exactly (case-sensitive) and makes
// the matched user the session user.
func (as *AuthService) Login(email, password string) (models.User, error) {
	user, ok := as.store.FindUserByEmail(email)
	if !ok || user.Password != password {
		return models.User{}, ErrInvalidCredentials
	}

	as.store.SetCurrentUser(&user)
	return user, nil
}

// Signup creates a new student or owner account, appends it to the users
// and makes it the session user. The email must not already exist
// (exact, case-sensitive comparison).
func (as *AuthService) Signup(name, email, password, role string) (models.User, error) {
	if _, exists := as.store.FindUserByEmail(email); exists {
		return models.User{}, ErrEmailExists
	}

	user := models.User{
		ID:       utils.NewID("u"),
		Name:     name,
		Email:    email,
		Password: password,
		Role:     role,
	}
	as.store.AddUser(user)
	as.store.SetCurrentUser(&user)
	return user, nil
}

// Logout clears the session user.
func (as *AuthService) Logout() {
	as.store.SetCurrentUser(nil)
}
