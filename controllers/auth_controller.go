package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hostelhub/hostelhub_backend/models"
	"github.com/hostelhub/hostelhub_backend/services"
	"github.com/hostelhub/hostelhub_backend/store"
)

// AuthController handles login, signup and logout for the demo session.
type AuthController struct {
	store *store.Store
	auth  *services.AuthService
}

// NewAuthController creates a new auth controller.
func NewAuthController(s *store.Store) *AuthController {
	return &AuthController{store: s, auth: services.NewAuthService(s)}
}

// Signup creates a student or owner account and logs it in.
func (ac *AuthController) Signup(c echo.Context) error {
	var req models.SignupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Name, email, password and a role of student or owner are required",
		})
	}

	user, err := ac.auth.Signup(req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		return c.JSON(http.StatusConflict, models.Response{
			Status:  http.StatusConflict,
			Message: err.Error(),
		})
	}

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Signup successful",
		Data:    user.Sanitized(),
	})
}

// Login matches the credentials against the in-memory users and makes
// the match the session user.
func (ac *AuthController) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Email and password are required",
		})
	}

	user, err := ac.auth.Login(req.Email, req.Password)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Login successful",
		Data:    user.Sanitized(),
	})
}

// Logout clears the session user.
func (ac *AuthController) Logout(c echo.Context) error {
	ac.auth.Logout()
	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Logged out",
	})
}

// Me returns the session user.
func (ac *AuthController) Me(c echo.Context) error {
	user := ac.store.CurrentUser()
	if user == nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Not logged in",
		})
	}
	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Session user retrieved",
		Data:    user.Sanitized(),
	})
}
