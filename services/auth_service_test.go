package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostelhub/hostelhub_backend/models"
	"github.com/hostelhub/hostelhub_backend/store"
)

func TestLogin(t *testing.T) {
	s := store.New()
	auth := NewAuthService(s)

	t.Run("valid credentials", func(t *testing.T) {
		user, err := auth.Login("chioma@student.com", "password")
		require.NoError(t, err)
		assert.Equal(t, "1", user.ID)
		assert.Equal(t, models.RoleStudent, user.Role)

		current := s.CurrentUser()
		require.NotNil(t, current)
		assert.Equal(t, user.ID, current.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := auth.Login("chioma@student.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := auth.Login("nobody@nowhere.com", "password")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("case sensitive email", func(t *testing.T) {
		_, err := auth.Login("CHIOMA@student.com", "password")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestSignup(t *testing.T) {
	t.Run("duplicate email does not mutate users", func(t *testing.T) {
		s := store.New()
		auth := NewAuthService(s)

		_, err := auth.Signup("Someone", "chioma@student.com", "secret", models.RoleStudent)
		assert.ErrorIs(t, err, ErrEmailExists)
		assert.Len(t, s.Users(), 8)
		assert.Nil(t, s.CurrentUser())
	})

	t.Run("success appends once and sets session user", func(t *testing.T) {
		s := store.New()
		auth := NewAuthService(s)

		user, err := auth.Signup("Ngozi Ajayi", "ngozi@student.com", "secret", models.RoleStudent)
		require.NoError(t, err)
		assert.NotEmpty(t, user.ID)

		current := s.CurrentUser()
		require.NotNil(t, current)
		assert.Equal(t, user.ID, current.ID)

		count := 0
		for _, u := range s.Users() {
			if u.Email == "ngozi@student.com" {
				count++
			}
		}
		assert.Equal(t, 1, count)
	})
}

func TestLogout(t *testing.T) {
	s := store.New()
	auth := NewAuthService(s)

	_, err := auth.Login("tunde@owner.com", "password")
	require.NoError(t, err)
	require.NotNil(t, s.CurrentUser())

	auth.Logout()
	assert.Nil(t, s.CurrentUser())
}
