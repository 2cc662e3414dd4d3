package authapimodels

import (
	"testing"
	"time"

	"rh-hub-backend/models"

	"github.com/stretchr/testify/require"
)

func TestRegistration(t *testing.T) {
	data := Registration{
		CompanyName: "Tech Solutions",
		Email:       "admin@techsolutions.com",
		Password:    "admin123",
		FirstName:   "Carlos",
	}
	require.NoError(t, data.Validate())

	short := data
	short.Password = "123"
	require.Error(t, short.Validate())

	noCompany := data
	noCompany.CompanyName = " "
	require.Error(t, noCompany.Validate())

	noName := data
	noName.FirstName = ""
	require.Error(t, noName.Validate())
}

func TestLoginAndRefresh(t *testing.T) {
	require.Error(t, LoginRequest{Email: "bad", Password: "x"}.Validate())
	require.Error(t, LoginRequest{Email: "admin@techsolutions.com"}.Validate())
	require.NoError(t, LoginRequest{Email: "admin@techsolutions.com", Password: "x"}.Validate())

	require.Error(t, RefreshRequest{RefreshToken: "  "}.Validate())
	require.Error(t, RefreshRequest{RefreshToken: "not-a-jwt"}.Validate())
	require.NoError(t, RefreshRequest{RefreshToken: "a.b.c"}.Validate())
}

func TestTokenPair(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	pair := NewTokenPair("access", "refresh", models.RecruiterRole, now, 3600, 604800)
	require.Equal(t, int64(3600), pair.ExpiresIn)
	require.Equal(t, now.Add(7*24*time.Hour), pair.RefreshExpiresAt)
	require.Equal(t, models.RecruiterRole, pair.Role)
}
