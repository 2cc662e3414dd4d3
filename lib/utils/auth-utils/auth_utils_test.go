package authutils

import (
	"rh-hub-backend/config"
	"rh-hub-backend/models"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func initTestConfig() {
	config.Conf = &config.Configuration{}
	config.Conf.Auth.JWTSecret = "test-secret"
	config.Conf.Auth.JWTExpireInSec = 60
	config.Conf.Auth.JWTRefreshExpireInSec = 120
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret!", hash)
	require.True(t, CheckPassword(hash, "s3cret!"))
	require.False(t, CheckPassword(hash, "other"))
	require.False(t, CheckPassword("not-a-hash", "s3cret!"))
}

func TestTokens(t *testing.T) {
	initTestConfig()
	t.Run("Токен доступа содержит компанию и роль", func(t *testing.T) {
		tokenString, err := GetToken("user-1", "Ana Souza", "company-1", models.RecruiterRole)
		require.NoError(t, err)
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			return []byte("test-secret"), nil
		})
		require.NoError(t, err)
		claims := token.Claims.(jwt.MapClaims)
		require.Equal(t, "user-1", claims["sub"])
		require.Equal(t, "company-1", claims["company"])
		require.Equal(t, "RECRUITER", claims["role"])
		require.Equal(t, "Ana Souza", claims["name"])
	})
	t.Run("Refresh token", func(t *testing.T) {
		tokenString, err := GetRefreshToken("user-1", "Ana Souza")
		require.NoError(t, err)
		userID, err := ParseRefreshToken(tokenString)
		require.NoError(t, err)
		require.Equal(t, "user-1", userID)
	})
	t.Run("Токен доступа не принимается как refresh", func(t *testing.T) {
		tokenString, err := GetToken("user-1", "Ana Souza", "company-1", models.RecruiterRole)
		require.NoError(t, err)
		_, err = ParseRefreshToken(tokenString)
		require.Error(t, err)
	})
	t.Run("Чужая подпись", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "user-1", "typ": "refresh"})
		tokenString, err := token.SignedString([]byte("other-secret"))
		require.NoError(t, err)
		_, err = ParseRefreshToken(tokenString)
		require.Error(t, err)
	})
}
