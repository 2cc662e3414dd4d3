package authapimodels

import (
	"strings"
	"time"

	"rh-hub-backend/models"

	"github.com/pkg/errors"
)

// TokenPair выдается при входе и при обновлении токена
type TokenPair struct {
	Token            string          `json:"token"`              // Токен доступа
	ExpiresIn        int64           `json:"expires_in"`         // Время жизни токена доступа, сек
	RefreshToken     string          `json:"refresh_token"`      // Токен обновления
	RefreshExpiresAt time.Time       `json:"refresh_expires_at"` // Срок действия токена обновления
	Role             models.UserRole `json:"role"`               // Роль пользователя
}

func NewTokenPair(token, refreshToken string, role models.UserRole, now time.Time, ttlSec, refreshTTLSec int64) TokenPair {
	return TokenPair{
		Token:            token,
		ExpiresIn:        ttlSec,
		RefreshToken:     refreshToken,
		RefreshExpiresAt: now.Add(time.Duration(refreshTTLSec) * time.Second).UTC(),
		Role:             role,
	}
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (r RefreshRequest) Validate() error {
	token := strings.TrimSpace(r.RefreshToken)
	if token == "" {
		return errors.New("refresh token не должен быть пустым")
	}
	if strings.Count(token, ".") != 2 {
		return errors.New("refresh token должен быть в формате JWT")
	}
	return nil
}
