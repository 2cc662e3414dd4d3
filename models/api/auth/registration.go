package authapimodels

import (
	"net/mail"
	"strings"

	"github.com/pkg/errors"
)

const MinPasswordLen = 6

// Registration регистрация компании вместе с первым администратором
type Registration struct {
	CompanyName string `json:"company_name"` // Название компании
	Cnpj        string `json:"cnpj"`         // CNPJ компании
	Email       string `json:"email"`        // Email администратора, он же логин
	Password    string `json:"password"`     // Пароль администратора
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Phone       string `json:"phone"`
}

func (r Registration) Validate() error {
	if strings.TrimSpace(r.CompanyName) == "" {
		return errors.New("не указано название компании")
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return errors.New("почта имеет неправильный формат")
	}
	if len(r.Password) < MinPasswordLen {
		return errors.Errorf("пароль должен быть не короче %d символов", MinPasswordLen)
	}
	if r.FirstName == "" && r.LastName == "" {
		return errors.New("не указаны имя и фамилия")
	}
	return nil
}

type MeView struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Role        string `json:"role"`
	RoleName    string `json:"role_name"`
	CompanyID   string `json:"company_id"`
	CompanyName string `json:"company_name"`
}
