package userapimodels

import (
	"net/mail"
	"rh-hub-backend/models"
	apimodels "rh-hub-backend/models/api"
	dbmodels "rh-hub-backend/models/db"
	"time"

	"github.com/pkg/errors"
)

type UserCommonData struct {
	Email     string          `json:"email"` // Email пользователя, он же логин
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	Phone     string          `json:"phone"`
	Role      models.UserRole `json:"role"` // Роль COMPANY_ADMIN/RECRUITER/MANAGER
}

func (r UserCommonData) Validate() error {
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return errors.New("почта имеет неправильный формат")
	}
	if r.FirstName == "" && r.LastName == "" {
		return errors.New("не указаны имя и фамилия")
	}
	if !r.Role.IsValid() {
		return errors.New("указана неизвестная роль пользователя")
	}
	return nil
}

type CreateUser struct {
	UserCommonData
	Password string `json:"password"`
}

func (r CreateUser) Validate() error {
	if err := r.UserCommonData.Validate(); err != nil {
		return err
	}
	if len(r.Password) < MinPasswordLen {
		return errors.Errorf("пароль должен быть не короче %d символов", MinPasswordLen)
	}
	return nil
}

const MinPasswordLen = 6

type UpdateUser struct {
	UserCommonData
	Password string `json:"password"` // Новый пароль, пустой - без изменений
	IsActive *bool  `json:"is_active"`
}

func (r UpdateUser) Validate() error {
	if err := r.UserCommonData.Validate(); err != nil {
		return err
	}
	if r.Password != "" && len(r.Password) < MinPasswordLen {
		return errors.Errorf("пароль должен быть не короче %d символов", MinPasswordLen)
	}
	return nil
}

type UserView struct {
	UserCommonData
	ID        string    `json:"id"`
	RoleName  string    `json:"role_name"`
	IsActive  bool      `json:"is_active"`
	LastLogin time.Time `json:"last_login"`
}

type UserFilter struct {
	apimodels.Pagination
	Search string `json:"search"` // Поиск по имени и email
}

func UserConvert(rec dbmodels.User) UserView {
	return UserView{
		UserCommonData: UserCommonData{
			Email:     rec.Email,
			FirstName: rec.FirstName,
			LastName:  rec.LastName,
			Phone:     rec.Phone,
			Role:      rec.Role,
		},
		ID:        rec.ID,
		RoleName:  rec.Role.ToHuman(),
		IsActive:  rec.IsActive,
		LastLogin: rec.LastLogin,
	}
}
