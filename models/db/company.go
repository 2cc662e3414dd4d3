package dbmodels

import (
	"github.com/pkg/errors"
)

type Company struct {
	BaseModel
	Name     string `gorm:"type:varchar(255)"`
	Cnpj     string `gorm:"type:varchar(18);index"`
	Email    string `gorm:"type:varchar(255)"`
	Phone    string `gorm:"type:varchar(30)"`
	Address  string
	IsActive bool
}

func (c *Company) Validate() error {
	if c.Name == "" {
		return errors.New("не указано название компании")
	}
	return nil
}
