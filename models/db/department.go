package dbmodels

import (
	"github.com/pkg/errors"
)

type Department struct {
	BaseCompanyModel
	Name        string `gorm:"type:varchar(255)"`
	Description string
	ManagerID   *string `gorm:"type:varchar(36)"`
	IsActive    bool
}

func (d *Department) Validate() error {
	if err := d.BaseCompanyModel.Validate(); err != nil {
		return err
	}
	if d.Name == "" {
		return errors.New("не указано название подразделения")
	}
	return nil
}
