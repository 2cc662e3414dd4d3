package companyapimodels

import (
	dbmodels "rh-hub-backend/models/db"

	"github.com/pkg/errors"
)

type CompanyData struct {
	Name    string `json:"name"`    // Название компании
	Cnpj    string `json:"cnpj"`    // CNPJ
	Email   string `json:"email"`   // Контактный email
	Phone   string `json:"phone"`   // Телефон
	Address string `json:"address"` // Адрес
}

func (c CompanyData) Validate() error {
	if c.Name == "" {
		return errors.New("не указано название компании")
	}
	return nil
}

type CompanyView struct {
	CompanyData
	ID       string `json:"id"`
	IsActive bool   `json:"is_active"`
}

func CompanyConvert(rec dbmodels.Company) CompanyView {
	return CompanyView{
		CompanyData: CompanyData{
			Name:    rec.Name,
			Cnpj:    rec.Cnpj,
			Email:   rec.Email,
			Phone:   rec.Phone,
			Address: rec.Address,
		},
		ID:       rec.ID,
		IsActive: rec.IsActive,
	}
}
