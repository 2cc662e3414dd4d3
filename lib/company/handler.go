package companyhandler

import (
	"rh-hub-backend/db"
	companystore "rh-hub-backend/lib/company/store"
	initchecker "rh-hub-backend/lib/utils/init-checker"
	companyapimodels "rh-hub-backend/models/api/company"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Get(companyID string) (*companyapimodels.CompanyView, error)
	Update(companyID string, data companyapimodels.CompanyData) error
	// Deactivate блокирует компанию, пользователи компании больше не могут войти
	Deactivate(companyID string) error
}

var Instance Provider

func NewHandler() {
	initchecker.CheckInit("db", db.DB)
	Instance = impl{
		store: companystore.NewInstance(db.DB),
	}
}

type impl struct {
	store companystore.Provider
}

func (i impl) Get(companyID string) (*companyapimodels.CompanyView, error) {
	rec, err := i.store.GetByID(companyID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения компании")
	}
	if rec == nil {
		return nil, nil
	}
	result := companyapimodels.CompanyConvert(*rec)
	return &result, nil
}

func (i impl) Update(companyID string, data companyapimodels.CompanyData) error {
	updMap := map[string]interface{}{
		"name":    data.Name,
		"cnpj":    data.Cnpj,
		"email":   data.Email,
		"phone":   data.Phone,
		"address": data.Address,
	}
	if err := i.store.Update(companyID, updMap); err != nil {
		return errors.Wrap(err, "ошибка обновления компании")
	}
	log.WithField("company_id", companyID).Info("обновлены данные компании")
	return nil
}

func (i impl) Deactivate(companyID string) error {
	if err := i.store.Update(companyID, map[string]interface{}{"is_active": false}); err != nil {
		return errors.Wrap(err, "ошибка блокировки компании")
	}
	log.WithField("company_id", companyID).Warn("компания заблокирована")
	return nil
}
