package departmenthandler

import (
	"rh-hub-backend/db"
	departmentstore "rh-hub-backend/lib/department/store"
	initchecker "rh-hub-backend/lib/utils/init-checker"
	departmentapimodels "rh-hub-backend/models/api/department"
	dbmodels "rh-hub-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(companyID string, data departmentapimodels.DepartmentData) (id string, err error)
	Update(companyID, id string, data departmentapimodels.DepartmentData) error
	Get(companyID, id string) (*departmentapimodels.DepartmentView, error)
	List(companyID string, filter departmentapimodels.DepartmentFind) ([]departmentapimodels.DepartmentView, error)
	Delete(companyID, id string) error
}

var Instance Provider

func NewHandler() {
	initchecker.CheckInit("db", db.DB)
	Instance = impl{
		store: departmentstore.NewInstance(db.DB),
	}
}

type impl struct {
	store departmentstore.Provider
}

func (i impl) Create(companyID string, data departmentapimodels.DepartmentData) (id string, err error) {
	rec := dbmodels.Department{
		BaseCompanyModel: dbmodels.BaseCompanyModel{CompanyID: companyID},
		Name:             data.Name,
		Description:      data.Description,
		IsActive:         true,
	}
	if data.ManagerID != "" {
		rec.ManagerID = &data.ManagerID
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	log.WithField("company_id", companyID).
		WithField("department_id", id).
		Info("создано подразделение")
	return id, nil
}

func (i impl) Update(companyID, id string, data departmentapimodels.DepartmentData) error {
	updMap := map[string]interface{}{
		"name":        data.Name,
		"description": data.Description,
		"is_active":   data.IsActive,
		"manager_id":  nil,
	}
	if data.ManagerID != "" {
		updMap["manager_id"] = data.ManagerID
	}
	return i.store.Update(companyID, id, updMap)
}

func (i impl) Get(companyID, id string) (*departmentapimodels.DepartmentView, error) {
	rec, err := i.store.GetByID(companyID, id)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения подразделения")
	}
	if rec == nil {
		return nil, nil
	}
	result := departmentapimodels.DepartmentConvert(*rec)
	return &result, nil
}

func (i impl) List(companyID string, filter departmentapimodels.DepartmentFind) ([]departmentapimodels.DepartmentView, error) {
	list, err := i.store.List(companyID, filter)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка подразделений")
	}
	result := make([]departmentapimodels.DepartmentView, 0, len(list))
	for _, rec := range list {
		result = append(result, departmentapimodels.DepartmentConvert(rec))
	}
	return result, nil
}

func (i impl) Delete(companyID, id string) error {
	return i.store.Delete(companyID, id)
}
