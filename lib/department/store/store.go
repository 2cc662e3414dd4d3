package departmentstore

import (
	departmentapimodels "rh-hub-backend/models/api/department"
	dbmodels "rh-hub-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Department) (id string, err error)
	GetByID(companyID, id string) (rec *dbmodels.Department, err error)
	List(companyID string, filter departmentapimodels.DepartmentFind) (list []dbmodels.Department, err error)
	Update(companyID, id string, updMap map[string]interface{}) error
	Delete(companyID, id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Department) (id string, err error) {
	err = rec.Validate()
	if err != nil {
		return "", err
	}
	err = i.isUnique(rec.CompanyID, "", rec.Name)
	if err != nil {
		return "", err
	}
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(companyID, id string) (*dbmodels.Department, error) {
	rec := dbmodels.Department{}
	err := i.db.
		Where("id = ?", id).
		Where("company_id = ?", companyID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) List(companyID string, filter departmentapimodels.DepartmentFind) (list []dbmodels.Department, err error) {
	list = []dbmodels.Department{}
	tx := i.db.
		Where("company_id = ?", companyID)
	if filter.Name != "" {
		tx = tx.Where("name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.ActiveOnly {
		tx = tx.Where("is_active = ?", true)
	}
	err = tx.Order("name").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Update(companyID, id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	if name, ok := updMap["name"]; ok {
		err := i.isUnique(companyID, id, name.(string))
		if err != nil {
			return err
		}
	}
	return i.db.
		Model(&dbmodels.Department{}).
		Where("id = ?", id).
		Where("company_id = ?", companyID).
		Updates(updMap).
		Error
}

func (i impl) Delete(companyID, id string) error {
	rec := dbmodels.Department{
		BaseCompanyModel: dbmodels.BaseCompanyModel{
			BaseModel: dbmodels.BaseModel{ID: id},
			CompanyID: companyID,
		},
	}
	return i.db.
		Where("company_id = ?", companyID).
		Delete(&rec).
		Error
}

func (i impl) isUnique(companyID string, selfID, name string) error {
	var rowCount int64
	tx := i.db.Model(dbmodels.Department{})
	tx.Where("company_id = ?", companyID)
	tx.Where("name = ?", name)
	if selfID != "" {
		tx.Where("id <> ?", selfID)
	}
	err := tx.Count(&rowCount).Error
	if err != nil {
		return errors.Wrap(err, "ошибка проверки уникальности подразделения")
	}
	if rowCount != 0 {
		return errors.New("подразделение уже существует")
	}
	return nil
}
