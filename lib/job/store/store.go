package jobstore

import (
	jobapimodels "rh-hub-backend/models/api/job"
	dbmodels "rh-hub-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Job) (id string, err error)
	GetByID(companyID, id string) (*dbmodels.Job, error)
	Update(companyID, id string, updMap map[string]interface{}) error
	Delete(companyID, id string) error
	ListCount(companyID string, filter jobapimodels.JobFilter) (int64, error)
	List(companyID string, filter jobapimodels.JobFilter) ([]dbmodels.Job, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Job) (id string, err error) {
	if err = rec.Validate(); err != nil {
		return "", err
	}
	err = i.db.
		Omit("Author", "Department").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(companyID, id string) (*dbmodels.Job, error) {
	rec := dbmodels.Job{}
	err := i.db.
		Where("id = ?", id).
		Where("company_id = ?", companyID).
		Preload("Department").
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

func (i impl) Update(companyID, id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	return i.db.
		Model(&dbmodels.Job{}).
		Where("id = ?", id).
		Where("company_id = ?", companyID).
		Updates(updMap).
		Error
}

func (i impl) Delete(companyID, id string) error {
	rec := dbmodels.Job{
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

func (i impl) ListCount(companyID string, filter jobapimodels.JobFilter) (int64, error) {
	var rowCount int64
	tx := i.db.Model(&dbmodels.Job{})
	i.addFilter(tx, companyID, filter)
	if err := tx.Count(&rowCount).Error; err != nil {
		return 0, err
	}
	return rowCount, nil
}

func (i impl) List(companyID string, filter jobapimodels.JobFilter) ([]dbmodels.Job, error) {
	list := []dbmodels.Job{}
	tx := i.db.Model(&dbmodels.Job{})
	i.addFilter(tx, companyID, filter)
	page, limit := filter.GetPage()
	tx.Limit(limit).Offset((page - 1) * limit)
	err := tx.
		Preload("Department").
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) addFilter(tx *gorm.DB, companyID string, filter jobapimodels.JobFilter) {
	tx.Where("company_id = ?", companyID)
	if filter.Search != "" {
		tx.Where("title ILIKE ?", "%"+filter.Search+"%")
	}
	if len(filter.Statuses) != 0 {
		tx.Where("status in (?)", filter.Statuses)
	}
	if filter.DepartmentID != "" {
		tx.Where("department_id = ?", filter.DepartmentID)
	}
}
