package usersstore

import (
	"rh-hub-backend/lib/utils/helpers"
	"rh-hub-backend/models"
	userapimodels "rh-hub-backend/models/api/user"
	dbmodels "rh-hub-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.User) (id string, err error)
	GetByID(userID string) (*dbmodels.User, error)
	GetCompanyUser(companyID, userID string) (*dbmodels.User, error)
	FindByEmail(email string) (*dbmodels.User, error)
	ExistByEmail(email string) (bool, error)
	Update(userID string, updMap map[string]interface{}) error
	Delete(companyID, userID string) error
	ListCount(companyID string, filter userapimodels.UserFilter) (int64, error)
	List(companyID string, filter userapimodels.UserFilter) ([]dbmodels.User, error)
	CountAdmins(companyID string) (int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.User) (id string, err error) {
	rec.Email = helpers.NormalizeEmail(rec.Email)
	err = i.db.
		Omit("Company").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(userID string) (*dbmodels.User, error) {
	rec := dbmodels.User{}
	err := i.db.
		Where("id = ?", userID).
		Preload("Company").
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

func (i impl) GetCompanyUser(companyID, userID string) (*dbmodels.User, error) {
	rec := dbmodels.User{}
	err := i.db.
		Where("id = ?", userID).
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

func (i impl) FindByEmail(email string) (*dbmodels.User, error) {
	rec := dbmodels.User{}
	err := i.db.
		Where("email = ?", helpers.NormalizeEmail(email)).
		Preload("Company").
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

func (i impl) ExistByEmail(email string) (bool, error) {
	var rowCount int64
	err := i.db.
		Model(&dbmodels.User{}).
		Where("email = ?", helpers.NormalizeEmail(email)).
		Count(&rowCount).
		Error
	if err != nil {
		return false, err
	}
	return rowCount > 0, nil
}

func (i impl) Update(userID string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	return i.db.
		Model(&dbmodels.User{}).
		Where("id = ?", userID).
		Updates(updMap).
		Error
}

func (i impl) Delete(companyID, userID string) error {
	return i.db.
		Where("company_id = ?", companyID).
		Where("id = ?", userID).
		Delete(&dbmodels.User{}).
		Error
}

func (i impl) ListCount(companyID string, filter userapimodels.UserFilter) (int64, error) {
	var rowCount int64
	tx := i.db.Model(&dbmodels.User{})
	i.addFilter(tx, companyID, filter)
	if err := tx.Count(&rowCount).Error; err != nil {
		return 0, err
	}
	return rowCount, nil
}

func (i impl) List(companyID string, filter userapimodels.UserFilter) ([]dbmodels.User, error) {
	list := []dbmodels.User{}
	tx := i.db.Model(&dbmodels.User{})
	i.addFilter(tx, companyID, filter)
	page, limit := filter.GetPage()
	tx.Limit(limit).Offset((page - 1) * limit)
	err := tx.Order("last_name, first_name").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) CountAdmins(companyID string) (int64, error) {
	var rowCount int64
	err := i.db.
		Model(&dbmodels.User{}).
		Where("company_id = ?", companyID).
		Where("role = ?", models.CompanyAdminRole).
		Where("is_active = ?", true).
		Count(&rowCount).
		Error
	return rowCount, err
}

func (i impl) addFilter(tx *gorm.DB, companyID string, filter userapimodels.UserFilter) {
	tx.Where("company_id = ?", companyID)
	if filter.Search != "" {
		search := "%" + filter.Search + "%"
		tx.Where("(first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ?)", search, search, search)
	}
}
