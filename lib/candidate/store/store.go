package candidatestore

import (
	candidateapimodels "rh-hub-backend/models/api/candidate"
	dbmodels "rh-hub-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Candidate) (id string, err error)
	GetByID(companyID, id string) (*dbmodels.Candidate, error)
	GetByIDs(companyID string, ids []string) ([]dbmodels.Candidate, error)
	Update(companyID, id string, updMap map[string]interface{}) error
	Delete(companyID, id string) error
	ListCount(companyID string, filter candidateapimodels.CandidateFilter) (int64, error)
	List(companyID string, filter candidateapimodels.CandidateFilter) ([]dbmodels.Candidate, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Candidate) (id string, err error) {
	if err = rec.BaseCompanyModel.Validate(); err != nil {
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

func (i impl) GetByID(companyID, id string) (*dbmodels.Candidate, error) {
	rec := dbmodels.Candidate{}
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

func (i impl) GetByIDs(companyID string, ids []string) ([]dbmodels.Candidate, error) {
	list := []dbmodels.Candidate{}
	if len(ids) == 0 {
		return list, nil
	}
	err := i.db.
		Where("company_id = ?", companyID).
		Where("id in (?)", ids).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Update(companyID, id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	return i.db.
		Model(&dbmodels.Candidate{}).
		Where("id = ?", id).
		Where("company_id = ?", companyID).
		Updates(updMap).
		Error
}

func (i impl) Delete(companyID, id string) error {
	rec := dbmodels.Candidate{
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

func (i impl) ListCount(companyID string, filter candidateapimodels.CandidateFilter) (int64, error) {
	var rowCount int64
	tx := i.db.Model(&dbmodels.Candidate{})
	i.addFilter(tx, companyID, filter)
	if err := tx.Count(&rowCount).Error; err != nil {
		return 0, err
	}
	return rowCount, nil
}

func (i impl) List(companyID string, filter candidateapimodels.CandidateFilter) ([]dbmodels.Candidate, error) {
	list := []dbmodels.Candidate{}
	tx := i.db.Model(&dbmodels.Candidate{})
	i.addFilter(tx, companyID, filter)
	page, limit := filter.GetPage()
	tx.Limit(limit).Offset((page - 1) * limit)
	err := tx.Order("candidates.created_at desc").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) addFilter(tx *gorm.DB, companyID string, filter candidateapimodels.CandidateFilter) {
	tx.Where("candidates.company_id = ?", companyID)
	if filter.Search != "" {
		search := "%" + filter.Search + "%"
		tx.Where("(candidates.first_name ILIKE ? OR candidates.last_name ILIKE ? OR candidates.email ILIKE ? OR candidates.phone ILIKE ?)",
			search, search, search, search)
	}
	if filter.JobID != "" {
		tx.Where("exists (select 1 from candidate_pipelines cp where cp.candidate_id = candidates.id and cp.job_id = ?)", filter.JobID)
	}
}
