package stagestore

import (
	dbmodels "rh-hub-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.PipelineStage) (id string, err error)
	Update(companyID, jobID, id string, updMap map[string]interface{}) error
	GetByID(companyID, jobID, id string) (*dbmodels.PipelineStage, error)
	List(companyID, jobID string) (list []dbmodels.PipelineStage, err error)
	Delete(companyID, jobID, id string) (err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// Create добавляет этап в конец воронки
func (i impl) Create(rec dbmodels.PipelineStage) (id string, err error) {
	maxOrder, err := i.maxOrder(rec.CompanyID, rec.JobID)
	if err != nil {
		return "", err
	}
	rec.StageOrder = maxOrder + 1
	if rec.Color == "" {
		rec.Color = dbmodels.StageColor(rec.StageOrder - 1)
	}
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(companyID, jobID, id string) (*dbmodels.PipelineStage, error) {
	rec := dbmodels.PipelineStage{}
	err := i.db.
		Where("id = ?", id).
		Where("company_id = ?", companyID).
		Where("job_id = ?", jobID).
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

func (i impl) Update(companyID, jobID, id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	return i.db.
		Model(&dbmodels.PipelineStage{}).
		Where("id = ?", id).
		Where("company_id = ?", companyID).
		Where("job_id = ?", jobID).
		Updates(updMap).
		Error
}

// List этапы вакансии в порядке воронки
func (i impl) List(companyID, jobID string) (list []dbmodels.PipelineStage, err error) {
	list = []dbmodels.PipelineStage{}
	err = i.db.
		Where("company_id = ?", companyID).
		Where("job_id = ?", jobID).
		Order("stage_order, created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Delete(companyID, jobID, id string) (err error) {
	return i.db.
		Where("id = ?", id).
		Where("company_id = ?", companyID).
		Where("job_id = ?", jobID).
		Delete(&dbmodels.PipelineStage{}).
		Error
}

func (i impl) maxOrder(companyID, jobID string) (order int, err error) {
	type result struct {
		MaxOrder int
	}
	res := result{}
	err = i.db.Model(&dbmodels.PipelineStage{}).
		Where("company_id = ?", companyID).
		Where("job_id = ?", jobID).
		Select("coalesce(max(stage_order), 0) as max_order").
		Scan(&res).
		Error
	if err != nil {
		return 0, err
	}
	return res.MaxOrder, nil
}
