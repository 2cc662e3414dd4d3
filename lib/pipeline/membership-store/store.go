package membershipstore

import (
	dbmodels "rh-hub-backend/models/db"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Provider участие кандидатов в воронках вакансий
type Provider interface {
	Create(rec dbmodels.CandidatePipeline) (id string, err error)
	Get(companyID, jobID, candidateID string) (*dbmodels.CandidatePipeline, error)
	ListByJob(companyID, jobID string) ([]dbmodels.CandidatePipeline, error)
	ListByCandidate(companyID, candidateID string) ([]dbmodels.CandidatePipeline, error)
	CountByStage(companyID, jobID, stageID string) (int64, error)
	MoveTo(companyID, jobID, candidateID, stageID string, movedBy *string, movedAt time.Time) error
	Delete(companyID, jobID, candidateID string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// Create добавляет кандидата в конец этапа
func (i impl) Create(rec dbmodels.CandidatePipeline) (id string, err error) {
	if err = rec.BaseCompanyModel.Validate(); err != nil {
		return "", err
	}
	maxPos, err := i.maxPosition(rec.CompanyID, rec.JobID, rec.StageID)
	if err != nil {
		return "", err
	}
	rec.Position = maxPos + 1
	err = i.db.
		Omit("Candidate").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Get(companyID, jobID, candidateID string) (*dbmodels.CandidatePipeline, error) {
	rec := dbmodels.CandidatePipeline{}
	err := i.db.
		Where("company_id = ?", companyID).
		Where("job_id = ?", jobID).
		Where("candidate_id = ?", candidateID).
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

// ListByJob кандидаты воронки, внутри этапа в порядке добавления на этап
func (i impl) ListByJob(companyID, jobID string) ([]dbmodels.CandidatePipeline, error) {
	list := []dbmodels.CandidatePipeline{}
	err := i.db.
		Where("company_id = ?", companyID).
		Where("job_id = ?", jobID).
		Order("stage_id, position").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByCandidate(companyID, candidateID string) ([]dbmodels.CandidatePipeline, error) {
	list := []dbmodels.CandidatePipeline{}
	err := i.db.
		Where("company_id = ?", companyID).
		Where("candidate_id = ?", candidateID).
		Order("applied_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) CountByStage(companyID, jobID, stageID string) (int64, error) {
	var rowCount int64
	err := i.db.
		Model(&dbmodels.CandidatePipeline{}).
		Where("company_id = ?", companyID).
		Where("job_id = ?", jobID).
		Where("stage_id = ?", stageID).
		Count(&rowCount).
		Error
	return rowCount, err
}

// MoveTo переводит кандидата в конец этапа stageID
func (i impl) MoveTo(companyID, jobID, candidateID, stageID string, movedBy *string, movedAt time.Time) error {
	maxPos, err := i.maxPosition(companyID, jobID, stageID)
	if err != nil {
		return err
	}
	tx := i.db.
		Model(&dbmodels.CandidatePipeline{}).
		Where("company_id = ?", companyID).
		Where("job_id = ?", jobID).
		Where("candidate_id = ?", candidateID).
		Updates(map[string]interface{}{
			"stage_id":    stageID,
			"position":    maxPos + 1,
			"moved_at":    movedAt,
			"moved_by_id": movedBy,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("кандидат не найден в воронке вакансии")
	}
	return nil
}

func (i impl) Delete(companyID, jobID, candidateID string) error {
	return i.db.
		Where("company_id = ?", companyID).
		Where("job_id = ?", jobID).
		Where("candidate_id = ?", candidateID).
		Delete(&dbmodels.CandidatePipeline{}).
		Error
}

func (i impl) maxPosition(companyID, jobID, stageID string) (int, error) {
	type result struct {
		MaxPosition int
	}
	res := result{}
	err := i.db.Model(&dbmodels.CandidatePipeline{}).
		Where("company_id = ?", companyID).
		Where("job_id = ?", jobID).
		Where("stage_id = ?", stageID).
		Select("coalesce(max(position), 0) as max_position").
		Scan(&res).
		Error
	if err != nil {
		return 0, err
	}
	return res.MaxPosition, nil
}
