package interviewstore

import (
	"rh-hub-backend/models"
	interviewapimodels "rh-hub-backend/models/api/interview"
	dbmodels "rh-hub-backend/models/db"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Interview) (id string, err error)
	GetByID(companyID, id string) (*dbmodels.Interview, error)
	Update(companyID, id string, updMap map[string]interface{}) error
	ListCount(companyID string, filter interviewapimodels.InterviewFilter) (int64, error)
	List(companyID string, filter interviewapimodels.InterviewFilter) ([]dbmodels.Interview, error)
	// MarkOverdue переводит прошедшие запланированные собеседования в ожидание оценки
	MarkOverdue(now time.Time) (int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Interview) (id string, err error) {
	if err = rec.BaseCompanyModel.Validate(); err != nil {
		return "", err
	}
	err = i.db.
		Omit("Candidate", "Job", "Recruiter").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(companyID, id string) (*dbmodels.Interview, error) {
	rec := dbmodels.Interview{}
	err := i.db.
		Where("id = ?", id).
		Where("company_id = ?", companyID).
		Preload("Candidate").
		Preload("Job").
		Preload("Recruiter").
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
		Model(&dbmodels.Interview{}).
		Where("id = ?", id).
		Where("company_id = ?", companyID).
		Updates(updMap).
		Error
}

func (i impl) ListCount(companyID string, filter interviewapimodels.InterviewFilter) (int64, error) {
	var rowCount int64
	tx := i.db.Model(&dbmodels.Interview{})
	i.addFilter(tx, companyID, filter)
	if err := tx.Count(&rowCount).Error; err != nil {
		return 0, err
	}
	return rowCount, nil
}

func (i impl) List(companyID string, filter interviewapimodels.InterviewFilter) ([]dbmodels.Interview, error) {
	list := []dbmodels.Interview{}
	tx := i.db.Model(&dbmodels.Interview{})
	i.addFilter(tx, companyID, filter)
	page, limit := filter.GetPage()
	tx.Limit(limit).Offset((page - 1) * limit)
	err := tx.
		Preload("Candidate").
		Preload("Job").
		Preload("Recruiter").
		Order("scheduled_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) MarkOverdue(now time.Time) (int64, error) {
	tx := i.db.
		Model(&dbmodels.Interview{}).
		Where("status = ?", models.InterviewStatusScheduled).
		Where("scheduled_at + (duration_min * interval '1 minute') < ?", now).
		Update("status", models.InterviewStatusPendingFeedback)
	return tx.RowsAffected, tx.Error
}

func (i impl) addFilter(tx *gorm.DB, companyID string, filter interviewapimodels.InterviewFilter) {
	tx.Where("company_id = ?", companyID)
	if filter.Status != "" {
		tx.Where("status = ?", filter.Status)
	}
	if filter.JobID != "" {
		tx.Where("job_id = ?", filter.JobID)
	}
	if filter.CandidateID != "" {
		tx.Where("candidate_id = ?", filter.CandidateID)
	}
	if filter.From != nil {
		tx.Where("scheduled_at >= ?", *filter.From)
	}
	if filter.To != nil {
		tx.Where("scheduled_at <= ?", *filter.To)
	}
}
