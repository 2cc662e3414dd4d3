package candidatehistorystore

import (
	candidateapimodels "rh-hub-backend/models/api/candidate"
	dbmodels "rh-hub-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.CandidateHistory) (id string, err error)
	ListCount(companyID, candidateID string, filter candidateapimodels.CandidateHistoryFilter) (count int64, err error)
	List(companyID, candidateID string, filter candidateapimodels.CandidateHistoryFilter) (list []dbmodels.CandidateHistory, err error)
	// JobComments заметки по кандидатам вакансии в порядке добавления
	JobComments(companyID, jobID string) (list []dbmodels.CandidateHistory, err error)
}

// записи выдаются в порядке добавления
const historyOrder = "seq"

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.CandidateHistory) (id string, err error) {
	err = i.db.
		Omit("Job").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListCount(companyID, candidateID string, filter candidateapimodels.CandidateHistoryFilter) (count int64, err error) {
	var rowCount int64
	tx := i.db.Model(dbmodels.CandidateHistory{})
	i.addFilter(tx, companyID, candidateID, filter)
	err = tx.Count(&rowCount).Error
	if err != nil {
		log.WithError(err).Error("ошибка получения общего количества действий по кандидату")
		return 0, errors.New("ошибка получения общего количества действий по кандидату")
	}
	return rowCount, nil
}

func (i impl) List(companyID, candidateID string, filter candidateapimodels.CandidateHistoryFilter) (list []dbmodels.CandidateHistory, err error) {
	list = []dbmodels.CandidateHistory{}
	tx := i.db.Model(dbmodels.CandidateHistory{})
	i.addFilter(tx, companyID, candidateID, filter)
	page, limit := filter.GetPage()
	tx.Limit(limit).Offset((page - 1) * limit)
	err = tx.
		Order(historyOrder).
		Preload("Job").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) JobComments(companyID, jobID string) (list []dbmodels.CandidateHistory, err error) {
	list = []dbmodels.CandidateHistory{}
	err = i.db.
		Where("company_id = ?", companyID).
		Where("job_id = ?", jobID).
		Where("action_type = ?", dbmodels.HistoryTypeComment).
		Order(historyOrder).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) addFilter(tx *gorm.DB, companyID, candidateID string, filter candidateapimodels.CandidateHistoryFilter) {
	tx.Where("company_id = ?", companyID).
		Where("candidate_id = ?", candidateID)
	if filter.CommentsOnly {
		tx.Where("action_type = ?", dbmodels.HistoryTypeComment)
	}
	if filter.JobID != "" {
		tx.Where("job_id = ?", filter.JobID)
	}
}
