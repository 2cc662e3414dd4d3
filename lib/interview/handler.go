package interviewhandler

import (
	"fmt"

	"rh-hub-backend/db"
	candidatehistorystore "rh-hub-backend/lib/candidate-history/store"
	candidatestore "rh-hub-backend/lib/candidate/store"
	interviewstore "rh-hub-backend/lib/interview/store"
	jobstore "rh-hub-backend/lib/job/store"
	"rh-hub-backend/lib/utils/helpers"
	initchecker "rh-hub-backend/lib/utils/init-checker"
	"rh-hub-backend/models"
	interviewapimodels "rh-hub-backend/models/api/interview"
	dbmodels "rh-hub-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(author candidatehistorystore.Author, companyID string, data interviewapimodels.InterviewData) (id, hMsg string, err error)
	GetByID(companyID, id string) (*interviewapimodels.InterviewView, error)
	Update(companyID, id string, data interviewapimodels.InterviewData) (hMsg string, err error)
	Cancel(author candidatehistorystore.Author, companyID, id string) (hMsg string, err error)
	Complete(author candidatehistorystore.Author, companyID, id string, data interviewapimodels.InterviewComplete) (hMsg string, err error)
	List(companyID string, filter interviewapimodels.InterviewFilter) (list []interviewapimodels.InterviewView, rowCount int64, err error)
}

var Instance Provider

func NewHandler() {
	initchecker.CheckInit("db", db.DB)
	Instance = impl{
		store:          interviewstore.NewInstance(db.DB),
		candidateStore: candidatestore.NewInstance(db.DB),
		jobStore:       jobstore.NewInstance(db.DB),
	}
}

type impl struct {
	store          interviewstore.Provider
	candidateStore candidatestore.Provider
	jobStore       jobstore.Provider
}

func (i impl) getLogger(companyID, interviewID string) *log.Entry {
	logger := log.WithField("company_id", companyID)
	if interviewID != "" {
		logger = logger.WithField("interview_id", interviewID)
	}
	return logger
}

func (i impl) Create(author candidatehistorystore.Author, companyID string, data interviewapimodels.InterviewData) (id, hMsg string, err error) {
	candidate, err := i.candidateStore.GetByID(companyID, data.CandidateID)
	if err != nil {
		return "", "", errors.Wrap(err, "ошибка получения кандидата")
	}
	if candidate == nil {
		return "", "кандидат не найден", nil
	}
	job, err := i.jobStore.GetByID(companyID, data.JobID)
	if err != nil {
		return "", "", errors.Wrap(err, "ошибка получения вакансии")
	}
	if job == nil {
		return "", "вакансия не найдена", nil
	}
	rec := dbmodels.Interview{
		BaseCompanyModel: dbmodels.BaseCompanyModel{CompanyID: companyID},
		CandidateID:      data.CandidateID,
		JobID:            data.JobID,
		RecruiterID:      data.RecruiterID,
		ScheduledAt:      data.ScheduledAt,
		DurationMin:      data.DurationMin,
		Mode:             data.Mode,
		MeetingLink:      data.MeetingLink,
		Location:         data.Location,
		Notes:            data.Notes,
		Status:           models.InterviewStatusScheduled,
	}
	if rec.RecruiterID == "" {
		rec.RecruiterID = author.UserID
	}
	if data.ManagerID != "" {
		rec.ManagerID = &data.ManagerID
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		id, err = interviewstore.NewInstance(tx).Create(rec)
		if err != nil {
			return errors.Wrap(err, "ошибка создания собеседования")
		}
		description := fmt.Sprintf("Назначено собеседование на %s по вакансии «%s»",
			data.ScheduledAt.Format(helpers.DateFormat+" 15:04"), job.Title)
		return saveHistory(tx, author, companyID, data.CandidateID, data.JobID, description)
	})
	if err != nil {
		return "", "", err
	}
	i.getLogger(companyID, id).
		WithField("candidate_id", data.CandidateID).
		WithField("job_id", data.JobID).
		Info("назначено собеседование")
	return id, "", nil
}

func (i impl) GetByID(companyID, id string) (*interviewapimodels.InterviewView, error) {
	rec, err := i.store.GetByID(companyID, id)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения собеседования")
	}
	if rec == nil {
		return nil, nil
	}
	result := interviewapimodels.InterviewConvert(*rec)
	return &result, nil
}

func (i impl) Update(companyID, id string, data interviewapimodels.InterviewData) (hMsg string, err error) {
	rec, hMsg, err := i.getActive(companyID, id)
	if err != nil || hMsg != "" {
		return hMsg, err
	}
	updMap := map[string]interface{}{
		"scheduled_at": data.ScheduledAt,
		"duration_min": data.DurationMin,
		"mode":         data.Mode,
		"meeting_link": data.MeetingLink,
		"location":     data.Location,
		"notes":        data.Notes,
		"manager_id":   nil,
		// новое время, собеседование снова ожидается
		"status": models.InterviewStatusScheduled,
	}
	if data.RecruiterID != "" {
		updMap["recruiter_id"] = data.RecruiterID
	}
	if data.ManagerID != "" {
		updMap["manager_id"] = data.ManagerID
	}
	if err = i.store.Update(companyID, rec.ID, updMap); err != nil {
		return "", errors.Wrap(err, "ошибка обновления собеседования")
	}
	i.getLogger(companyID, id).Info("обновлено собеседование")
	return "", nil
}

func (i impl) Cancel(author candidatehistorystore.Author, companyID, id string) (hMsg string, err error) {
	rec, hMsg, err := i.getActive(companyID, id)
	if err != nil || hMsg != "" {
		return hMsg, err
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		updMap := map[string]interface{}{"status": models.InterviewStatusCancelled}
		if err := interviewstore.NewInstance(tx).Update(companyID, id, updMap); err != nil {
			return errors.Wrap(err, "ошибка отмены собеседования")
		}
		description := fmt.Sprintf("Отменено собеседование %s", rec.ScheduledAt.Format(helpers.DateFormat+" 15:04"))
		return saveHistory(tx, author, companyID, rec.CandidateID, rec.JobID, description)
	})
	if err != nil {
		return "", err
	}
	i.getLogger(companyID, id).Info("отменено собеседование")
	return "", nil
}

func (i impl) Complete(author candidatehistorystore.Author, companyID, id string, data interviewapimodels.InterviewComplete) (hMsg string, err error) {
	rec, hMsg, err := i.getActive(companyID, id)
	if err != nil || hMsg != "" {
		return hMsg, err
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		updMap := map[string]interface{}{
			"status":     models.InterviewStatusDone,
			"evaluation": data.Evaluation,
		}
		if err := interviewstore.NewInstance(tx).Update(companyID, id, updMap); err != nil {
			return errors.Wrap(err, "ошибка завершения собеседования")
		}
		description := fmt.Sprintf("Проведено собеседование: %s", data.Evaluation)
		return saveHistory(tx, author, companyID, rec.CandidateID, rec.JobID, description)
	})
	if err != nil {
		return "", err
	}
	i.getLogger(companyID, id).Info("завершено собеседование")
	return "", nil
}

func (i impl) List(companyID string, filter interviewapimodels.InterviewFilter) (list []interviewapimodels.InterviewView, rowCount int64, err error) {
	rowCount, err = i.store.ListCount(companyID, filter)
	if err != nil {
		return nil, 0, err
	}
	if int64(filter.Offset()) > rowCount {
		return []interviewapimodels.InterviewView{}, rowCount, nil
	}
	recList, err := i.store.List(companyID, filter)
	if err != nil {
		return nil, 0, err
	}
	result := make([]interviewapimodels.InterviewView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, interviewapimodels.InterviewConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) getActive(companyID, id string) (rec *dbmodels.Interview, hMsg string, err error) {
	rec, err = i.store.GetByID(companyID, id)
	if err != nil {
		return nil, "", errors.Wrap(err, "ошибка получения собеседования")
	}
	if rec == nil {
		return nil, "собеседование не найдено", nil
	}
	if !rec.Status.IsActive() {
		return nil, "собеседование уже завершено или отменено", nil
	}
	return rec, "", nil
}

func saveHistory(tx *gorm.DB, author candidatehistorystore.Author, companyID, candidateID, jobID, description string) error {
	rec := candidatehistorystore.NewRecord(companyID, candidateID, jobID, author, dbmodels.HistoryTypeInterview,
		dbmodels.HistoryChanges{Description: description})
	if _, err := candidatehistorystore.NewInstance(tx).Create(rec); err != nil {
		return errors.Wrap(err, "ошибка сохранения истории кандидата")
	}
	return nil
}
