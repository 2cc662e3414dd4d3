package candidatehandler

import (
	"rh-hub-backend/db"
	candidatestore "rh-hub-backend/lib/candidate/store"
	jobstore "rh-hub-backend/lib/job/store"
	membershipstore "rh-hub-backend/lib/pipeline/membership-store"
	stagestore "rh-hub-backend/lib/pipeline/stage-store"
	"rh-hub-backend/lib/utils/helpers"
	initchecker "rh-hub-backend/lib/utils/init-checker"
	candidateapimodels "rh-hub-backend/models/api/candidate"
	dbmodels "rh-hub-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(companyID, userID string, data candidateapimodels.CandidateData) (id string, err error)
	GetByID(companyID, id string) (*candidateapimodels.CandidateCard, error)
	Update(companyID, id string, data candidateapimodels.CandidateData) (hMsg string, err error)
	Delete(companyID, id string) error
	List(companyID string, filter candidateapimodels.CandidateFilter) (list []candidateapimodels.CandidateView, rowCount int64, err error)
}

var Instance Provider

func NewHandler() {
	initchecker.CheckInit("db", db.DB)
	Instance = impl{
		store:       candidatestore.NewInstance(db.DB),
		memberStore: membershipstore.NewInstance(db.DB),
		jobStore:    jobstore.NewInstance(db.DB),
		stageStore:  stagestore.NewInstance(db.DB),
	}
}

type impl struct {
	store       candidatestore.Provider
	memberStore membershipstore.Provider
	jobStore    jobstore.Provider
	stageStore  stagestore.Provider
}

func (i impl) getLogger(companyID, candidateID string) *log.Entry {
	logger := log.WithField("company_id", companyID)
	if candidateID != "" {
		logger = logger.WithField("candidate_id", candidateID)
	}
	return logger
}

func (i impl) Create(companyID, userID string, data candidateapimodels.CandidateData) (id string, err error) {
	rec := dbmodels.Candidate{
		BaseCompanyModel: dbmodels.BaseCompanyModel{CompanyID: companyID},
		FirstName:        data.FirstName,
		LastName:         data.LastName,
		Email:            helpers.NormalizeEmail(data.Email),
		Phone:            data.Phone,
		Linkedin:         data.Linkedin,
		Portfolio:        data.Portfolio,
		Summary:          data.Summary,
		Address:          data.Address,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", errors.Wrap(err, "ошибка создания кандидата")
	}
	i.getLogger(companyID, id).
		WithField("user_id", userID).
		Info("создан кандидат")
	return id, nil
}

func (i impl) GetByID(companyID, id string) (*candidateapimodels.CandidateCard, error) {
	rec, err := i.store.GetByID(companyID, id)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения кандидата")
	}
	if rec == nil {
		return nil, nil
	}
	result := candidateapimodels.CandidateCard{
		CandidateView: candidateapimodels.CandidateConvert(*rec),
		Applications:  []candidateapimodels.CandidateApplication{},
	}
	members, err := i.memberStore.ListByCandidate(companyID, id)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения вакансий кандидата")
	}
	for _, member := range members {
		item := candidateapimodels.CandidateApplication{
			JobID:     member.JobID,
			StageID:   member.StageID,
			Rating:    member.Rating,
			AppliedAt: member.AppliedAt,
		}
		job, err := i.jobStore.GetByID(companyID, member.JobID)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка получения вакансии")
		}
		if job != nil {
			item.JobTitle = job.Title
		}
		stage, err := i.stageStore.GetByID(companyID, member.JobID, member.StageID)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка получения этапа подбора")
		}
		if stage != nil {
			item.StageName = stage.Name
		}
		result.Applications = append(result.Applications, item)
	}
	return &result, nil
}

func (i impl) Update(companyID, id string, data candidateapimodels.CandidateData) (hMsg string, err error) {
	rec, err := i.store.GetByID(companyID, id)
	if err != nil {
		return "", errors.Wrap(err, "ошибка получения кандидата")
	}
	if rec == nil {
		return "кандидат не найден", nil
	}
	updMap := map[string]interface{}{
		"first_name": data.FirstName,
		"last_name":  data.LastName,
		"email":      helpers.NormalizeEmail(data.Email),
		"phone":      data.Phone,
		"linkedin":   data.Linkedin,
		"portfolio":  data.Portfolio,
		"summary":    data.Summary,
		"address":    data.Address,
	}
	if err = i.store.Update(companyID, id, updMap); err != nil {
		return "", errors.Wrap(err, "ошибка обновления кандидата")
	}
	i.getLogger(companyID, id).Info("обновлен кандидат")
	return "", nil
}

// Delete удаляет кандидата вместе с участием в воронках всех вакансий
func (i impl) Delete(companyID, id string) error {
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		memberStore := membershipstore.NewInstance(tx)
		members, err := memberStore.ListByCandidate(companyID, id)
		if err != nil {
			return errors.Wrap(err, "ошибка получения воронок кандидата")
		}
		for _, member := range members {
			if err = memberStore.Delete(companyID, member.JobID, id); err != nil {
				return errors.Wrapf(err, "ошибка удаления кандидата из воронки вакансии %s", member.JobID)
			}
		}
		if err = candidatestore.NewInstance(tx).Delete(companyID, id); err != nil {
			return errors.Wrap(err, "ошибка удаления кандидата")
		}
		return nil
	})
	if err != nil {
		return err
	}
	i.getLogger(companyID, id).Info("удален кандидат")
	return nil
}

func (i impl) List(companyID string, filter candidateapimodels.CandidateFilter) (list []candidateapimodels.CandidateView, rowCount int64, err error) {
	rowCount, err = i.store.ListCount(companyID, filter)
	if err != nil {
		return nil, 0, err
	}
	if int64(filter.Offset()) > rowCount {
		return []candidateapimodels.CandidateView{}, rowCount, nil
	}
	recList, err := i.store.List(companyID, filter)
	if err != nil {
		return nil, 0, err
	}
	result := make([]candidateapimodels.CandidateView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, candidateapimodels.CandidateConvert(rec))
	}
	return result, rowCount, nil
}
