package jobhandler

import (
	"time"

	"rh-hub-backend/config"
	"rh-hub-backend/db"
	departmentstore "rh-hub-backend/lib/department/store"
	jobstore "rh-hub-backend/lib/job/store"
	pipelinehandler "rh-hub-backend/lib/pipeline/handler"
	membershipstore "rh-hub-backend/lib/pipeline/membership-store"
	stagestore "rh-hub-backend/lib/pipeline/stage-store"
	initchecker "rh-hub-backend/lib/utils/init-checker"
	"rh-hub-backend/models"
	jobapimodels "rh-hub-backend/models/api/job"
	dbmodels "rh-hub-backend/models/db"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(companyID, userID string, data jobapimodels.JobData) (id string, err error)
	GetByID(companyID, id string) (*jobapimodels.JobView, error)
	Update(companyID, id string, data jobapimodels.JobData) (hMsg string, err error)
	Delete(companyID, id string) error
	List(companyID string, filter jobapimodels.JobFilter) (list []jobapimodels.JobView, rowCount int64, err error)
	StatusChange(companyID, id, userID string, status models.JobStatus) (hMsg string, err error)
}

var Instance Provider

func NewHandler() {
	initchecker.CheckInit("db", db.DB)
	Instance = impl{
		store:           jobstore.NewInstance(db.DB),
		departmentStore: departmentstore.NewInstance(db.DB),
	}
}

type impl struct {
	store           jobstore.Provider
	departmentStore departmentstore.Provider
}

func (i impl) getLogger(companyID, jobID, userID string) *log.Entry {
	logger := log.WithField("company_id", companyID)
	if jobID != "" {
		logger = logger.WithField("job_id", jobID)
	}
	if userID != "" {
		logger = logger.WithField("user_id", userID)
	}
	return logger
}

func (i impl) checkDependency(companyID string, data jobapimodels.JobData) (hMsg string, err error) {
	if data.DepartmentID != "" {
		rec, err := i.departmentStore.GetByID(companyID, data.DepartmentID)
		if err != nil {
			return "", errors.Wrap(err, "ошибка получения подразделения")
		}
		if rec == nil {
			return "подразделение не найдено", nil
		}
	}
	return "", nil
}

func (i impl) Create(companyID, userID string, data jobapimodels.JobData) (id string, err error) {
	logger := i.getLogger(companyID, "", userID)
	hMsg, err := i.checkDependency(companyID, data)
	if err != nil {
		return "", err
	}
	if hMsg != "" {
		return "", errors.New(hMsg)
	}
	recID := ""
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		rec := dbmodels.Job{
			BaseCompanyModel: dbmodels.BaseCompanyModel{CompanyID: companyID},
			AuthorID:         userID,
			Title:            data.Title,
			Description:      data.Description,
			Requirements:     jobapimodels.SplitLines(data.Requirements),
			Benefits:         jobapimodels.SplitLines(data.Benefits),
			Location:         data.Location,
			Salary:           data.Salary,
			ContractType:     data.ContractType,
			Status:           models.JobStatusOpen,
			OpenDate:         time.Now(),
		}
		if data.DepartmentID != "" {
			rec.DepartmentID = &data.DepartmentID
		}
		if data.ManagerID != "" {
			rec.ManagerID = &data.ManagerID
		}
		if err := rec.Validate(); err != nil {
			return err
		}
		store := jobstore.NewInstance(tx)
		recID, err = store.Create(rec)
		if err != nil {
			return err
		}
		err = pipelinehandler.InitStages(stagestore.NewInstance(tx), companyID, recID, config.Conf.Pipeline.DefaultStages)
		if err != nil {
			return errors.Wrap(err, "ошибка инициализации этапов подбора")
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	logger.
		WithField("rec_id", recID).
		Info("Создана вакансия")
	return recID, nil
}

func (i impl) GetByID(companyID, id string) (*jobapimodels.JobView, error) {
	rec, err := i.store.GetByID(companyID, id)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения вакансии")
	}
	if rec == nil {
		return nil, nil
	}
	result := jobapimodels.JobConvert(*rec)
	return &result, nil
}

func (i impl) Update(companyID, id string, data jobapimodels.JobData) (hMsg string, err error) {
	logger := i.getLogger(companyID, id, "")
	rec, err := i.store.GetByID(companyID, id)
	if err != nil {
		return "", errors.Wrap(err, "ошибка получения вакансии")
	}
	if rec == nil {
		return "вакансия не найдена", nil
	}
	hMsg, err = i.checkDependency(companyID, data)
	if err != nil || hMsg != "" {
		return hMsg, err
	}
	updMap := map[string]interface{}{
		"title":         data.Title,
		"description":   data.Description,
		"requirements":  pq.StringArray(jobapimodels.SplitLines(data.Requirements)),
		"benefits":      pq.StringArray(jobapimodels.SplitLines(data.Benefits)),
		"location":      data.Location,
		"salary":        data.Salary,
		"contract_type": data.ContractType,
		"department_id": nil,
		"manager_id":    nil,
	}
	if data.DepartmentID != "" {
		updMap["department_id"] = data.DepartmentID
	}
	if data.ManagerID != "" {
		updMap["manager_id"] = data.ManagerID
	}
	err = i.store.Update(companyID, id, updMap)
	if err != nil {
		return "", errors.Wrap(err, "ошибка обновления вакансии")
	}
	logger.Info("обновлена вакансия")
	return "", nil
}

// Delete удаляет вакансию вместе с ее воронкой: участием кандидатов и этапами
func (i impl) Delete(companyID, id string) error {
	logger := i.getLogger(companyID, id, "")
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		memberStore := membershipstore.NewInstance(tx)
		members, err := memberStore.ListByJob(companyID, id)
		if err != nil {
			return errors.Wrap(err, "ошибка получения кандидатов воронки")
		}
		for _, member := range members {
			if err = memberStore.Delete(companyID, id, member.CandidateID); err != nil {
				return errors.Wrap(err, "ошибка удаления кандидата из воронки")
			}
		}
		stageStore := stagestore.NewInstance(tx)
		stages, err := stageStore.List(companyID, id)
		if err != nil {
			return errors.Wrap(err, "ошибка получения этапов подбора")
		}
		for _, stage := range stages {
			if err = stageStore.Delete(companyID, id, stage.ID); err != nil {
				return errors.Wrap(err, "ошибка удаления этапа подбора")
			}
		}
		return jobstore.NewInstance(tx).Delete(companyID, id)
	})
	if err != nil {
		return err
	}
	logger.Info("удалена вакансия")
	return nil
}

func (i impl) List(companyID string, filter jobapimodels.JobFilter) (list []jobapimodels.JobView, rowCount int64, err error) {
	rowCount, err = i.store.ListCount(companyID, filter)
	if err != nil {
		return nil, 0, err
	}
	if int64(filter.Offset()) > rowCount {
		return []jobapimodels.JobView{}, rowCount, nil
	}
	recList, err := i.store.List(companyID, filter)
	if err != nil {
		return nil, 0, err
	}
	result := make([]jobapimodels.JobView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, jobapimodels.JobConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) StatusChange(companyID, id, userID string, status models.JobStatus) (hMsg string, err error) {
	logger := i.getLogger(companyID, id, userID)
	rec, err := i.store.GetByID(companyID, id)
	if err != nil {
		return "", errors.Wrap(err, "ошибка получения вакансии")
	}
	if rec == nil {
		return "вакансия не найдена", nil
	}
	allow, err := rec.Status.IsAllowChange(status)
	if err != nil {
		return err.Error(), nil
	}
	if !allow {
		return "", nil
	}
	updMap := map[string]interface{}{
		"status":     status,
		"close_date": nil,
	}
	if status.IsFinal() {
		updMap["close_date"] = time.Now()
	}
	err = i.store.Update(companyID, id, updMap)
	if err != nil {
		return "", errors.Wrap(err, "ошибка изменения статуса вакансии")
	}
	logger.
		WithField("status", status).
		Info("изменен статус вакансии")
	return "", nil
}
