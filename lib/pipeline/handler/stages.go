package pipelinehandler

import (
	"context"
	"strings"

	stagestore "rh-hub-backend/lib/pipeline/stage-store"
	"rh-hub-backend/lib/utils/lock"
	jobapimodels "rh-hub-backend/models/api/job"
	dbmodels "rh-hub-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// InitStages создает этапы подбора новой вакансии, без списка - этапы по умолчанию
func InitStages(store stagestore.Provider, companyID, jobID string, names []string) error {
	if len(names) == 0 {
		names = dbmodels.DefaultPipelineStages
	}
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		rec := dbmodels.PipelineStage{
			BaseCompanyModel: dbmodels.BaseCompanyModel{CompanyID: companyID},
			JobID:            jobID,
			Name:             name,
		}
		if _, err := store.Create(rec); err != nil {
			return errors.Wrapf(err, "ошибка создания этапа подбора «%s»", name)
		}
	}
	return nil
}

func (i impl) StageList(companyID, jobID string) ([]jobapimodels.StageView, error) {
	st := i.stores(i.db)
	if err := checkJob(st, companyID, jobID); err != nil {
		return nil, err
	}
	list, err := st.stages.List(companyID, jobID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения этапов подбора")
	}
	result := make([]jobapimodels.StageView, 0, len(list))
	for _, rec := range list {
		count, err := st.members.CountByStage(companyID, jobID, rec.ID)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка подсчета кандидатов этапа")
		}
		view := jobapimodels.StageConvert(rec)
		view.Candidates = int(count)
		view.CanDelete = count == 0 && len(list) > 1
		result = append(result, view)
	}
	return result, nil
}

func (i impl) StageCreate(ctx context.Context, companyID, jobID string, data jobapimodels.StageData) (id string, err error) {
	err = i.stageTx(ctx, jobID, func(st stores) error {
		if err := checkJob(st, companyID, jobID); err != nil {
			return err
		}
		rec := dbmodels.PipelineStage{
			BaseCompanyModel: dbmodels.BaseCompanyModel{CompanyID: companyID},
			JobID:            jobID,
			Name:             strings.TrimSpace(data.Name),
			Color:            data.Color,
			Description:      data.Description,
		}
		id, err = st.stages.Create(rec)
		if err != nil {
			return errors.Wrap(err, "ошибка создания этапа подбора")
		}
		return nil
	})
	return id, err
}

func (i impl) StageUpdate(ctx context.Context, companyID, jobID, stageID string, data jobapimodels.StageData) (hMsg string, err error) {
	err = i.stageTx(ctx, jobID, func(st stores) error {
		rec, err := st.stages.GetByID(companyID, jobID, stageID)
		if err != nil {
			return errors.Wrap(err, "ошибка получения этапа подбора")
		}
		if rec == nil {
			hMsg = "этап подбора не найден"
			return nil
		}
		updMap := map[string]interface{}{
			"name":        strings.TrimSpace(data.Name),
			"description": data.Description,
		}
		if data.Color != "" {
			updMap["color"] = data.Color
		}
		if err = st.stages.Update(companyID, jobID, stageID, updMap); err != nil {
			return errors.Wrap(err, "ошибка обновления этапа подбора")
		}
		return nil
	})
	return hMsg, err
}

func (i impl) StageDelete(ctx context.Context, companyID, jobID, stageID string) (hMsg string, err error) {
	err = i.stageTx(ctx, jobID, func(st stores) error {
		list, err := st.stages.List(companyID, jobID)
		if err != nil {
			return errors.Wrap(err, "ошибка получения этапов подбора")
		}
		rest := make([]dbmodels.PipelineStage, 0, len(list))
		found := false
		for _, rec := range list {
			if rec.ID == stageID {
				found = true
				continue
			}
			rest = append(rest, rec)
		}
		if !found {
			hMsg = "этап подбора не найден"
			return nil
		}
		if len(rest) == 0 {
			hMsg = "нельзя удалить единственный этап подбора"
			return nil
		}
		count, err := st.members.CountByStage(companyID, jobID, stageID)
		if err != nil {
			return errors.Wrap(err, "ошибка подсчета кандидатов этапа")
		}
		if count > 0 {
			hMsg = "нельзя удалить этап, на котором есть кандидаты"
			return nil
		}
		if err = st.stages.Delete(companyID, jobID, stageID); err != nil {
			return errors.Wrap(err, "ошибка удаления этапа подбора")
		}
		return saveOrder(st, companyID, jobID, rest)
	})
	return hMsg, err
}

func (i impl) StageChangeOrder(ctx context.Context, companyID, jobID, stageID string, newOrder int) (hMsg string, err error) {
	err = i.stageTx(ctx, jobID, func(st stores) error {
		list, err := st.stages.List(companyID, jobID)
		if err != nil {
			return errors.Wrap(err, "ошибка получения этапов подбора")
		}
		ordered, ok := reorderStages(list, stageID, newOrder)
		if !ok {
			hMsg = "этап подбора не найден"
			return nil
		}
		return saveOrder(st, companyID, jobID, ordered)
	})
	return hMsg, err
}

// stageTx изменения этапов выполняются под той же блокировкой, что и операции доски
func (i impl) stageTx(ctx context.Context, jobID string, fn func(st stores) error) error {
	return lock.Run(ctx, lockKey(jobID), i.lockWait, func() error {
		return i.inTx(func(tx *gorm.DB) error {
			return fn(i.stores(tx))
		})
	})
}

func checkJob(st stores, companyID, jobID string) error {
	job, err := st.jobs.GetByID(companyID, jobID)
	if err != nil {
		return errors.Wrap(err, "ошибка получения вакансии")
	}
	if job == nil {
		return errors.Wrapf(ErrJobNotFound, "вакансия %s", jobID)
	}
	return nil
}

// reorderStages переносит этап stageID на позицию newOrder (с единицы).
// Позиция за пределами списка приводится к ближайшей допустимой.
func reorderStages(list []dbmodels.PipelineStage, stageID string, newOrder int) ([]dbmodels.PipelineStage, bool) {
	from := -1
	for k, rec := range list {
		if rec.ID == stageID {
			from = k
			break
		}
	}
	if from < 0 {
		return nil, false
	}
	to := newOrder - 1
	if to < 0 {
		to = 0
	}
	if to > len(list)-1 {
		to = len(list) - 1
	}
	result := make([]dbmodels.PipelineStage, 0, len(list))
	moved := list[from]
	for k, rec := range list {
		if k == from {
			continue
		}
		result = append(result, rec)
	}
	result = append(result[:to], append([]dbmodels.PipelineStage{moved}, result[to:]...)...)
	return result, true
}

// saveOrder перенумеровывает этапы подряд, начиная с 1
func saveOrder(st stores, companyID, jobID string, ordered []dbmodels.PipelineStage) error {
	for k, rec := range ordered {
		if rec.StageOrder == k+1 {
			continue
		}
		err := st.stages.Update(companyID, jobID, rec.ID, map[string]interface{}{"stage_order": k + 1})
		if err != nil {
			return errors.Wrap(err, "ошибка изменения порядка этапов подбора")
		}
	}
	return nil
}
