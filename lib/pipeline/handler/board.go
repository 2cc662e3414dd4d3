package pipelinehandler

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	candidatehistorystore "rh-hub-backend/lib/candidate-history/store"
	pdfexport "rh-hub-backend/lib/export/pdf"
	"rh-hub-backend/lib/pipeline"
	"rh-hub-backend/lib/utils/helpers"
	"rh-hub-backend/lib/utils/lock"
	pipelineapimodels "rh-hub-backend/models/api/pipeline"
	dbmodels "rh-hub-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func (i impl) readState(companyID, jobID string) (*boardState, error) {
	return i.load(i.stores(i.db), companyID, jobID)
}

func (i impl) Board(companyID, jobID string) (*pipelineapimodels.BoardView, error) {
	state, err := i.readState(companyID, jobID)
	if err != nil {
		return nil, err
	}
	view := boardView(state)
	return &view, nil
}

func (i impl) Stats(companyID, jobID string) (*pipelineapimodels.StatsView, error) {
	state, err := i.readState(companyID, jobID)
	if err != nil {
		return nil, err
	}
	result := pipelineapimodels.StatsView{
		JobID:  jobID,
		Total:  state.pipeline.Total(),
		Stages: []pipelineapimodels.StageStatsView{},
	}
	for _, item := range state.pipeline.StagePercentages() {
		result.Stages = append(result.Stages, pipelineapimodels.StageStatsView{
			StageID:    item.StageID,
			StageName:  item.StageName,
			Count:      item.Count,
			Percentage: item.Percentage,
		})
	}
	return &result, nil
}

func (i impl) MoveToNext(ctx context.Context, actor Actor, jobID, candidateID, currentStageID string) (*pipelineapimodels.BoardEvent, error) {
	events, err := i.mutate(ctx, actor, jobID, func(state *boardState) error {
		stageID := currentStageID
		if stageID == "" {
			var err error
			stageID, err = state.pipeline.StageOf(candidateID)
			if err != nil {
				return err
			}
		}
		return state.pipeline.MoveToNextStage(candidateID, stageID)
	})
	if err != nil {
		return nil, err
	}
	return lastEvent(events)
}

func (i impl) MoveToStage(ctx context.Context, actor Actor, jobID, candidateID string, data pipelineapimodels.MoveRequest) (*pipelineapimodels.BoardEvent, error) {
	events, err := i.mutate(ctx, actor, jobID, func(state *boardState) error {
		return state.pipeline.MoveToStage(candidateID, data.FromStageID, data.ToStageID)
	})
	if err != nil {
		return nil, err
	}
	return lastEvent(events)
}

func (i impl) AddNote(ctx context.Context, actor Actor, jobID, candidateID, text string) (*pipelineapimodels.NotesView, error) {
	result := pipelineapimodels.NotesView{CandidateID: candidateID}
	_, err := i.mutate(ctx, actor, jobID, func(state *boardState) error {
		notes, err := state.pipeline.AddNote(candidateID, text)
		if err != nil {
			return err
		}
		result.Notes = notes
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Apply добавляет кандидата в конец первого этапа воронки вакансии
func (i impl) Apply(ctx context.Context, actor Actor, jobID, candidateID string, rating int) (hMsg string, err error) {
	var event *pipelineapimodels.BoardEvent
	err = lock.Run(ctx, lockKey(jobID), i.lockWait, func() error {
		return i.inTx(func(tx *gorm.DB) error {
			st := i.stores(tx)
			job, err := st.jobs.GetByID(actor.CompanyID, jobID)
			if err != nil {
				return errors.Wrap(err, "ошибка получения вакансии")
			}
			if job == nil {
				hMsg = "вакансия не найдена"
				return nil
			}
			if job.Status.IsFinal() {
				hMsg = fmt.Sprintf("вакансия в статусе «%v», добавление кандидатов недоступно", job.Status.ToHuman())
				return nil
			}
			candidate, err := st.candidates.GetByID(actor.CompanyID, candidateID)
			if err != nil {
				return errors.Wrap(err, "ошибка получения кандидата")
			}
			if candidate == nil {
				hMsg = "кандидат не найден"
				return nil
			}
			exist, err := st.members.Get(actor.CompanyID, jobID, candidateID)
			if err != nil {
				return errors.Wrap(err, "ошибка проверки участия кандидата в воронке")
			}
			if exist != nil {
				hMsg = "кандидат уже участвует в отборе на эту вакансию"
				return nil
			}
			stages, err := st.stages.List(actor.CompanyID, jobID)
			if err != nil {
				return errors.Wrap(err, "ошибка получения этапов подбора")
			}
			if len(stages) == 0 {
				hMsg = "у вакансии нет этапов подбора"
				return nil
			}
			first := stages[0]
			now := i.currentTime()
			rec := dbmodels.CandidatePipeline{
				BaseCompanyModel: dbmodels.BaseCompanyModel{CompanyID: actor.CompanyID},
				JobID:            jobID,
				CandidateID:      candidateID,
				StageID:          first.ID,
				Rating:           pipeline.ClampRating(rating),
				AppliedAt:        now,
			}
			if _, err = st.members.Create(rec); err != nil {
				return errors.Wrap(err, "ошибка добавления кандидата в воронку")
			}
			count, err := st.members.CountByStage(actor.CompanyID, jobID, first.ID)
			if err != nil {
				return errors.Wrap(err, "ошибка подсчета кандидатов этапа")
			}
			author := candidatehistorystore.Author{UserID: actor.UserID, UserName: actor.UserName}
			changes := dbmodels.HistoryChanges{
				Description: fmt.Sprintf("Добавлен в отбор по вакансии «%s» на этап «%s»", job.Title, first.Name),
			}
			history := candidatehistorystore.NewRecord(actor.CompanyID, candidateID, jobID, author, dbmodels.HistoryTypeAdded, changes)
			history.CreatedAt = now
			if _, err = st.history.Create(history); err != nil {
				return errors.Wrap(err, "ошибка сохранения истории кандидата")
			}
			event = &pipelineapimodels.BoardEvent{
				Type:          pipelineapimodels.EventCandidateAdded,
				CandidateID:   candidateID,
				CandidateName: candidate.GetFullName(),
				ToStageID:     first.ID,
				StageName:     first.Name,
				Position:      int(count) - 1,
				Time:          now,
			}
			return nil
		})
	})
	if err != nil || hMsg != "" {
		return hMsg, err
	}
	i.publish(actor, *event, jobID)
	return "", nil
}

func (i impl) ExportXLS(companyID, jobID string) (data *bytes.Buffer, fileName string, err error) {
	state, err := i.readState(companyID, jobID)
	if err != nil {
		return nil, "", err
	}
	data, err = i.xls.ExportBoard(boardView(state))
	if err != nil {
		return nil, "", errors.Wrap(err, "ошибка выгрузки воронки в xlsx")
	}
	fileName = helpers.SafeFileName(state.job.Title, "board") + ".xlsx"
	return data, fileName, nil
}

func (i impl) CandidateCardPDF(companyID, jobID, candidateID string) (data []byte, fileName string, err error) {
	st := i.stores(i.db)
	state, err := i.load(st, companyID, jobID)
	if err != nil {
		return nil, "", err
	}
	candidate, err := state.pipeline.Candidate(candidateID)
	if err != nil {
		return nil, "", err
	}
	stageID, err := state.pipeline.StageOf(candidateID)
	if err != nil {
		return nil, "", err
	}
	card := pdfexport.CandidateCard{
		JobTitle:    state.job.Title,
		StageName:   state.stageNames[stageID],
		Name:        candidate.Name,
		Email:       candidate.Email,
		Rating:      candidate.Rating,
		MaxRating:   pipeline.MaxRating,
		AppliedAt:   candidate.AppliedAt,
		Notes:       candidate.Notes,
		GeneratedAt: i.currentTime(),
	}
	if rec, ok := state.candidates[candidateID]; ok {
		card.Phone = rec.Phone
		card.Linkedin = rec.Linkedin
	}
	company, err := st.companies.GetByID(companyID)
	if err != nil {
		return nil, "", errors.Wrap(err, "ошибка получения компании")
	}
	if company != nil {
		card.CompanyName = company.Name
	}
	data, err = pdfexport.GenerateCandidateCard(card, i.font)
	if err != nil {
		return nil, "", errors.Wrap(err, "ошибка формирования карточки кандидата")
	}
	fileName = helpers.SafeFileName(candidate.Name, "candidate") + ".pdf"
	return data, fileName, nil
}

func boardView(state *boardState) pipelineapimodels.BoardView {
	p := state.pipeline
	view := pipelineapimodels.BoardView{
		JobID:    p.JobID(),
		JobTitle: state.job.Title,
		Total:    p.Total(),
		Stages:   []pipelineapimodels.BoardStage{},
	}
	stages := p.Stages()
	for k, item := range stages {
		percentage, _ := p.StagePercentage(item.ID)
		stage := pipelineapimodels.BoardStage{
			ID:         item.ID,
			Name:       item.Name,
			Color:      item.Color,
			Count:      len(item.Candidates),
			Percentage: percentage,
			IsLast:     k == len(stages)-1,
			Candidates: make([]pipelineapimodels.BoardCandidate, 0, len(item.Candidates)),
		}
		for _, candidate := range item.Candidates {
			lastNote, _, _ := p.MostRecentNote(candidate.ID)
			stage.Candidates = append(stage.Candidates, pipelineapimodels.BoardCandidate{
				ID:         candidate.ID,
				Name:       candidate.Name,
				Email:      candidate.Email,
				Rating:     candidate.Rating,
				AppliedAt:  candidate.AppliedAt,
				LastNote:   strings.TrimSpace(lastNote),
				NotesCount: len(candidate.Notes),
			})
		}
		view.Stages = append(view.Stages, stage)
	}
	return view
}

func lastEvent(events []pipeline.Event) (*pipelineapimodels.BoardEvent, error) {
	if len(events) == 0 {
		return nil, errors.New("изменение воронки не выполнено")
	}
	view := eventView(events[len(events)-1])
	return &view, nil
}
