package pipelinehandler

import (
	"context"
	"fmt"
	"sort"
	"time"

	candidatehistorystore "rh-hub-backend/lib/candidate-history/store"
	"rh-hub-backend/lib/pipeline"
	"rh-hub-backend/lib/utils/lock"
	"rh-hub-backend/models"
	pipelineapimodels "rh-hub-backend/models/api/pipeline"
	dbmodels "rh-hub-backend/models/db"
	wsmodels "rh-hub-backend/models/ws"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// boardState воронка вакансии, собранная из хранилища
type boardState struct {
	job        dbmodels.Job
	stages     []dbmodels.PipelineStage
	stageNames map[string]string
	members    map[string]dbmodels.CandidatePipeline // ид кандидата -> участие
	candidates map[string]dbmodels.Candidate
	pipeline   *pipeline.Pipeline
}

func (i impl) load(st stores, companyID, jobID string) (*boardState, error) {
	job, err := st.jobs.GetByID(companyID, jobID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения вакансии")
	}
	if job == nil {
		return nil, errors.Wrapf(ErrJobNotFound, "вакансия %s", jobID)
	}
	stageRecs, err := st.stages.List(companyID, jobID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения этапов подбора")
	}
	memberRecs, err := st.members.ListByJob(companyID, jobID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения кандидатов воронки")
	}
	candidateIDs := make([]string, 0, len(memberRecs))
	for _, rec := range memberRecs {
		candidateIDs = append(candidateIDs, rec.CandidateID)
	}
	candidateRecs, err := st.candidates.GetByIDs(companyID, candidateIDs)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения кандидатов")
	}
	comments, err := st.history.JobComments(companyID, jobID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения заметок по кандидатам")
	}

	state := &boardState{
		job:        *job,
		stages:     stageRecs,
		stageNames: make(map[string]string, len(stageRecs)),
		members:    make(map[string]dbmodels.CandidatePipeline, len(memberRecs)),
		candidates: make(map[string]dbmodels.Candidate, len(candidateRecs)),
	}
	for _, rec := range candidateRecs {
		state.candidates[rec.ID] = rec
	}
	notes := map[string][]string{}
	for _, rec := range comments {
		notes[rec.CandidateID] = append(notes[rec.CandidateID], rec.Changes.Description)
	}

	sort.SliceStable(memberRecs, func(a, b int) bool {
		if memberRecs[a].Position != memberRecs[b].Position {
			return memberRecs[a].Position < memberRecs[b].Position
		}
		return memberRecs[a].AppliedAt.Before(memberRecs[b].AppliedAt)
	})
	byStage := map[string][]pipeline.Candidate{}
	for _, rec := range memberRecs {
		candidate, ok := state.candidates[rec.CandidateID]
		if !ok {
			continue
		}
		state.members[rec.CandidateID] = rec
		byStage[rec.StageID] = append(byStage[rec.StageID], pipeline.Candidate{
			ID:        candidate.ID,
			Name:      candidate.GetFullName(),
			Email:     candidate.Email,
			JobID:     jobID,
			Rating:    rec.Rating,
			AppliedAt: rec.AppliedAt,
			Notes:     notes[candidate.ID],
		})
	}
	stages := make([]pipeline.Stage, 0, len(stageRecs))
	for _, rec := range stageRecs {
		state.stageNames[rec.ID] = rec.Name
		stages = append(stages, pipeline.Stage{
			ID:         rec.ID,
			Name:       rec.Name,
			Color:      rec.Color,
			Candidates: byStage[rec.ID],
		})
	}
	state.pipeline, err = pipeline.New(jobID, stages, pipeline.WithClock(i.now))
	if err != nil {
		return nil, errors.Wrap(err, "ошибка построения воронки")
	}
	return state, nil
}

// mutate выполняет op над воронкой под блокировкой вакансии в одной транзакции
// и сохраняет все события воронки. После фиксации события рассылаются в ws.
func (i impl) mutate(ctx context.Context, actor Actor, jobID string, op func(state *boardState) error) ([]pipeline.Event, error) {
	var events []pipeline.Event
	err := lock.Run(ctx, lockKey(jobID), i.lockWait, func() error {
		events = nil
		return i.inTx(func(tx *gorm.DB) error {
			st := i.stores(tx)
			state, err := i.load(st, actor.CompanyID, jobID)
			if err != nil {
				return err
			}
			state.pipeline.Subscribe(func(event pipeline.Event) {
				events = append(events, event)
			})
			if err = op(state); err != nil {
				return err
			}
			for _, event := range events {
				if err = i.persist(st, actor, state, event); err != nil {
					return err
				}
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	for _, event := range events {
		i.publish(actor, eventView(event), jobID)
	}
	return events, nil
}

func (i impl) persist(st stores, actor Actor, state *boardState, event pipeline.Event) error {
	author := candidatehistorystore.Author{UserID: actor.UserID, UserName: actor.UserName}
	switch event.Type {
	case pipeline.EventCandidateMoved:
		var movedBy *string
		if actor.UserID != "" {
			movedBy = &actor.UserID
		}
		err := st.members.MoveTo(actor.CompanyID, event.JobID, event.CandidateID, event.ToStageID, movedBy, event.Time)
		if err != nil {
			return errors.Wrap(err, "ошибка сохранения этапа кандидата")
		}
		changes := dbmodels.HistoryChanges{
			Description: fmt.Sprintf("Переведен на этап «%s»", event.StageName),
			Data: []dbmodels.HistoryChange{{
				Field:    "stage",
				OldValue: state.stageNames[event.FromStageID],
				NewValue: event.StageName,
			}},
		}
		rec := candidatehistorystore.NewRecord(actor.CompanyID, event.CandidateID, event.JobID, author, dbmodels.HistoryTypeStageChange, changes)
		rec.CreatedAt = event.Time
		if _, err = st.history.Create(rec); err != nil {
			return errors.Wrap(err, "ошибка сохранения истории перевода кандидата")
		}
	case pipeline.EventNoteAdded:
		rec := candidatehistorystore.NewRecord(actor.CompanyID, event.CandidateID, event.JobID, author, dbmodels.HistoryTypeComment,
			dbmodels.HistoryChanges{Description: event.Note})
		rec.CreatedAt = event.Time
		if _, err := st.history.Create(rec); err != nil {
			return errors.Wrap(err, "ошибка сохранения заметки")
		}
	}
	return nil
}

func (i impl) publish(actor Actor, event pipelineapimodels.BoardEvent, jobID string) {
	var notification models.NotificationData
	switch event.Type {
	case string(pipeline.EventCandidateMoved):
		notification = models.GetPushCandidateMoved(event.CandidateName, event.StageName)
	case string(pipeline.EventNoteAdded):
		notification = models.GetPushCandidateNote(event.CandidateName)
	case pipelineapimodels.EventCandidateAdded:
		notification = models.GetPushCandidateAdded(event.CandidateName, event.StageName)
	default:
		return
	}
	logger := getLogger(actor.CompanyID, jobID, actor.UserID).
		WithField("candidate_id", event.CandidateID).
		WithField("event", event.Type)
	if event.FromStageID != event.ToStageID {
		logger = logger.WithField("from_stage_id", event.FromStageID).
			WithField("to_stage_id", event.ToStageID)
	}
	logger.Info(notification.Msg)
	if i.hub == nil {
		return
	}
	i.hub.Broadcast(wsmodels.ServerMessage{
		CompanyID: actor.CompanyID,
		JobID:     jobID,
		Time:      event.Time.Format("02.01.2006 15:04:05"),
		Code:      string(notification.Code),
		Title:     notification.Title,
		Msg:       notification.Msg,
		Data:      event,
	})
}

func (i impl) currentTime() time.Time {
	if i.now == nil {
		return time.Now()
	}
	return i.now()
}
