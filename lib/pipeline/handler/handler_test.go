package pipelinehandler

import (
	"context"
	"testing"
	"time"

	xlsexport "rh-hub-backend/lib/export/xls"
	"rh-hub-backend/lib/pipeline"
	"rh-hub-backend/lib/utils/lock"
	"rh-hub-backend/models"
	pipelineapimodels "rh-hub-backend/models/api/pipeline"
	dbmodels "rh-hub-backend/models/db"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testCompany = "company-1"

var testActor = Actor{CompanyID: testCompany, UserID: "user-1", UserName: "Ana Souza"}

type testBoard struct {
	m          *memDB
	hub        *fakeHub
	handler    impl
	jobID      string
	stageIDs   []string
	candidates []string
}

func newTestBoard(t *testing.T) *testBoard {
	m := newMemDB()
	m.companies[testCompany] = dbmodels.Company{BaseModel: dbmodels.BaseModel{ID: testCompany}, Name: "Tech Solutions"}
	hub := &fakeHub{}
	xlsexport.NewHandler()
	clock := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	h := impl{
		stores: m.stores,
		inTx: func(fn func(tx *gorm.DB) error) error {
			return fn(nil)
		},
		hub:      hub,
		xls:      xlsexport.Instance,
		lockWait: time.Second,
		now: func() time.Time {
			clock = clock.Add(time.Minute)
			return clock
		},
	}
	st := m.stores(nil)
	jobID, err := st.jobs.Create(dbmodels.Job{
		BaseCompanyModel: dbmodels.BaseCompanyModel{CompanyID: testCompany},
		Title:            "Backend Developer",
		Status:           models.JobStatusOpen,
	})
	require.Nil(t, err)
	err = InitStages(st.stages, testCompany, jobID, []string{"Screening", "Interview", "Offer"})
	require.Nil(t, err)
	stages, err := st.stages.List(testCompany, jobID)
	require.Nil(t, err)

	b := &testBoard{m: m, hub: hub, handler: h, jobID: jobID}
	for _, rec := range stages {
		b.stageIDs = append(b.stageIDs, rec.ID)
	}
	for _, name := range [][2]string{{"João", "Silva"}, {"Maria", "Santos"}, {"Pedro", "Costa"}} {
		id, err := st.candidates.Create(dbmodels.Candidate{
			BaseCompanyModel: dbmodels.BaseCompanyModel{CompanyID: testCompany},
			FirstName:        name[0],
			LastName:         name[1],
			Email:            name[0] + "@email.com",
		})
		require.Nil(t, err)
		hMsg, err := h.Apply(context.TODO(), testActor, jobID, id, 4)
		require.Nil(t, err)
		require.Empty(t, hMsg)
		b.candidates = append(b.candidates, id)
	}
	return b
}

func (b *testBoard) historyOf(candidateID string, action dbmodels.ActionType) []dbmodels.CandidateHistory {
	result := []dbmodels.CandidateHistory{}
	for _, rec := range b.m.history {
		if rec.CandidateID == candidateID && rec.ActionType == action {
			result = append(result, rec)
		}
	}
	return result
}

func TestApply(t *testing.T) {
	t.Run(`candidates are added to the end of the first stage`, func(t *testing.T) {
		b := newTestBoard(t)
		board, err := b.handler.Board(testCompany, b.jobID)
		require.Nil(t, err)
		require.Equal(t, 3, board.Total)
		require.Len(t, board.Stages[0].Candidates, 3)
		require.Equal(t, "João Silva", board.Stages[0].Candidates[0].Name)
		require.Equal(t, "Maria Santos", board.Stages[0].Candidates[1].Name)
		require.Equal(t, "Pedro Costa", board.Stages[0].Candidates[2].Name)
		require.Len(t, b.historyOf(b.candidates[0], dbmodels.HistoryTypeAdded), 1)
		require.Len(t, b.hub.messages, 3)
		require.Equal(t, string(models.PushCandidateAdded), b.hub.messages[0].Code)
	})
	t.Run(`duplicate application is rejected`, func(t *testing.T) {
		b := newTestBoard(t)
		hMsg, err := b.handler.Apply(context.TODO(), testActor, b.jobID, b.candidates[0], 3)
		require.Nil(t, err)
		require.NotEmpty(t, hMsg)
		require.Len(t, b.m.members, 3)
	})
	t.Run(`closed job does not accept candidates`, func(t *testing.T) {
		b := newTestBoard(t)
		job := b.m.jobs[b.jobID]
		job.Status = models.JobStatusClosed
		b.m.jobs[b.jobID] = job
		id, err := b.m.stores(nil).candidates.Create(dbmodels.Candidate{
			BaseCompanyModel: dbmodels.BaseCompanyModel{CompanyID: testCompany},
			FirstName:        "Lucas",
		})
		require.Nil(t, err)
		hMsg, err := b.handler.Apply(context.TODO(), testActor, b.jobID, id, 3)
		require.Nil(t, err)
		require.NotEmpty(t, hMsg)
	})
	t.Run(`rating is clamped`, func(t *testing.T) {
		b := newTestBoard(t)
		id, err := b.m.stores(nil).candidates.Create(dbmodels.Candidate{
			BaseCompanyModel: dbmodels.BaseCompanyModel{CompanyID: testCompany},
			FirstName:        "Lucas",
		})
		require.Nil(t, err)
		_, err = b.handler.Apply(context.TODO(), testActor, b.jobID, id, 9)
		require.Nil(t, err)
		require.Equal(t, pipeline.MaxRating, b.m.members[memberKey(b.jobID, id)].Rating)
	})
}

func TestMoveToNext(t *testing.T) {
	t.Run(`candidate is moved and the change is stored`, func(t *testing.T) {
		b := newTestBoard(t)
		event, err := b.handler.MoveToNext(context.TODO(), testActor, b.jobID, b.candidates[1], b.stageIDs[0])
		require.Nil(t, err)
		require.Equal(t, string(pipeline.EventCandidateMoved), event.Type)
		require.Equal(t, b.stageIDs[0], event.FromStageID)
		require.Equal(t, b.stageIDs[1], event.ToStageID)
		require.Equal(t, "Interview", event.StageName)
		require.Equal(t, 0, event.Position)

		member := b.m.members[memberKey(b.jobID, b.candidates[1])]
		require.Equal(t, b.stageIDs[1], member.StageID)
		require.NotNil(t, member.MovedByID)
		require.Equal(t, testActor.UserID, *member.MovedByID)

		history := b.historyOf(b.candidates[1], dbmodels.HistoryTypeStageChange)
		require.Len(t, history, 1)
		require.Equal(t, "Screening", history[0].Changes.Data[0].OldValue)
		require.Equal(t, "Interview", history[0].Changes.Data[0].NewValue)
		require.Equal(t, testActor.UserName, history[0].UserName)

		last := b.hub.messages[len(b.hub.messages)-1]
		require.Equal(t, string(models.PushCandidateMoved), last.Code)
		require.Equal(t, b.jobID, last.JobID)
		require.Equal(t, testCompany, last.CompanyID)

		board, err := b.handler.Board(testCompany, b.jobID)
		require.Nil(t, err)
		require.Len(t, board.Stages[0].Candidates, 2)
		require.Len(t, board.Stages[1].Candidates, 1)
		require.Equal(t, "Maria Santos", board.Stages[1].Candidates[0].Name)
	})
	t.Run(`current stage is taken from the board when not given`, func(t *testing.T) {
		b := newTestBoard(t)
		_, err := b.handler.MoveToNext(context.TODO(), testActor, b.jobID, b.candidates[0], "")
		require.Nil(t, err)
		event, err := b.handler.MoveToNext(context.TODO(), testActor, b.jobID, b.candidates[0], "")
		require.Nil(t, err)
		require.Equal(t, b.stageIDs[2], event.ToStageID)
	})
	t.Run(`last stage has no next`, func(t *testing.T) {
		b := newTestBoard(t)
		_, err := b.handler.MoveToStage(context.TODO(), testActor, b.jobID, b.candidates[0],
			pipelineapimodels.MoveRequest{FromStageID: b.stageIDs[0], ToStageID: b.stageIDs[2]})
		require.Nil(t, err)
		historyBefore := len(b.m.history)

		_, err = b.handler.MoveToNext(context.TODO(), testActor, b.jobID, b.candidates[0], b.stageIDs[2])
		require.True(t, errors.Is(err, pipeline.ErrNoNextStage))
		require.Equal(t, b.stageIDs[2], b.m.members[memberKey(b.jobID, b.candidates[0])].StageID)
		require.Len(t, b.m.history, historyBefore)
	})
	t.Run(`candidate is not on the given stage`, func(t *testing.T) {
		b := newTestBoard(t)
		_, err := b.handler.MoveToNext(context.TODO(), testActor, b.jobID, b.candidates[0], b.stageIDs[1])
		require.True(t, errors.Is(err, pipeline.ErrCandidateNotFound))
	})
	t.Run(`unknown job`, func(t *testing.T) {
		b := newTestBoard(t)
		_, err := b.handler.MoveToNext(context.TODO(), testActor, "job-unknown", b.candidates[0], "")
		require.True(t, errors.Is(err, ErrJobNotFound))
	})
	t.Run(`busy board`, func(t *testing.T) {
		b := newTestBoard(t)
		b.handler.lockWait = 50 * time.Millisecond
		err := lock.Run(context.TODO(), lockKey(b.jobID), time.Second, func() error {
			_, err := b.handler.MoveToNext(context.TODO(), testActor, b.jobID, b.candidates[0], "")
			return err
		})
		require.True(t, errors.Is(err, lock.ErrBusy))
		require.Equal(t, b.stageIDs[0], b.m.members[memberKey(b.jobID, b.candidates[0])].StageID)
	})
}

func TestMoveToStage(t *testing.T) {
	b := newTestBoard(t)
	_, err := b.handler.MoveToStage(context.TODO(), testActor, b.jobID, b.candidates[2],
		pipelineapimodels.MoveRequest{FromStageID: b.stageIDs[0], ToStageID: b.stageIDs[2]})
	require.Nil(t, err)

	event, err := b.handler.MoveToStage(context.TODO(), testActor, b.jobID, b.candidates[2],
		pipelineapimodels.MoveRequest{FromStageID: b.stageIDs[2], ToStageID: b.stageIDs[0]})
	require.Nil(t, err)
	require.Equal(t, "Screening", event.StageName)
	require.Equal(t, 2, event.Position)

	board, err := b.handler.Board(testCompany, b.jobID)
	require.Nil(t, err)
	require.Equal(t, "Pedro Costa", board.Stages[0].Candidates[2].Name)
	require.Empty(t, board.Stages[2].Candidates)

	_, err = b.handler.MoveToStage(context.TODO(), testActor, b.jobID, b.candidates[2],
		pipelineapimodels.MoveRequest{FromStageID: b.stageIDs[0], ToStageID: "stage-unknown"})
	require.True(t, errors.Is(err, pipeline.ErrStageNotFound))
}

func TestAddNote(t *testing.T) {
	t.Run(`notes are appended`, func(t *testing.T) {
		b := newTestBoard(t)
		view, err := b.handler.AddNote(context.TODO(), testActor, b.jobID, b.candidates[0], "Good profile")
		require.Nil(t, err)
		require.Equal(t, []string{"Good profile"}, view.Notes)
		view, err = b.handler.AddNote(context.TODO(), testActor, b.jobID, b.candidates[0], "Strong Go skills")
		require.Nil(t, err)
		require.Equal(t, []string{"Good profile", "Strong Go skills"}, view.Notes)

		require.Len(t, b.historyOf(b.candidates[0], dbmodels.HistoryTypeComment), 2)
		last := b.hub.messages[len(b.hub.messages)-1]
		require.Equal(t, string(models.PushCandidateNote), last.Code)

		board, err := b.handler.Board(testCompany, b.jobID)
		require.Nil(t, err)
		require.Equal(t, "Strong Go skills", board.Stages[0].Candidates[0].LastNote)
		require.Equal(t, 2, board.Stages[0].Candidates[0].NotesCount)
	})
	t.Run(`blank note is ignored`, func(t *testing.T) {
		b := newTestBoard(t)
		messages := len(b.hub.messages)
		view, err := b.handler.AddNote(context.TODO(), testActor, b.jobID, b.candidates[0], "   ")
		require.Nil(t, err)
		require.Empty(t, view.Notes)
		require.Empty(t, b.historyOf(b.candidates[0], dbmodels.HistoryTypeComment))
		require.Len(t, b.hub.messages, messages)
	})
	t.Run(`unknown candidate`, func(t *testing.T) {
		b := newTestBoard(t)
		_, err := b.handler.AddNote(context.TODO(), testActor, b.jobID, "candidate-unknown", "text")
		require.True(t, errors.Is(err, pipeline.ErrCandidateNotFound))
	})
}

func TestStatsAndBoard(t *testing.T) {
	b := newTestBoard(t)
	_, err := b.handler.MoveToNext(context.TODO(), testActor, b.jobID, b.candidates[0], "")
	require.Nil(t, err)

	stats, err := b.handler.Stats(testCompany, b.jobID)
	require.Nil(t, err)
	require.Equal(t, 3, stats.Total)
	require.Len(t, stats.Stages, 3)
	require.Equal(t, 2, stats.Stages[0].Count)
	require.Equal(t, 67, stats.Stages[0].Percentage)
	require.Equal(t, 33, stats.Stages[1].Percentage)
	require.Equal(t, 0, stats.Stages[2].Percentage)

	board, err := b.handler.Board(testCompany, b.jobID)
	require.Nil(t, err)
	require.Equal(t, "Backend Developer", board.JobTitle)
	require.False(t, board.Stages[0].IsLast)
	require.True(t, board.Stages[2].IsLast)
	require.Equal(t, 67, board.Stages[0].Percentage)
}

func TestExport(t *testing.T) {
	b := newTestBoard(t)
	_, err := b.handler.AddNote(context.TODO(), testActor, b.jobID, b.candidates[0], "Good profile")
	require.Nil(t, err)

	data, fileName, err := b.handler.ExportXLS(testCompany, b.jobID)
	require.Nil(t, err)
	require.Equal(t, "Backend_Developer.xlsx", fileName)
	require.NotZero(t, data.Len())

	pdf, fileName, err := b.handler.CandidateCardPDF(testCompany, b.jobID, b.candidates[0])
	require.Nil(t, err)
	require.Equal(t, "João_Silva.pdf", fileName)
	require.Equal(t, "%PDF", string(pdf[:4]))

	_, _, err = b.handler.CandidateCardPDF(testCompany, b.jobID, "candidate-unknown")
	require.True(t, errors.Is(err, pipeline.ErrCandidateNotFound))
}
