package apiv1

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"rh-hub-backend/lib/pipeline"
	pipelinehandler "rh-hub-backend/lib/pipeline/handler"
	"rh-hub-backend/lib/utils/lock"
	"rh-hub-backend/models"
	apimodels "rh-hub-backend/models/api"
	jobapimodels "rh-hub-backend/models/api/job"
	pipelineapimodels "rh-hub-backend/models/api/pipeline"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

const (
	testJobID       = "6f1c2a8e-3b7d-4e59-9a1f-2c4b8d0e7a11"
	testCandidateID = "0b9e4d21-7c3a-4f68-8e5d-1a2b3c4d5e6f"
)

type fakePipeline struct {
	pipelinehandler.Provider
	err        error
	lastActor  pipelinehandler.Actor
	lastStage  string
	lastNote   string
	moveCalled bool
}

func (f *fakePipeline) Board(companyID, jobID string) (*pipelineapimodels.BoardView, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &pipelineapimodels.BoardView{JobID: jobID, JobTitle: "Backend Developer"}, nil
}

func (f *fakePipeline) MoveToNext(ctx context.Context, actor pipelinehandler.Actor, jobID, candidateID, currentStageID string) (*pipelineapimodels.BoardEvent, error) {
	f.moveCalled = true
	f.lastActor = actor
	f.lastStage = currentStageID
	if f.err != nil {
		return nil, f.err
	}
	return &pipelineapimodels.BoardEvent{CandidateID: candidateID, StageName: "Interview"}, nil
}

func (f *fakePipeline) AddNote(ctx context.Context, actor pipelinehandler.Actor, jobID, candidateID, text string) (*pipelineapimodels.NotesView, error) {
	f.lastNote = text
	return &pipelineapimodels.NotesView{CandidateID: candidateID, Notes: []string{text}}, nil
}

func (f *fakePipeline) ExportXLS(companyID, jobID string) (*bytes.Buffer, string, error) {
	return bytes.NewBufferString("xlsx"), "Backend_Developer.xlsx", nil
}

func (f *fakePipeline) StageList(companyID, jobID string) ([]jobapimodels.StageView, error) {
	return []jobapimodels.StageView{}, nil
}

func newTestApp(t *testing.T, fake *fakePipeline) *fiber.App {
	prev := pipelinehandler.Instance
	pipelinehandler.Instance = fake
	t.Cleanup(func() { pipelinehandler.Instance = prev })

	app := fiber.New()
	app.Use(func(ctx *fiber.Ctx) error {
		ctx.Locals("user", &jwt.Token{Claims: jwt.MapClaims{
			"sub":     "user-1",
			"name":    "Ana Recrutadora",
			"company": "company-1",
			"role":    ctx.Get("X-Role"),
		}})
		return ctx.Next()
	})
	InitPipelineApiRouters(app)
	InitJobApiRouters(app)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path string, role models.UserRole, body string) (int, apimodels.Response, []byte) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("X-Role", string(role))
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	result := apimodels.Response{}
	if strings.HasPrefix(resp.Header.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(raw, &result))
	}
	return resp.StatusCode, result, raw
}

func TestPipelineBoardRoute(t *testing.T) {
	t.Run("Руководитель видит доску", func(t *testing.T) {
		app := newTestApp(t, &fakePipeline{})
		status, resp, _ := doRequest(t, app, fiber.MethodGet, "/job/"+testJobID+"/pipeline", models.ManagerRole, "")
		require.Equal(t, fiber.StatusOK, status)
		require.Equal(t, apimodels.StatusSuccess, resp.Status)
	})
	t.Run("Некорректный ид вакансии", func(t *testing.T) {
		app := newTestApp(t, &fakePipeline{})
		status, _, _ := doRequest(t, app, fiber.MethodGet, "/job/123/pipeline", models.RecruiterRole, "")
		require.Equal(t, fiber.StatusBadRequest, status)
	})
	t.Run("Вакансия не найдена", func(t *testing.T) {
		app := newTestApp(t, &fakePipeline{err: errors.Wrap(pipelinehandler.ErrJobNotFound, "job")})
		status, resp, _ := doRequest(t, app, fiber.MethodGet, "/job/"+testJobID+"/pipeline", models.RecruiterRole, "")
		require.Equal(t, fiber.StatusNotFound, status)
		require.Equal(t, pipelinehandler.ErrJobNotFound.Error(), resp.Message)
	})
}

func TestPipelineMoveToNextRoute(t *testing.T) {
	path := "/job/" + testJobID + "/pipeline/candidate/" + testCandidateID + "/next?stage_id=stage-1"
	t.Run("Руководителю перевод недоступен", func(t *testing.T) {
		fake := &fakePipeline{}
		app := newTestApp(t, fake)
		status, _, _ := doRequest(t, app, fiber.MethodPut, path, models.ManagerRole, "")
		require.Equal(t, fiber.StatusForbidden, status)
		require.False(t, fake.moveCalled)
	})
	t.Run("Рекрутер переводит кандидата", func(t *testing.T) {
		fake := &fakePipeline{}
		app := newTestApp(t, fake)
		status, _, _ := doRequest(t, app, fiber.MethodPut, path, models.RecruiterRole, "")
		require.Equal(t, fiber.StatusOK, status)
		require.Equal(t, "stage-1", fake.lastStage)
		require.Equal(t, pipelinehandler.Actor{CompanyID: "company-1", UserID: "user-1", UserName: "Ana Recrutadora"}, fake.lastActor)
	})
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"Последний этап", errors.Wrap(pipeline.ErrNoNextStage, "stage"), fiber.StatusConflict},
		{"Кандидат не на этапе", errors.Wrap(pipeline.ErrCandidateNotFound, "candidate"), fiber.StatusNotFound},
		{"Этап не найден", errors.Wrap(pipeline.ErrStageNotFound, "stage"), fiber.StatusNotFound},
		{"Доска занята", errors.Wrap(lock.ErrBusy, "lock"), fiber.StatusConflict},
		{"Внутренняя ошибка", errors.New("connection refused"), fiber.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newTestApp(t, &fakePipeline{err: tc.err})
			status, resp, _ := doRequest(t, app, fiber.MethodPut, path, models.CompanyAdminRole, "")
			require.Equal(t, tc.status, status)
			require.Equal(t, apimodels.StatusFail, resp.Status)
			require.NotContains(t, resp.Message, "connection refused")
		})
	}
}

func TestPipelineNoteRoute(t *testing.T) {
	fake := &fakePipeline{}
	app := newTestApp(t, fake)
	path := "/job/" + testJobID + "/pipeline/candidate/" + testCandidateID + "/note"
	status, _, _ := doRequest(t, app, fiber.MethodPut, path, models.ManagerRole, `{"text":"Boa comunicação"}`)
	require.Equal(t, fiber.StatusOK, status)
	require.Equal(t, "Boa comunicação", fake.lastNote)

	long := strings.Repeat("a", pipelineapimodels.MaxNoteLen+1)
	status, _, _ = doRequest(t, app, fiber.MethodPut, path, models.ManagerRole, `{"text":"`+long+`"}`)
	require.Equal(t, fiber.StatusBadRequest, status)
}

func TestPipelineExportRoute(t *testing.T) {
	app := newTestApp(t, &fakePipeline{})
	req := httptest.NewRequest(fiber.MethodGet, "/job/"+testJobID+"/pipeline/export.xlsx", nil)
	req.Header.Set("X-Role", string(models.ManagerRole))
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, "attachment; filename*=UTF-8''Backend_Developer.xlsx", resp.Header.Get(fiber.HeaderContentDisposition))
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, "xlsx", string(raw))
}

func TestJobStageListOpenForManager(t *testing.T) {
	app := newTestApp(t, &fakePipeline{})
	status, _, _ := doRequest(t, app, fiber.MethodGet, "/job/"+testJobID+"/stage/list", models.ManagerRole, "")
	require.Equal(t, fiber.StatusOK, status)
}
