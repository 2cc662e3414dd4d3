package pipelinehandler

import (
	"bytes"
	"context"
	"time"

	"rh-hub-backend/config"
	"rh-hub-backend/db"
	candidatehistorystore "rh-hub-backend/lib/candidate-history/store"
	candidatestore "rh-hub-backend/lib/candidate/store"
	companystore "rh-hub-backend/lib/company/store"
	pdfexport "rh-hub-backend/lib/export/pdf"
	xlsexport "rh-hub-backend/lib/export/xls"
	jobstore "rh-hub-backend/lib/job/store"
	"rh-hub-backend/lib/pipeline"
	membershipstore "rh-hub-backend/lib/pipeline/membership-store"
	stagestore "rh-hub-backend/lib/pipeline/stage-store"
	initchecker "rh-hub-backend/lib/utils/init-checker"
	connectionhub "rh-hub-backend/lib/ws/hub/connection-hub"
	jobapimodels "rh-hub-backend/models/api/job"
	pipelineapimodels "rh-hub-backend/models/api/pipeline"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("вакансия не найдена")

// Actor пользователь, выполняющий операцию
type Actor struct {
	CompanyID string
	UserID    string
	UserName  string
}

type Provider interface {
	Board(companyID, jobID string) (*pipelineapimodels.BoardView, error)
	Stats(companyID, jobID string) (*pipelineapimodels.StatsView, error)
	MoveToNext(ctx context.Context, actor Actor, jobID, candidateID, currentStageID string) (*pipelineapimodels.BoardEvent, error)
	MoveToStage(ctx context.Context, actor Actor, jobID, candidateID string, data pipelineapimodels.MoveRequest) (*pipelineapimodels.BoardEvent, error)
	AddNote(ctx context.Context, actor Actor, jobID, candidateID, text string) (*pipelineapimodels.NotesView, error)
	Apply(ctx context.Context, actor Actor, jobID, candidateID string, rating int) (hMsg string, err error)
	ExportXLS(companyID, jobID string) (data *bytes.Buffer, fileName string, err error)
	CandidateCardPDF(companyID, jobID, candidateID string) (data []byte, fileName string, err error)

	StageList(companyID, jobID string) ([]jobapimodels.StageView, error)
	StageCreate(ctx context.Context, companyID, jobID string, data jobapimodels.StageData) (id string, err error)
	StageUpdate(ctx context.Context, companyID, jobID, stageID string, data jobapimodels.StageData) (hMsg string, err error)
	StageDelete(ctx context.Context, companyID, jobID, stageID string) (hMsg string, err error)
	StageChangeOrder(ctx context.Context, companyID, jobID, stageID string, newOrder int) (hMsg string, err error)
}

var Instance Provider

func NewHandler() {
	initchecker.CheckInit(
		"db", db.DB,
		"connectionhub", connectionhub.Instance,
		"xlsexport", xlsexport.Instance,
	)
	lockWait := time.Duration(config.Conf.Pipeline.LockWaitSec) * time.Second
	if lockWait <= 0 {
		lockWait = 5 * time.Second
	}
	Instance = impl{
		db:     db.DB,
		stores: newStores,
		inTx: func(fn func(tx *gorm.DB) error) error {
			return db.DB.Transaction(fn)
		},
		hub:      connectionhub.Instance,
		xls:      xlsexport.Instance,
		lockWait: lockWait,
		now:      time.Now,
		font: pdfexport.FontConfig{
			Dir:  config.Conf.Export.PdfFontDir,
			File: config.Conf.Export.PdfFontFile,
		},
	}
}

// stores хранилища, открытые на одном соединении или транзакции
type stores struct {
	jobs       jobstore.Provider
	stages     stagestore.Provider
	members    membershipstore.Provider
	candidates candidatestore.Provider
	history    candidatehistorystore.Provider
	companies  companystore.Provider
}

func newStores(tx *gorm.DB) stores {
	return stores{
		jobs:       jobstore.NewInstance(tx),
		stages:     stagestore.NewInstance(tx),
		members:    membershipstore.NewInstance(tx),
		candidates: candidatestore.NewInstance(tx),
		history:    candidatehistorystore.NewInstance(tx),
		companies:  companystore.NewInstance(tx),
	}
}

type impl struct {
	db       *gorm.DB
	stores   func(tx *gorm.DB) stores
	inTx     func(fn func(tx *gorm.DB) error) error
	hub      connectionhub.Provider
	xls      xlsexport.Provider
	lockWait time.Duration
	now      func() time.Time
	font     pdfexport.FontConfig
}

func lockKey(jobID string) string {
	return "pipeline:" + jobID
}

func getLogger(companyID, jobID, userID string) *log.Entry {
	logger := log.WithField("company_id", companyID)
	if jobID != "" {
		logger = logger.WithField("job_id", jobID)
	}
	if userID != "" {
		logger = logger.WithField("user_id", userID)
	}
	return logger
}

func eventView(e pipeline.Event) pipelineapimodels.BoardEvent {
	return pipelineapimodels.BoardEvent{
		Type:          string(e.Type),
		CandidateID:   e.CandidateID,
		CandidateName: e.CandidateName,
		FromStageID:   e.FromStageID,
		ToStageID:     e.ToStageID,
		StageName:     e.StageName,
		Position:      e.Position,
		Note:          e.Note,
		Time:          e.Time,
	}
}
