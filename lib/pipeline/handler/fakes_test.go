package pipelinehandler

import (
	"fmt"
	"sort"
	"sync"
	"time"

	connectionhub "rh-hub-backend/lib/ws/hub/connection-hub"
	candidateapimodels "rh-hub-backend/models/api/candidate"
	jobapimodels "rh-hub-backend/models/api/job"
	dbmodels "rh-hub-backend/models/db"
	wsmodels "rh-hub-backend/models/ws"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// memDB общее хранилище фейковых store, транзакции не откатываются
type memDB struct {
	seq        int
	jobs       map[string]dbmodels.Job
	stages     map[string]dbmodels.PipelineStage
	members    map[string]dbmodels.CandidatePipeline
	candidates map[string]dbmodels.Candidate
	history    []dbmodels.CandidateHistory
	companies  map[string]dbmodels.Company
}

func newMemDB() *memDB {
	return &memDB{
		jobs:       map[string]dbmodels.Job{},
		stages:     map[string]dbmodels.PipelineStage{},
		members:    map[string]dbmodels.CandidatePipeline{},
		candidates: map[string]dbmodels.Candidate{},
		companies:  map[string]dbmodels.Company{},
	}
}

func (m *memDB) nextID(prefix string) string {
	m.seq++
	return fmt.Sprintf("%s-%d", prefix, m.seq)
}

func (m *memDB) stores(_ *gorm.DB) stores {
	return stores{
		jobs:       fakeJobs{m},
		stages:     fakeStages{m},
		members:    fakeMembers{m},
		candidates: fakeCandidates{m},
		history:    fakeHistory{m},
		companies:  fakeCompanies{m},
	}
}

func memberKey(jobID, candidateID string) string {
	return jobID + "/" + candidateID
}

type fakeJobs struct{ m *memDB }

func (f fakeJobs) Create(rec dbmodels.Job) (string, error) {
	rec.ID = f.m.nextID("job")
	f.m.jobs[rec.ID] = rec
	return rec.ID, nil
}

func (f fakeJobs) GetByID(companyID, id string) (*dbmodels.Job, error) {
	rec, ok := f.m.jobs[id]
	if !ok || rec.CompanyID != companyID {
		return nil, nil
	}
	return &rec, nil
}

func (f fakeJobs) Update(companyID, id string, updMap map[string]interface{}) error {
	return nil
}

func (f fakeJobs) Delete(companyID, id string) error {
	delete(f.m.jobs, id)
	return nil
}

func (f fakeJobs) ListCount(companyID string, filter jobapimodels.JobFilter) (int64, error) {
	return int64(len(f.m.jobs)), nil
}

func (f fakeJobs) List(companyID string, filter jobapimodels.JobFilter) ([]dbmodels.Job, error) {
	return nil, nil
}

type fakeStages struct{ m *memDB }

func (f fakeStages) Create(rec dbmodels.PipelineStage) (string, error) {
	list, _ := f.List(rec.CompanyID, rec.JobID)
	rec.StageOrder = len(list) + 1
	if rec.Color == "" {
		rec.Color = dbmodels.StageColor(rec.StageOrder - 1)
	}
	rec.ID = f.m.nextID("stage")
	f.m.stages[rec.ID] = rec
	return rec.ID, nil
}

func (f fakeStages) Update(companyID, jobID, id string, updMap map[string]interface{}) error {
	rec, ok := f.m.stages[id]
	if !ok {
		return nil
	}
	for field, value := range updMap {
		switch field {
		case "name":
			rec.Name = value.(string)
		case "color":
			rec.Color = value.(string)
		case "description":
			rec.Description = value.(string)
		case "stage_order":
			rec.StageOrder = value.(int)
		}
	}
	f.m.stages[id] = rec
	return nil
}

func (f fakeStages) GetByID(companyID, jobID, id string) (*dbmodels.PipelineStage, error) {
	rec, ok := f.m.stages[id]
	if !ok || rec.JobID != jobID || rec.CompanyID != companyID {
		return nil, nil
	}
	return &rec, nil
}

func (f fakeStages) List(companyID, jobID string) ([]dbmodels.PipelineStage, error) {
	list := []dbmodels.PipelineStage{}
	for _, rec := range f.m.stages {
		if rec.JobID == jobID && rec.CompanyID == companyID {
			list = append(list, rec)
		}
	}
	sort.Slice(list, func(a, b int) bool { return list[a].StageOrder < list[b].StageOrder })
	return list, nil
}

func (f fakeStages) Delete(companyID, jobID, id string) error {
	delete(f.m.stages, id)
	return nil
}

type fakeMembers struct{ m *memDB }

func (f fakeMembers) maxPosition(jobID, stageID string) int {
	result := 0
	for _, rec := range f.m.members {
		if rec.JobID == jobID && rec.StageID == stageID && rec.Position > result {
			result = rec.Position
		}
	}
	return result
}

func (f fakeMembers) Create(rec dbmodels.CandidatePipeline) (string, error) {
	key := memberKey(rec.JobID, rec.CandidateID)
	if _, exist := f.m.members[key]; exist {
		return "", errors.New("duplicate key value violates unique constraint")
	}
	rec.ID = f.m.nextID("member")
	rec.Position = f.maxPosition(rec.JobID, rec.StageID) + 1
	f.m.members[key] = rec
	return rec.ID, nil
}

func (f fakeMembers) Get(companyID, jobID, candidateID string) (*dbmodels.CandidatePipeline, error) {
	rec, ok := f.m.members[memberKey(jobID, candidateID)]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f fakeMembers) ListByJob(companyID, jobID string) ([]dbmodels.CandidatePipeline, error) {
	list := []dbmodels.CandidatePipeline{}
	for _, rec := range f.m.members {
		if rec.JobID == jobID {
			list = append(list, rec)
		}
	}
	// порядок выборки из БД не гарантирован
	sort.Slice(list, func(a, b int) bool { return list[a].CandidateID > list[b].CandidateID })
	return list, nil
}

func (f fakeMembers) ListByCandidate(companyID, candidateID string) ([]dbmodels.CandidatePipeline, error) {
	list := []dbmodels.CandidatePipeline{}
	for _, rec := range f.m.members {
		if rec.CandidateID == candidateID {
			list = append(list, rec)
		}
	}
	return list, nil
}

func (f fakeMembers) CountByStage(companyID, jobID, stageID string) (int64, error) {
	var count int64
	for _, rec := range f.m.members {
		if rec.JobID == jobID && rec.StageID == stageID {
			count++
		}
	}
	return count, nil
}

func (f fakeMembers) MoveTo(companyID, jobID, candidateID, stageID string, movedBy *string, movedAt time.Time) error {
	key := memberKey(jobID, candidateID)
	rec, ok := f.m.members[key]
	if !ok {
		return errors.New("участие кандидата не найдено")
	}
	rec.Position = f.maxPosition(jobID, stageID) + 1
	rec.StageID = stageID
	rec.MovedByID = movedBy
	rec.MovedAt = &movedAt
	f.m.members[key] = rec
	return nil
}

func (f fakeMembers) Delete(companyID, jobID, candidateID string) error {
	delete(f.m.members, memberKey(jobID, candidateID))
	return nil
}

type fakeCandidates struct{ m *memDB }

func (f fakeCandidates) Create(rec dbmodels.Candidate) (string, error) {
	rec.ID = f.m.nextID("candidate")
	f.m.candidates[rec.ID] = rec
	return rec.ID, nil
}

func (f fakeCandidates) GetByID(companyID, id string) (*dbmodels.Candidate, error) {
	rec, ok := f.m.candidates[id]
	if !ok || rec.CompanyID != companyID {
		return nil, nil
	}
	return &rec, nil
}

func (f fakeCandidates) GetByIDs(companyID string, ids []string) ([]dbmodels.Candidate, error) {
	list := []dbmodels.Candidate{}
	for _, id := range ids {
		if rec, ok := f.m.candidates[id]; ok && rec.CompanyID == companyID {
			list = append(list, rec)
		}
	}
	return list, nil
}

func (f fakeCandidates) Update(companyID, id string, updMap map[string]interface{}) error {
	return nil
}

func (f fakeCandidates) Delete(companyID, id string) error {
	delete(f.m.candidates, id)
	return nil
}

func (f fakeCandidates) ListCount(companyID string, filter candidateapimodels.CandidateFilter) (int64, error) {
	return int64(len(f.m.candidates)), nil
}

func (f fakeCandidates) List(companyID string, filter candidateapimodels.CandidateFilter) ([]dbmodels.Candidate, error) {
	return nil, nil
}

type fakeHistory struct{ m *memDB }

func (f fakeHistory) Create(rec dbmodels.CandidateHistory) (string, error) {
	rec.ID = f.m.nextID("history")
	f.m.history = append(f.m.history, rec)
	return rec.ID, nil
}

func (f fakeHistory) ListCount(companyID, candidateID string, filter candidateapimodels.CandidateHistoryFilter) (int64, error) {
	list, _ := f.List(companyID, candidateID, filter)
	return int64(len(list)), nil
}

func (f fakeHistory) List(companyID, candidateID string, filter candidateapimodels.CandidateHistoryFilter) ([]dbmodels.CandidateHistory, error) {
	list := []dbmodels.CandidateHistory{}
	for _, rec := range f.m.history {
		if rec.CandidateID == candidateID {
			list = append(list, rec)
		}
	}
	return list, nil
}

func (f fakeHistory) JobComments(companyID, jobID string) ([]dbmodels.CandidateHistory, error) {
	list := []dbmodels.CandidateHistory{}
	for _, rec := range f.m.history {
		if rec.JobID == jobID && rec.ActionType == dbmodels.HistoryTypeComment {
			list = append(list, rec)
		}
	}
	return list, nil
}

type fakeCompanies struct{ m *memDB }

func (f fakeCompanies) Create(rec dbmodels.Company) (string, error) {
	rec.ID = f.m.nextID("company")
	f.m.companies[rec.ID] = rec
	return rec.ID, nil
}

func (f fakeCompanies) GetByID(id string) (*dbmodels.Company, error) {
	rec, ok := f.m.companies[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f fakeCompanies) FindByName(name string) (*dbmodels.Company, error) {
	return nil, nil
}

func (f fakeCompanies) Update(id string, updMap map[string]interface{}) error {
	return nil
}

type fakeHub struct {
	mu       sync.Mutex
	messages []wsmodels.ServerMessage
}

func (h *fakeHub) Broadcast(msg wsmodels.ServerMessage) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.messages = append(h.messages, msg)
	return 1
}

func (h *fakeHub) AddClient(clientID, companyID, userID string, conn connectionhub.Writer) {}
func (h *fakeHub) DeleteClient(clientID string)                                            {}
func (h *fakeHub) Subscribe(clientID, jobID string)                                        {}
func (h *fakeHub) Unsubscribe(clientID, jobID string)                                      {}
func (h *fakeHub) IsConnected(clientID string) bool                                        { return false }
