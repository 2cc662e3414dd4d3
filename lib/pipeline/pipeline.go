// Package pipeline воронка подбора кандидатов по одной вакансии.
//
// Воронка хранит упорядоченный список этапов и кандидатов на каждом из них,
// позволяет переводить кандидатов между этапами и вести заметки.
// Воронка работает только в памяти: загрузка и сохранение состояния
// выполняются вызывающей стороной, изменения публикуются через Listener.
// Экземпляр не потокобезопасен.
package pipeline

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	MinRating = 0
	MaxRating = 5
)

// Candidate кандидат в разрезе воронки подбора
type Candidate struct {
	ID        string
	Name      string
	Email     string
	JobID     string
	Rating    int
	AppliedAt time.Time
	Notes     []string // в порядке добавления, последняя заметка - самая свежая
}

// Stage этап подбора, порядок этапов задается порядком в списке
type Stage struct {
	ID         string
	Name       string
	Color      string
	Candidates []Candidate
}

type stage struct {
	id         string
	name       string
	color      string
	candidates []*Candidate
}

func (s *stage) indexOf(candidateID string) int {
	for k, candidate := range s.candidates {
		if candidate.ID == candidateID {
			return k
		}
	}
	return -1
}

type Pipeline struct {
	jobID      string
	stages     []*stage
	stageIdx   map[string]int        // ид этапа -> позиция в воронке
	candidates map[string]*Candidate // ид кандидата -> кандидат
	location   map[string]int        // ид кандидата -> позиция этапа
	listeners  []Listener
	now        func() time.Time
}

// New строит воронку из списка этапов.
// Входные данные копируются, дальнейшие изменения выполняются только через методы воронки.
func New(jobID string, stages []Stage, opts ...Option) (*Pipeline, error) {
	p := &Pipeline{
		jobID:      jobID,
		stages:     make([]*stage, 0, len(stages)),
		stageIdx:   make(map[string]int, len(stages)),
		candidates: map[string]*Candidate{},
		location:   map[string]int{},
		now:        time.Now,
	}
	for k, item := range stages {
		if item.ID == "" {
			return nil, errors.Errorf("не указан идентификатор этапа подбора (позиция %d)", k)
		}
		if _, exist := p.stageIdx[item.ID]; exist {
			return nil, errors.Wrapf(ErrDuplicateStage, "этап %s", item.ID)
		}
		rec := &stage{
			id:         item.ID,
			name:       item.Name,
			color:      item.Color,
			candidates: make([]*Candidate, 0, len(item.Candidates)),
		}
		for _, candidate := range item.Candidates {
			if candidate.ID == "" {
				return nil, errors.Errorf("не указан идентификатор кандидата на этапе %s", item.ID)
			}
			if prevIdx, exist := p.location[candidate.ID]; exist {
				if prevIdx == k {
					return nil, errors.Wrapf(ErrDuplicateCandidate, "кандидат %s дважды на этапе %s", candidate.ID, item.ID)
				}
				return nil, errors.Wrapf(ErrDuplicateCandidate, "кандидат %s на этапах %s и %s",
					candidate.ID, p.stages[prevIdx].id, item.ID)
			}
			c := cloneCandidate(candidate)
			c.Rating = ClampRating(c.Rating)
			rec.candidates = append(rec.candidates, &c)
			p.candidates[c.ID] = &c
			p.location[c.ID] = k
		}
		p.stageIdx[item.ID] = k
		p.stages = append(p.stages, rec)
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

func (p *Pipeline) JobID() string {
	return p.jobID
}

// MoveToNextStage переводит кандидата на этап, следующий за currentStageID.
// С последнего этапа перевод невозможен: ErrNoNextStage, состояние не меняется.
func (p *Pipeline) MoveToNextStage(candidateID, currentStageID string) error {
	from, ok := p.stageIdx[currentStageID]
	if !ok {
		return errors.Wrapf(ErrStageNotFound, "этап %s", currentStageID)
	}
	if from == len(p.stages)-1 {
		return errors.Wrapf(ErrNoNextStage, "этап %s последний", currentStageID)
	}
	return p.move(candidateID, from, from+1)
}

// MoveToStage переводит кандидата с этапа fromStageID на произвольный этап toStageID,
// в том числе назад по воронке. Кандидат добавляется в конец этапа назначения.
func (p *Pipeline) MoveToStage(candidateID, fromStageID, toStageID string) error {
	from, ok := p.stageIdx[fromStageID]
	if !ok {
		return errors.Wrapf(ErrStageNotFound, "этап %s", fromStageID)
	}
	to, ok := p.stageIdx[toStageID]
	if !ok {
		return errors.Wrapf(ErrStageNotFound, "этап %s", toStageID)
	}
	return p.move(candidateID, from, to)
}

func (p *Pipeline) move(candidateID string, from, to int) error {
	src := p.stages[from]
	pos := src.indexOf(candidateID)
	if pos < 0 {
		return errors.Wrapf(ErrCandidateNotFound, "кандидат %s на этапе %s", candidateID, src.id)
	}
	candidate := src.candidates[pos]
	src.candidates = append(src.candidates[:pos], src.candidates[pos+1:]...)
	dst := p.stages[to]
	dst.candidates = append(dst.candidates, candidate)
	p.location[candidateID] = to

	p.emit(Event{
		Type:          EventCandidateMoved,
		CandidateID:   candidate.ID,
		CandidateName: candidate.Name,
		FromStageID:   src.id,
		ToStageID:     dst.id,
		StageName:     dst.name,
		Position:      len(dst.candidates) - 1,
	})
	return nil
}

// AddNote добавляет заметку в конец истории кандидата и возвращает копию обновленного списка.
// Пустой текст (или только пробелы) игнорируется без ошибки.
func (p *Pipeline) AddNote(candidateID, text string) ([]string, error) {
	candidate, ok := p.candidates[candidateID]
	if !ok {
		return nil, errors.Wrapf(ErrCandidateNotFound, "кандидат %s", candidateID)
	}
	if strings.TrimSpace(text) == "" {
		return copyNotes(candidate.Notes), nil
	}
	candidate.Notes = append(candidate.Notes, text)

	current := p.stages[p.location[candidateID]]
	p.emit(Event{
		Type:          EventNoteAdded,
		CandidateID:   candidate.ID,
		CandidateName: candidate.Name,
		FromStageID:   current.id,
		ToStageID:     current.id,
		StageName:     current.name,
		Position:      current.indexOf(candidateID),
		Note:          text,
	})
	return copyNotes(candidate.Notes), nil
}

// MostRecentNote последняя заметка кандидата, ok=false если заметок нет
func (p *Pipeline) MostRecentNote(candidateID string) (note string, ok bool, err error) {
	candidate, exist := p.candidates[candidateID]
	if !exist {
		return "", false, errors.Wrapf(ErrCandidateNotFound, "кандидат %s", candidateID)
	}
	if len(candidate.Notes) == 0 {
		return "", false, nil
	}
	return candidate.Notes[len(candidate.Notes)-1], true, nil
}

// Candidate копия данных кандидата
func (p *Pipeline) Candidate(candidateID string) (Candidate, error) {
	candidate, ok := p.candidates[candidateID]
	if !ok {
		return Candidate{}, errors.Wrapf(ErrCandidateNotFound, "кандидат %s", candidateID)
	}
	return cloneCandidate(*candidate), nil
}

// StageOf ид этапа, на котором сейчас находится кандидат
func (p *Pipeline) StageOf(candidateID string) (string, error) {
	idx, ok := p.location[candidateID]
	if !ok {
		return "", errors.Wrapf(ErrCandidateNotFound, "кандидат %s", candidateID)
	}
	return p.stages[idx].id, nil
}

func (p *Pipeline) IsTerminal(stageID string) (bool, error) {
	idx, ok := p.stageIdx[stageID]
	if !ok {
		return false, errors.Wrapf(ErrStageNotFound, "этап %s", stageID)
	}
	return idx == len(p.stages)-1, nil
}

// Stages снимок текущего состояния воронки
func (p *Pipeline) Stages() []Stage {
	result := make([]Stage, 0, len(p.stages))
	for _, s := range p.stages {
		item := Stage{
			ID:         s.id,
			Name:       s.name,
			Color:      s.color,
			Candidates: make([]Candidate, 0, len(s.candidates)),
		}
		for _, candidate := range s.candidates {
			item.Candidates = append(item.Candidates, cloneCandidate(*candidate))
		}
		result = append(result, item)
	}
	return result
}

// Total общее количество кандидатов на всех этапах
func (p *Pipeline) Total() int {
	return len(p.candidates)
}

func ClampRating(rating int) int {
	if rating < MinRating {
		return MinRating
	}
	if rating > MaxRating {
		return MaxRating
	}
	return rating
}

func cloneCandidate(c Candidate) Candidate {
	c.Notes = copyNotes(c.Notes)
	return c
}

func copyNotes(notes []string) []string {
	result := make([]string, len(notes))
	copy(result, notes)
	return result
}
