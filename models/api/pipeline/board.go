package pipelineapimodels

import (
	"time"

	"github.com/pkg/errors"
)

type BoardView struct {
	JobID    string       `json:"job_id"`
	JobTitle string       `json:"job_title"`
	Total    int          `json:"total"` // Всего кандидатов в воронке
	Stages   []BoardStage `json:"stages"`
}

type BoardStage struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	Color      string           `json:"color"`
	Count      int              `json:"count"`      // Кандидатов на этапе
	Percentage int              `json:"percentage"` // Доля от всех кандидатов, %
	IsLast     bool             `json:"is_last"`    // Последний этап, дальше перевести нельзя
	Candidates []BoardCandidate `json:"candidates"`
}

type BoardCandidate struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Rating     int       `json:"rating"` // Оценка 0..5
	AppliedAt  time.Time `json:"applied_at"`
	LastNote   string    `json:"last_note"`   // Самая свежая заметка
	NotesCount int       `json:"notes_count"` // Количество заметок
}

type StatsView struct {
	JobID  string           `json:"job_id"`
	Total  int              `json:"total"`
	Stages []StageStatsView `json:"stages"`
}

type StageStatsView struct {
	StageID    string `json:"stage_id"`
	StageName  string `json:"stage_name"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

type MoveRequest struct {
	FromStageID string `json:"from_stage_id"` // Текущий этап кандидата
	ToStageID   string `json:"to_stage_id"`   // Этап назначения
}

func (r MoveRequest) Validate() error {
	if r.FromStageID == "" {
		return errors.New("не указан текущий этап кандидата")
	}
	if r.ToStageID == "" {
		return errors.New("не указан этап назначения")
	}
	return nil
}

const MaxNoteLen = 4000

type NoteRequest struct {
	Text string `json:"text"` // Текст заметки, пустая заметка игнорируется
}

func (r NoteRequest) Validate() error {
	if len([]rune(r.Text)) > MaxNoteLen {
		return errors.Errorf("заметка длиннее %d символов", MaxNoteLen)
	}
	return nil
}

type NotesView struct {
	CandidateID string   `json:"candidate_id"`
	Notes       []string `json:"notes"` // Все заметки в порядке добавления
}

// BoardEvent изменение на доске, передается в ws и в ответе на операцию
type BoardEvent struct {
	Type          string    `json:"type"` // candidate_moved/note_added/candidate_added
	CandidateID   string    `json:"candidate_id"`
	CandidateName string    `json:"candidate_name"`
	FromStageID   string    `json:"from_stage_id"`
	ToStageID     string    `json:"to_stage_id"`
	StageName     string    `json:"stage_name"`
	Position      int       `json:"position"` // Позиция кандидата на этапе, с нуля
	Note          string    `json:"note,omitempty"`
	Time          time.Time `json:"time"`
}

const EventCandidateAdded = "candidate_added"
