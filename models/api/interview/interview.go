package interviewapimodels

import (
	"rh-hub-backend/models"
	apimodels "rh-hub-backend/models/api"
	dbmodels "rh-hub-backend/models/db"
	"time"

	"github.com/pkg/errors"
)

type InterviewData struct {
	CandidateID string               `json:"candidate_id"`
	JobID       string               `json:"job_id"`
	RecruiterID string               `json:"recruiter_id"` // пусто - текущий пользователь
	ManagerID   string               `json:"manager_id"`
	ScheduledAt time.Time            `json:"scheduled_at"` // Дата и время собеседования
	DurationMin int                  `json:"duration_min"` // Продолжительность, минут
	Mode        models.InterviewMode `json:"mode"`         // presencial/online/telefone
	MeetingLink string               `json:"meeting_link"` // Ссылка на видеозвонок
	Location    string               `json:"location"`
	Notes       string               `json:"notes"`
}

func (r InterviewData) Validate() error {
	if r.CandidateID == "" {
		return errors.New("не указан кандидат")
	}
	if r.JobID == "" {
		return errors.New("не указана вакансия")
	}
	if r.ScheduledAt.IsZero() {
		return errors.New("не указано время собеседования")
	}
	if r.DurationMin < 0 {
		return errors.New("некорректная продолжительность собеседования")
	}
	if err := r.Mode.Validate(); err != nil {
		return err
	}
	if r.Mode == models.InterviewModeOnline && r.MeetingLink == "" {
		return errors.New("для онлайн собеседования необходимо указать ссылку")
	}
	return nil
}

type InterviewComplete struct {
	Evaluation string `json:"evaluation"` // Оценка по итогам собеседования
}

func (r InterviewComplete) Validate() error {
	if r.Evaluation == "" {
		return errors.New("не указана оценка по итогам собеседования")
	}
	return nil
}

type InterviewView struct {
	InterviewData
	ID            string                 `json:"id"`
	Status        models.InterviewStatus `json:"status"`
	Evaluation    string                 `json:"evaluation"`
	CandidateName string                 `json:"candidate_name"`
	JobTitle      string                 `json:"job_title"`
	RecruiterName string                 `json:"recruiter_name"`
}

type InterviewFilter struct {
	apimodels.Pagination
	Status      models.InterviewStatus `json:"status"`
	JobID       string                 `json:"job_id"`
	CandidateID string                 `json:"candidate_id"`
	From        *time.Time             `json:"from"`
	To          *time.Time             `json:"to"`
}

func InterviewConvert(rec dbmodels.Interview) InterviewView {
	result := InterviewView{
		InterviewData: InterviewData{
			CandidateID: rec.CandidateID,
			JobID:       rec.JobID,
			RecruiterID: rec.RecruiterID,
			ScheduledAt: rec.ScheduledAt,
			DurationMin: rec.DurationMin,
			Mode:        rec.Mode,
			MeetingLink: rec.MeetingLink,
			Location:    rec.Location,
			Notes:       rec.Notes,
		},
		ID:         rec.ID,
		Status:     rec.Status,
		Evaluation: rec.Evaluation,
	}
	if rec.ManagerID != nil {
		result.ManagerID = *rec.ManagerID
	}
	if rec.Candidate != nil {
		result.CandidateName = rec.Candidate.GetFullName()
	}
	if rec.Job != nil {
		result.JobTitle = rec.Job.Title
	}
	if rec.Recruiter != nil {
		result.RecruiterName = rec.Recruiter.GetFullName()
	}
	return result
}
