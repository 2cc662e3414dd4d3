package candidateapimodels

import (
	apimodels "rh-hub-backend/models/api"
	dbmodels "rh-hub-backend/models/db"
	"time"
)

type CandidateHistoryFilter struct {
	apimodels.Pagination
	CommentsOnly bool   `json:"comments_only"` // Только комментарии
	JobID        string `json:"job_id"`        // Только по вакансии
}

type CandidateHistoryView struct {
	JobID      string                  `json:"job_id"`      // Идентификатор вакансии
	JobTitle   string                  `json:"job_title"`   // Название вакансии
	UserID     string                  `json:"user_id"`     // Идентификатор сотрудника
	UserName   string                  `json:"user_name"`   // Имя сотрудника
	ActionType dbmodels.ActionType     `json:"action_type"` // Тип действия
	Changes    dbmodels.HistoryChanges `json:"changes"`     // Изменения
	ActionDate time.Time               `json:"action_date"`
}

func HistoryConvert(rec dbmodels.CandidateHistory) CandidateHistoryView {
	result := CandidateHistoryView{
		JobID:      rec.JobID,
		UserName:   rec.UserName,
		ActionType: rec.ActionType,
		Changes:    rec.Changes,
		ActionDate: rec.CreatedAt,
	}
	if rec.Job != nil {
		result.JobTitle = rec.Job.Title
	}
	if rec.UserID != nil {
		result.UserID = *rec.UserID
	}
	return result
}
