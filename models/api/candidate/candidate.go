package candidateapimodels

import (
	"net/mail"
	apimodels "rh-hub-backend/models/api"
	dbmodels "rh-hub-backend/models/db"
	"time"

	"github.com/pkg/errors"
)

type CandidateData struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Linkedin  string `json:"linkedin"`
	Portfolio string `json:"portfolio"`
	Summary   string `json:"summary"` // Краткое резюме
	Address   string `json:"address"`
}

func (c CandidateData) Validate() error {
	if c.FirstName == "" && c.LastName == "" {
		return errors.New("не указаны имя и фамилия кандидата")
	}
	if c.Email != "" {
		if _, err := mail.ParseAddress(c.Email); err != nil {
			return errors.New("почта имеет неправильный формат")
		}
	}
	return nil
}

type CandidateView struct {
	CandidateData
	ID           string    `json:"id"`
	FullName     string    `json:"full_name"`
	CreationDate time.Time `json:"creation_date"`
}

// CandidateApplication участие кандидата в отборе по вакансии
type CandidateApplication struct {
	JobID     string    `json:"job_id"`
	JobTitle  string    `json:"job_title"`
	StageID   string    `json:"stage_id"`
	StageName string    `json:"stage_name"`
	Rating    int       `json:"rating"`
	AppliedAt time.Time `json:"applied_at"`
}

type CandidateCard struct {
	CandidateView
	Applications []CandidateApplication `json:"applications"`
}

type CandidateFilter struct {
	apimodels.Pagination
	Search string `json:"search"` // Поиск по имени, email, телефону
	JobID  string `json:"job_id"` // Только кандидаты в воронке вакансии
}

// ApplyRequest добавление кандидата в воронку вакансии
type ApplyRequest struct {
	JobID  string `json:"job_id"`
	Rating int    `json:"rating"` // Оценка 0..5
}

func (r ApplyRequest) Validate() error {
	if r.JobID == "" {
		return errors.New("не указана вакансия")
	}
	if r.Rating < 0 || r.Rating > 5 {
		return errors.New("оценка должна быть от 0 до 5")
	}
	return nil
}

func CandidateConvert(rec dbmodels.Candidate) CandidateView {
	return CandidateView{
		CandidateData: CandidateData{
			FirstName: rec.FirstName,
			LastName:  rec.LastName,
			Email:     rec.Email,
			Phone:     rec.Phone,
			Linkedin:  rec.Linkedin,
			Portfolio: rec.Portfolio,
			Summary:   rec.Summary,
			Address:   rec.Address,
		},
		ID:           rec.ID,
		FullName:     rec.GetFullName(),
		CreationDate: rec.CreatedAt,
	}
}
