package jobapimodels

import (
	"rh-hub-backend/models"
	apimodels "rh-hub-backend/models/api"
	dbmodels "rh-hub-backend/models/db"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type JobData struct {
	Title        string              `json:"title"`         // Название вакансии
	Description  string              `json:"description"`   // Описание
	Requirements string              `json:"requirements"`  // Требования, по одному на строку
	Benefits     string              `json:"benefits"`      // Условия и бонусы, по одному на строку
	Location     string              `json:"location"`      // Место работы
	Salary       string              `json:"salary"`        // Зарплатная вилка
	ContractType models.ContractType `json:"contract_type"` // Тип договора clt/pj/estagio/temporario
	DepartmentID string              `json:"department_id"` // ид подразделения
	ManagerID    string              `json:"manager_id"`    // ид руководителя
}

func (j JobData) Validate() error {
	if strings.TrimSpace(j.Title) == "" {
		return errors.New("не указано название вакансии")
	}
	switch j.ContractType {
	case "", models.ContractCLT, models.ContractPJ, models.ContractInternship, models.ContractTemporary:
	default:
		return errors.New("указан неизвестный тип договора")
	}
	return nil
}

type JobView struct {
	ID             string              `json:"id"`
	Title          string              `json:"title"`
	Description    string              `json:"description"`
	Requirements   []string            `json:"requirements"`
	Benefits       []string            `json:"benefits"`
	Location       string              `json:"location"`
	Salary         string              `json:"salary"`
	ContractType   models.ContractType `json:"contract_type"`
	DepartmentID   string              `json:"department_id"`
	DepartmentName string              `json:"department_name"`
	ManagerID      string              `json:"manager_id"`
	Status         models.JobStatus    `json:"status"`
	StatusName     string              `json:"status_name"`
	OpenDate       time.Time           `json:"open_date"`
	CloseDate      *time.Time          `json:"close_date"`
	CreationDate   time.Time           `json:"creation_date"`
}

type JobFilter struct {
	apimodels.Pagination
	Search       string             `json:"search"`        // Поиск по названию
	Statuses     []models.JobStatus `json:"statuses"`      // Статусы
	DepartmentID string             `json:"department_id"` // Подразделение
}

type JobStatusChange struct {
	Status models.JobStatus `json:"status"`
}

func (r JobStatusChange) Validate() error {
	if r.Status == "" {
		return errors.New("не указан статус вакансии")
	}
	return nil
}

// SplitLines текст по одному пункту на строку, пустые строки отбрасываются
func SplitLines(text string) []string {
	result := []string{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			result = append(result, line)
		}
	}
	return result
}

func JobConvert(rec dbmodels.Job) JobView {
	result := JobView{
		ID:           rec.ID,
		Title:        rec.Title,
		Description:  rec.Description,
		Requirements: append([]string{}, rec.Requirements...),
		Benefits:     append([]string{}, rec.Benefits...),
		Location:     rec.Location,
		Salary:       rec.Salary,
		ContractType: rec.ContractType,
		Status:       rec.Status,
		StatusName:   rec.Status.ToHuman(),
		OpenDate:     rec.OpenDate,
		CloseDate:    rec.CloseDate,
		CreationDate: rec.CreatedAt,
	}
	if rec.DepartmentID != nil {
		result.DepartmentID = *rec.DepartmentID
	}
	if rec.Department != nil {
		result.DepartmentName = rec.Department.Name
	}
	if rec.ManagerID != nil {
		result.ManagerID = *rec.ManagerID
	}
	return result
}
