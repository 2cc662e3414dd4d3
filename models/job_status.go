package models

import "github.com/pkg/errors"

type JobStatus string

const (
	JobStatusOpen         JobStatus = "open"
	JobStatusScreening    JobStatus = "screening"
	JobStatusInterviewing JobStatus = "interviewing"
	JobStatusClosed       JobStatus = "closed"
	JobStatusCancelled    JobStatus = "cancelled"
)

var jobStatusHumanName = map[JobStatus]string{
	JobStatusOpen:         "Открыта",
	JobStatusScreening:    "Отбор резюме",
	JobStatusInterviewing: "Собеседования",
	JobStatusClosed:       "Закрыта",
	JobStatusCancelled:    "Отменена",
}

func (s JobStatus) ToHuman() string {
	if human, exist := jobStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s JobStatus) IsFinal() bool {
	return s == JobStatusClosed || s == JobStatusCancelled
}

// IsAllowChange закрытая или отмененная вакансия больше не меняет статус
func (s JobStatus) IsAllowChange(newStatus JobStatus) (bool, error) {
	if _, exist := jobStatusHumanName[newStatus]; !exist {
		return false, errors.New("неизвестный статус вакансии")
	}
	if s == newStatus {
		return false, nil
	}
	if s.IsFinal() {
		return false, errors.Errorf("смена статуса недоступна, вакансия в статусе «%v»", s.ToHuman())
	}
	return true, nil
}

type ContractType string

const (
	ContractCLT        ContractType = "clt"
	ContractPJ         ContractType = "pj"
	ContractInternship ContractType = "estagio"
	ContractTemporary  ContractType = "temporario"
)
