package models

import "github.com/pkg/errors"

type InterviewStatus string

const (
	InterviewStatusScheduled       InterviewStatus = "scheduled"
	InterviewStatusPendingFeedback InterviewStatus = "pending_feedback" // время прошло, оценка не выставлена
	InterviewStatusDone            InterviewStatus = "done"
	InterviewStatusCancelled       InterviewStatus = "cancelled"
)

func (s InterviewStatus) IsActive() bool {
	return s == InterviewStatusScheduled || s == InterviewStatusPendingFeedback
}

type InterviewMode string

const (
	InterviewModeOnsite InterviewMode = "presencial"
	InterviewModeOnline InterviewMode = "online"
	InterviewModePhone  InterviewMode = "telefone"
)

func (m InterviewMode) Validate() error {
	switch m {
	case InterviewModeOnsite, InterviewModeOnline, InterviewModePhone:
		return nil
	}
	return errors.New("неизвестный формат собеседования")
}
