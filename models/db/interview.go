package dbmodels

import (
	"rh-hub-backend/models"
	"time"
)

type Interview struct {
	BaseCompanyModel
	CandidateID string     `gorm:"type:varchar(36);index"`
	Candidate   *Candidate `gorm:"foreignKey:CandidateID"`
	JobID       string     `gorm:"type:varchar(36);index"`
	Job         *Job       `gorm:"foreignKey:JobID"`
	RecruiterID string     `gorm:"type:varchar(36)"`
	Recruiter   *User      `gorm:"foreignKey:RecruiterID"`
	ManagerID   *string    `gorm:"type:varchar(36)"`
	ScheduledAt time.Time  `gorm:"index"`
	DurationMin int
	Mode        models.InterviewMode `gorm:"type:varchar(50)"`
	MeetingLink string               `gorm:"type:varchar(500)"`
	Location    string               `gorm:"type:varchar(255)"`
	Notes       string
	Evaluation  string
	Status      models.InterviewStatus `gorm:"type:varchar(50);index"`
}
