package dbmodels

import "time"

// CandidatePipeline участие кандидата в воронке вакансии, один кандидат - один этап
type CandidatePipeline struct {
	BaseCompanyModel
	JobID       string     `gorm:"type:varchar(36);uniqueIndex:idx_job_candidate"`
	CandidateID string     `gorm:"type:varchar(36);uniqueIndex:idx_job_candidate"`
	Candidate   *Candidate `gorm:"foreignKey:CandidateID"`
	StageID     string     `gorm:"type:varchar(36);index"`
	Position    int        // порядок кандидата внутри этапа
	Rating      int
	AppliedAt   time.Time
	MovedAt     *time.Time
	MovedByID   *string `gorm:"type:varchar(36)"`
}
