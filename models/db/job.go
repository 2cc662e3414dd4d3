package dbmodels

import (
	"rh-hub-backend/models"
	"time"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// AfterDelete вместе с вакансией удаляется ее воронка
func (j *Job) AfterDelete(tx *gorm.DB) error {
	if j.ID == "" {
		return nil
	}
	session := tx.Session(&gorm.Session{NewDB: true})
	if err := session.Where("job_id = ?", j.ID).Delete(&CandidatePipeline{}).Error; err != nil {
		return err
	}
	return session.Where("job_id = ?", j.ID).Delete(&PipelineStage{}).Error
}

type Job struct {
	BaseCompanyModel
	AuthorID     string
	Author       *User   `gorm:"foreignKey:AuthorID"`
	DepartmentID *string `gorm:"type:varchar(36)"`
	Department   *Department
	ManagerID    *string `gorm:"type:varchar(36)"`
	Title        string  `gorm:"type:varchar(255)"`
	Description  string
	Requirements pq.StringArray      `gorm:"type:text[]"`
	Benefits     pq.StringArray      `gorm:"type:text[]"`
	Location     string              `gorm:"type:varchar(255)"`
	Salary       string              `gorm:"type:varchar(100)"`
	ContractType models.ContractType `gorm:"type:varchar(50)"`
	Status       models.JobStatus    `gorm:"type:varchar(50);index"`
	OpenDate     time.Time
	CloseDate    *time.Time
}

func (j Job) Validate() error {
	if err := j.BaseCompanyModel.Validate(); err != nil {
		return err
	}
	if j.Title == "" {
		return errors.New("не указано название вакансии")
	}
	return nil
}
