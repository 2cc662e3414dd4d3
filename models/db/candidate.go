package dbmodels

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// AfterDelete кандидат убирается из всех воронок
func (c *Candidate) AfterDelete(tx *gorm.DB) error {
	if c.ID == "" {
		return nil
	}
	return tx.Session(&gorm.Session{NewDB: true}).
		Where("candidate_id = ?", c.ID).
		Delete(&CandidatePipeline{}).
		Error
}

type Candidate struct {
	BaseCompanyModel
	FirstName string `gorm:"type:varchar(255)"`
	LastName  string `gorm:"type:varchar(255)"`
	Email     string `gorm:"type:varchar(255);index"`
	Phone     string `gorm:"type:varchar(30)"`
	Linkedin  string `gorm:"type:varchar(255)"`
	Portfolio string `gorm:"type:varchar(255)"`
	Summary   string
	Address   string
}

func (c Candidate) GetFullName() string {
	return strings.TrimSpace(fmt.Sprintf("%s %s", c.FirstName, c.LastName))
}
