package departmentapimodels

import (
	dbmodels "rh-hub-backend/models/db"
	"strings"

	"github.com/pkg/errors"
)

type DepartmentData struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ManagerID   string `json:"manager_id"` // Руководитель подразделения
	IsActive    bool   `json:"is_active"`
}

type DepartmentView struct {
	DepartmentData
	ID string `json:"id"`
}

type DepartmentFind struct {
	Name       string `json:"name"`
	ActiveOnly bool   `json:"active_only"`
}

func (c DepartmentData) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("не указано название подразделения")
	}
	return nil
}

func DepartmentConvert(rec dbmodels.Department) DepartmentView {
	result := DepartmentView{
		DepartmentData: DepartmentData{
			Name:        rec.Name,
			Description: rec.Description,
			IsActive:    rec.IsActive,
		},
		ID: rec.ID,
	}
	if rec.ManagerID != nil {
		result.ManagerID = *rec.ManagerID
	}
	return result
}
