package jobapimodels

import (
	"testing"

	"rh-hub-backend/models"
	dbmodels "rh-hub-backend/models/db"

	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func TestJobData(t *testing.T) {
	require.Error(t, JobData{Title: "   "}.Validate())
	require.Error(t, JobData{Title: "Backend Developer", ContractType: "freelance"}.Validate())
	require.NoError(t, JobData{Title: "Backend Developer"}.Validate())
	require.NoError(t, JobData{Title: "Backend Developer", ContractType: models.ContractPJ}.Validate())
}

func TestSplitLines(t *testing.T) {
	require.Equal(t, []string{"Go", "PostgreSQL"}, SplitLines("Go\n\n  PostgreSQL  \n"))
	require.Empty(t, SplitLines(""))
}

func TestJobConvert(t *testing.T) {
	departmentID := "dep-1"
	rec := dbmodels.Job{
		Title:        "Backend Developer",
		Requirements: pq.StringArray{"Go"},
		Status:       models.JobStatusInterviewing,
		DepartmentID: &departmentID,
		Department:   &dbmodels.Department{Name: "Tecnologia"},
	}
	rec.ID = "job-1"
	view := JobConvert(rec)
	require.Equal(t, "job-1", view.ID)
	require.Equal(t, []string{"Go"}, view.Requirements)
	require.Equal(t, []string{}, view.Benefits)
	require.Equal(t, "Собеседования", view.StatusName)
	require.Equal(t, "dep-1", view.DepartmentID)
	require.Equal(t, "Tecnologia", view.DepartmentName)
	require.Empty(t, view.ManagerID)
}

func TestStageData(t *testing.T) {
	require.Error(t, StageData{}.Validate())
	require.NoError(t, StageData{Name: "Entrevista"}.Validate())
	require.Error(t, StageOrderData{NewOrder: 1}.Validate())
	require.Error(t, StageOrderData{ID: "stage-1"}.Validate())
	require.NoError(t, StageOrderData{ID: "stage-1", NewOrder: 2}.Validate())
	require.Error(t, JobStatusChange{}.Validate())
}
