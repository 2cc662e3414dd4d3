package departmentapimodels

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDepartmentData(t *testing.T) {
	require.Error(t, DepartmentData{Name: "   "}.Validate())
	require.NoError(t, DepartmentData{Name: "Engenharia"}.Validate())
}
