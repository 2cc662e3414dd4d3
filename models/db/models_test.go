package dbmodels

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHistoryChanges(t *testing.T) {
	changes := HistoryChanges{
		Description: "Переведен на этап «Interview»",
		Data: []HistoryChange{
			{Field: "stage", OldValue: "Screening", NewValue: "Interview"},
		},
	}
	value, err := changes.Value()
	require.NoError(t, err)

	t.Run("Из []byte", func(t *testing.T) {
		result := HistoryChanges{}
		require.NoError(t, result.Scan([]byte(value.(string))))
		require.Equal(t, changes.Description, result.Description)
		require.Len(t, result.Data, 1)
		require.Equal(t, "Interview", result.Data[0].NewValue)
	})
	t.Run("Из строки", func(t *testing.T) {
		result := HistoryChanges{}
		require.NoError(t, result.Scan(value))
		require.Equal(t, "stage", result.Data[0].Field)
	})
	t.Run("NULL и неизвестный тип", func(t *testing.T) {
		result := HistoryChanges{}
		require.NoError(t, result.Scan(nil))
		require.Error(t, result.Scan(42))
	})
}

func TestStageColor(t *testing.T) {
	require.Equal(t, defaultStageColors[0], StageColor(0))
	require.Equal(t, defaultStageColors[0], StageColor(-3))
	require.Equal(t, defaultStageColors[1], StageColor(len(defaultStageColors)+1))
	require.Len(t, DefaultPipelineStages, 5)
}

func TestUserFullName(t *testing.T) {
	require.Equal(t, "Maria Santos", User{FirstName: "Maria", LastName: "Santos"}.GetFullName())
	require.Equal(t, "Maria", User{FirstName: "Maria"}.GetFullName())
	require.Error(t, (&Company{}).Validate())
	require.Error(t, BaseCompanyModel{}.Validate())
}
