package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJobStatusChange(t *testing.T) {
	t.Run("Открытая вакансия переходит в любой статус", func(t *testing.T) {
		for _, status := range []JobStatus{JobStatusScreening, JobStatusInterviewing, JobStatusClosed, JobStatusCancelled} {
			allowed, err := JobStatusOpen.IsAllowChange(status)
			require.NoError(t, err)
			require.True(t, allowed, status)
		}
	})
	t.Run("Тот же статус не меняется", func(t *testing.T) {
		allowed, err := JobStatusScreening.IsAllowChange(JobStatusScreening)
		require.NoError(t, err)
		require.False(t, allowed)
	})
	t.Run("Закрытая вакансия", func(t *testing.T) {
		allowed, err := JobStatusClosed.IsAllowChange(JobStatusOpen)
		require.Error(t, err)
		require.Contains(t, err.Error(), "Закрыта")
		require.False(t, allowed)

		_, err = JobStatusCancelled.IsAllowChange(JobStatusOpen)
		require.Error(t, err)
	})
	t.Run("Неизвестный статус", func(t *testing.T) {
		_, err := JobStatusOpen.IsAllowChange("archived")
		require.Error(t, err)
	})
	require.Equal(t, "archived", JobStatus("archived").ToHuman())
}

func TestInterview(t *testing.T) {
	require.True(t, InterviewStatusScheduled.IsActive())
	require.True(t, InterviewStatusPendingFeedback.IsActive())
	require.False(t, InterviewStatusDone.IsActive())
	require.False(t, InterviewStatusCancelled.IsActive())

	require.NoError(t, InterviewModeOnline.Validate())
	require.NoError(t, InterviewModePhone.Validate())
	require.Error(t, InterviewMode("video").Validate())
}

func TestUserRole(t *testing.T) {
	require.True(t, CompanyAdminRole.IsCompanyAdmin())
	require.False(t, RecruiterRole.IsCompanyAdmin())
	require.True(t, ManagerRole.IsValid())
	require.False(t, UserRole("SUPER_ADMIN").IsValid())
	require.Equal(t, "Рекрутер", RecruiterRole.ToHuman())
}
