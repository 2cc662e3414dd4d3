package interviewapimodels

import (
	"testing"
	"time"

	"rh-hub-backend/models"

	"github.com/stretchr/testify/require"
)

func TestInterviewData(t *testing.T) {
	valid := InterviewData{
		CandidateID: "candidate-1",
		JobID:       "job-1",
		ScheduledAt: time.Date(2026, 10, 20, 14, 0, 0, 0, time.UTC),
		DurationMin: 60,
		Mode:        models.InterviewModeOnsite,
	}
	require.NoError(t, valid.Validate())

	t.Run("Обязательные поля", func(t *testing.T) {
		data := valid
		data.CandidateID = ""
		require.Error(t, data.Validate())

		data = valid
		data.JobID = ""
		require.Error(t, data.Validate())

		data = valid
		data.ScheduledAt = time.Time{}
		require.Error(t, data.Validate())

		data = valid
		data.DurationMin = -1
		require.Error(t, data.Validate())
	})
	t.Run("Онлайн собеседование требует ссылку", func(t *testing.T) {
		data := valid
		data.Mode = models.InterviewModeOnline
		require.Error(t, data.Validate())
		data.MeetingLink = "https://meet.example.com/abc"
		require.NoError(t, data.Validate())
	})
	t.Run("Неизвестный формат", func(t *testing.T) {
		data := valid
		data.Mode = "video"
		require.Error(t, data.Validate())
	})
	require.Error(t, InterviewComplete{}.Validate())
	require.NoError(t, InterviewComplete{Evaluation: "aprovado"}.Validate())
}
