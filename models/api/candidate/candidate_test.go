package candidateapimodels

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCandidateData(t *testing.T) {
	require.Error(t, CandidateData{}.Validate())
	require.NoError(t, CandidateData{FirstName: "João"}.Validate())
	require.Error(t, CandidateData{FirstName: "João", Email: "joao"}.Validate())
	require.NoError(t, CandidateData{LastName: "Silva", Email: "joao.silva@email.com"}.Validate())
}

func TestApplyRequest(t *testing.T) {
	require.Error(t, ApplyRequest{}.Validate())
	require.NoError(t, ApplyRequest{JobID: "job-1", Rating: 4}.Validate())
}
