package candidatehistorystore

import (
	"strings"
	"testing"

	candidateapimodels "rh-hub-backend/models/api/candidate"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// dryRunDB строит запросы без подключения к базе и возвращает их текст
func dryRunDB(t *testing.T) (*gorm.DB, *[]string) {
	db, err := gorm.Open(postgres.New(postgres.Config{DSN: "host=localhost user=test dbname=test sslmode=disable"}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)
	queries := []string{}
	err = db.Callback().Query().After("gorm:query").Register("test:capture", func(tx *gorm.DB) {
		queries = append(queries, tx.Statement.SQL.String())
	})
	require.NoError(t, err)
	return db, &queries
}

func TestHistoryOrder(t *testing.T) {
	db, queries := dryRunDB(t)
	store := NewInstance(db)

	t.Run("Заметки вакансии", func(t *testing.T) {
		*queries = (*queries)[:0]
		_, err := store.JobComments("company-1", "job-1")
		require.NoError(t, err)
		require.NotEmpty(t, *queries)
		require.True(t, strings.HasSuffix((*queries)[0], "ORDER BY seq"), (*queries)[0])
	})
	t.Run("История кандидата", func(t *testing.T) {
		*queries = (*queries)[:0]
		_, err := store.List("company-1", "candidate-1", candidateapimodels.CandidateHistoryFilter{})
		require.NoError(t, err)
		require.NotEmpty(t, *queries)
		require.Contains(t, (*queries)[0], "ORDER BY seq")
		require.NotContains(t, (*queries)[0], "created_at")
	})
}
