//go:build integration

package db

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/smriittii/ats-optimizer-pro/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestDB(t *testing.T) *DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := Connect(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, db.EnsureSchema(ctx))
	return db
}

func TestIntegration_Analyses(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()

	client := "test-" + uuid.NewString()
	rec := NewAnalysisRecord(client, "Required skills: Go, SQL", &types.ResumeAnalysis{
		Score:           64,
		MissingKeywords: []string{"sql"},
		StrongMatches:   []string{"go"},
		DismissedIssues: []string{"Resume may be too short (less than 200 words)"},
	})
	require.NoError(t, db.SaveAnalysis(ctx, rec))
	defer func() { _ = db.DeleteAnalysis(ctx, rec.ID) }()
	assert.False(t, rec.CreatedAt.IsZero())

	t.Run("get", func(t *testing.T) {
		got, err := db.GetAnalysis(ctx, rec.ID)
		require.NoError(t, err)
		require.NotNil(t, got)

		assert.Equal(t, 64, got.Score)
		assert.Equal(t, client, got.ClientID)
		assert.Equal(t, []string{"sql"}, got.Analysis.MissingKeywords)
		assert.Equal(t, rec.DismissedIssues, got.DismissedIssues)
	})

	t.Run("get missing", func(t *testing.T) {
		got, err := db.GetAnalysis(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("list by client", func(t *testing.T) {
		list, err := db.ListAnalyses(ctx, client, 10)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, rec.ID, list[0].ID)
		assert.Equal(t, "Required skills: Go, SQL", list[0].JobExcerpt)
	})

	t.Run("schema is idempotent", func(t *testing.T) {
		assert.NoError(t, db.EnsureSchema(ctx))
	})
}
