package db

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/smriittii/ats-optimizer-pro/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAnalysisRecord(t *testing.T) {
	analysis := &types.ResumeAnalysis{
		Score:            77,
		ExcludedKeywords: []string{"years"},
		ResumeText:       "private resume text",
	}

	rec := NewAnalysisRecord("acme", "  Senior\n\nGo   engineer ", analysis)
	require.NotNil(t, rec)

	assert.NotEqual(t, uuid.Nil, rec.ID)
	assert.Equal(t, "acme", rec.ClientID)
	assert.Equal(t, 77, rec.Score)
	assert.Equal(t, "Senior Go engineer", rec.JobExcerpt)
	assert.Equal(t, []string{"years"}, rec.ExcludedKeywords)
	assert.Equal(t, []string{}, rec.DismissedIssues)

	assert.Empty(t, rec.Analysis.ResumeText)
	assert.Equal(t, "private resume text", analysis.ResumeText, "caller's analysis is not modified")
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "short text", Excerpt("short \t text"))

	long := strings.Repeat("é", maxExcerptRunes+10)
	got := Excerpt(long)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, maxExcerptRunes+3, utf8.RuneCountInString(got))
	assert.True(t, strings.HasSuffix(got, "..."))
}
