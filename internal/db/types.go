package db

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/smriittii/ats-optimizer-pro/internal/types"
)

// maxExcerptRunes bounds the stored job description preview.
const maxExcerptRunes = 200

// AnalysisRecord is one stored analysis. The résumé text is never stored.
type AnalysisRecord struct {
	ID               uuid.UUID             `json:"id"`
	ClientID         string                `json:"clientId,omitempty"`
	Score            int                   `json:"score"`
	JobExcerpt       string                `json:"jobExcerpt"`
	ExcludedKeywords []string              `json:"excludedKeywords"`
	DismissedIssues  []string              `json:"dismissedIssues"`
	Analysis         *types.ResumeAnalysis `json:"analysis,omitempty"`
	CreatedAt        time.Time             `json:"createdAt"`
}

// AnalysisSummary is the list view of a record.
type AnalysisSummary struct {
	ID         uuid.UUID `json:"id"`
	ClientID   string    `json:"clientId,omitempty"`
	Score      int       `json:"score"`
	JobExcerpt string    `json:"jobExcerpt"`
	CreatedAt  time.Time `json:"createdAt"`
}

// NewAnalysisRecord prepares a record for analysis with a fresh id.
func NewAnalysisRecord(clientID, jobDescription string, analysis *types.ResumeAnalysis) *AnalysisRecord {
	stored := *analysis
	stored.ResumeText = ""

	return &AnalysisRecord{
		ID:               uuid.New(),
		ClientID:         clientID,
		Score:            analysis.Score,
		JobExcerpt:       Excerpt(jobDescription),
		ExcludedKeywords: nonNil(analysis.ExcludedKeywords),
		DismissedIssues:  nonNil(analysis.DismissedIssues),
		Analysis:         &stored,
	}
}

// Excerpt collapses whitespace and cuts text to maxExcerptRunes.
func Excerpt(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	if utf8.RuneCountInString(text) <= maxExcerptRunes {
		return text
	}
	return string([]rune(text)[:maxExcerptRunes]) + "..."
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
