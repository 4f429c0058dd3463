package llm

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	reply   string
	err     error
	delay   time.Duration
	prompts []string
}

func (f *fakeClient) GenerateContent(ctx context.Context, prompt string, _ ModelTier) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return f.reply, f.err
}

func (f *fakeClient) GenerateJSON(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	text, err := f.GenerateContent(ctx, prompt, tier)
	return CleanJSONBlock(text), err
}

func (f *fakeClient) Close() error { return nil }

func TestParseSuggestions(t *testing.T) {
	tests := []struct {
		name     string
		reply    string
		expected []string
	}{
		{
			name:     "json array",
			reply:    `["Deployed services on Kubernetes clusters", "Automated CI/CD pipelines with GitHub Actions"]`,
			expected: []string{"Deployed services on Kubernetes clusters", "Automated CI/CD pipelines with GitHub Actions"},
		},
		{
			name:     "fenced array capped at three",
			reply:    "```json\n[\"first long suggestion\", \"second long suggestion\", \"third long suggestion\", \"fourth long suggestion\"]\n```",
			expected: []string{"first long suggestion", "second long suggestion", "third long suggestion"},
		},
		{
			name:     "bullets",
			reply:    "Here you go:\n- Led migration of billing to Kubernetes\n* short\n1. Cut build times by 40% using Docker layer caching",
			expected: []string{"Led migration of billing to Kubernetes", "Cut build times by 40% using Docker layer caching"},
		},
		{
			name:     "empty array",
			reply:    "[]",
			expected: []string{},
		},
		{
			name:     "prose only",
			reply:    "I cannot help with that.",
			expected: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseSuggestions(tt.reply))
		})
	}
}

func TestBuildSuggestionPrompt(t *testing.T) {
	missing := make([]string, 15)
	for i := range missing {
		missing[i] = "kw" + string(rune('a'+i))
	}
	section := strings.Repeat("é", 800)

	prompt := BuildSuggestionPrompt(section, "experience", missing)
	assert.Contains(t, prompt, `"experience"`)
	assert.Contains(t, prompt, "kwa, kwb")
	assert.Contains(t, prompt, "kwj")
	assert.NotContains(t, prompt, "kwk")
	assert.True(t, utf8.ValidString(prompt))
	assert.NotContains(t, prompt, "{{.")
}

func TestSectionSuggester_Suggest(t *testing.T) {
	fake := &fakeClient{reply: `["Shipped Kubernetes operators for stateful workloads"]`}
	s := NewSectionSuggester(fake, "")

	got, err := s.Suggest(t.Context(), "Built APIs", "experience", []string{"kubernetes"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Shipped Kubernetes operators for stateful workloads"}, got)
	require.Len(t, fake.prompts, 1)
	assert.Contains(t, fake.prompts[0], "kubernetes")
}

func TestSectionSuggester_SkipsWithoutMissingKeywords(t *testing.T) {
	fake := &fakeClient{reply: `["unused suggestion text"]`}
	s := NewSectionSuggester(fake, TierLite)

	got, err := s.Suggest(t.Context(), "Built APIs", "experience", nil)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Empty(t, fake.prompts)
}

func TestSectionSuggester_Unavailable(t *testing.T) {
	s := NewSectionSuggester(nil, TierStandard)
	assert.False(t, s.Available())

	got := s.SuggestBestEffort(t.Context(), time.Second, "text", "skills", []string{"go"})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSectionSuggester_BestEffortSwallowsErrors(t *testing.T) {
	s := NewSectionSuggester(&fakeClient{err: errors.New("quota exceeded")}, TierStandard)

	_, err := s.Suggest(t.Context(), "text", "skills", []string{"go"})
	require.Error(t, err)

	got := s.SuggestBestEffort(t.Context(), time.Second, "text", "skills", []string{"go"})
	assert.Equal(t, []string{}, got)
}

func TestSectionSuggester_BestEffortTimeout(t *testing.T) {
	s := NewSectionSuggester(&fakeClient{reply: `["never returned in time"]`, delay: time.Second}, TierStandard)

	start := time.Now()
	got := s.SuggestBestEffort(t.Context(), 20*time.Millisecond, "text", "skills", []string{"go"})
	assert.Empty(t, got)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}
