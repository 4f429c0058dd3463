package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/smriittii/ats-optimizer-pro/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeCommand_Stdout(t *testing.T) {
	resume := writeTemp(t, "resume.txt", testResume)
	job := writeTemp(t, "job.txt", testJob)

	stdout, _, err := execute(t, "analyze", "--resume", resume, "--job", job)
	require.NoError(t, err)

	var analysis types.ResumeAnalysis
	require.NoError(t, json.Unmarshal([]byte(stdout), &analysis), stdout)
	assert.GreaterOrEqual(t, analysis.Score, 0)
	assert.LessOrEqual(t, analysis.Score, 100)
	assert.NotEmpty(t, analysis.SectionAnalysis)
	assert.Empty(t, analysis.ResumeText)
}

func TestAnalyzeCommand_OutFileAndVerbose(t *testing.T) {
	resume := writeTemp(t, "resume.md", "# Jane Doe\n\n## Experience\n- Built **Go** services\n\n## Skills\nGo, Kubernetes\n")
	job := writeTemp(t, "job.txt", testJob)
	out := filepath.Join(t.TempDir(), "analysis.json")

	stdout, _, err := execute(t, "analyze", "-r", resume, "-j", job, "--out", out, "--verbose",
		"--exclude", "aws", "--exclude", "prometheus", "--dismiss", "Missing phone number", "--include-resume-text")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Score: ")
	assert.Contains(t, stdout, "ATS SCORE")
	assert.Contains(t, stdout, "SUGGESTIONS")

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	var analysis types.ResumeAnalysis
	require.NoError(t, json.Unmarshal(raw, &analysis))
	assert.Equal(t, []string{"aws", "prometheus"}, analysis.ExcludedKeywords)
	assert.Equal(t, []string{"Missing phone number"}, analysis.DismissedIssues)
	assert.NotContains(t, analysis.Breakdown.KeywordMatch.Missing, "aws")
	assert.Contains(t, analysis.ResumeText, "Experience")
}

func TestAnalyzeCommand_SeedIsReproducible(t *testing.T) {
	resume := writeTemp(t, "resume.txt", testResume)
	job := writeTemp(t, "job.txt", testJob)

	first, _, err := execute(t, "analyze", "--resume", resume, "--job", job, "--seed", "42")
	require.NoError(t, err)
	second, _, err := execute(t, "analyze", "--resume", resume, "--job", job, "--seed", "42")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAnalyzeCommand_JobURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintf(w, "<html><body><nav>Careers</nav><main><p>%s</p></main></body></html>", testJob)
	}))
	defer server.Close()
	resume := writeTemp(t, "resume.txt", testResume)

	stdout, _, err := execute(t, "analyze", "--resume", resume, "--job-url", server.URL+"/jobs/1")
	require.NoError(t, err)

	var analysis types.ResumeAnalysis
	require.NoError(t, json.Unmarshal([]byte(stdout), &analysis))
	assert.NotEmpty(t, analysis.Breakdown.KeywordMatch.Found)
}

func TestAnalyzeCommand_Errors(t *testing.T) {
	resume := writeTemp(t, "resume.txt", testResume)
	job := writeTemp(t, "job.txt", testJob)
	blank := writeTemp(t, "blank.txt", "   \n  ")

	tests := []struct {
		name        string
		args        []string
		errorString string
	}{
		{
			name:        "missing resume flag",
			args:        []string{"analyze", "--job", job},
			errorString: "required flag",
		},
		{
			name:        "neither job nor job-url",
			args:        []string{"analyze", "--resume", resume},
			errorString: "at least one of the flags",
		},
		{
			name:        "both job and job-url",
			args:        []string{"analyze", "--resume", resume, "--job", job, "--job-url", "https://example.com"},
			errorString: "none of the others can be",
		},
		{
			name:        "pdf resume",
			args:        []string{"analyze", "--resume", filepath.Join(t.TempDir(), "cv.pdf"), "--job", job},
			errorString: "unsupported format",
		},
		{
			name:        "missing job file",
			args:        []string{"analyze", "--resume", resume, "--job", filepath.Join(t.TempDir(), "nope.txt")},
			errorString: "file not found",
		},
		{
			name:        "blank resume",
			args:        []string{"analyze", "--resume", blank, "--job", job},
			errorString: "resume text is required",
		},
		{
			name:        "bad job url",
			args:        []string{"analyze", "--resume", resume, "--job-url", "ftp://example.com/job"},
			errorString: "invalid URL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorString)
		})
	}
}
