package schemas_test

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/smriittii/ats-optimizer-pro/internal/scoring"
	"github.com/smriittii/ats-optimizer-pro/internal/schemas"
	rootschemas "github.com/smriittii/ats-optimizer-pro/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const resume = `Jane Doe
jane@example.com | (555) 123-4567

Summary
Backend engineer building Go services.

Experience
- Built Go microservices serving 2M requests per day
- Led migration of 40 services to Kubernetes

Skills
Go, Kubernetes, Docker`

const job = `Required: Go, Kubernetes and Terraform. Build distributed systems on AWS
and own observability with Prometheus.`

func TestEmbeddedSchemaMatchesFile(t *testing.T) {
	raw, err := os.ReadFile(rootschemas.ResumeAnalysisFile)
	require.NoError(t, err)
	assert.Equal(t, string(raw), rootschemas.ResumeAnalysis)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(raw, &parsed))
	assert.Equal(t, "ResumeAnalysis", parsed["title"])
}

func TestScoredAnalysisValidates(t *testing.T) {
	seed := uint64(7)
	tests := []struct {
		name   string
		resume string
		job    string
		opts   scoring.Options
	}{
		{name: "typical", resume: resume, job: job},
		{name: "with options", resume: resume, job: job, opts: scoring.Options{
			ExcludedKeywords:  []string{"aws"},
			DismissedIssues:   []string{"Missing phone number"},
			IncludeResumeText: true,
			ExampleSeed:       &seed,
		}},
		{name: "no keywords", resume: "one line", job: "the and of a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis, err := scoring.Analyze(tt.resume, tt.job, tt.opts)
			require.NoError(t, err)

			doc, err := json.Marshal(analysis)
			require.NoError(t, err)

			assert.NoError(t, schemas.ValidateJSONString(rootschemas.ResumeAnalysis, string(doc)))
		})
	}
}

func TestSchemaRejectsOutOfRangeScore(t *testing.T) {
	analysis, err := scoring.Analyze(resume, job, scoring.Options{})
	require.NoError(t, err)
	analysis.Score = 140

	doc, err := json.Marshal(analysis)
	require.NoError(t, err)

	err = schemas.ValidateJSONString(rootschemas.ResumeAnalysis, string(doc))
	var ve *schemas.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "score", ve.Errors[0].Field)
}
