package similarity

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoost(t *testing.T) {
	tests := []struct {
		raw  float64
		want int
	}{
		{0, 0},
		{10, 30},
		{14.9, 45},
		{15, 45},
		{20, 50},
		{30, 60},
		{40, 68},
		{50, 75},
		{80, 90},
		{100, 100},
		{150, 100},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Boost(tt.raw), "raw=%v", tt.raw)
	}
}

func TestBoost_Monotonic(t *testing.T) {
	prev := Boost(0)
	for x := 0.0; x <= 100; x += 0.25 {
		got := Boost(x)
		assert.GreaterOrEqual(t, got, prev, "raw=%v", x)
		prev = got
	}
}

func TestVectors_IDFFavorsUniqueTerms(t *testing.T) {
	vecs := Vectors([]string{"go", "rust"}, []string{"go"})
	require.Len(t, vecs, 2)

	// "go" appears in both documents: idf = ln(3/3)+1 = 1.
	assert.InDelta(t, 0.5, vecs[0]["go"], 1e-12)
	// "rust" appears in one: idf = ln(3/2)+1.
	assert.InDelta(t, 0.5*(math.Log(1.5)+1), vecs[0]["rust"], 1e-12)
	assert.InDelta(t, 1.0, vecs[1]["go"], 1e-12)
}

func TestCosine(t *testing.T) {
	a := Vector{"x": 1, "y": 0}
	b := Vector{"x": 2}
	assert.InDelta(t, 1.0, Cosine(a, b), 1e-12)

	assert.InDelta(t, 0.0, Cosine(Vector{"x": 1}, Vector{"y": 1}), 1e-12)
	assert.Equal(t, 0.0, Cosine(Vector{}, Vector{"y": 1}))
}

func TestLCSLength(t *testing.T) {
	a := strings.Fields("built scalable apis using python docker")
	b := strings.Fields("required python docker kubernetes apis")
	assert.Equal(t, 2, lcsLength(a, b))
	assert.Equal(t, 0, lcsLength(nil, b))
}

func TestLCSLength_LongInputsTruncate(t *testing.T) {
	a := make([]string, 150)
	b := make([]string, 150)
	for i := range a {
		a[i] = "tok"
		b[i] = "tok"
	}
	assert.Equal(t, maxLCSTokens, lcsLength(a, b))
	assert.InDelta(t, 100.0/150.0, lcsRatio(a, b), 1e-12)
}

func TestLCSRolling_MatchesTable(t *testing.T) {
	a := strings.Fields("a b c d e f g")
	b := strings.Fields("b d f a c e g")
	assert.Equal(t, lcsLength(a, b), lcsRolling(a, b))
}

func TestCompare_Identical(t *testing.T) {
	text := "Senior Go engineer building distributed payment systems"
	c := Compare(text, text)
	assert.InDelta(t, 1.0, c.TFIDF, 1e-9)
	assert.InDelta(t, 1.0, c.Jaccard, 1e-9)
	assert.InDelta(t, 1.0, c.LCS, 1e-9)
	assert.InDelta(t, 1.0, c.Bigram, 1e-9)
	assert.Equal(t, 100, Score(text, text).Score)
}

func TestCompare_Disjoint(t *testing.T) {
	c := Compare("gardening roses tulips", "kernel drivers firmware")
	assert.Equal(t, Components{}, c)
	assert.Equal(t, 0, Score("gardening roses tulips", "kernel drivers firmware").Score)
}

func TestCompare_EmptyInputs(t *testing.T) {
	assert.Equal(t, Components{}, Compare("", "anything here"))
	assert.Equal(t, Components{}, Compare("the and of", "the and of"))
}

func TestScore_ResumeScenario(t *testing.T) {
	resume := "Experience\nBuilt scalable APIs using Python and Docker for 3 years.\nEducation\nBS Computer Science.\nSkills\nPython, Docker, SQL"
	job := "Required Skills: Python, Docker, Kubernetes. 5+ years experience with APIs."

	res := Score(resume, job)
	assert.Equal(t, 61, res.Score)
	assert.InDelta(t, 0.61, res.Similarity, 1e-12)
	assert.InDelta(t, 4.0/13.0, res.Components.Jaccard, 1e-12)
	assert.InDelta(t, 3.0/13.0, res.Components.LCS, 1e-12)
	assert.InDelta(t, 1.0/15.0, res.Components.Bigram, 1e-12)
}

func TestScore_Idempotent(t *testing.T) {
	a := "Go developer with Kubernetes, Terraform and Postgres experience across cloud providers"
	b := "We need a Go developer to run Kubernetes and Postgres on cloud infrastructure"
	first := Score(a, b)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, Score(a, b))
	}
}
