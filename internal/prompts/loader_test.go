package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	ClearCache()

	prompt, err := Get("suggestions.json", "improve-section")
	require.NoError(t, err)
	assert.Contains(t, prompt, "ATS resume optimizer")
	assert.Contains(t, prompt, "{{.SectionName}}")
}

func TestGet_Errors(t *testing.T) {
	ClearCache()

	_, err := Get("nonexistent.json", "some-key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read prompt file")

	_, err = Get("suggestions.json", "nonexistent-key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestMustGet(t *testing.T) {
	ClearCache()

	assert.Panics(t, func() { MustGet("nonexistent.json", "some-key") })
	assert.NotPanics(t, func() { MustGet("suggestions.json", "improve-section") })
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		template string
		data     map[string]string
		expected string
	}{
		{"substitutes", "Section {{.Name}} misses {{.Keywords}}", map[string]string{"Name": "skills", "Keywords": "go, sql"}, "Section skills misses go, sql"},
		{"no placeholders", "plain", map[string]string{"Key": "v"}, "plain"},
		{"unknown placeholder kept", "Hello {{.Name}}", map[string]string{}, "Hello {{.Name}}"},
		{"value not re-expanded", "{{.A}}", map[string]string{"A": "{{.B}}", "B": "x"}, "{{.B}}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.template, tt.data))
		})
	}
}

func TestList(t *testing.T) {
	ClearCache()

	keys, err := List("suggestions.json")
	require.NoError(t, err)
	assert.Equal(t, []string{"improve-section"}, keys)
}
