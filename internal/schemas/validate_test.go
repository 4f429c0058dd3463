package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keywordSchema = filepath.Join("testdata", "keyword_schema.json")

func TestValidateJSON(t *testing.T) {
	tests := []struct {
		name      string
		jsonFile  string
		wantField string
	}{
		{name: "valid", jsonFile: "valid_keyword.json"},
		{name: "missing required field", jsonFile: "missing_kind.json", wantField: "(root)"},
		{name: "wrong type", jsonFile: "type_mismatch.json", wantField: "frequency"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateJSON(keywordSchema, filepath.Join("testdata", tt.jsonFile))
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			require.NotEmpty(t, ve.Errors)
			assert.Equal(t, tt.wantField, ve.Errors[0].Field)
			assert.Contains(t, err.Error(), "validation failed")
		})
	}
}

func TestValidateJSON_MissingFiles(t *testing.T) {
	err := ValidateJSON("testdata/nonexistent_schema.json", filepath.Join("testdata", "valid_keyword.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema file not found")

	err = ValidateJSON(keywordSchema, "testdata/nonexistent.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JSON file not found")
}

func TestValidateJSON_MalformedDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "malformed.json")
	require.NoError(t, os.WriteFile(path, []byte("{ invalid json }"), 0o644))

	err := ValidateJSON(keywordSchema, path)

	var le *SchemaLoadError
	require.ErrorAs(t, err, &le)
}

func TestValidateJSONString(t *testing.T) {
	schema := `{"type": "object", "required": ["score"], "properties": {"score": {"type": "integer", "maximum": 100}}}`

	assert.NoError(t, ValidateJSONString(schema, `{"score": 78}`))

	err := ValidateJSONString(schema, `{"score": 101}`)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "score", ve.Errors[0].Field)

	err = ValidateJSONString(`{"type": 12}`, `{}`)
	var le *SchemaLoadError
	require.ErrorAs(t, err, &le)
}

func TestValidateFileAgainst(t *testing.T) {
	raw, err := os.ReadFile(keywordSchema)
	require.NoError(t, err)

	assert.NoError(t, ValidateFileAgainst(string(raw), filepath.Join("testdata", "valid_keyword.json")))
	assert.Error(t, ValidateFileAgainst(string(raw), filepath.Join("testdata", "missing_kind.json")))
	assert.Error(t, ValidateFileAgainst(string(raw), filepath.Join("testdata", "absent.json")))
}
