package ingestion

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/smriittii/ats-optimizer-pro/internal/fetch"
	"github.com/smriittii/ats-optimizer-pro/internal/sections"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"line endings", "Line 1\r\nLine 2\rLine 3", "Line 1\nLine 2\nLine 3"},
		{"space runs", "Line    with \t multiple   spaces", "Line with multiple spaces"},
		{"trailing space", "Skills   \nGo  ", "Skills\nGo"},
		{"blank lines", "Line 1\n\n\n\n\nLine 2", "Line 1\n\nLine 2"},
		{"outer whitespace", "\n\n  Summary\n\n", "Summary"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.input))
		})
	}
}

func TestStripMarkdown(t *testing.T) {
	input := "# Jane Doe\n## Experience\n* Built **Go** services for [Acme](https://acme.com)\n+ Led __migration__"

	got := StripMarkdown(input)

	assert.Equal(t, "Jane Doe\nExperience\n- Built Go services for Acme\n- Led migration", got)
}

func TestReadFile(t *testing.T) {
	t.Run("plain text", func(t *testing.T) {
		path := writeFile(t, "resume.txt", []byte("\xef\xbb\xbfJane Doe\r\n\r\nSkills\r\nGo,  SQL\r\n"))

		text, meta, err := ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe\n\nSkills\nGo, SQL", text)
		assert.Equal(t, FormatText, meta.Format)
		assert.Equal(t, path, meta.Path)
		assert.Len(t, meta.Hash, 64)
		assert.Equal(t, len([]rune(text)), meta.Chars)
	})

	t.Run("markdown headings segment", func(t *testing.T) {
		path := writeFile(t, "resume.md", []byte("# Jane Doe\n\n## Experience\n- Built Go services\n\n## Skills\n**Go**, Kubernetes\n"))

		text, meta, err := ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, FormatMarkdown, meta.Format)

		got := sections.Segment(text).Map()
		assert.Equal(t, "- Built Go services", got[sections.Experience])
		assert.Equal(t, "Go, Kubernetes", got[sections.Skills])
	})

	t.Run("html", func(t *testing.T) {
		path := writeFile(t, "job.html", []byte("<html><body><nav>Menu</nav><main><h2>Requirements</h2><p>Go and SQL</p></main></body></html>"))

		text, meta, err := ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, FormatHTML, meta.Format)
		assert.Equal(t, "Requirements\nGo and SQL", text)
	})
}

func TestReadFile_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name        string
		path        string
		unsupported string
	}{
		{name: "missing", path: filepath.Join(dir, "missing.txt")},
		{name: "directory", path: dir},
		{name: "binary", path: writeFile(t, "blob.txt", []byte{'a', 0, 'b'})},
		{name: "invalid utf8", path: writeFile(t, "latin1.txt", []byte{'c', 'a', 'f', 0xe9})},
		{name: "pdf extension", path: filepath.Join(dir, "resume.pdf"), unsupported: "pdf"},
		{name: "docx extension", path: filepath.Join(dir, "resume.DOCX"), unsupported: "docx"},
		{name: "pdf content", path: writeFile(t, "resume.txt", []byte("%PDF-1.7 binary")), unsupported: "pdf"},
		{name: "zip content", path: writeFile(t, "resume.text", []byte("PK\x03\x04rest")), unsupported: "docx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ReadFile(tt.path)
			require.Error(t, err)

			if tt.unsupported != "" {
				var ufe *UnsupportedFormatError
				require.ErrorAs(t, err, &ufe)
				assert.Equal(t, tt.unsupported, ufe.Format)
				return
			}
			var ie *Error
			require.ErrorAs(t, err, &ie)
			assert.Equal(t, tt.path, ie.Path)
		})
	}
}

func TestReadFile_TooLarge(t *testing.T) {
	path := writeFile(t, "huge.txt", make([]byte, MaxFileBytes+1))

	_, _, err := ReadFile(path)

	var ie *Error
	require.ErrorAs(t, err, &ie)
	assert.Contains(t, ie.Message, "exceeds")
}

func TestFromURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/empty" {
			_, _ = w.Write([]byte("<html><body><script>render()</script></body></html>"))
			return
		}
		_, _ = w.Write([]byte(`<html><body><div class="job-description"><h2>Senior Engineer</h2><p>Go,   Kubernetes</p></div></body></html>`))
	}))
	defer server.Close()

	f := fetch.New(fetch.Options{})

	text, meta, err := FromURL(context.Background(), f, server.URL+"/job", false)
	require.NoError(t, err)
	assert.Equal(t, "Senior Engineer\nGo, Kubernetes", text)
	assert.Equal(t, server.URL+"/job", meta.URL)
	assert.Equal(t, string(fetch.PlatformUnknown), meta.Platform)

	_, _, err = FromURL(context.Background(), f, server.URL+"/empty", false)
	var ie *Error
	require.ErrorAs(t, err, &ie)
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "ingestion error for a.txt: file not found", (&Error{Path: "a.txt", Message: "file not found"}).Error())
	assert.Contains(t, (&UnsupportedFormatError{Path: "cv.pdf", Format: "pdf"}).Error(), "plain text")
}
