// Package ingestion reads résumé and job description text from files and
// job-posting URLs.
package ingestion

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/smriittii/ats-optimizer-pro/internal/fetch"
	"github.com/smriittii/ats-optimizer-pro/internal/textnorm"
)

// Input formats.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
)

// MaxFileBytes is the largest input file accepted.
const MaxFileBytes = 2 << 20

var unsupported = map[string]string{
	".pdf":  "pdf",
	".docx": "docx",
	".doc":  "doc",
	".rtf":  "rtf",
	".odt":  "odt",
}

var (
	spaceRun       = regexp.MustCompile(`[ \t]+`)
	excessBlank    = regexp.MustCompile(`\n{3,}`)
	markdownHead   = regexp.MustCompile(`^#{1,6}\s+`)
	markdownEmph   = regexp.MustCompile(`(\*\*|__)(.+?)(\*\*|__)`)
	markdownLink   = regexp.MustCompile(`\[([^\]]+)\]\([^)]*\)`)
	markdownBullet = regexp.MustCompile(`^(\s*)[*+]\s+`)
)

// CleanText normalizes line endings, collapses runs of spaces, trims each
// line and keeps at most one blank line between paragraphs.
func CleanText(content string) string {
	lines := strings.Split(textnorm.NormalizeNewlines(content), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(spaceRun.ReplaceAllString(line, " "))
	}
	return strings.TrimSpace(excessBlank.ReplaceAllString(strings.Join(lines, "\n"), "\n\n"))
}

// StripMarkdown turns markdown headings into plain header lines and removes
// emphasis and link syntax, so "## Experience" segments like "Experience".
func StripMarkdown(content string) string {
	lines := strings.Split(textnorm.NormalizeNewlines(content), "\n")
	for i, line := range lines {
		line = markdownHead.ReplaceAllString(strings.TrimSpace(line), "")
		line = markdownEmph.ReplaceAllString(line, "$2")
		line = markdownLink.ReplaceAllString(line, "$1")
		line = markdownBullet.ReplaceAllString(line, "$1- ")
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// ReadFile reads a plain-text, markdown or HTML file and returns its cleaned
// text. PDF and Word documents return *UnsupportedFormatError.
func ReadFile(path string) (string, *Metadata, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if format, ok := unsupported[ext]; ok {
		return "", nil, &UnsupportedFormatError{Path: path, Format: format}
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil, &Error{Path: path, Message: "file not found", Cause: err}
		}
		return "", nil, &Error{Path: path, Message: "failed to stat file", Cause: err}
	}
	if info.IsDir() {
		return "", nil, &Error{Path: path, Message: "is a directory"}
	}
	if info.Size() > MaxFileBytes {
		return "", nil, &Error{Path: path, Message: "file exceeds 2 MiB"}
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return "", nil, &Error{Path: path, Message: "failed to read file", Cause: err}
	}

	text, format, err := decode(path, ext, raw)
	if err != nil {
		return "", nil, err
	}
	meta := newMetadata(text, format)
	meta.Path = path
	return text, meta, nil
}

func decode(path, ext string, raw []byte) (string, string, error) {
	if bytes.HasPrefix(raw, []byte("%PDF-")) {
		return "", "", &UnsupportedFormatError{Path: path, Format: "pdf"}
	}
	if bytes.HasPrefix(raw, []byte("PK\x03\x04")) {
		return "", "", &UnsupportedFormatError{Path: path, Format: "docx"}
	}
	if bytes.IndexByte(raw, 0) >= 0 || !utf8.Valid(raw) {
		return "", "", &Error{Path: path, Message: "file is not UTF-8 text"}
	}

	content := string(bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf")))
	switch ext {
	case ".md", ".markdown":
		return CleanText(StripMarkdown(content)), FormatMarkdown, nil
	case ".html", ".htm":
		text, err := fetch.ExtractMainText(content, []string{"main", "article"})
		if err != nil {
			return "", "", &Error{Path: path, Message: "failed to parse HTML", Cause: err}
		}
		return CleanText(text), FormatHTML, nil
	default:
		return CleanText(content), FormatText, nil
	}
}

// FromURL fetches a job posting and returns its cleaned main text.
func FromURL(ctx context.Context, f *fetch.Fetcher, rawURL string, useBrowser bool) (string, *Metadata, error) {
	text, err := f.JobPosting(ctx, rawURL, useBrowser)
	if err != nil {
		return "", nil, err
	}
	text = CleanText(text)
	if text == "" {
		return "", nil, &Error{Path: rawURL, Message: "no text found on page"}
	}

	meta := newMetadata(text, FormatHTML)
	meta.URL = rawURL
	meta.Platform = string(fetch.DetectPlatform(rawURL))
	return text, meta, nil
}
