// Package sections splits résumé text into named sections using header-line
// patterns.
package sections

import (
	"regexp"
	"strings"

	"github.com/smriittii/ats-optimizer-pro/internal/textnorm"
)

// Section names.
const (
	Header         = "header"
	Summary        = "summary"
	Experience     = "experience"
	Education      = "education"
	Skills         = "skills"
	Certifications = "certifications"
	Projects       = "projects"
)

// maxHeaderLen bounds header lines so body text is never mistaken for one.
const maxHeaderLen = 30

type headerPattern struct {
	name    string
	pattern *regexp.Regexp
	// inline matches "Skills: Python, Go", a header followed by content on
	// the same line.
	inline *regexp.Regexp
}

func header(name, expr string) headerPattern {
	return headerPattern{
		name:    name,
		pattern: regexp.MustCompile(`(?i)^(?:` + expr + `)\s*:?$`),
		inline:  regexp.MustCompile(`(?i)^(?:` + expr + `)\s*:\s*`),
	}
}

// headerPatterns are tried in order; the first match names the section.
var headerPatterns = []headerPattern{
	header(Summary, `(?:professional\s+|career\s+)?summary|(?:career\s+)?objective|profile`),
	header(Experience, `(?:work\s+|professional\s+)?experience|employment(?:\s+history)?|professional\s+background`),
	header(Education, `education|academic\s+background|qualifications`),
	header(Skills, `(?:technical\s+|core\s+)?skills|competencies|expertise`),
	header(Certifications, `certifications?|licenses?`),
	header(Projects, `projects?|portfolio`),
}

// Span is one contiguous section of a document. Header is the consumed
// header line, empty for the leading header bucket. For an inline header
// Header holds only the line prefix up to the content.
type Span struct {
	Name    string
	Header  string
	Content string
	Inline  bool
}

// Document is a segmented résumé in document order.
type Document struct {
	Spans []Span
}

// MatchHeader returns the section name a line introduces, if any.
func MatchHeader(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || len(trimmed) >= maxHeaderLen {
		return "", false
	}
	for _, hp := range headerPatterns {
		if hp.pattern.MatchString(trimmed) {
			return hp.name, true
		}
	}
	return "", false
}

// MatchInlineHeader splits a line such as "Skills: Python, Docker" into its
// header prefix and the content after it. The header part is held to the
// same length bound as a whole-line header.
func MatchInlineHeader(line string) (name, prefix, rest string, ok bool) {
	body := strings.TrimLeft(line, " \t")
	indent := line[:len(line)-len(body)]
	for _, hp := range headerPatterns {
		loc := hp.inline.FindStringIndex(body)
		if loc == nil {
			continue
		}
		rest = body[loc[1]:]
		if strings.TrimSpace(rest) == "" || len(strings.TrimSpace(body[:loc[1]])) >= maxHeaderLen {
			return "", "", "", false
		}
		return hp.name, indent + body[:loc[1]], rest, true
	}
	return "", "", "", false
}

// Segment splits text into spans. Lines before the first recognized header
// belong to the Header span. An inline header starts a span whose content
// begins with the rest of its line. Header lines are consumed and each span's
// content is its lines joined by newlines and trimmed.
func Segment(text string) Document {
	lines := strings.Split(textnorm.NormalizeNewlines(text), "\n")

	var doc Document
	current := Span{Name: Header}
	var body []string

	flush := func() {
		current.Content = strings.TrimSpace(strings.Join(body, "\n"))
		if current.Header != "" || current.Content != "" {
			doc.Spans = append(doc.Spans, current)
		}
	}

	for _, line := range lines {
		if name, ok := MatchHeader(line); ok {
			flush()
			current = Span{Name: name, Header: line}
			body = nil
			continue
		}
		if name, prefix, rest, ok := MatchInlineHeader(line); ok {
			flush()
			current = Span{Name: name, Header: prefix, Inline: true}
			body = []string{rest}
			continue
		}
		body = append(body, line)
	}
	flush()

	return doc
}

// Map returns section name to content for every non-empty span. Repeated
// sections are joined with a newline.
func (d Document) Map() map[string]string {
	out := make(map[string]string)
	for _, s := range d.Spans {
		if s.Content == "" {
			continue
		}
		if prev, ok := out[s.Name]; ok {
			out[s.Name] = prev + "\n" + s.Content
			continue
		}
		out[s.Name] = s.Content
	}
	return out
}

// Names returns the distinct section names in document order.
func (d Document) Names() []string {
	var names []string
	seen := make(map[string]struct{})
	for _, s := range d.Spans {
		if _, ok := seen[s.Name]; ok {
			continue
		}
		seen[s.Name] = struct{}{}
		names = append(names, s.Name)
	}
	return names
}

// Text rebuilds the document from its header lines and contents.
func (d Document) Text() string {
	var parts []string
	for _, s := range d.Spans {
		if s.Inline {
			parts = append(parts, s.Header+s.Content)
			continue
		}
		if s.Header != "" {
			parts = append(parts, s.Header)
		}
		if s.Content != "" {
			parts = append(parts, s.Content)
		}
	}
	return strings.Join(parts, "\n")
}
