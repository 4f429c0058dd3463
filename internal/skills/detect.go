// Package skills detects the skills a job description explicitly asks for
// and checks whether a résumé covers them.
package skills

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/smriittii/ats-optimizer-pro/internal/textnorm"
)

const (
	// windowSize is how many bytes after a marker are searched for skills.
	windowSize = 500

	minItemLen    = 3
	maxItemLen    = 100
	maxSkillWords = 4
)

var requiredMarkers = []*regexp.Regexp{
	regexp.MustCompile(`(?i)required\s+(?:skills?|qualifications?|experience)`),
	regexp.MustCompile(`(?i)must\s+have`),
	regexp.MustCompile(`(?i)minimum\s+(?:qualifications?|requirements?)`),
	regexp.MustCompile(`(?i)essential\s+skills?`),
	regexp.MustCompile(`(?i)mandatory`),
	regexp.MustCompile(`(?i)necessary\s+skills?`),
}

var preferredMarkers = []*regexp.Regexp{
	regexp.MustCompile(`(?i)preferred\s+(?:skills?|qualifications?)`),
	regexp.MustCompile(`(?i)nice\s+to\s+have`),
	regexp.MustCompile(`(?i)\bbonus\b`),
	regexp.MustCompile(`(?i)desired\s+(?:skills?|qualifications?)`),
}

var (
	itemDelimiter = regexp.MustCompile(`(?:^|\s)[-*](?:\s|$)|•|\n|;|,|:|[.!?](?:\s|$)`)
	skillPattern  = regexp.MustCompile(`^([A-Za-z0-9\s.+#-]{2,50}?)(?:\s*[(,]|$)`)
	genericWord   = regexp.MustCompile(`^(?:the|and|or|with|for|experience|years?|minimum|required|skills?|qualifications?)$`)
	yearsPhrase   = regexp.MustCompile(`^\d+\+?\s*(?:years?|yrs?)\b`)
	leadingJoiner = regexp.MustCompile(`^(?:and|or)\s+`)
)

// DetectRequired returns the skills listed after required-skill markers in a
// job description, lowercase, in first-seen order.
func DetectRequired(jobDescription string) []string {
	return detect(textnorm.Clean(jobDescription), requiredMarkers)
}

// DetectPreferred returns the skills listed after nice-to-have markers.
func DetectPreferred(jobDescription string) []string {
	return detect(textnorm.Clean(jobDescription), preferredMarkers)
}

func detect(text string, markers []*regexp.Regexp) []string {
	found := []string{}
	seen := make(map[string]struct{})
	for _, marker := range markers {
		for _, loc := range marker.FindAllStringIndex(text, -1) {
			for _, skill := range candidates(window(text, loc[1])) {
				if _, ok := seen[skill]; ok {
					continue
				}
				seen[skill] = struct{}{}
				found = append(found, skill)
			}
		}
	}
	return found
}

// window returns up to windowSize bytes of text starting at start, cut back
// to a rune boundary.
func window(text string, start int) string {
	end := min(start+windowSize, len(text))
	for end > start && end < len(text) && !utf8.RuneStart(text[end]) {
		end--
	}
	return text[start:end]
}

func candidates(window string) []string {
	var out []string
	for _, item := range itemDelimiter.Split(window, -1) {
		item = strings.TrimSpace(item)
		if len(item) < minItemLen || len(item) > maxItemLen {
			continue
		}

		m := skillPattern.FindStringSubmatch(item)
		if m == nil {
			continue
		}
		skill := strings.ToLower(strings.TrimSpace(m[1]))
		skill = leadingJoiner.ReplaceAllString(skill, "")

		if skill == "" || genericWord.MatchString(skill) || yearsPhrase.MatchString(skill) || isMarker(skill) {
			continue
		}
		if len(strings.Fields(skill)) > maxSkillWords {
			continue
		}
		out = append(out, skill)
	}
	return out
}

// isMarker reports whether a candidate is itself a marker phrase, as happens
// when one marker's window runs into the next.
func isMarker(skill string) bool {
	for _, m := range requiredMarkers {
		if m.MatchString(skill) {
			return true
		}
	}
	for _, m := range preferredMarkers {
		if m.MatchString(skill) {
			return true
		}
	}
	return false
}

// Coverage partitions skills by whether the résumé mentions the skill or any
// of its variants.
type Coverage struct {
	Covered []string
	Missing []string
}

// Check returns the coverage of skills in resumeText, preserving input order.
func Check(resumeText string, skills []string) Coverage {
	lower := strings.ToLower(resumeText)
	cov := Coverage{Covered: []string{}, Missing: []string{}}
	for _, skill := range skills {
		if covered(lower, skill) {
			cov.Covered = append(cov.Covered, skill)
		} else {
			cov.Missing = append(cov.Missing, skill)
		}
	}
	return cov
}

func covered(lowerResume, skill string) bool {
	for _, v := range Variants(skill) {
		if mentions(lowerResume, v) {
			return true
		}
	}
	return false
}
