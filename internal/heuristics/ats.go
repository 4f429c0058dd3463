// Package heuristics flags structural résumé traits that commonly break
// applicant tracking system parsers.
package heuristics

import (
	"regexp"
	"strings"

	"github.com/smriittii/ats-optimizer-pro/internal/sections"
	"github.com/smriittii/ats-optimizer-pro/internal/textnorm"
)

// Issue messages. Dismissals are matched against these texts.
const (
	IssueTables           = "Tables detected - may not parse correctly in ATS"
	IssueMultiColumn      = "Multi-column layout detected - may confuse ATS"
	IssueMissingSections  = "Missing one or more standard sections (Experience, Education, Skills)"
	IssueTooShort         = "Resume may be too short (less than 200 words)"
	IssueTooLong          = "Resume may be too long (over 2000 words) - consider condensing"
	PassedNoTables        = "No tables detected"
	PassedSingleColumn    = "Single-column layout"
	PassedStandardSection = "Standard sections present"
	PassedLength          = "Appropriate length"
)

// Penalties and bounds.
const (
	TablePenalty           = 12
	MultiColumnPenalty     = 10
	MissingSectionsPenalty = 8
	TooShortPenalty        = 5
	TooLongPenalty         = 3

	// ScoreFloor keeps soft structural signals from dominating the result.
	ScoreFloor = 80

	minSectionChars  = 20
	minWords         = 200
	maxWords         = 2000
	minColumnSegment = 10
	multiColumnLines = 3
)

var (
	tableIndicators = []*regexp.Regexp{
		regexp.MustCompile(`\|[\s\w]+\|`),
		regexp.MustCompile(`\t\w+\t`),
		regexp.MustCompile(`[┌└├┤─│]`),
	}
	columnGap = regexp.MustCompile(`\s{5,}`)
)

// standardSections must each be present with more than minSectionChars of
// content.
var standardSections = []string{sections.Experience, sections.Education, sections.Skills}

// Result lists detected issues and passed checks. Dismissed holds the subset
// of Issues excluded from the penalty.
type Result struct {
	Score     int
	Issues    []string
	Passed    []string
	Dismissed []string
}

// HasTables reports whether text contains pipe tables, tab-delimited cells or
// box-drawing characters.
func HasTables(text string) bool {
	for _, re := range tableIndicators {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// HasMultiColumn reports whether more than three lines split into several
// wide segments separated by runs of five or more spaces.
func HasMultiColumn(text string) bool {
	count := 0
	for _, line := range strings.Split(text, "\n") {
		segments := columnGap.Split(line, -1)
		if len(segments) < 2 {
			continue
		}
		wide := true
		for _, seg := range segments {
			if len(strings.TrimSpace(seg)) <= minColumnSegment {
				wide = false
				break
			}
		}
		if wide {
			count++
		}
	}
	return count > multiColumnLines
}

// HasStandardSections reports whether each standard section has non-trivial
// content.
func HasStandardSections(sectionMap map[string]string) bool {
	for _, name := range standardSections {
		if len(sectionMap[name]) <= minSectionChars {
			return false
		}
	}
	return true
}

// Check runs every heuristic against a résumé and its sections. Issues named
// in dismissed (case-insensitive) are still reported but not penalized.
func Check(resume string, sectionMap map[string]string, dismissed []string) Result {
	skip := make(map[string]struct{}, len(dismissed))
	for _, d := range dismissed {
		skip[strings.ToLower(strings.TrimSpace(d))] = struct{}{}
	}

	res := Result{Issues: []string{}, Passed: []string{}, Dismissed: []string{}}
	penalty := 0
	flag := func(issue string, cost int) {
		res.Issues = append(res.Issues, issue)
		if _, ok := skip[strings.ToLower(issue)]; ok {
			res.Dismissed = append(res.Dismissed, issue)
			return
		}
		penalty += cost
	}

	if HasTables(resume) {
		flag(IssueTables, TablePenalty)
	} else {
		res.Passed = append(res.Passed, PassedNoTables)
	}

	if HasMultiColumn(textnorm.NormalizeNewlines(resume)) {
		flag(IssueMultiColumn, MultiColumnPenalty)
	} else {
		res.Passed = append(res.Passed, PassedSingleColumn)
	}

	if HasStandardSections(sectionMap) {
		res.Passed = append(res.Passed, PassedStandardSection)
	} else {
		flag(IssueMissingSections, MissingSectionsPenalty)
	}

	switch words := textnorm.WordCount(resume); {
	case words < minWords:
		flag(IssueTooShort, TooShortPenalty)
	case words > maxWords:
		flag(IssueTooLong, TooLongPenalty)
	default:
		res.Passed = append(res.Passed, PassedLength)
	}

	res.Score = max(ScoreFloor, 100-penalty)
	return res
}
