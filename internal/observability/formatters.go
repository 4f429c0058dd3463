// Package observability renders analyses as boxed text for verbose CLI
// output.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/smriittii/ats-optimizer-pro/internal/scoring"
	"github.com/smriittii/ats-optimizer-pro/internal/sections"
	"github.com/smriittii/ats-optimizer-pro/internal/types"
)

const (
	// boxWidth is the outer width of every box
	boxWidth = 60
	// maxItemsToShow limits list output
	maxItemsToShow = 5
	barWidth       = 20
)

// sectionOrder is the display order of section rows.
var sectionOrder = []string{
	sections.Header,
	sections.Summary,
	sections.Experience,
	sections.Education,
	sections.Skills,
	sections.Certifications,
	sections.Projects,
}

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	inner := boxWidth - 4
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", inner, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)
	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", inner, clip(line, inner))
	}
	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// clip shortens s to n runes, marking the cut with "...".
func clip(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-3]) + "..."
}

// bar draws score/100 as a fixed-width meter.
func bar(score int) string {
	filled := max(0, min(barWidth, score*barWidth/100))
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

// list writes up to maxItemsToShow items joined by commas, with a remainder
// count.
func list(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	shown := items[:min(len(items), maxItemsToShow)]
	out := strings.Join(shown, ", ")
	if rest := len(items) - len(shown); rest > 0 {
		out += fmt.Sprintf(" (+%d more)", rest)
	}
	return out
}

// PrintAnalysis outputs every box for an analysis.
func (p *Printer) PrintAnalysis(a *types.ResumeAnalysis) {
	if a == nil {
		return
	}
	p.PrintScore(a)
	p.PrintKeywordMatch(a)
	p.PrintSectionAnalysis(a.SectionAnalysis)
	p.PrintATSChecks(a.Breakdown.ATSHeuristics)
	p.PrintSuggestions(a.Suggestions)
}

// PrintScore outputs the overall score and the weighted breakdown.
func (p *Printer) PrintScore(a *types.ResumeAnalysis) {
	if a == nil {
		return
	}
	b := a.Breakdown
	rows := []struct {
		label  string
		weight float64
		score  int
	}{
		{"Keyword match", scoring.KeywordMatchWeight, b.KeywordMatch.Score},
		{"Semantic similarity", scoring.SemanticSimilarityWeight, b.SemanticSimilarity.Score},
		{"Required skills", scoring.RequiredSkillsWeight, b.RequiredSkills.Score},
		{"Distribution", scoring.DistributionQualityWeight, b.DistributionQuality.Score},
		{"ATS heuristics", scoring.ATSHeuristicsWeight, b.ATSHeuristics.Score},
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Overall: %3d/100  %s\n\n", a.Score, bar(a.Score))
	for _, r := range rows {
		fmt.Fprintf(&sb, "%-20s %2.0f%%  %3d  %s\n", r.label, r.weight*100, r.score, bar(r.score))
	}
	p.printBox("ATS SCORE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintKeywordMatch outputs keyword and skill coverage.
func (p *Printer) PrintKeywordMatch(a *types.ResumeAnalysis) {
	if a == nil {
		return
	}
	kw := a.Breakdown.KeywordMatch
	rs := a.Breakdown.RequiredSkills

	var sb strings.Builder
	fmt.Fprintf(&sb, "Keywords matched: %d/%d\n", kw.Matched, kw.Total)
	fmt.Fprintf(&sb, "  Strong: %s\n", list(a.StrongMatches))
	fmt.Fprintf(&sb, "  Missing: %s\n", list(a.MissingKeywords))
	fmt.Fprintf(&sb, "\nRequired skills: %d/%d\n", rs.Found, rs.Total)
	if len(rs.Missing) > 0 {
		fmt.Fprintf(&sb, "  Missing: %s\n", list(rs.Missing))
	}
	if rs.Preferred.Total > 0 {
		fmt.Fprintf(&sb, "Preferred skills: %d/%d\n", rs.Preferred.Found, rs.Preferred.Total)
	}
	if len(a.ExcludedKeywords) > 0 {
		fmt.Fprintf(&sb, "\nExcluded: %s\n", list(a.ExcludedKeywords))
	}
	p.printBox("KEYWORDS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSectionAnalysis outputs one row per detected section.
func (p *Printer) PrintSectionAnalysis(analysis map[string]types.SectionAnalysis) {
	if len(analysis) == 0 {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%-14s %5s %4s %6s %-7s\n", "Section", "Words", "Kws", "Dens.", "Quality")
	for _, name := range sectionOrder {
		s, ok := analysis[name]
		if !ok {
			continue
		}
		marks := ""
		if s.HasActionVerbs {
			marks += " ✓verbs"
		}
		if s.HasQuantification {
			marks += " ✓metrics"
		}
		fmt.Fprintf(&sb, "%-14s %5d %4d %5.1f%% %-7s%s\n",
			name, s.WordCount, s.KeywordCount, s.KeywordDensity*100, s.Quality, marks)
	}
	p.printBox("SECTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintATSChecks outputs heuristic issues and passed checks.
func (p *Printer) PrintATSChecks(h types.ATSHeuristicsScore) {
	dismissed := make(map[string]bool, len(h.Dismissed))
	for _, d := range h.Dismissed {
		dismissed[d] = true
	}

	var sb strings.Builder
	for _, issue := range h.Issues {
		if dismissed[issue] {
			fmt.Fprintf(&sb, "– %s (dismissed)\n", issue)
			continue
		}
		fmt.Fprintf(&sb, "✗ %s\n", issue)
	}
	for _, passed := range h.Passed {
		fmt.Fprintf(&sb, "✓ %s\n", passed)
	}
	if sb.Len() == 0 {
		return
	}
	p.printBox(fmt.Sprintf("ATS CHECKS (%d/100)", h.Score), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSuggestions outputs the first suggestions with their priority.
func (p *Printer) PrintSuggestions(suggestions []types.Suggestion) {
	if len(suggestions) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(suggestions), maxItemsToShow)
	for i := range count {
		s := suggestions[i]
		fmt.Fprintf(&sb, "[%s] %s: %s\n", strings.ToUpper(string(s.Priority)), s.Section, s.Recommendation)
	}
	if len(suggestions) > maxItemsToShow {
		fmt.Fprintf(&sb, "... and %d more suggestions\n", len(suggestions)-maxItemsToShow)
	}
	p.printBox(fmt.Sprintf("SUGGESTIONS (%d)", len(suggestions)), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintKeywords outputs extracted keywords with kind and frequency.
func (p *Printer) PrintKeywords(kws []types.KeywordData) {
	if len(kws) == 0 {
		return
	}

	var sb strings.Builder
	for i, kw := range kws {
		fmt.Fprintf(&sb, "%3d. %-30s %-8s ×%d\n", i+1, clip(kw.Keyword, 30), kw.Kind, kw.Frequency)
	}
	p.printBox(fmt.Sprintf("KEYWORDS (%d)", len(kws)), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDocument outputs each segmented section with a short preview.
func (p *Printer) PrintDocument(doc sections.Document) {
	if len(doc.Spans) == 0 {
		return
	}

	var sb strings.Builder
	for i, span := range doc.Spans {
		header := span.Header
		if header == "" {
			header = "(top of document)"
		}
		fmt.Fprintf(&sb, "%s → %s\n", span.Name, strings.TrimSpace(header))
		lines := strings.Split(span.Content, "\n")
		for _, line := range lines[:min(2, len(lines))] {
			if line != "" {
				fmt.Fprintf(&sb, "    %s\n", line)
			}
		}
		if len(lines) > 2 {
			fmt.Fprintf(&sb, "    ... %d more lines\n", len(lines)-2)
		}
		if i < len(doc.Spans)-1 {
			sb.WriteString("\n")
		}
	}
	p.printBox(fmt.Sprintf("SECTIONS (%d)", len(doc.Spans)), strings.TrimSuffix(sb.String(), "\n"))
}
