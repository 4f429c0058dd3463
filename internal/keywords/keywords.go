// Package keywords extracts ranked job-description keywords and matches them
// against résumé text.
package keywords

import (
	"regexp"
	"strings"

	"github.com/smriittii/ats-optimizer-pro/internal/ngrams"
	"github.com/smriittii/ats-optimizer-pro/internal/textnorm"
	"github.com/smriittii/ats-optimizer-pro/internal/types"
)

// DefaultCount is the number of keywords extracted from a job description.
const DefaultCount = ngrams.DefaultMaxCount

// Result partitions a keyword list into matched and missing entries,
// preserving input order.
type Result struct {
	Matched []string
	Missing []string
}

// Extract returns up to count ranked keywords from a job description.
func Extract(jobDescription string, count int) []string {
	ranked := ngrams.All(textnorm.Clean(jobDescription), count)
	out := make([]string, len(ranked))
	for i, ng := range ranked {
		out[i] = ng.Text
	}
	return out
}

// ExtractWithPositions returns the ranked keywords of a job description with
// their frequency and the byte offsets of every non-overlapping occurrence in
// the cleaned text. Offsets are found on a token view of the text, so "node
// js" is located at "Node.js".
func ExtractWithPositions(jobDescription string, count int) []types.KeywordData {
	cleaned := textnorm.Clean(jobDescription)
	view := tokenView(cleaned)
	ranked := ngrams.All(cleaned, count)

	out := make([]types.KeywordData, 0, len(ranked))
	for _, ng := range ranked {
		out = append(out, types.KeywordData{
			Keyword:   ng.Text,
			Kind:      ng.Kind,
			Frequency: ng.Count,
			Positions: positions(view, ng.Text),
		})
	}
	return out
}

// tokenView lowercases text and blanks every byte that tokenization drops,
// keeping byte offsets aligned with text.
func tokenView(text string) string {
	b := []byte(text)
	for i, c := range b {
		switch {
		case c >= 'A' && c <= 'Z':
			b[i] = c + ('a' - 'A')
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9', c == '_', c == '-':
		default:
			b[i] = ' '
		}
	}
	return string(b)
}

// positions returns the start offsets of keyword in view, allowing any run of
// blanks between its tokens.
func positions(view, keyword string) []int {
	found := []int{}
	tokens := strings.Fields(keyword)
	if len(tokens) == 0 {
		return found
	}
	for i, tok := range tokens {
		tokens[i] = regexp.QuoteMeta(tok)
	}
	re := regexp.MustCompile(strings.Join(tokens, `\s+`))
	for _, loc := range re.FindAllStringIndex(view, -1) {
		found = append(found, loc[0])
	}
	return found
}

// Match partitions keywords by case-insensitive containment in resumeText.
func Match(resumeText string, keywords []string) Result {
	lower := strings.ToLower(resumeText)
	res := Result{Matched: []string{}, Missing: []string{}}
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			res.Matched = append(res.Matched, kw)
		} else {
			res.Missing = append(res.Missing, kw)
		}
	}
	return res
}

// Occurrences returns the total number of non-overlapping, case-insensitive
// occurrences of keywords in text.
func Occurrences(text string, keywords []string) int {
	lower := strings.ToLower(text)
	total := 0
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		total += strings.Count(lower, strings.ToLower(kw))
	}
	return total
}

// Density returns keyword occurrences per word of text, or 0 for text with no
// words.
func Density(text string, keywords []string) float64 {
	words := textnorm.WordCount(text)
	if words == 0 {
		return 0
	}
	return float64(Occurrences(text, keywords)) / float64(words)
}

// Filter removes excluded keywords, compared case-insensitively after
// trimming, and keeps the order of the rest.
func Filter(keywords, excluded []string) []string {
	if len(excluded) == 0 {
		return append([]string(nil), keywords...)
	}
	skip := make(map[string]struct{}, len(excluded))
	for _, e := range excluded {
		skip[strings.ToLower(strings.TrimSpace(e))] = struct{}{}
	}
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if _, ok := skip[strings.ToLower(kw)]; !ok {
			out = append(out, kw)
		}
	}
	return out
}
