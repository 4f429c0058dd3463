// Package textnorm provides the text cleaning and tokenization shared by every
// analysis stage.
package textnorm

import (
	"regexp"
	"strings"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	nonTokenChar  = regexp.MustCompile(`[^\w\s-]`)
)

// Clean collapses every whitespace run, including line breaks and tabs, to a
// single space and trims both ends.
func Clean(text string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
}

// Tokenize lowercases text, replaces characters that are not word
// characters, hyphens or whitespace with spaces, and splits on whitespace.
// Empty tokens are dropped.
func Tokenize(text string) []string {
	lower := strings.ToLower(text)
	return strings.Fields(nonTokenChar.ReplaceAllString(lower, " "))
}

// SignificantTokens returns the tokens of text that are longer than one
// character and are not stopwords, in document order.
func SignificantTokens(text string) []string {
	tokens := Tokenize(Clean(text))
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if len(tok) > 1 && !IsStopword(tok) {
			out = append(out, tok)
		}
	}
	return out
}

// WordCount returns the number of whitespace-separated fields in text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// NormalizeNewlines converts CRLF and lone CR line endings to LF.
func NormalizeNewlines(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}
