package skills

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// variantGroups lists interchangeable spellings and abbreviations of common
// skills. A group applies to a skill when any member occurs in it as a whole
// word.
var variantGroups = [][]string{
	{"javascript", "js", "java script"},
	{"typescript", "ts", "type script"},
	{"reactjs", "react", "react.js"},
	{"nodejs", "node", "node.js"},
	{"python", "py"},
	{"c++", "cpp", "c plus plus"},
	{"c#", "csharp", "c sharp"},
	{"sql", "structured query language"},
	{"nosql", "no sql", "no-sql"},
	{"machine learning", "ml"},
	{"artificial intelligence", "ai"},
	{"continuous integration", "ci"},
	{"continuous deployment", "cd"},
	{"golang", "go"},
	{"kubernetes", "k8s"},
	{"postgresql", "postgres"},
	{"amazon web services", "aws"},
}

// shortVariantLen is the longest variant that must match as a whole word.
const shortVariantLen = 2

// Variants returns skill followed by every spelling from the groups that
// apply to it. The result is lowercase and has no duplicates.
func Variants(skill string) []string {
	lower := strings.ToLower(strings.TrimSpace(skill))
	out := []string{lower}
	seen := map[string]struct{}{lower: {}}

	for _, group := range variantGroups {
		applies := false
		for _, v := range group {
			if containsWord(lower, v) {
				applies = true
				break
			}
		}
		if !applies {
			continue
		}
		for _, v := range group {
			if _, ok := seen[v]; !ok {
				seen[v] = struct{}{}
				out = append(out, v)
			}
		}
	}
	return out
}

// mentions reports whether lowerText contains variant. Short variants
// must stand alone as words.
func mentions(lowerText, variant string) bool {
	if utf8.RuneCountInString(variant) <= shortVariantLen {
		return containsWord(lowerText, variant)
	}
	return strings.Contains(lowerText, variant)
}

// containsWord reports whether word occurs in text with no letter or digit
// directly before or after it.
func containsWord(text, word string) bool {
	if word == "" {
		return false
	}
	offset := 0
	for {
		i := strings.Index(text[offset:], word)
		if i < 0 {
			return false
		}
		start := offset + i
		end := start + len(word)
		if boundaryBefore(text, start) && boundaryAfter(text, end) {
			return true
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		offset = start + size
	}
}

func boundaryBefore(text string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:i])
	return !isWordRune(r)
}

func boundaryAfter(text string, i int) bool {
	if i >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[i:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
