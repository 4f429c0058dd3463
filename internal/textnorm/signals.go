package textnorm

import (
	"regexp"
	"strings"
)

// actionVerbs are the past-tense openers that signal an accomplishment.
var actionVerbs = []string{
	"achieved", "administrated", "analyzed", "architected", "built",
	"collaborated", "created", "delivered", "designed", "developed",
	"directed", "engineered", "enhanced", "established", "executed",
	"facilitated", "founded", "generated", "implemented", "improved",
	"increased", "introduced", "launched", "led", "managed", "optimized",
	"organized", "performed", "planned", "produced", "programmed",
	"reduced", "resolved", "spearheaded", "streamlined", "strengthened",
}

var (
	sentenceBreak    = regexp.MustCompile(`[.!?]+|\n`)
	leadingBullet    = regexp.MustCompile(`^[•\-*–\s]+`)
	actionVerbPrefix = regexp.MustCompile(`(?i)^(` + strings.Join(actionVerbs, "|") + `)\b`)
	quantification   = regexp.MustCompile(`(?i)\b\d+(?:[,.]\d+)*\s*(?:%|(?:percent|million|thousand|billion|k|m|b|x|times|hours?|days?|weeks?|months?|years?)\b)`)
)

// Sentences splits text on sentence terminators and line breaks. Leading
// bullet markers are removed and empty sentences are dropped.
func Sentences(text string) []string {
	parts := sentenceBreak.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(leadingBullet.ReplaceAllString(p, ""))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ActionVerbs returns the action verbs that open a sentence in text,
// lowercased, one entry per sentence.
func ActionVerbs(text string) []string {
	var found []string
	for _, s := range Sentences(text) {
		if m := actionVerbPrefix.FindStringSubmatch(s); m != nil {
			found = append(found, strings.ToLower(m[1]))
		}
	}
	return found
}

// HasQuantification reports whether text contains a number with a unit such
// as a percentage, a magnitude or a duration.
func HasQuantification(text string) bool {
	return quantification.MatchString(text)
}
