package llm

import (
	"context"
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/smriittii/ats-optimizer-pro/internal/prompts"
)

const (
	maxSectionChars    = 1000
	maxPromptKeywords  = 10
	maxSuggestions     = 3
	minSuggestionChars = 10

	// DefaultSuggestTimeout bounds a single SuggestBestEffort call.
	DefaultSuggestTimeout = 15 * time.Second
)

var bulletPrefix = regexp.MustCompile(`^(?:[-*•]|\d+\.)\s*`)

// SectionSuggester asks the model for bullet rewrites of one résumé section
// that work in missing keywords.
type SectionSuggester struct {
	client Client
	tier   ModelTier
}

// NewSectionSuggester returns a suggester using tier. A nil client yields a
// suggester that always returns no suggestions.
func NewSectionSuggester(client Client, tier ModelTier) *SectionSuggester {
	if tier == "" {
		tier = TierStandard
	}
	return &SectionSuggester{client: client, tier: tier}
}

// Available reports whether a model client is configured.
func (s *SectionSuggester) Available() bool {
	return s != nil && s.client != nil
}

// Suggest returns up to three improvements for sectionText. An empty missing
// list returns no suggestions without calling the model.
func (s *SectionSuggester) Suggest(ctx context.Context, sectionText, sectionName string, missing []string) ([]string, error) {
	if !s.Available() || sectionName == "" || len(missing) == 0 {
		return []string{}, nil
	}

	reply, err := s.client.GenerateContent(ctx, BuildSuggestionPrompt(sectionText, sectionName, missing), s.tier)
	if err != nil {
		return nil, err
	}
	return ParseSuggestions(reply), nil
}

// SuggestBestEffort is Suggest bounded by timeout. Failures yield an empty
// list.
func (s *SectionSuggester) SuggestBestEffort(ctx context.Context, timeout time.Duration, sectionText, sectionName string, missing []string) []string {
	if timeout <= 0 {
		timeout = DefaultSuggestTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	out, err := s.Suggest(ctx, sectionText, sectionName, missing)
	if err != nil {
		return []string{}
	}
	return out
}

// BuildSuggestionPrompt renders the improve-section template.
func BuildSuggestionPrompt(sectionText, sectionName string, missing []string) string {
	if len(sectionText) > maxSectionChars {
		sectionText = truncateRunes(sectionText, maxSectionChars) + "..."
	}
	if len(missing) > maxPromptKeywords {
		missing = missing[:maxPromptKeywords]
	}
	return prompts.Format(prompts.MustGet("suggestions.json", "improve-section"), map[string]string{
		"SectionName":     sectionName,
		"SectionText":     sectionText,
		"MissingKeywords": strings.Join(missing, ", "),
		"Count":           strconv.Itoa(maxSuggestions),
	})
}

// ParseSuggestions reads a model reply as a JSON array of strings, falling
// back to bulleted or numbered lines.
func ParseSuggestions(reply string) []string {
	var items []string
	if err := json.Unmarshal([]byte(CleanJSONBlock(reply)), &items); err == nil {
		return limitSuggestions(items)
	}

	var bullets []string
	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		if !bulletPrefix.MatchString(line) {
			continue
		}
		bullets = append(bullets, strings.TrimSpace(bulletPrefix.ReplaceAllString(line, "")))
	}
	return limitSuggestions(bullets)
}

func limitSuggestions(items []string) []string {
	out := []string{}
	for _, item := range items {
		item = strings.TrimSpace(item)
		if len(item) <= minSuggestionChars {
			continue
		}
		out = append(out, item)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}

// truncateRunes cuts s to at most n bytes without splitting a rune.
func truncateRunes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
