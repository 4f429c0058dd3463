package types

// SuggestionType classifies an improvement suggestion.
type SuggestionType string

// Suggestion types.
const (
	SuggestionKeyword        SuggestionType = "keyword"
	SuggestionStructure      SuggestionType = "structure"
	SuggestionQuantification SuggestionType = "quantification"
	SuggestionFormatting     SuggestionType = "formatting"
	SuggestionSkills         SuggestionType = "skills"
)

// Priority ranks how much a suggestion is expected to help.
type Priority string

// Suggestion priorities.
const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Suggestion is one rule-based improvement recommendation.
// Example text is illustrative and is not stable across runs unless the
// generator is seeded.
type Suggestion struct {
	Type           SuggestionType `json:"type"`
	Section        string         `json:"section"`
	Priority       Priority       `json:"priority"`
	Recommendation string         `json:"recommendation"`
	Example        string         `json:"example,omitempty"`
	KeywordsToAdd  []string       `json:"keywordsToAdd,omitempty"`
}

// CountByPriority returns how many suggestions carry the given priority.
func CountByPriority(suggestions []Suggestion, p Priority) int {
	n := 0
	for _, s := range suggestions {
		if s.Priority == p {
			n++
		}
	}
	return n
}
