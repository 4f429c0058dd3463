package textnorm

import "strings"

// stopwords holds function words that never carry keyword signal.
var stopwords = newWordSet(
	// articles
	"a", "an", "the",
	// conjunctions
	"and", "but", "or", "nor", "for", "yet", "so",
	// prepositions
	"in", "on", "at", "to", "from", "by", "with", "about", "as", "into",
	"through", "during", "before", "after", "above", "below", "between",
	"under", "over", "of", "off", "up", "down", "out",
	// pronouns
	"i", "you", "he", "she", "it", "we", "they", "me", "him", "her",
	"us", "them", "my", "your", "his", "its", "our", "their", "mine",
	"yours", "hers", "ours", "theirs", "this", "that", "these", "those",
	"who", "whom", "whose", "which", "what",
	// auxiliary verbs
	"is", "am", "are", "was", "were", "be", "been", "being", "have",
	"has", "had", "do", "does", "did", "will", "would", "should",
	"could", "may", "might", "must", "can", "shall",
	// common words
	"not", "no", "yes", "if", "when", "where", "why", "how", "all",
	"each", "every", "both", "few", "more", "most", "other", "some",
	"such", "than", "too", "very", "just", "now", "then", "there",
	"here", "well", "only", "also", "again", "however", "therefore",
	// document boilerplate
	"resume", "cv", "curriculum", "vitae", "page", "email", "phone",
	"address", "linkedin", "github", "portfolio",
)

// commonResumeWords are structurally meaningful in a résumé but are never
// reported as keywords.
var commonResumeWords = newWordSet(
	"experience", "education", "skills", "summary", "objective",
	"professional", "work", "history", "responsibilities", "duties",
	"accomplishments", "achievements", "position", "role", "title",
	"company", "organization", "university", "college", "school",
	"degree", "certification", "certificate", "award", "honor",
	"references", "available", "upon", "request",
)

type wordSet map[string]struct{}

func newWordSet(words ...string) wordSet {
	set := make(wordSet, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func (s wordSet) has(word string) bool {
	_, ok := s[word]
	return ok
}

// IsStopword reports whether token is a stopword or a common résumé word.
// The check is case-insensitive.
func IsStopword(token string) bool {
	lower := strings.ToLower(token)
	return stopwords.has(lower) || commonResumeWords.has(lower)
}
