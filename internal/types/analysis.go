// Package types provides the data model shared by the analysis engine, the
// HTTP API and the CLI.
package types

// NGramKind identifies how many tokens an n-gram spans.
type NGramKind string

// N-gram kinds.
const (
	Unigram NGramKind = "unigram"
	Bigram  NGramKind = "bigram"
	Trigram NGramKind = "trigram"
)

// NGram is a phrase candidate mined from a job description.
type NGram struct {
	Text  string    `json:"text"`
	Count int       `json:"count"`
	Kind  NGramKind `json:"kind"`
}

// KeywordData describes one extracted keyword together with where it occurs
// in the cleaned job description.
type KeywordData struct {
	Keyword   string    `json:"keyword"`
	Kind      NGramKind `json:"kind"`
	Frequency int       `json:"frequency"`
	Positions []int     `json:"positions"`
}

// Quality is the derived label of a résumé section.
type Quality string

// Section quality labels.
const (
	QualityGood    Quality = "good"
	QualityMedium  Quality = "medium"
	QualityPoor    Quality = "poor"
	QualityUnknown Quality = "unknown"
)

// SectionAnalysis summarizes the keyword coverage and writing signals of a
// single résumé section.
type SectionAnalysis struct {
	WordCount         int      `json:"wordCount"`
	KeywordCount      int      `json:"keywordCount"`
	KeywordDensity    float64  `json:"keywordDensity"`
	HasActionVerbs    bool     `json:"hasActionVerbs"`
	ActionVerbCount   int      `json:"actionVerbCount"`
	HasQuantification bool     `json:"hasQuantification"`
	Quality           Quality  `json:"quality"`
	FoundKeywords     []string `json:"foundKeywords"`
	SuggestedKeywords []string `json:"suggestedKeywords"`
}

// KeywordMatchScore is the keyword sub-score and its evidence.
// Found and Missing always partition the full keyword set; Matched and Total
// are their sizes.
type KeywordMatchScore struct {
	Score   int      `json:"score"`
	Matched int      `json:"matched"`
	Total   int      `json:"total"`
	Found   []string `json:"found"`
	Missing []string `json:"missing"`
}

// SemanticSimilarityScore is the TF-IDF blend sub-score.
type SemanticSimilarityScore struct {
	Score      int     `json:"score"`
	Similarity float64 `json:"similarity"`
}

// PreferredSkills reports detected nice-to-have skills. It never affects the
// score.
type PreferredSkills struct {
	Total   int      `json:"total"`
	Found   int      `json:"found"`
	Missing []string `json:"missing"`
}

// RequiredSkillsScore is the required-skill coverage sub-score.
type RequiredSkillsScore struct {
	Score     int             `json:"score"`
	Total     int             `json:"total"`
	Found     int             `json:"found"`
	Covered   []string        `json:"covered"`
	Missing   []string        `json:"missing"`
	Preferred PreferredSkills `json:"preferred"`
}

// DistributionQualityScore rates how evenly keywords are spread across the
// major résumé sections.
type DistributionQualityScore struct {
	Score                int      `json:"score"`
	SectionsAnalyzed     int      `json:"sectionsAnalyzed"`
	SectionsWithKeywords int      `json:"sectionsWithKeywords"`
	StuffedSections      []string `json:"stuffedSections"`
}

// ATSHeuristicsScore is the structural compatibility sub-score.
// Dismissed issues remain listed in Issues but carry no penalty.
type ATSHeuristicsScore struct {
	Score     int      `json:"score"`
	Issues    []string `json:"issues"`
	Passed    []string `json:"passed"`
	Dismissed []string `json:"dismissed"`
}

// ScoreBreakdown holds the five weighted sub-scores.
type ScoreBreakdown struct {
	KeywordMatch        KeywordMatchScore        `json:"keywordMatch"`
	SemanticSimilarity  SemanticSimilarityScore  `json:"semanticSimilarity"`
	RequiredSkills      RequiredSkillsScore      `json:"requiredSkills"`
	DistributionQuality DistributionQualityScore `json:"distributionQuality"`
	ATSHeuristics       ATSHeuristicsScore       `json:"atsHeuristics"`
}

// ResumeAnalysis is the full result of scoring a résumé against a job
// description.
type ResumeAnalysis struct {
	Score            int                        `json:"score"`
	Breakdown        ScoreBreakdown             `json:"breakdown"`
	MissingKeywords  []string                   `json:"missingKeywords"`
	StrongMatches    []string                   `json:"strongMatches"`
	SectionAnalysis  map[string]SectionAnalysis `json:"sectionAnalysis"`
	Suggestions      []Suggestion               `json:"suggestions"`
	ExcludedKeywords []string                   `json:"excludedKeywords"`
	DismissedIssues  []string                   `json:"dismissedIssues"`
	ResumeText       string                     `json:"resumeText,omitempty"`
}
