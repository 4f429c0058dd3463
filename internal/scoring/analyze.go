// Package scoring combines keyword, similarity, skill, distribution and
// structural signals into a single résumé compatibility score.
package scoring

import (
	"strings"

	"github.com/smriittii/ats-optimizer-pro/internal/heuristics"
	"github.com/smriittii/ats-optimizer-pro/internal/keywords"
	"github.com/smriittii/ats-optimizer-pro/internal/sections"
	"github.com/smriittii/ats-optimizer-pro/internal/similarity"
	"github.com/smriittii/ats-optimizer-pro/internal/skills"
	"github.com/smriittii/ats-optimizer-pro/internal/suggestions"
	"github.com/smriittii/ats-optimizer-pro/internal/types"
)

const (
	// KeywordCount is how many job keywords are extracted before filtering.
	KeywordCount = keywords.DefaultCount

	// MaxListedKeywords caps MissingKeywords and StrongMatches.
	MaxListedKeywords = 15
)

// Options adjusts a single analysis.
type Options struct {
	// ExcludedKeywords are removed from the job keywords before matching.
	ExcludedKeywords []string
	// DismissedIssues are ATS issues reported but not penalized.
	DismissedIssues []string
	// IncludeResumeText echoes the résumé in the result.
	IncludeResumeText bool
	// ExampleSeed makes suggestion examples reproducible.
	ExampleSeed *uint64
}

// Analyze scores resume against job. It returns a *ValidationError when either
// input is empty after trimming; every other input yields a result.
//
// Analyze keeps no state between calls and is safe for concurrent use.
func Analyze(resume, job string, opts Options) (*types.ResumeAnalysis, error) {
	if strings.TrimSpace(resume) == "" {
		return nil, &ValidationError{Field: "resumeText", Message: "resume text is required"}
	}
	if strings.TrimSpace(job) == "" {
		return nil, &ValidationError{Field: "jobDescription", Message: "job description is required"}
	}

	kws := keywords.Filter(keywords.Extract(job, KeywordCount), opts.ExcludedKeywords)
	match := keywords.Match(resume, kws)
	sectionMap := sections.Segment(resume).Map()

	kwScore := keywordScore(match, len(kws))
	semScore := semanticScore(resume, job)
	skillScore, missingSkills := requiredSkillsScore(resume, job)
	distScore := distributionScore(sectionMap, kws)
	atsScore := atsHeuristicsScore(resume, sectionMap, opts.DismissedIssues)

	pick := suggestions.DefaultPicker()
	if opts.ExampleSeed != nil {
		pick = suggestions.SeededPicker(*opts.ExampleSeed)
	}

	analysis := &types.ResumeAnalysis{
		Score: Combine(kwScore.Score, semScore.Score, skillScore.Score, distScore.Score, atsScore.Score),
		Breakdown: types.ScoreBreakdown{
			KeywordMatch:        kwScore,
			SemanticSimilarity:  semScore,
			RequiredSkills:      skillScore,
			DistributionQuality: distScore,
			ATSHeuristics:       atsScore,
		},
		MissingKeywords: head(match.Missing, MaxListedKeywords),
		StrongMatches:   head(match.Matched, MaxListedKeywords),
		SectionAnalysis: analyzeSections(sectionMap, kws),
		Suggestions: suggestions.Generate(suggestions.Input{
			Sections:        sectionMap,
			Keywords:        kws,
			MissingKeywords: match.Missing,
			MissingSkills:   missingSkills,
		}, pick),
		ExcludedKeywords: nonNil(opts.ExcludedKeywords),
		DismissedIssues:  nonNil(opts.DismissedIssues),
	}
	if opts.IncludeResumeText {
		analysis.ResumeText = resume
	}
	return analysis, nil
}

func keywordScore(match keywords.Result, total int) types.KeywordMatchScore {
	res := types.KeywordMatchScore{
		Matched: len(match.Matched),
		Total:   total,
		Found:   match.Matched,
		Missing: match.Missing,
	}
	if total == 0 {
		res.Score = NoKeywordsScore
		return res
	}
	res.Score = KeywordCurve(float64(len(match.Matched)) / float64(total))
	return res
}

func semanticScore(resume, job string) types.SemanticSimilarityScore {
	r := similarity.Score(resume, job)
	return types.SemanticSimilarityScore{Score: r.Score, Similarity: r.Similarity}
}

func requiredSkillsScore(resume, job string) (types.RequiredSkillsScore, []string) {
	required := skills.DetectRequired(job)
	cov := skills.Check(resume, required)

	preferred := skills.DetectPreferred(job)
	prefCov := skills.Check(resume, preferred)

	res := types.RequiredSkillsScore{
		Total:   len(required),
		Found:   len(cov.Covered),
		Covered: cov.Covered,
		Missing: cov.Missing,
		Preferred: types.PreferredSkills{
			Total:   len(preferred),
			Found:   len(prefCov.Covered),
			Missing: prefCov.Missing,
		},
	}
	if len(required) == 0 {
		res.Score = NoRequiredSkillsScore
		return res, cov.Missing
	}
	res.Score = SkillsCurve(float64(len(cov.Covered)) / float64(len(required)))
	return res, cov.Missing
}

func atsHeuristicsScore(resume string, sectionMap map[string]string, dismissed []string) types.ATSHeuristicsScore {
	r := heuristics.Check(resume, sectionMap, dismissed)
	return types.ATSHeuristicsScore{
		Score:     r.Score,
		Issues:    r.Issues,
		Passed:    r.Passed,
		Dismissed: r.Dismissed,
	}
}

func head(list []string, n int) []string {
	if len(list) > n {
		return append([]string(nil), list[:n]...)
	}
	return append([]string{}, list...)
}

func nonNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
