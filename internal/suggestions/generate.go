// Package suggestions turns an analysis into rule-based improvement advice.
package suggestions

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/smriittii/ats-optimizer-pro/internal/keywords"
	"github.com/smriittii/ats-optimizer-pro/internal/sections"
	"github.com/smriittii/ats-optimizer-pro/internal/textnorm"
	"github.com/smriittii/ats-optimizer-pro/internal/types"
)

const (
	highPriorityKeywords   = 10
	mediumPriorityKeywords = 10
	maxSkillSuggestions    = 5
	minActionVerbs         = 3
	stuffingDensity        = 0.15
	minSkillsSectionChars  = 50
)

// Display names used in the Section field.
const (
	sectionSkills     = "Skills"
	sectionExperience = "Experience"
	sectionSummary    = "Summary"
)

var technicalIndicators = []string{
	"python", "java", "javascript", "react", "node", "sql", "aws", "docker",
	"kubernetes", "git", "api", "framework", "library",
}

var methodologyIndicators = []string{
	"agile", "scrum", "ci/cd", "devops", "testing", "deployment",
}

var exampleTemplates = []string{
	`"Utilized %s to enhance system performance and reliability"`,
	`"Implemented solutions using %s, resulting in improved efficiency"`,
	`"Proficient in %s with hands-on experience in production environments"`,
	`"Leveraged %s to deliver scalable and maintainable code"`,
}

// Picker returns a pseudo-random index in [0, n).
type Picker func(n int) int

// DefaultPicker draws from the process-wide generator, which is safe for
// concurrent use.
func DefaultPicker() Picker {
	return rand.IntN
}

// SeededPicker returns a Picker that yields the same sequence for the same
// seed. It must not be shared between goroutines.
func SeededPicker(seed uint64) Picker {
	r := rand.New(rand.NewPCG(seed, seed))
	return r.IntN
}

// Input is everything the generator reads.
type Input struct {
	Sections        map[string]string
	Keywords        []string
	MissingKeywords []string
	MissingSkills   []string
}

// Generate builds the ordered suggestion list. pick chooses example
// templates; nil means DefaultPicker.
func Generate(in Input, pick Picker) []types.Suggestion {
	if pick == nil {
		pick = DefaultPicker()
	}

	out := []types.Suggestion{}
	out = append(out, keywordSuggestions(in.MissingKeywords, pick)...)
	out = append(out, skillSuggestions(in.MissingSkills)...)
	out = append(out, experienceSuggestions(in.Sections[sections.Experience])...)
	out = append(out, densityWarnings(in.Sections, in.Keywords)...)

	if len(in.Sections[sections.Skills]) < minSkillsSectionChars {
		out = append(out, types.Suggestion{
			Type:           types.SuggestionFormatting,
			Section:        sectionSkills,
			Priority:       types.PriorityMedium,
			Recommendation: "Add or expand your Skills section with relevant technical skills from the job description",
		})
	}

	if in.Sections[sections.Summary] == "" {
		out = append(out, types.Suggestion{
			Type:           types.SuggestionStructure,
			Section:        sectionSummary,
			Priority:       types.PriorityLow,
			Recommendation: "Consider adding a Professional Summary section highlighting your key qualifications",
			Example:        `Example: "Senior Software Engineer with 5+ years of experience in full-stack development, specializing in React, Node.js, and cloud infrastructure. Proven track record of delivering scalable solutions that increase efficiency by 30%+"`,
		})
	}

	return out
}

func keywordSuggestions(missing []string, pick Picker) []types.Suggestion {
	var out []types.Suggestion
	for i, kw := range missing {
		switch {
		case i < highPriorityKeywords:
			out = append(out, types.Suggestion{
				Type:           types.SuggestionKeyword,
				Section:        SectionFor(kw),
				Priority:       types.PriorityHigh,
				Recommendation: fmt.Sprintf("Add %q to your resume if you have experience with it", kw),
				Example:        Example(kw, pick),
			})
		case i < highPriorityKeywords+mediumPriorityKeywords:
			out = append(out, types.Suggestion{
				Type:           types.SuggestionKeyword,
				Section:        SectionFor(kw),
				Priority:       types.PriorityMedium,
				Recommendation: fmt.Sprintf("Consider including %q if relevant to your experience", kw),
			})
		default:
			return out
		}
	}
	return out
}

func skillSuggestions(missing []string) []types.Suggestion {
	var out []types.Suggestion
	for i, skill := range missing {
		if i == maxSkillSuggestions {
			break
		}
		out = append(out, types.Suggestion{
			Type:           types.SuggestionSkills,
			Section:        sectionSkills,
			Priority:       types.PriorityHigh,
			Recommendation: fmt.Sprintf("Add %q to your Skills section if you possess this skill", skill),
			KeywordsToAdd:  []string{skill},
		})
	}
	return out
}

func experienceSuggestions(experience string) []types.Suggestion {
	if experience == "" {
		return nil
	}

	var out []types.Suggestion
	if len(textnorm.ActionVerbs(experience)) < minActionVerbs {
		out = append(out, types.Suggestion{
			Type:           types.SuggestionStructure,
			Section:        sectionExperience,
			Priority:       types.PriorityHigh,
			Recommendation: `Start bullets with strong action verbs like "Architected", "Implemented", "Optimized", "Led", or "Delivered"`,
			Example:        "Instead of: \"Was responsible for building features\"\nTry: \"Architected and delivered 5 new features, improving user engagement by 25%\"",
		})
	}
	if !textnorm.HasQuantification(experience) {
		out = append(out, types.Suggestion{
			Type:           types.SuggestionQuantification,
			Section:        sectionExperience,
			Priority:       types.PriorityHigh,
			Recommendation: "Add specific metrics and numbers to demonstrate impact",
			Example:        "Instead of: \"Improved system performance\"\nTry: \"Optimized database queries, reducing average response time by 40% and saving $50K annually\"",
		})
	}
	return out
}

// densityWarnings flags sections in canonical order so output is stable.
func densityWarnings(sectionMap map[string]string, kws []string) []types.Suggestion {
	var out []types.Suggestion
	for _, name := range []string{
		sections.Header, sections.Summary, sections.Experience, sections.Education,
		sections.Skills, sections.Certifications, sections.Projects,
	} {
		text, ok := sectionMap[name]
		if !ok {
			continue
		}
		if keywords.Density(text, kws) > stuffingDensity {
			out = append(out, types.Suggestion{
				Type:           types.SuggestionFormatting,
				Section:        name,
				Priority:       types.PriorityMedium,
				Recommendation: fmt.Sprintf(`Keyword density seems high in %s section. Ensure keywords flow naturally to avoid appearing as "keyword stuffing"`, name),
			})
		}
	}
	return out
}

// SectionFor names the résumé section a missing keyword most likely belongs
// in.
func SectionFor(keyword string) string {
	lower := strings.ToLower(keyword)
	for _, tech := range technicalIndicators {
		if strings.Contains(lower, tech) {
			return sectionSkills
		}
	}
	for _, m := range methodologyIndicators {
		if strings.Contains(lower, m) {
			return sectionExperience
		}
	}
	return sectionSkills
}

// Example returns an illustrative bullet that uses keyword.
func Example(keyword string, pick Picker) string {
	return fmt.Sprintf(exampleTemplates[pick(len(exampleTemplates))], keyword)
}

// EstimatedImpact estimates the score gain from acting on high-priority
// suggestions, capped at 30 points.
func EstimatedImpact(suggestions []types.Suggestion) int {
	const perHighPriority, maxImpact = 3, 30
	return min(maxImpact, types.CountByPriority(suggestions, types.PriorityHigh)*perHighPriority)
}
