package scoring

import (
	"github.com/smriittii/ats-optimizer-pro/internal/keywords"
	"github.com/smriittii/ats-optimizer-pro/internal/textnorm"
	"github.com/smriittii/ats-optimizer-pro/internal/types"
)

const (
	minWordsForQuality   = 20
	goodKeywordCount     = 5
	mediumKeywordCount   = 2
	maxSuggestedKeywords = 5
)

// analyzeSection rates one section by its distinct keyword coverage and
// writing signals.
func analyzeSection(text string, kws []string) types.SectionAnalysis {
	words := textnorm.WordCount(text)
	verbs := textnorm.ActionVerbs(text)

	match := keywords.Match(text, kws)
	found := match.Matched
	suggested := match.Missing
	if len(suggested) > maxSuggestedKeywords {
		suggested = suggested[:maxSuggestedKeywords]
	}

	quality := types.QualityUnknown
	if words > minWordsForQuality {
		switch {
		case len(found) >= goodKeywordCount:
			quality = types.QualityGood
		case len(found) >= mediumKeywordCount:
			quality = types.QualityMedium
		default:
			quality = types.QualityPoor
		}
	}

	density := 0.0
	if words > 0 {
		density = float64(len(found)) / float64(words)
	}

	return types.SectionAnalysis{
		WordCount:         words,
		KeywordCount:      len(found),
		KeywordDensity:    density,
		HasActionVerbs:    len(verbs) > 0,
		ActionVerbCount:   len(verbs),
		HasQuantification: textnorm.HasQuantification(text),
		Quality:           quality,
		FoundKeywords:     found,
		SuggestedKeywords: suggested,
	}
}

func analyzeSections(sectionMap map[string]string, kws []string) map[string]types.SectionAnalysis {
	out := make(map[string]types.SectionAnalysis, len(sectionMap))
	for name, text := range sectionMap {
		out[name] = analyzeSection(text, kws)
	}
	return out
}
