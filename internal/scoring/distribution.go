package scoring

import (
	"github.com/smriittii/ats-optimizer-pro/internal/keywords"
	"github.com/smriittii/ats-optimizer-pro/internal/sections"
	"github.com/smriittii/ats-optimizer-pro/internal/textnorm"
	"github.com/smriittii/ats-optimizer-pro/internal/types"
)

// Distribution tuning. The density threshold and floor are calibration
// choices.
const (
	StuffingDensity   = 0.04
	StuffingPenalty   = 8
	PoorSpreadPenalty = 7
	DistributionFloor = 70

	minSectionsWithKeywords = 2
)

// majorSections are the sections whose keyword spread is rated.
var majorSections = []string{sections.Experience, sections.Skills, sections.Summary, sections.Projects}

func distributionScore(sectionMap map[string]string, kws []string) types.DistributionQualityScore {
	res := types.DistributionQualityScore{StuffedSections: []string{}}
	penalty := 0

	for _, name := range majorSections {
		text, ok := sectionMap[name]
		if !ok || text == "" {
			continue
		}
		res.SectionsAnalyzed++

		count := keywords.Occurrences(text, kws)
		if count > 0 {
			res.SectionsWithKeywords++
		}
		if words := textnorm.WordCount(text); words > 0 && float64(count)/float64(words) > StuffingDensity {
			res.StuffedSections = append(res.StuffedSections, name)
			penalty += StuffingPenalty
		}
	}

	if res.SectionsWithKeywords < minSectionsWithKeywords && res.SectionsAnalyzed > 1 {
		penalty += PoorSpreadPenalty
	}

	res.Score = max(DistributionFloor, 100-penalty)
	return res
}
