package scoring

import "math"

// Sub-score weights of the final score.
const (
	KeywordMatchWeight        = 0.50
	SemanticSimilarityWeight  = 0.20
	RequiredSkillsWeight      = 0.15
	DistributionQualityWeight = 0.10
	ATSHeuristicsWeight       = 0.05
)

// Fallback scores for degenerate inputs.
const (
	// NoKeywordsScore applies when the job description yields no keywords.
	NoKeywordsScore = 90
	// NoRequiredSkillsScore applies when no required skills are detected.
	NoRequiredSkillsScore = 98
)

// KeywordCurve maps a keyword match rate in [0,1] to a 0-100 score:
//
//	[0.8,1]   90 + (r-0.8)*50
//	[0.6,0.8) 75 + (r-0.6)*75
//	[0.4,0.6) 60 + (r-0.4)*75
//	[0,0.4)   r*150
func KeywordCurve(rate float64) int {
	var score float64
	switch {
	case rate >= 0.8:
		score = 90 + (rate-0.8)*50
	case rate >= 0.6:
		score = 75 + (rate-0.6)*75
	case rate >= 0.4:
		score = 60 + (rate-0.4)*75
	default:
		score = rate * 150
	}
	return roundScore(score)
}

// SkillsCurve maps a required-skill coverage rate in [0,1] to a 0-100 score:
//
//	[0.85,1]    95 + (r-0.85)*33
//	[0.70,0.85) 88 + (r-0.70)*47
//	[0.50,0.70) 78 + (r-0.50)*50
//	[0.30,0.50) 65 + (r-0.30)*65
//	[0,0.30)    r*217
func SkillsCurve(rate float64) int {
	var score float64
	switch {
	case rate >= 0.85:
		score = 95 + (rate-0.85)*33
	case rate >= 0.70:
		score = 88 + (rate-0.70)*47
	case rate >= 0.50:
		score = 78 + (rate-0.50)*50
	case rate >= 0.30:
		score = 65 + (rate-0.30)*65
	default:
		score = rate * 217
	}
	return roundScore(score)
}

// Combine applies the sub-score weights and rounds to an integer in [0,100].
func Combine(keyword, semantic, skills, distribution, ats int) int {
	total := float64(keyword)*KeywordMatchWeight +
		float64(semantic)*SemanticSimilarityWeight +
		float64(skills)*RequiredSkillsWeight +
		float64(distribution)*DistributionQualityWeight +
		float64(ats)*ATSHeuristicsWeight
	return roundScore(total)
}

func roundScore(x float64) int {
	return int(math.Round(math.Max(0, math.Min(100, x))))
}
