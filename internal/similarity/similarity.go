// Package similarity scores the lexical and statistical closeness of a résumé
// and a job description.
package similarity

import (
	"math"

	"github.com/smriittii/ats-optimizer-pro/internal/textnorm"
)

// Blend weights of the four similarity signals.
const (
	TFIDFWeight   = 0.40
	JaccardWeight = 0.30
	LCSWeight     = 0.15
	BigramWeight  = 0.15
)

// Components holds the raw 0-1 value of every blended signal.
type Components struct {
	TFIDF   float64 `json:"tfidf"`
	Jaccard float64 `json:"jaccard"`
	LCS     float64 `json:"lcs"`
	Bigram  float64 `json:"bigram"`
}

// Combined returns the weighted blend of the components in [0, 1].
func (c Components) Combined() float64 {
	return c.TFIDF*TFIDFWeight +
		c.Jaccard*JaccardWeight +
		c.LCS*LCSWeight +
		c.Bigram*BigramWeight
}

// Result is the reported similarity score.
type Result struct {
	Score      int
	Similarity float64
	Components Components
}

// Score compares two documents and returns the boosted 0-100 similarity.
func Score(resume, job string) Result {
	c := Compare(resume, job)
	score := Boost(c.Combined() * 100)
	return Result{
		Score:      score,
		Similarity: float64(score) / 100,
		Components: c,
	}
}

// Compare computes the raw similarity signals between two documents.
func Compare(a, b string) Components {
	ta := textnorm.SignificantTokens(a)
	tb := textnorm.SignificantTokens(b)

	vecs := Vectors(ta, tb)
	return Components{
		TFIDF:   Cosine(vecs[0], vecs[1]),
		Jaccard: jaccard(setOf(ta), setOf(tb)),
		LCS:     lcsRatio(ta, tb),
		Bigram:  bigramOverlap(ta, tb),
	}
}

// Boost maps a raw 0-100 score onto the reported scale:
//
//	[0,15)   x*3
//	[15,30)  45 + (x-15)
//	[30,50)  60 + (x-30)*0.75
//	[50,100] 75 + (x-50)*0.5
//
// The result is capped at 100 and rounded to the nearest integer.
func Boost(raw float64) int {
	var boosted float64
	switch {
	case raw >= 50:
		boosted = 75 + (raw-50)*0.5
	case raw >= 30:
		boosted = 60 + (raw-30)*0.75
	case raw >= 15:
		boosted = 45 + (raw - 15)
	default:
		boosted = raw * 3
	}
	return int(math.Round(math.Min(100, math.Max(0, boosted))))
}

func setOf(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}

func jaccard(a, b map[string]struct{}) float64 {
	inter := 0
	for t := range a {
		if _, ok := b[t]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

func bigramSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{})
	for i := 0; i+1 < len(tokens); i++ {
		set[tokens[i]+" "+tokens[i+1]] = struct{}{}
	}
	return set
}

func bigramOverlap(a, b []string) float64 {
	ba, bb := bigramSet(a), bigramSet(b)
	if len(ba) == 0 || len(bb) == 0 {
		return 0
	}
	return jaccard(ba, bb)
}
