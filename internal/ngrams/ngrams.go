// Package ngrams mines frequency-ranked unigrams, bigrams and trigrams from
// text.
package ngrams

import (
	"sort"
	"strings"

	"github.com/smriittii/ats-optimizer-pro/internal/textnorm"
	"github.com/smriittii/ats-optimizer-pro/internal/types"
)

const (
	// DefaultMaxCount is the number of phrases All returns by default.
	DefaultMaxCount = 40

	// minTokenLength is exclusive: tokens must be longer than this.
	minTokenLength = 2

	// minPhraseCount drops bigrams and trigrams seen fewer times than this.
	minPhraseCount = 2

	trigramWeight = 3
	bigramWeight  = 2
	unigramWeight = 1
)

// counter counts occurrences while remembering first-seen order.
type counter struct {
	order  []string
	counts map[string]int
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(key string) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

// ngrams returns the counted entries sorted by count descending. Equal counts
// keep first-seen order.
func (c *counter) ngrams(kind types.NGramKind, minCount int) []types.NGram {
	out := make([]types.NGram, 0, len(c.order))
	for _, key := range c.order {
		if n := c.counts[key]; n >= minCount {
			out = append(out, types.NGram{Text: key, Count: n, Kind: kind})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

func significant(token string) bool {
	return len(token) > minTokenLength && !textnorm.IsStopword(token)
}

// Unigrams returns single-token keywords sorted by frequency.
func Unigrams(text string) []types.NGram {
	c := newCounter()
	for _, tok := range textnorm.Tokenize(text) {
		if significant(tok) {
			c.add(tok)
		}
	}
	return c.ngrams(types.Unigram, 1)
}

// Bigrams returns two-token phrases seen at least twice.
func Bigrams(text string) []types.NGram {
	return windowed(textnorm.Tokenize(text), 2, types.Bigram)
}

// Trigrams returns three-token phrases seen at least twice.
func Trigrams(text string) []types.NGram {
	return windowed(textnorm.Tokenize(text), 3, types.Trigram)
}

func windowed(tokens []string, size int, kind types.NGramKind) []types.NGram {
	c := newCounter()
	for i := 0; i+size <= len(tokens); i++ {
		window := tokens[i : i+size]
		valid := true
		for _, tok := range window {
			if !significant(tok) {
				valid = false
				break
			}
		}
		if valid {
			c.add(strings.Join(window, " "))
		}
	}
	return c.ngrams(kind, minPhraseCount)
}

func weightOf(ng types.NGram) int {
	switch ng.Kind {
	case types.Trigram:
		return ng.Count * trigramWeight
	case types.Bigram:
		return ng.Count * bigramWeight
	default:
		return ng.Count * unigramWeight
	}
}

// All merges trigrams, bigrams and unigrams, ranks them by weighted count and
// returns at most maxCount entries. A non-positive maxCount means
// DefaultMaxCount.
//
// Equal weights keep merge order: trigrams first, then bigrams, then
// unigrams, each in frequency then first-seen order.
func All(text string, maxCount int) []types.NGram {
	if maxCount <= 0 {
		maxCount = DefaultMaxCount
	}

	tokens := textnorm.Tokenize(text)
	merged := windowed(tokens, 3, types.Trigram)
	merged = append(merged, windowed(tokens, 2, types.Bigram)...)
	merged = append(merged, Unigrams(text)...)

	sort.SliceStable(merged, func(i, j int) bool {
		return weightOf(merged[i]) > weightOf(merged[j])
	})

	if len(merged) > maxCount {
		merged = merged[:maxCount]
	}
	return merged
}
