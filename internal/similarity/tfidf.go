package similarity

import (
	"math"
	"sort"
)

// Vector is a sparse TF-IDF term vector.
type Vector map[string]float64

// termFrequencies returns count/total for every token. Empty input yields an
// empty map.
func termFrequencies(tokens []string) map[string]float64 {
	tf := make(map[string]float64)
	if len(tokens) == 0 {
		return tf
	}
	for _, tok := range tokens {
		tf[tok]++
	}
	total := float64(len(tokens))
	for term := range tf {
		tf[term] /= total
	}
	return tf
}

// inverseDocumentFrequencies computes smoothed IDF over docs:
// ln((N+1)/(df+1)) + 1.
func inverseDocumentFrequencies(docs [][]string) map[string]float64 {
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{}, len(doc))
		for _, tok := range doc {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	n := float64(len(docs))
	idf := make(map[string]float64, len(df))
	for term, count := range df {
		idf[term] = math.Log((n+1)/(float64(count)+1)) + 1
	}
	return idf
}

// Vectors builds one TF-IDF vector per tokenized document, with IDF computed
// over exactly the given documents.
func Vectors(docs ...[]string) []Vector {
	idf := inverseDocumentFrequencies(docs)
	out := make([]Vector, len(docs))
	for i, doc := range docs {
		v := make(Vector)
		for term, tf := range termFrequencies(doc) {
			v[term] = tf * idf[term]
		}
		out[i] = v
	}
	return out
}

// Cosine returns the cosine similarity of a and b over the union of their
// terms, or 0 when either vector has zero magnitude.
func Cosine(a, b Vector) float64 {
	// Terms are summed in sorted order so repeated calls agree bit for bit.
	terms := make([]string, 0, len(a)+len(b))
	for t := range a {
		terms = append(terms, t)
	}
	for t := range b {
		if _, ok := a[t]; !ok {
			terms = append(terms, t)
		}
	}
	sort.Strings(terms)

	var dot, magA, magB float64
	for _, t := range terms {
		x, y := a[t], b[t]
		dot += x * y
		magA += x * x
		magB += y * y
	}
	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}
