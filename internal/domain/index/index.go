// Package index provides stateless nearest-neighbor search over embedding
// vectors using cosine distance.
package index

import (
	"math"
	"sort"
)

// Neighbor is a corpus position with its cosine distance from the query.
type Neighbor struct {
	Index    int
	Distance float64
}

// Nearest returns the k corpus vectors closest to query by cosine distance
// (1 - cosine similarity), ascending. Ties are broken by original corpus
// order. k is clamped to the corpus size; an undersized corpus is not an
// error. The index is rebuilt per call; the corpus is assumed small enough
// that rebuild cost is acceptable.
func Nearest(query []float64, corpus [][]float64, k int) []Neighbor {
	if k <= 0 || len(corpus) == 0 {
		return nil
	}
	if k > len(corpus) {
		k = len(corpus)
	}

	neighbors := make([]Neighbor, len(corpus))
	for i, v := range corpus {
		neighbors[i] = Neighbor{Index: i, Distance: 1 - CosineSimilarity(query, v)}
	}
	sort.SliceStable(neighbors, func(i, j int) bool {
		return neighbors[i].Distance < neighbors[j].Distance
	})
	return neighbors[:k]
}

// CosineSimilarity computes the cosine of the angle between a and b.
// Zero-norm or mismatched-length vectors yield 0.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
