package embedding

import (
	"context"
	"math"
	"sort"
	"strings"
)

// TFIDF is a self-contained vectorizer: the vocabulary is fitted over the
// documents of each Embed call, so corpus and query must be embedded
// together. Deterministic: the vocabulary is sorted, so identical inputs
// produce identical vectors.
type TFIDF struct{}

// NewTFIDF creates a TF-IDF embedder.
func NewTFIDF() *TFIDF {
	return &TFIDF{}
}

// Embed returns one dense TF-IDF vector per document. All vectors share the
// vocabulary dimension of this call. A document with no tokens embeds as the
// zero vector.
func (t *TFIDF) Embed(_ context.Context, documents []string) ([][]float64, error) {
	tokenized := make([][]string, len(documents))
	for i, doc := range documents {
		tokenized[i] = strings.Fields(doc)
	}

	// Document frequencies.
	df := make(map[string]int)
	for _, doc := range tokenized {
		seen := make(map[string]bool, len(doc))
		for _, w := range doc {
			if !seen[w] {
				df[w]++
				seen[w] = true
			}
		}
	}

	// Sorted vocabulary keeps vector layout deterministic.
	vocab := make([]string, 0, len(df))
	for w := range df {
		vocab = append(vocab, w)
	}
	sort.Strings(vocab)
	position := make(map[string]int, len(vocab))
	for i, w := range vocab {
		position[w] = i
	}

	n := float64(len(documents))
	idf := make([]float64, len(vocab))
	for i, w := range vocab {
		idf[i] = math.Log(n/float64(df[w])) + 1.0
	}

	vectors := make([][]float64, len(documents))
	for i, doc := range tokenized {
		vec := make([]float64, len(vocab))
		if len(doc) > 0 {
			tf := make(map[string]int, len(doc))
			for _, w := range doc {
				tf[w]++
			}
			for w, cnt := range tf {
				p := position[w]
				vec[p] = float64(cnt) / float64(len(doc)) * idf[p]
			}
		}
		vectors[i] = vec
	}
	return vectors, nil
}
