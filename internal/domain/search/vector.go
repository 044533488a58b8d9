// Package search implements the keyword-overlap ranking used for
// semantic search: sparse term-frequency vectors scored by cosine
// similarity. It operates on raw lowercase whitespace-split tokens,
// with no stemming, stopword removal or punctuation stripping.
package search

import (
	"math"
	"strings"
)

// TermVector is a sparse term-frequency vector: token → occurrence count.
type TermVector map[string]int

// Vectorize turns a text into a term-frequency vector. Total over all
// inputs; empty or whitespace-only text yields an empty vector.
func Vectorize(text string) TermVector {
	v := make(TermVector)
	for _, tok := range strings.Fields(strings.ToLower(text)) {
		v[tok]++
	}
	return v
}

// Cosine computes the cosine similarity of two term vectors. The dot
// product is restricted to the key intersection; absent terms have an
// implicit count of zero. Returns 0 when either vector has zero
// magnitude rather than dividing by zero.
func Cosine(a, b TermVector) float64 {
	var dot int
	for tok, ca := range a {
		if cb, ok := b[tok]; ok {
			dot += ca * cb
		}
	}

	var sumA, sumB int
	for _, c := range a {
		sumA += c * c
	}
	for _, c := range b {
		sumB += c * c
	}

	if sumA == 0 || sumB == 0 {
		return 0.0
	}
	return float64(dot) / math.Sqrt(float64(sumA)*float64(sumB))
}
