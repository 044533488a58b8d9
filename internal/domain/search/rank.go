package search

import (
	"sort"

	"github.com/docintel-cloud/docintel/internal/domain/document"
)

const (
	// DefaultTopK is the number of results returned when the caller does
	// not specify one.
	DefaultTopK = 10
	// MaxTopK caps the result size a caller may request.
	MaxTopK = 100
)

// Result is a ranked document with its cosine score attached. The score
// is transient presentation data, never written back to the store.
type Result struct {
	Document   document.Document
	Similarity float64
}

// Rank scores every document against the query and returns the topK best
// matches, best first. Documents scoring exactly zero are excluded: that
// is the relevance cutoff, not an error. An empty query vectorizes to an
// empty vector, so every document scores zero and the result is empty.
//
// This is a full scan, O(len(docs) × average text length); there is no
// index. Ties keep the iteration order of docs (stable sort).
func Rank(query string, docs []document.Document, topK int) []Result {
	if topK <= 0 {
		topK = DefaultTopK
	}

	queryVec := Vectorize(query)

	results := make([]Result, 0)
	for _, doc := range docs {
		score := Cosine(queryVec, Vectorize(doc.SearchText()))
		if score > 0 {
			results = append(results, Result{Document: doc, Similarity: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Similarity > results[j].Similarity
	})

	if len(results) > topK {
		results = results[:topK]
	}
	return results
}
