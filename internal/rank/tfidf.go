// Package rank scores job offers against a search query.
package rank

import (
	"math"
	"strings"
	"unicode"
)

// Index holds the inverse-document-frequency table built from a reference
// corpus. Immutable after construction, safe for concurrent use.
type Index struct {
	idf map[string]float64
}

// NewIndex builds the IDF table over corpus. For every distinct token:
//
//	idf(t) = ln( corpusSize / (docsContaining(t) + 1) )
//
// The +1 keeps idf finite; it may go negative for tokens present in
// nearly every document, which is intentional smoothing.
func NewIndex(corpus []string) *Index {
	docFreq := make(map[string]int)
	for _, doc := range corpus {
		seen := make(map[string]struct{})
		for _, tok := range Tokenize(doc) {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			docFreq[tok]++
		}
	}

	idf := make(map[string]float64, len(docFreq))
	n := float64(len(corpus))
	for tok, df := range docFreq {
		idf[tok] = math.Log(n / float64(df+1))
	}

	return &Index{idf: idf}
}

// Score sums tf(t, document) * idf(t) over the query's tokens. Tokens
// absent from the corpus contribute nothing. A document with no tokens
// scores 0. Deterministic: no clock, no randomness.
func (x *Index) Score(query, document string) float64 {
	docTokens := Tokenize(document)
	if len(docTokens) == 0 {
		return 0
	}

	counts := make(map[string]int, len(docTokens))
	for _, tok := range docTokens {
		counts[tok]++
	}
	total := float64(len(docTokens))

	var score float64
	for _, tok := range Tokenize(query) {
		idf, ok := x.idf[tok]
		if !ok {
			continue
		}
		score += float64(counts[tok]) / total * idf
	}
	return score
}

// Tokenize lower-cases text and splits it on runs of non-alphanumeric
// characters, discarding empty tokens. No minimum token length.
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
