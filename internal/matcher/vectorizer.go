package matcher

import (
	"math"
	"sort"
	"strings"
)

// Vectorizer is a TF-IDF vector space fitted once over the whole corpus of
// normalized questions. It expects its input to already be normalized
// (space-joined stems); tokenization here is a plain whitespace split.
type Vectorizer struct {
	vocabulary map[string]int
	idf        []float64
}

// fitVectorizer builds the vocabulary and smoothed IDF values in one pass
// over the corpus documents.
func fitVectorizer(docs []string) *Vectorizer {
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{})
		for _, term := range strings.Fields(doc) {
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			df[term]++
		}
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	v := &Vectorizer{
		vocabulary: make(map[string]int, len(terms)),
		idf:        make([]float64, len(terms)),
	}
	n := float64(len(docs))
	for i, term := range terms {
		v.vocabulary[term] = i
		v.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}
	return v
}

// Transform projects normalized text into the fitted space and returns an
// L2-normalized TF-IDF vector. Out-of-vocabulary terms contribute nothing;
// text sharing no vocabulary with the corpus yields the zero vector.
func (v *Vectorizer) Transform(text string) []float64 {
	vec := make([]float64, len(v.idf))

	counts := make(map[int]int)
	total := 0
	for _, term := range strings.Fields(text) {
		if idx, ok := v.vocabulary[term]; ok {
			counts[idx]++
			total++
		}
	}
	if total == 0 {
		return vec
	}

	for idx, count := range counts {
		tf := float64(count) / float64(total)
		vec[idx] = tf * v.idf[idx]
	}

	var norm float64
	for _, w := range vec {
		norm += w * w
	}
	norm = math.Sqrt(norm)
	if norm > 0 {
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}
