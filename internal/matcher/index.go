// Package matcher builds the in-memory vector-space index over the FAQ
// corpus and answers similarity queries against it.
package matcher

import (
	"errors"
	"math"

	"atendebot/internal/models"
	"atendebot/internal/nlp"
)

// ErrEmptyCorpus is returned when an index build is attempted with zero
// reference entries; a vector space cannot be fitted on nothing.
var ErrEmptyCorpus = errors.New("cannot build index from an empty corpus")

// Index holds the fitted vector space, one vector per corpus entry and the
// entries themselves, index-aligned. It is immutable after construction, so
// concurrent Match calls need no locking; replacing the corpus means
// building a new Index.
type Index struct {
	vectorizer *Vectorizer
	entries    []models.FAQEntry
	vectors    [][]float64
}

// Match is the result of a similarity lookup. Entry is nil when no corpus
// entry cleared the acceptance threshold; Score always carries the best
// similarity found, threshold or not.
type Match struct {
	Entry  *models.FAQEntry
	Answer string
	Score  float64
}

// BuildIndex fits the vector space over the precomputed NormalizedQuestion
// of every entry and transforms each one into it. Entries are never
// re-normalized here; that happened once at seed time.
func BuildIndex(entries []models.FAQEntry) (*Index, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyCorpus
	}

	docs := make([]string, len(entries))
	for i, entry := range entries {
		docs[i] = entry.NormalizedQuestion
	}

	vectorizer := fitVectorizer(docs)
	vectors := make([][]float64, len(docs))
	for i, doc := range docs {
		vectors[i] = vectorizer.Transform(doc)
	}

	return &Index{
		vectorizer: vectorizer,
		entries:    entries,
		vectors:    vectors,
	}, nil
}

// Size returns the number of indexed entries.
func (idx *Index) Size() int {
	return len(idx.entries)
}

// Match normalizes the raw query, projects it with the already-fitted
// transform and returns the most similar entry. Ties break on the first
// occurrence in corpus order; the best score must strictly exceed threshold
// for the entry to be accepted. A query that normalizes to nothing scores
// zero against everything and therefore never matches.
func (idx *Index) Match(query string, threshold float64) Match {
	queryVec := idx.vectorizer.Transform(nlp.Normalize(query))

	best := -1.0
	bestIdx := -1
	for i, vec := range idx.vectors {
		if score := cosineSimilarity(queryVec, vec); score > best {
			best = score
			bestIdx = i
		}
	}

	if bestIdx < 0 {
		return Match{}
	}
	if best > threshold {
		entry := &idx.entries[bestIdx]
		return Match{Entry: entry, Answer: entry.Answer, Score: best}
	}
	return Match{Score: best}
}

func cosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
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
