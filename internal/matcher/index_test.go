package matcher

import (
	"testing"

	"atendebot/internal/models"
	"atendebot/internal/nlp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func corpusEntries(pairs ...[2]string) []models.FAQEntry {
	entries := make([]models.FAQEntry, len(pairs))
	for i, pair := range pairs {
		entries[i] = models.FAQEntry{
			ID:                 int64(i + 1),
			Question:           pair[0],
			Answer:             pair[1],
			NormalizedQuestion: nlp.Normalize(pair[0]),
		}
	}
	return entries
}

func TestBuildIndexEmptyCorpus(t *testing.T) {
	_, err := BuildIndex(nil)
	assert.ErrorIs(t, err, ErrEmptyCorpus)

	_, err = BuildIndex([]models.FAQEntry{})
	assert.ErrorIs(t, err, ErrEmptyCorpus)
}

func TestVectorEntryAlignment(t *testing.T) {
	entries := corpusEntries(
		[2]string{"Qual o horário de funcionamento?", "Funciona de segunda a sexta, 8h às 18h."},
		[2]string{"Como solicitar a limpeza de terrenos baldios?", "Use o aplicativo 156."},
		[2]string{"Onde fica a sede da administração regional?", "Na SQS 104, Bloco A."},
	)

	idx, err := BuildIndex(entries)
	require.NoError(t, err)
	require.Len(t, idx.vectors, len(entries))

	for i, entry := range idx.entries {
		assert.Equal(t, idx.vectorizer.Transform(entry.NormalizedQuestion), idx.vectors[i], "vector %d", i)
	}
}

func TestExactQuestionScoresOne(t *testing.T) {
	entries := corpusEntries(
		[2]string{"Qual o horário de funcionamento?", "Funciona de segunda a sexta, 8h às 18h."},
		[2]string{"Como denunciar poda irregular?", "Use o aplicativo 156 ou o site do GDF."},
	)

	idx, err := BuildIndex(entries)
	require.NoError(t, err)

	match := idx.Match("Qual o horário de funcionamento?", 0.1)
	require.NotNil(t, match.Entry)
	assert.Equal(t, int64(1), match.Entry.ID)
	assert.Equal(t, "Funciona de segunda a sexta, 8h às 18h.", match.Answer)
	assert.InDelta(t, 1.0, match.Score, 1e-9)
}

func TestOverlappingQueryMatches(t *testing.T) {
	entries := corpusEntries(
		[2]string{"Qual o horário de funcionamento?", "Funciona de segunda a sexta, 8h às 18h."},
	)

	idx, err := BuildIndex(entries)
	require.NoError(t, err)

	// Shares the "horário" stem with the stored question but not the rest.
	match := idx.Match("qual o horario de atendimento", 0.1)
	require.NotNil(t, match.Entry)
	assert.Equal(t, "Funciona de segunda a sexta, 8h às 18h.", match.Answer)
	assert.Greater(t, match.Score, 0.1)
}

func TestNoVocabularyOverlapFallsBack(t *testing.T) {
	entries := corpusEntries(
		[2]string{"Qual o horário de funcionamento?", "Funciona de segunda a sexta, 8h às 18h."},
	)

	idx, err := BuildIndex(entries)
	require.NoError(t, err)

	tests := []struct {
		name  string
		query string
	}{
		{"digits only", "12345"},
		{"empty query", ""},
		{"unknown vocabulary", "xyzwk plmqrt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match := idx.Match(tt.query, 0.1)
			assert.Nil(t, match.Entry)
			assert.InDelta(t, 0.0, match.Score, 1e-9)
		})
	}
}

func TestThresholdIsStrict(t *testing.T) {
	entries := corpusEntries(
		[2]string{"Qual o horário de funcionamento?", "Funciona de segunda a sexta, 8h às 18h."},
	)

	idx, err := BuildIndex(entries)
	require.NoError(t, err)

	// A zero score must not clear a zero threshold: strictly greater only.
	match := idx.Match("12345", 0.0)
	assert.Nil(t, match.Entry)
}

func TestTieBreaksOnFirstEntry(t *testing.T) {
	entries := corpusEntries(
		[2]string{"Qual o horário de funcionamento?", "Resposta da primeira entrada."},
		[2]string{"Qual o horário de funcionamento?", "Resposta da segunda entrada."},
	)

	idx, err := BuildIndex(entries)
	require.NoError(t, err)

	match := idx.Match("Qual o horário de funcionamento?", 0.1)
	require.NotNil(t, match.Entry)
	assert.Equal(t, int64(1), match.Entry.ID)
	assert.Equal(t, "Resposta da primeira entrada.", match.Answer)
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{"identical", []float64{1, 0, 0}, []float64{1, 0, 0}, 1.0},
		{"orthogonal", []float64{1, 0, 0}, []float64{0, 1, 0}, 0.0},
		{"similar", []float64{1, 1, 0}, []float64{1, 0, 0}, 0.7071},
		{"zero vector", []float64{0, 0, 0}, []float64{1, 0, 0}, 0.0},
		{"mismatched lengths", []float64{1, 0}, []float64{1, 0, 0}, 0.0},
		{"both empty", []float64{}, []float64{}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, cosineSimilarity(tt.a, tt.b), 1e-4)
		})
	}
}

func TestTransformOutOfVocabulary(t *testing.T) {
	entries := corpusEntries(
		[2]string{"Qual o horário de funcionamento?", "Funciona de segunda a sexta, 8h às 18h."},
	)

	idx, err := BuildIndex(entries)
	require.NoError(t, err)

	vec := idx.vectorizer.Transform("palavras totalmente desconhecidas")
	for i, w := range vec {
		assert.Zero(t, w, "component %d", i)
	}
}
