// Package nlp implements the text-normalization pipeline shared by the
// matcher and the corpus seed tool. The same pipeline is applied to every
// reference question at seed time and to every incoming query at request
// time; matching only works because both sides agree on it.
package nlp

import (
	"strings"
	"unicode"

	"github.com/blevesearch/snowballstem"
	"github.com/blevesearch/snowballstem/portuguese"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize reduces free text to a space-joined sequence of Portuguese stems.
// Steps, in fixed order: lowercase, strip diacritics, expand abbreviations,
// drop anything that is not a letter or whitespace, remove stopwords, stem.
// Pure and deterministic; returns "" when every token is filtered out.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	lowered := cases.Lower(language.BrazilianPortuguese).String(text)
	folded := stripDiacritics(lowered)
	expanded := expandAbbreviations(folded)
	cleaned := stripNonLetters(expanded)

	var stems []string
	for _, token := range strings.Fields(cleaned) {
		if _, stop := stopwords[token]; stop {
			continue
		}
		stems = append(stems, stem(token))
	}

	return strings.Join(stems, " ")
}

// stripDiacritics decomposes accented letters and drops the combining marks,
// so "administração" becomes "administracao".
func stripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// expandAbbreviations replaces whole words found in the abbreviation table
// with their expansions; everything else passes through unchanged.
func expandAbbreviations(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		if expansion, ok := abbreviations[word]; ok {
			words[i] = expansion
		}
	}
	return strings.Join(words, " ")
}

// stripNonLetters keeps lowercase ASCII letters and whitespace only. Digits
// and punctuation carry no matching signal in this corpus.
func stripNonLetters(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r
		case unicode.IsSpace(r):
			return r
		default:
			return -1
		}
	}, s)
}

func stem(token string) string {
	env := snowballstem.NewEnv(token)
	portuguese.Stem(env)
	return env.Current()
}
