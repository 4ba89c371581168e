package models

// FAQEntry is one row of the knowledge base: a reference question with its
// pre-authored answer. NormalizedQuestion is computed once by the seed tool
// with nlp.Normalize and persisted, so index builds never re-normalize the
// corpus. It must stay in sync with the normalization rules; changing those
// rules requires re-seeding every row.
type FAQEntry struct {
	ID                 int64  `db:"id"`
	Question           string `db:"pergunta"`
	Answer             string `db:"resposta"`
	NormalizedQuestion string `db:"texto_processado"`
}
