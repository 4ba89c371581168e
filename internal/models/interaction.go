package models

import (
	"time"

	"github.com/google/uuid"
)

// Interaction is one answered request, recorded for the spreadsheet export.
// Append-only; the serving path never reads it back.
type Interaction struct {
	ID         uuid.UUID `db:"id"`
	UserID     string    `db:"usuario_id"`
	Question   string    `db:"pergunta"`
	Answer     string    `db:"resposta"`
	Confidence float64   `db:"confianca"`
	CreatedAt  time.Time `db:"criado_em"`
}
