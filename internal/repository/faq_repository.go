package repository

import (
	"context"
	"fmt"

	"atendebot/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const faqSchema = `
CREATE TABLE IF NOT EXISTS perguntas_respostas (
	id               BIGSERIAL PRIMARY KEY,
	pergunta         TEXT NOT NULL,
	resposta         TEXT NOT NULL,
	texto_processado TEXT NOT NULL
)`

type FAQRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewFAQRepository(db *pgxpool.Pool, logger *zap.Logger) *FAQRepository {
	return &FAQRepository{
		db:     db,
		logger: logger,
	}
}

func (r *FAQRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, faqSchema); err != nil {
		return fmt.Errorf("failed to create perguntas_respostas table: %w", err)
	}
	return nil
}

// FetchAll returns every knowledge-base row in stable id order. The matcher
// relies on this ordering for its tie-break rule.
func (r *FAQRepository) FetchAll(ctx context.Context) ([]models.FAQEntry, error) {
	query := squirrel.Select("id", "pergunta", "resposta", "texto_processado").
		From("perguntas_respostas").
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.FAQEntry
	for rows.Next() {
		var entry models.FAQEntry
		if err := rows.Scan(&entry.ID, &entry.Question, &entry.Answer, &entry.NormalizedQuestion); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *FAQRepository) Insert(ctx context.Context, entry *models.FAQEntry) error {
	query := squirrel.Insert("perguntas_respostas").
		Columns("pergunta", "resposta", "texto_processado").
		Values(entry.Question, entry.Answer, entry.NormalizedQuestion).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	return r.db.QueryRow(ctx, sql, args...).Scan(&entry.ID)
}
