package repository

import (
	"context"
	"fmt"

	"atendebot/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const interactionSchema = `
CREATE TABLE IF NOT EXISTS historico_interacoes (
	id         UUID PRIMARY KEY,
	usuario_id TEXT NOT NULL,
	pergunta   TEXT NOT NULL,
	resposta   TEXT NOT NULL,
	confianca  DOUBLE PRECISION NOT NULL,
	criado_em  TIMESTAMPTZ NOT NULL
)`

type InteractionRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewInteractionRepository(db *pgxpool.Pool, logger *zap.Logger) *InteractionRepository {
	return &InteractionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *InteractionRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, interactionSchema); err != nil {
		return fmt.Errorf("failed to create historico_interacoes table: %w", err)
	}
	return nil
}

func (r *InteractionRepository) Insert(ctx context.Context, interaction *models.Interaction) error {
	query := squirrel.Insert("historico_interacoes").
		Columns("id", "usuario_id", "pergunta", "resposta", "confianca", "criado_em").
		Values(interaction.ID, interaction.UserID, interaction.Question, interaction.Answer,
			interaction.Confidence, interaction.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// ListAll returns the whole interaction history in insertion order. Only the
// spreadsheet export reads this; the serving path never does.
func (r *InteractionRepository) ListAll(ctx context.Context) ([]models.Interaction, error) {
	query := squirrel.Select("id", "usuario_id", "pergunta", "resposta", "confianca", "criado_em").
		From("historico_interacoes").
		OrderBy("criado_em ASC").
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

	var interactions []models.Interaction
	for rows.Next() {
		var interaction models.Interaction
		if err := rows.Scan(&interaction.ID, &interaction.UserID, &interaction.Question,
			&interaction.Answer, &interaction.Confidence, &interaction.CreatedAt); err != nil {
			return nil, err
		}
		interactions = append(interactions, interaction)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return interactions, nil
}
