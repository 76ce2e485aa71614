package repository

import (
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/creator-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/creator-insights-api/internal/domain"
)

type ContentSuggestionRepository interface {
	Save(id string, accountID domain.AccountID, niche domain.Niche, suggestions []string) error
}

type contentSuggestionRepository struct {
	conn *postgres.Connection
}

func NewContentSuggestionRepository(conn *postgres.Connection) ContentSuggestionRepository {
	return &contentSuggestionRepository{
		conn: conn,
	}
}

func (r *contentSuggestionRepository) Save(id string, accountID domain.AccountID, niche domain.Niche, suggestions []string) error {
	suggestionsJSON, err := json.Marshal(suggestions)
	if err != nil {
		return fmt.Errorf("erro ao serializar sugestões para JSON: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert("content_suggestions").
		Columns("id", "account_id", "niche", "suggestions").
		Values(id, accountID.String(), string(niche), suggestionsJSON).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
