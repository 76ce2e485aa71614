package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/creator-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/creator-insights-api/internal/domain"
)

const (
	feedbacksTable = "post_feedbacks pf"

	// Código do PostgreSQL para violação de constraint de unicidade
	uniqueViolationCode = "23505"
)

// ErrFeedbackAlreadyExists indica que já existe feedback para o post_id.
// A constraint de unicidade no banco é a garantia final de idempotência.
var ErrFeedbackAlreadyExists = errors.New("feedback já existe para esta publicação")

type FeedbackRepository interface {
	Save(record *domain.FeedbackRecord) error
	ExistsByPostID(postID domain.PostID) (bool, error)
	GetByPeriod(accountID domain.AccountID, start, end time.Time) ([]*domain.FeedbackRecord, error)
}

type feedbackRepository struct {
	conn *postgres.Connection
}

func NewFeedbackRepository(conn *postgres.Connection) FeedbackRepository {
	return &feedbackRepository{
		conn: conn,
	}
}

func (r *feedbackRepository) Save(record *domain.FeedbackRecord) error {
	scoresJSON, err := json.Marshal(record.Scores)
	if err != nil {
		return fmt.Errorf("erro ao serializar notas para JSON: %w", err)
	}

	suggestionsJSON, err := json.Marshal(record.Suggestions)
	if err != nil {
		return fmt.Errorf("erro ao serializar sugestões para JSON: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert("post_feedbacks").
		Columns("id", "account_id", "post_id", "post_url", "caption", "post_kind", "scores", "feedback_text", "suggestions").
		Values(
			record.ID,
			record.AccountID.String(),
			record.PostID.String(),
			record.PostURL,
			record.Caption,
			record.PostKind,
			scoresJSON,
			record.FeedbackText,
			suggestionsJSON,
		).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == uniqueViolationCode {
				return ErrFeedbackAlreadyExists
			}
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *feedbackRepository) ExistsByPostID(postID domain.PostID) (bool, error) {
	query, args, err := squirrel.
		Select("1").
		From(feedbacksTable).
		Where(squirrel.Eq{"pf.post_id": postID.String()}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var one int
	err = r.conn.QueryRow(query, args...).Scan(&one)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return true, nil
}

func (r *feedbackRepository) GetByPeriod(accountID domain.AccountID, start, end time.Time) ([]*domain.FeedbackRecord, error) {
	query, args, err := squirrel.
		Select("pf.id, pf.account_id, pf.post_id, pf.post_url, pf.caption, pf.post_kind, pf.scores, pf.feedback_text, pf.suggestions, pf.created_at").
		From(feedbacksTable).
		Where(squirrel.Eq{"pf.account_id": accountID.String()}).
		Where(squirrel.GtOrEq{"pf.created_at": start}).
		Where(squirrel.LtOrEq{"pf.created_at": end}).
		OrderBy("pf.created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.FeedbackRecord, 0)
	for rows.Next() {
		record, err := r.scanFeedbackRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear feedbacks: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func (r *feedbackRepository) scanFeedbackRows(rows *sql.Rows) (*domain.FeedbackRecord, error) {
	record := &domain.FeedbackRecord{}
	var scoresJSON, suggestionsJSON []byte

	err := rows.Scan(
		&record.ID,
		&record.AccountID,
		&record.PostID,
		&record.PostURL,
		&record.Caption,
		&record.PostKind,
		&scoresJSON,
		&record.FeedbackText,
		&suggestionsJSON,
		&record.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if scoresJSON != nil {
		if err := json.Unmarshal(scoresJSON, &record.Scores); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de scores: %w", err)
		}
	}

	if suggestionsJSON != nil {
		if err := json.Unmarshal(suggestionsJSON, &record.Suggestions); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de suggestions: %w", err)
		}
	}

	return record, nil
}
