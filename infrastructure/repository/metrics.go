package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/creator-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/creator-insights-api/internal/domain"
)

const (
	metricsTable = "metrics_records mr"
)

type MetricsRepository interface {
	Save(record *domain.MetricsRecord) error
	GetByPeriod(accountID domain.AccountID, start, end time.Time) ([]*domain.MetricsRecord, error)
	GetRecent(accountID domain.AccountID, limit int) ([]*domain.MetricsRecord, error)
	DeleteOlderThan(days int) (int64, error)
}

type metricsRepository struct {
	conn *postgres.Connection
}

func NewMetricsRepository(conn *postgres.Connection) MetricsRepository {
	return &metricsRepository{
		conn: conn,
	}
}

// Save grava um novo ponto da série temporal. A série é append-only,
// então é sempre um INSERT simples, sem upsert.
func (r *metricsRepository) Save(record *domain.MetricsRecord) error {
	var perPostJSON []byte
	var err error

	if record.PerPost != nil {
		perPostJSON, err = json.Marshal(record.PerPost)
		if err != nil {
			return fmt.Errorf("erro ao serializar métricas por publicação para JSON: %w", err)
		}
	}

	query := squirrel.StatementBuilder.
		Insert("metrics_records").
		Columns(
			"id", "account_id", "captured_at", "followers_count", "following_count",
			"posts_count", "avg_engagement_rate", "total_likes", "total_comments",
			"total_reach", "per_post",
		).
		Values(
			record.ID,
			record.AccountID.String(),
			record.CapturedAt,
			record.FollowersCount,
			record.FollowingCount,
			record.PostsCount,
			record.AvgEngagementRate,
			record.TotalLikes,
			record.TotalComments,
			record.TotalReach,
			perPostJSON,
		).
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

func (r *metricsRepository) GetByPeriod(accountID domain.AccountID, start, end time.Time) ([]*domain.MetricsRecord, error) {
	query, args, err := squirrel.
		Select("mr.id, mr.account_id, mr.captured_at, mr.followers_count, mr.following_count, mr.posts_count, mr.avg_engagement_rate, mr.total_likes, mr.total_comments, mr.total_reach, mr.per_post, mr.created_at").
		From(metricsTable).
		Where(squirrel.Eq{"mr.account_id": accountID.String()}).
		Where(squirrel.GtOrEq{"mr.captured_at": start}).
		Where(squirrel.LtOrEq{"mr.captured_at": end}).
		OrderBy("mr.captured_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryRecords(query, args...)
}

func (r *metricsRepository) GetRecent(accountID domain.AccountID, limit int) ([]*domain.MetricsRecord, error) {
	query, args, err := squirrel.
		Select("mr.id, mr.account_id, mr.captured_at, mr.followers_count, mr.following_count, mr.posts_count, mr.avg_engagement_rate, mr.total_likes, mr.total_comments, mr.total_reach, mr.per_post, mr.created_at").
		From(metricsTable).
		Where(squirrel.Eq{"mr.account_id": accountID.String()}).
		OrderBy("mr.captured_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryRecords(query, args...)
}

func (r *metricsRepository) DeleteOlderThan(days int) (int64, error) {
	cutoff := retentionCutoff(time.Now(), days)

	query, args, err := squirrel.
		Delete("metrics_records").
		Where(squirrel.Lt{"captured_at": cutoff}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *metricsRepository) queryRecords(query string, args ...any) ([]*domain.MetricsRecord, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.MetricsRecord, 0)
	for rows.Next() {
		record, err := r.scanRecordRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear registros de métricas: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func (r *metricsRepository) scanRecordRows(rows *sql.Rows) (*domain.MetricsRecord, error) {
	record := &domain.MetricsRecord{}
	var perPostJSON []byte

	err := rows.Scan(
		&record.ID,
		&record.AccountID,
		&record.CapturedAt,
		&record.FollowersCount,
		&record.FollowingCount,
		&record.PostsCount,
		&record.AvgEngagementRate,
		&record.TotalLikes,
		&record.TotalComments,
		&record.TotalReach,
		&perPostJSON,
		&record.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if perPostJSON != nil {
		perPost := make([]domain.PostMetric, 0)
		if err := json.Unmarshal(perPostJSON, &perPost); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de per_post: %w", err)
		}
		record.PerPost = perPost
	}

	return record, nil
}
