package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/creator-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/creator-insights-api/internal/domain"
)

const (
	reportsTable = "report_records rr"
)

type ReportRepository interface {
	Save(record *domain.ReportRecord) error
	GetByID(id string) (*domain.ReportRecord, error)
	MarkReady(id string, artifactPath string) error
	ListOlderThan(days int) ([]*domain.ReportRecord, error)
	DeleteOlderThan(days int) (int64, error)
}

type reportRepository struct {
	conn *postgres.Connection
}

func NewReportRepository(conn *postgres.Connection) ReportRepository {
	return &reportRepository{
		conn: conn,
	}
}

func (r *reportRepository) Save(record *domain.ReportRecord) error {
	query := squirrel.StatementBuilder.
		Insert("report_records").
		Columns("id", "account_id", "report_kind", "period_start", "period_end", "title", "summary", "artifact_path", "is_ready").
		Values(
			record.ID,
			record.AccountID.String(),
			string(record.Kind),
			record.PeriodStart,
			record.PeriodEnd,
			record.Title,
			record.Summary,
			record.ArtifactPath,
			record.IsReady,
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

func (r *reportRepository) GetByID(id string) (*domain.ReportRecord, error) {
	query, args, err := squirrel.
		Select("rr.id, rr.account_id, rr.report_kind, rr.period_start, rr.period_end, rr.title, rr.summary, rr.artifact_path, rr.is_ready, rr.created_at").
		From(reportsTable).
		Where(squirrel.Eq{"rr.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	record, err := r.scanReport(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear relatório: %w", err)
	}

	return record, nil
}

// MarkReady faz a única mutação permitida em um relatório: a transição de
// placeholder para pronto, preenchendo o caminho do artefato.
func (r *reportRepository) MarkReady(id string, artifactPath string) error {
	query := squirrel.StatementBuilder.
		Update("report_records").
		Set("artifact_path", artifactPath).
		Set("is_ready", true).
		Where(squirrel.Eq{"id": id, "is_ready": false}).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("relatório não encontrado ou já finalizado: %s", id)
	}

	return nil
}

func (r *reportRepository) ListOlderThan(days int) ([]*domain.ReportRecord, error) {
	cutoff := retentionCutoff(time.Now(), days)

	query, args, err := squirrel.
		Select("rr.id, rr.account_id, rr.report_kind, rr.period_start, rr.period_end, rr.title, rr.summary, rr.artifact_path, rr.is_ready, rr.created_at").
		From(reportsTable).
		Where(squirrel.Lt{"rr.created_at": cutoff}).
		OrderBy("rr.created_at ASC").
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

	records := make([]*domain.ReportRecord, 0)
	for rows.Next() {
		record, err := r.scanReportRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear relatórios: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func (r *reportRepository) DeleteOlderThan(days int) (int64, error) {
	cutoff := retentionCutoff(time.Now(), days)

	query, args, err := squirrel.
		Delete("report_records").
		Where(squirrel.Lt{"created_at": cutoff}).
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

func (r *reportRepository) scanReport(row *sql.Row) (*domain.ReportRecord, error) {
	record := &domain.ReportRecord{}
	var artifactPath sql.NullString

	err := row.Scan(
		&record.ID,
		&record.AccountID,
		&record.Kind,
		&record.PeriodStart,
		&record.PeriodEnd,
		&record.Title,
		&record.Summary,
		&artifactPath,
		&record.IsReady,
		&record.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if artifactPath.Valid {
		record.ArtifactPath = &artifactPath.String
	}

	return record, nil
}

func (r *reportRepository) scanReportRows(rows *sql.Rows) (*domain.ReportRecord, error) {
	record := &domain.ReportRecord{}
	var artifactPath sql.NullString

	err := rows.Scan(
		&record.ID,
		&record.AccountID,
		&record.Kind,
		&record.PeriodStart,
		&record.PeriodEnd,
		&record.Title,
		&record.Summary,
		&artifactPath,
		&record.IsReady,
		&record.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if artifactPath.Valid {
		record.ArtifactPath = &artifactPath.String
	}

	return record, nil
}
