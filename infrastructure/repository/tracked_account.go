package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/creator-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/creator-insights-api/internal/domain"
)

const (
	trackedAccountsTable = "tracked_accounts ta"
)

type TrackedAccountRepository interface {
	GetByID(id domain.AccountID) (*domain.TrackedAccount, error)
	ListActive() ([]*domain.TrackedAccount, error)
	UpdateCredential(id domain.AccountID, credential *domain.Credential) error
	SaveOrUpdate(account *domain.TrackedAccount) error
}

type trackedAccountRepository struct {
	conn *postgres.Connection
}

func NewTrackedAccountRepository(conn *postgres.Connection) TrackedAccountRepository {
	return &trackedAccountRepository{
		conn: conn,
	}
}

func (r *trackedAccountRepository) GetByID(id domain.AccountID) (*domain.TrackedAccount, error) {
	query, args, err := squirrel.
		Select("ta.id, ta.user_id, ta.username, ta.niche, ta.active, ta.access_token, ta.external_user_id, ta.token_expires_at, ta.created_at, ta.updated_at").
		From(trackedAccountsTable).
		Where(squirrel.Eq{"ta.id": id.String()}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	account, err := r.scanAccount(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear conta: %w", err)
	}

	return account, nil
}

func (r *trackedAccountRepository) ListActive() ([]*domain.TrackedAccount, error) {
	query, args, err := squirrel.
		Select("ta.id, ta.user_id, ta.username, ta.niche, ta.active, ta.access_token, ta.external_user_id, ta.token_expires_at, ta.created_at, ta.updated_at").
		From(trackedAccountsTable).
		Where(squirrel.Eq{"ta.active": true}).
		OrderBy("ta.created_at ASC").
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

	accounts := make([]*domain.TrackedAccount, 0)
	for rows.Next() {
		account, err := r.scanAccountRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear contas: %w", err)
		}
		accounts = append(accounts, account)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return accounts, nil
}

// UpdateCredential substitui a credencial da conta por inteiro. A troca é
// um único UPDATE, portanto tudo-ou-nada por conta.
func (r *trackedAccountRepository) UpdateCredential(id domain.AccountID, credential *domain.Credential) error {
	query := squirrel.StatementBuilder.
		Update("tracked_accounts").
		Set("access_token", credential.AccessToken).
		Set("external_user_id", credential.ExternalUserID).
		Set("token_expires_at", credential.ExpiresAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id.String()}).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("conta não encontrada: %s", id)
	}

	return nil
}

func (r *trackedAccountRepository) SaveOrUpdate(account *domain.TrackedAccount) error {
	var accessToken, externalUserID any
	var expiresAt any
	if account.Credential != nil {
		accessToken = account.Credential.AccessToken
		externalUserID = account.Credential.ExternalUserID
		expiresAt = account.Credential.ExpiresAt
	}

	query := squirrel.StatementBuilder.
		Insert("tracked_accounts").
		Columns("id", "user_id", "username", "niche", "active", "access_token", "external_user_id", "token_expires_at").
		Values(
			account.ID.String(),
			account.UserID,
			account.Username,
			string(account.Niche),
			account.Active,
			accessToken,
			externalUserID,
			expiresAt,
		).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				username = EXCLUDED.username,
				niche = EXCLUDED.niche,
				active = EXCLUDED.active,
				access_token = EXCLUDED.access_token,
				external_user_id = EXCLUDED.external_user_id,
				token_expires_at = EXCLUDED.token_expires_at,
				updated_at = NOW()
		`).
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

func (r *trackedAccountRepository) scanAccount(row *sql.Row) (*domain.TrackedAccount, error) {
	account := &domain.TrackedAccount{}
	var accessToken, externalUserID sql.NullString
	var expiresAt sql.NullTime

	err := row.Scan(
		&account.ID,
		&account.UserID,
		&account.Username,
		&account.Niche,
		&account.Active,
		&accessToken,
		&externalUserID,
		&expiresAt,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	account.Credential = buildCredential(accessToken, externalUserID, expiresAt)

	return account, nil
}

func (r *trackedAccountRepository) scanAccountRows(rows *sql.Rows) (*domain.TrackedAccount, error) {
	account := &domain.TrackedAccount{}
	var accessToken, externalUserID sql.NullString
	var expiresAt sql.NullTime

	err := rows.Scan(
		&account.ID,
		&account.UserID,
		&account.Username,
		&account.Niche,
		&account.Active,
		&accessToken,
		&externalUserID,
		&expiresAt,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	account.Credential = buildCredential(accessToken, externalUserID, expiresAt)

	return account, nil
}

func buildCredential(accessToken, externalUserID sql.NullString, expiresAt sql.NullTime) *domain.Credential {
	if !accessToken.Valid || accessToken.String == "" {
		return nil
	}

	credential := &domain.Credential{
		AccessToken:    accessToken.String,
		ExternalUserID: externalUserID.String,
	}
	if expiresAt.Valid {
		t := expiresAt.Time
		credential.ExpiresAt = &t
	}

	return credential
}
