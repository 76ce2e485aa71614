package postgres

import (
	"database/sql"
)

// Queryer é o subconjunto de operações de consulta usado pelos
// repositórios, satisfeito tanto por *sql.DB quanto por *sql.Tx
type Queryer interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}
