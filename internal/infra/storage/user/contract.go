package user

import (
	"context"
	"database/sql"
)

// DBExecutor интерфейс над *sql.DB, достаточный для репозитория
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}
