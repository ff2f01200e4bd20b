package order

import (
	"context"
	"database/sql"
)

// DBExecutor интерфейс над *sql.DB, достаточный для репозитория
// Позволяет подменять соединение в тестах
type DBExecutor interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
