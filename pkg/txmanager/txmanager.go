package txmanager

import (
	"context"
	"database/sql"
	"fmt"
)

// TransactionManager выполняет функции внутри SQL транзакции
type TransactionManager struct {
	db *sql.DB
}

// NewTransactionManager создаёт новый менеджер транзакций
func NewTransactionManager(db *sql.DB) *TransactionManager {
	return &TransactionManager{
		db: db,
	}
}

// Do выполняет функцию внутри транзакции с опциями по умолчанию
// Если функция завершается без ошибки, транзакция фиксируется (commit)
// Если функция возвращает ошибку, транзакция откатывается (rollback)
func (tm *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context, tx *sql.Tx) error) error {
	return tm.DoWithOptions(ctx, nil, fn)
}

// DoWithOptions выполняет функцию внутри транзакции с указанными опциями
func (tm *TransactionManager) DoWithOptions(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context, tx *sql.Tx) error) error {
	tx, err := tm.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// При панике откатываем транзакцию и пробрасываем панику дальше
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if fnErr := fn(ctx, tx); fnErr != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("transaction rollback failed: %w (original error: %v)", rbErr, fnErr)
		}
		return fnErr
	}

	if commitErr := tx.Commit(); commitErr != nil {
		return fmt.Errorf("failed to commit transaction: %w", commitErr)
	}

	return nil
}
