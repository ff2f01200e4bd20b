package schema

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m04kA/SMC-OrderService/pkg/txmanager"
)

// createTablesSQL - идемпотентное создание схемы
// Выполняется при каждом старте процесса
const createTablesSQL = `
CREATE TABLE IF NOT EXISTS users (
  tg_id BIGINT PRIMARY KEY,
  first_name TEXT,
  last_name TEXT,
  username TEXT,
  phone TEXT,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS orders (
  id BIGSERIAL PRIMARY KEY,
  public_no TEXT UNIQUE NOT NULL,
  owner_tg_id BIGINT,
  owner_phone TEXT,
  item TEXT NOT NULL,
  services_json TEXT NOT NULL DEFAULT '[]',
  status TEXT NOT NULL,
  price INTEGER,
  comment TEXT,
  is_closed BOOLEAN NOT NULL DEFAULT FALSE,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_orders_owner_tg ON orders(owner_tg_id);
CREATE INDEX IF NOT EXISTS idx_orders_public_no ON orders(public_no);
`

// Apply создаёт таблицы и индексы, если их ещё нет
// Вся DDL выполняется в одной транзакции
func Apply(ctx context.Context, db *sql.DB) error {
	tm := txmanager.NewTransactionManager(db)

	err := tm.Do(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, createTablesSQL); err != nil {
			return fmt.Errorf("failed to create tables: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("schema: apply failed: %w", err)
	}

	return nil
}
