package order

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-OrderService/internal/domain"
	"github.com/m04kA/SMC-OrderService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с заказами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заказов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListByOwner возвращает заказы пользователя, отсортированные по убыванию created_at
// Отсутствие заказов не является ошибкой - возвращается пустой слайс
func (r *Repository) ListByOwner(ctx context.Context, tgID int64) ([]*domain.Order, error) {
	query, args, err := buildListByOwnerQuery(tgID)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByOwner - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByOwner - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanOrders(rows)
}

// Upsert создаёт заказ или перезаписывает все изменяемые поля существующего
// Ключ конфликта - уникальный public_no; created_at при конфликте не трогаем,
// updated_at обновляется в обоих случаях
// Атомарность обеспечивается ON CONFLICT, блокировок на уровне приложения нет
func (r *Repository) Upsert(ctx context.Context, o *domain.Order) error {
	query, args, err := buildUpsertQuery(o)
	if err != nil {
		return fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&o.ID, &o.IsClosed, &createdAt, &updatedAt)
	if err != nil {
		return fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	o.CreatedAt = createdAt.Time
	o.UpdatedAt = updatedAt.Time

	return nil
}

// buildListByOwnerQuery строит SELECT заказов пользователя, свежие первыми
func buildListByOwnerQuery(tgID int64) (string, []interface{}, error) {
	return psqlbuilder.Select(
		"id",
		"public_no",
		"owner_tg_id",
		"owner_phone",
		"item",
		"services_json",
		"status",
		"price",
		"comment",
		"is_closed",
		"created_at",
		"updated_at",
	).
		From("orders").
		Where(squirrel.Eq{"owner_tg_id": tgID}).
		OrderBy("created_at DESC").
		ToSql()
}

// buildUpsertQuery строит INSERT ... ON CONFLICT по public_no
// При конфликте created_at не трогаем, updated_at выставляется заново
func buildUpsertQuery(o *domain.Order) (string, []interface{}, error) {
	return psqlbuilder.Insert("orders").
		Columns(
			"public_no",
			"owner_tg_id",
			"owner_phone",
			"item",
			"services_json",
			"status",
			"price",
			"comment",
			"created_at",
			"updated_at",
		).
		Values(
			o.PublicNo,
			o.OwnerTgID,
			o.OwnerPhone,
			o.Item,
			o.Services,
			o.Status,
			o.Price,
			o.Comment,
			squirrel.Expr("now()"),
			squirrel.Expr("now()"),
		).
		Suffix(`ON CONFLICT (public_no) DO UPDATE SET
			owner_tg_id = EXCLUDED.owner_tg_id,
			owner_phone = EXCLUDED.owner_phone,
			item = EXCLUDED.item,
			services_json = EXCLUDED.services_json,
			status = EXCLUDED.status,
			price = EXCLUDED.price,
			comment = EXCLUDED.comment,
			updated_at = now()
		RETURNING id, is_closed, created_at, updated_at`).
		ToSql()
}

// scanOrders сканирует результаты запроса в слайс заказов
func (r *Repository) scanOrders(rows *sql.Rows) ([]*domain.Order, error) {
	orders := make([]*domain.Order, 0)

	for rows.Next() {
		var o domain.Order
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&o.ID,
			&o.PublicNo,
			&o.OwnerTgID,
			&o.OwnerPhone,
			&o.Item,
			&o.Services,
			&o.Status,
			&o.Price,
			&o.Comment,
			&o.IsClosed,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanOrders - scan row: %v", ErrScanRow, err)
		}

		o.CreatedAt = createdAt.Time
		o.UpdatedAt = updatedAt.Time

		orders = append(orders, &o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanOrders - rows error: %v", ErrScanRow, err)
	}

	return orders, nil
}
