package orders

import (
	"context"

	"github.com/m04kA/SMC-OrderService/internal/domain"
)

// OrderRepository интерфейс репозитория заказов
type OrderRepository interface {
	ListByOwner(ctx context.Context, tgID int64) ([]*domain.Order, error)
	Upsert(ctx context.Context, order *domain.Order) error
}
