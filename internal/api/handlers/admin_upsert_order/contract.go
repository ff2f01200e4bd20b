package admin_upsert_order

import (
	"context"

	"github.com/m04kA/SMC-OrderService/internal/domain"
	ordersModels "github.com/m04kA/SMC-OrderService/internal/service/orders/models"
)

// OrderService интерфейс сервиса заказов
type OrderService interface {
	Upsert(ctx context.Context, input *ordersModels.UpsertOrderInput) (*domain.Order, error)
}

// Notifier интерфейс уведомления владельца заказа о смене статуса
type Notifier interface {
	NotifyOrderUpserted(order *domain.Order) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
