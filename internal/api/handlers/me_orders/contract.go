package me_orders

import (
	"context"

	ordersModels "github.com/m04kA/SMC-OrderService/internal/service/orders/models"
	"github.com/m04kA/SMC-OrderService/internal/service/webappauth"
)

// WebAppVerifier интерфейс проверки подписи Telegram WebApp initData
type WebAppVerifier interface {
	Verify(initData string) (*webappauth.WebAppUser, error)
}

// OrderService интерфейс сервиса заказов
type OrderService interface {
	ListForUser(ctx context.Context, tgID int64) ([]*ordersModels.OrderOutput, error)
}

// ProfileService интерфейс сохранения профиля пользователя
type ProfileService interface {
	SaveFromWebApp(ctx context.Context, user *webappauth.WebAppUser) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
