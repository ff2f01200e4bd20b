package users

import (
	"context"

	"github.com/m04kA/SMC-OrderService/internal/domain"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	UpsertProfile(ctx context.Context, user *domain.User) error
}
