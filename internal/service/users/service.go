package users

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-OrderService/internal/domain"
	"github.com/m04kA/SMC-OrderService/internal/service/webappauth"
)

// Service сохраняет профили пользователей, пришедших через WebApp
type Service struct {
	userRepo UserRepository
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(userRepo UserRepository) *Service {
	return &Service{
		userRepo: userRepo,
	}
}

// SaveFromWebApp обновляет профиль по верифицированной идентичности из initData
// Вызывается best-effort на каждый аутентифицированный запрос
func (s *Service) SaveFromWebApp(ctx context.Context, user *webappauth.WebAppUser) error {
	if user == nil || user.ID <= 0 {
		return fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	profile := &domain.User{
		TgID: user.ID,
	}
	if user.FirstName != "" {
		profile.FirstName = &user.FirstName
	}
	if user.LastName != "" {
		profile.LastName = &user.LastName
	}
	if user.Username != "" {
		profile.Username = &user.Username
	}

	if err := s.userRepo.UpsertProfile(ctx, profile); err != nil {
		return fmt.Errorf("%w: SaveFromWebApp - repository error: %v", ErrInternal, err)
	}

	return nil
}
