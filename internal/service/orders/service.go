package orders

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-OrderService/internal/domain"
	"github.com/m04kA/SMC-OrderService/internal/service/orders/models"
)

// Service сервис для работы с заказами
type Service struct {
	orderRepo OrderRepository
}

// NewService создает новый экземпляр сервиса заказов
func NewService(orderRepo OrderRepository) *Service {
	return &Service{
		orderRepo: orderRepo,
	}
}

// ListForUser возвращает заказы пользователя, свежие первыми
// Отсутствие заказов - валидный результат с пустым списком
func (s *Service) ListForUser(ctx context.Context, tgID int64) ([]*models.OrderOutput, error) {
	orders, err := s.orderRepo.ListByOwner(ctx, tgID)
	if err != nil {
		return nil, fmt.Errorf("%w: ListForUser - repository error: %v", ErrInternal, err)
	}

	outputs := make([]*models.OrderOutput, len(orders))
	for i, o := range orders {
		outputs[i] = models.FromDomainOrder(o)
	}

	return outputs, nil
}

// Upsert создаёт или перезаписывает заказ по его public_no
// Единый проход валидации: либо валидная доменная модель, либо
// ErrInvalidInput с именем первого невалидного поля
func (s *Service) Upsert(ctx context.Context, input *models.UpsertOrderInput) (*domain.Order, error) {
	order, err := s.validate(input)
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.Upsert(ctx, order); err != nil {
		return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
	}

	return order, nil
}

// validate нормализует вход и строит доменную модель
func (s *Service) validate(input *models.UpsertOrderInput) (*domain.Order, error) {
	publicNo := strings.TrimSpace(input.PublicNo)
	if publicNo == "" {
		return nil, &ValidationError{Field: "public_no"}
	}

	item := strings.TrimSpace(input.Item)
	if item == "" {
		return nil, &ValidationError{Field: "item"}
	}

	status := strings.TrimSpace(input.Status)
	if status == "" {
		return nil, &ValidationError{Field: "status"}
	}

	return &domain.Order{
		PublicNo:   publicNo,
		OwnerTgID:  input.OwnerTgID,
		OwnerPhone: input.OwnerPhone,
		Item:       item,
		Services:   domain.NormalizeServices(input.Services),
		Status:     status,
		Price:      input.Price,
		Comment:    input.Comment,
	}, nil
}
