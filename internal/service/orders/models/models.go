package models

import (
	"time"

	"github.com/m04kA/SMC-OrderService/internal/domain"
)

// UpsertOrderInput входные данные операции upsert
// Обязательные поля: PublicNo, Item, Status; остальные опциональны
type UpsertOrderInput struct {
	PublicNo   string
	OwnerTgID  *int64
	OwnerPhone *string
	Item       string
	Services   []string
	Status     string
	Price      *int64
	Comment    *string
}

// OrderOutput заказ в том виде, в котором его отдаёт сервисный слой
type OrderOutput struct {
	PublicNo  string
	Item      string
	Services  []string
	Status    string
	Price     *int64
	Comment   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FromDomainOrder преобразует доменную модель в выходную модель сервиса
func FromDomainOrder(o *domain.Order) *OrderOutput {
	return &OrderOutput{
		PublicNo:  o.PublicNo,
		Item:      o.Item,
		Services:  o.Services,
		Status:    o.Status,
		Price:     o.Price,
		Comment:   o.Comment,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}
