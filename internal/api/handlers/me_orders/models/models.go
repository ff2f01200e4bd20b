package models

import (
	"time"

	ordersModels "github.com/m04kA/SMC-OrderService/internal/service/orders/models"
)

// OrderResponse HTTP представление заказа для владельца
type OrderResponse struct {
	PublicNo  string    `json:"public_no"`
	Item      string    `json:"item"`
	Services  []string  `json:"services"`
	Status    string    `json:"status"`
	Price     *int64    `json:"price,omitempty"`
	Comment   *string   `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListOrdersResponse HTTP ответ со списком заказов пользователя
type ListOrdersResponse struct {
	Ok     bool             `json:"ok"`
	Orders []*OrderResponse `json:"orders"`
}

// FromServiceOutputs преобразует сервисные модели в HTTP ответ
// Orders в ответе всегда массив, даже пустой - никогда null
func FromServiceOutputs(outputs []*ordersModels.OrderOutput) *ListOrdersResponse {
	orders := make([]*OrderResponse, len(outputs))
	for i, o := range outputs {
		services := o.Services
		if services == nil {
			services = []string{}
		}

		orders[i] = &OrderResponse{
			PublicNo:  o.PublicNo,
			Item:      o.Item,
			Services:  services,
			Status:    o.Status,
			Price:     o.Price,
			Comment:   o.Comment,
			CreatedAt: o.CreatedAt,
			UpdatedAt: o.UpdatedAt,
		}
	}

	return &ListOrdersResponse{Ok: true, Orders: orders}
}
