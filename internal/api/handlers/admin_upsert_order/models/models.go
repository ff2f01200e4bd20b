package models

import (
	ordersModels "github.com/m04kA/SMC-OrderService/internal/service/orders/models"
)

// UpsertOrderRequest HTTP запрос на создание или перезапись заказа
type UpsertOrderRequest struct {
	PublicNo   string   `json:"public_no"`
	OwnerTgID  *int64   `json:"owner_tg_id,omitempty"`
	OwnerPhone *string  `json:"owner_phone,omitempty"`
	Item       string   `json:"item"`
	Services   []string `json:"services,omitempty"`
	Status     string   `json:"status"`
	Price      *int64   `json:"price,omitempty"`
	Comment    *string  `json:"comment,omitempty"`
}

// ToServiceInput преобразует HTTP модель в сервисную модель
func (r *UpsertOrderRequest) ToServiceInput() *ordersModels.UpsertOrderInput {
	return &ordersModels.UpsertOrderInput{
		PublicNo:   r.PublicNo,
		OwnerTgID:  r.OwnerTgID,
		OwnerPhone: r.OwnerPhone,
		Item:       r.Item,
		Services:   r.Services,
		Status:     r.Status,
		Price:      r.Price,
		Comment:    r.Comment,
	}
}

// UpsertOrderResponse HTTP ответ операции upsert
type UpsertOrderResponse struct {
	Ok bool `json:"ok"`
}
