package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/m04kA/SMC-OrderService/internal/domain"
	"github.com/m04kA/SMC-OrderService/internal/service/telegram/templates"
)

// Service сервис для отправки уведомлений владельцам заказов через Telegram Bot API
type Service struct {
	bot BotAPI
}

// NewService создает новый экземпляр Telegram сервиса
func NewService(bot BotAPI) *Service {
	return &Service{
		bot: bot,
	}
}

// NotifyOrderUpserted отправляет владельцу заказа сообщение о его текущем статусе
// Вызывающая сторона сама решает, критична ли ошибка доставки
func (s *Service) NotifyOrderUpserted(order *domain.Order) error {
	if !order.HasOwner() {
		return ErrNoRecipient
	}

	msg := tgbotapi.NewMessage(*order.OwnerTgID, templates.OrderStatusMessage(order.PublicNo, order.Item, order.Status))
	msg.ParseMode = tgbotapi.ModeHTML

	if _, err := s.bot.Send(msg); err != nil {
		return fmt.Errorf("%w: %v", ErrSendMessage, err)
	}

	return nil
}
