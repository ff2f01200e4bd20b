package telegram

import "errors"

var (
	// ErrSendMessage возвращается при ошибке отправки сообщения
	ErrSendMessage = errors.New("service.telegram: failed to send message")

	// ErrNoRecipient возвращается, когда у заказа нет владельца с tg_id
	ErrNoRecipient = errors.New("service.telegram: order has no telegram recipient")
)
