package templates

import (
	"fmt"
	"html"
)

// OrderStatusMessage собирает HTML сообщение об изменении заказа
// Пользовательский контент экранируется: item и status свободный текст
func OrderStatusMessage(publicNo, item, status string) string {
	return fmt.Sprintf(
		"Заказ <b>№%s</b> обновлён.\n\nИзделие: %s\nСтатус: <b>%s</b>",
		html.EscapeString(publicNo),
		html.EscapeString(item),
		html.EscapeString(status),
	)
}
