package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// ServiceList - список услуг заказа, хранится в БД как JSON массив строк
// Порядок и дубликаты сохраняются так, как их прислал клиент
type ServiceList []string

// Value реализует driver.Valuer для записи в БД
func (s ServiceList) Value() (driver.Value, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s)
}

// Scan реализует sql.Scanner для чтения из БД
func (s *ServiceList) Scan(value interface{}) error {
	if value == nil {
		*s = ServiceList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("failed to scan ServiceList: expected []byte or string, got %T", value)
	}

	if len(bytes) == 0 {
		*s = ServiceList{}
		return nil
	}

	return json.Unmarshal(bytes, s)
}

// NormalizeServices обрезает пробелы и отбрасывает пустые элементы,
// сохраняя порядок и дубликаты остальных
func NormalizeServices(in []string) ServiceList {
	out := make(ServiceList, 0, len(in))
	for _, raw := range in {
		if v := strings.TrimSpace(raw); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Order представляет заказ на услуги
type Order struct {
	ID         int64       `db:"id"`
	PublicNo   string      `db:"public_no"` // Внешний уникальный номер заказа, назначается извне
	OwnerTgID  *int64      `db:"owner_tg_id"`
	OwnerPhone *string     `db:"owner_phone"`
	Item       string      `db:"item"`
	Services   ServiceList `db:"services_json"`
	Status     string      `db:"status"`
	Price      *int64      `db:"price"`
	Comment    *string     `db:"comment"`
	IsClosed   bool        `db:"is_closed"`
	CreatedAt  time.Time   `db:"created_at"`
	UpdatedAt  time.Time   `db:"updated_at"`
}

// HasOwner проверяет, привязан ли заказ к пользователю Telegram
func (o *Order) HasOwner() bool {
	return o.OwnerTgID != nil && *o.OwnerTgID != 0
}
