package domain

import "time"

// User представляет пользователя Telegram, известного сервису
type User struct {
	TgID      int64     `db:"tg_id"`
	FirstName *string   `db:"first_name"`
	LastName  *string   `db:"last_name"`
	Username  *string   `db:"username"`
	Phone     *string   `db:"phone"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
