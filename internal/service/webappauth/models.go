package webappauth

// WebAppUser - идентичность пользователя из верифицированного initData
// Поля соответствуют объекту WebAppUser из Telegram WebApp API
type WebAppUser struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Username     string `json:"username"`
	LanguageCode string `json:"language_code"`
}
