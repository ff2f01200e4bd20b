package webappauth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// secretKeySalt - константный ключ для выведения секрета из bot token,
// определён протоколом Telegram WebApp
const secretKeySalt = "WebAppData"

// Service проверяет подпись initData, выданного Telegram WebApp клиентом
// Чистая функция от входа и сконфигурированного bot token, побочных эффектов нет
type Service struct {
	botToken string
}

// NewService создает новый экземпляр верификатора initData
func NewService(botToken string) *Service {
	return &Service{botToken: botToken}
}

// Verify проверяет подпись initData и возвращает верифицированную идентичность
//
// Схема проверки:
//  1. initData разбирается как query string (пустые значения сохраняются,
//     при дубликатах ключей побеждает последнее значение);
//  2. поле hash извлекается, остальные пары сортируются по ключу и
//     склеиваются в строку "k=v\nk=v...";
//  3. secret = HMAC-SHA256(key="WebAppData", msg=botToken);
//  4. подпись = hex(HMAC-SHA256(key=secret, msg=checkString));
//  5. сравнение с полученным hash - константное по времени.
func (s *Service) Verify(initData string) (*WebAppUser, error) {
	if initData == "" {
		return nil, ErrMissingInitData
	}

	values, err := url.ParseQuery(initData)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInitData, err)
	}

	// Telegram не дублирует ключи; на всякий случай берём последнее значение
	pairs := make(map[string]string, len(values))
	for k, vs := range values {
		pairs[k] = vs[len(vs)-1]
	}

	recvHash := pairs["hash"]
	if recvHash == "" {
		return nil, ErrMissingHash
	}
	delete(pairs, "hash")

	if !hmac.Equal([]byte(s.computeHash(pairs)), []byte(recvHash)) {
		return nil, ErrBadSignature
	}

	userRaw := pairs["user"]
	if userRaw == "" {
		return nil, ErrMissingUser
	}

	return parseUser(userRaw)
}

// parseUser разбирает поле user из initData
// id приводится к int64 даже если клиент прислал его строкой
func parseUser(raw string) (*WebAppUser, error) {
	var fields struct {
		ID           json.RawMessage `json:"id"`
		FirstName    string          `json:"first_name"`
		LastName     string          `json:"last_name"`
		Username     string          `json:"username"`
		LanguageCode string          `json:"language_code"`
	}
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadUserJSON, err)
	}

	id, err := coerceID(fields.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadUserJSON, err)
	}
	if id <= 0 {
		return nil, fmt.Errorf("%w: user id is missing", ErrBadUserJSON)
	}

	return &WebAppUser{
		ID:           id,
		FirstName:    fields.FirstName,
		LastName:     fields.LastName,
		Username:     fields.Username,
		LanguageCode: fields.LanguageCode,
	}, nil
}

// coerceID приводит значение id к int64: число или числовая строка
func coerceID(raw json.RawMessage) (int64, error) {
	s := strings.TrimSpace(string(raw))
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	if s == "" || s == "null" {
		return 0, fmt.Errorf("user id is missing")
	}
	return strconv.ParseInt(s, 10, 64)
}

// computeHash строит canonical check-string и считает подпись
func (s *Service) computeHash(pairs map[string]string) string {
	keys := make([]string, 0, len(pairs))
	for k := range pairs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, k+"="+pairs[k])
	}
	checkString := strings.Join(lines, "\n")

	secret := hmac.New(sha256.New, []byte(secretKeySalt))
	secret.Write([]byte(s.botToken))

	mac := hmac.New(sha256.New, secret.Sum(nil))
	mac.Write([]byte(checkString))

	return hex.EncodeToString(mac.Sum(nil))
}
