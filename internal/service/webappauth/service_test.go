package webappauth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBotToken = "110201543:AAHdqTcvCH1vGWJxfSeofSAs0K5PALDsaw"

// signInitData собирает initData с корректной подписью для данного bot token
func signInitData(t *testing.T, botToken string, pairs map[string]string) string {
	t.Helper()

	keys := make([]string, 0, len(pairs))
	for k := range pairs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, k+"="+pairs[k])
	}

	secret := hmac.New(sha256.New, []byte("WebAppData"))
	secret.Write([]byte(botToken))

	mac := hmac.New(sha256.New, secret.Sum(nil))
	mac.Write([]byte(strings.Join(lines, "\n")))

	values := url.Values{}
	for k, v := range pairs {
		values.Set(k, v)
	}
	values.Set("hash", hex.EncodeToString(mac.Sum(nil)))

	return values.Encode()
}

func TestVerify_ValidPayload(t *testing.T) {
	svc := NewService(testBotToken)

	initData := signInitData(t, testBotToken, map[string]string{
		"auth_date": "1700000000",
		"user":      `{"id":42,"first_name":"Иван","username":"ivan42"}`,
	})

	user, err := svc.Verify(initData)
	require.NoError(t, err)
	assert.Equal(t, int64(42), user.ID)
	assert.Equal(t, "Иван", user.FirstName)
	assert.Equal(t, "ivan42", user.Username)
}

func TestVerify_BlankValueIsRetained(t *testing.T) {
	svc := NewService(testBotToken)

	// Пустое значение участвует в check-string и не ломает подпись
	initData := signInitData(t, testBotToken, map[string]string{
		"auth_date": "1700000000",
		"query_id":  "",
		"user":      `{"id":7}`,
	})

	user, err := svc.Verify(initData)
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
}

func TestVerify_TamperedHash(t *testing.T) {
	svc := NewService(testBotToken)

	initData := signInitData(t, testBotToken, map[string]string{
		"auth_date": "1700000000",
		"user":      `{"id":42}`,
	})

	// Переворачиваем один символ подписи
	idx := strings.Index(initData, "hash=") + len("hash=")
	flipped := byte('0')
	if initData[idx] == '0' {
		flipped = '1'
	}
	tampered := initData[:idx] + string(flipped) + initData[idx+1:]

	_, err := svc.Verify(tampered)
	assert.ErrorIs(t, err, ErrBadSignature)
}

func TestVerify_TamperedPayload(t *testing.T) {
	svc := NewService(testBotToken)

	initData := signInitData(t, testBotToken, map[string]string{
		"auth_date": "1700000000",
		"user":      `{"id":42}`,
	})
	tampered := strings.Replace(initData, "1700000000", "1700000001", 1)

	_, err := svc.Verify(tampered)
	assert.ErrorIs(t, err, ErrBadSignature)
}

func TestVerify_WrongBotToken(t *testing.T) {
	svc := NewService("another:token")

	initData := signInitData(t, testBotToken, map[string]string{
		"auth_date": "1700000000",
		"user":      `{"id":42}`,
	})

	_, err := svc.Verify(initData)
	assert.ErrorIs(t, err, ErrBadSignature)
}

func TestVerify_MissingInitData(t *testing.T) {
	svc := NewService(testBotToken)

	_, err := svc.Verify("")
	assert.ErrorIs(t, err, ErrMissingInitData)
}

func TestVerify_MissingHash(t *testing.T) {
	svc := NewService(testBotToken)

	// Ошибка "missing hash" не должна смешиваться с "bad signature"
	_, err := svc.Verify("auth_date=1700000000&user=%7B%22id%22%3A42%7D")
	assert.ErrorIs(t, err, ErrMissingHash)
	assert.NotErrorIs(t, err, ErrBadSignature)
}

func TestVerify_MissingUser(t *testing.T) {
	svc := NewService(testBotToken)

	initData := signInitData(t, testBotToken, map[string]string{
		"auth_date": "1700000000",
	})

	_, err := svc.Verify(initData)
	assert.ErrorIs(t, err, ErrMissingUser)
}

func TestVerify_BadUserJSON(t *testing.T) {
	svc := NewService(testBotToken)

	tests := []struct {
		name string
		user string
	}{
		{name: "не JSON", user: "not-json"},
		{name: "без id", user: `{"first_name":"Иван"}`},
		{name: "id не приводится к числу", user: `{"id":"abc"}`},
		{name: "id null", user: `{"id":null}`},
		{name: "id ноль", user: `{"id":0}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			initData := signInitData(t, testBotToken, map[string]string{
				"auth_date": "1700000000",
				"user":      tt.user,
			})

			_, err := svc.Verify(initData)
			assert.ErrorIs(t, err, ErrBadUserJSON)
		})
	}
}

func TestVerify_StringNumericID(t *testing.T) {
	svc := NewService(testBotToken)

	// Числовая строка в id приводится к int64
	initData := signInitData(t, testBotToken, map[string]string{
		"auth_date": "1700000000",
		"user":      `{"id":"42","first_name":"Иван"}`,
	})

	user, err := svc.Verify(initData)
	require.NoError(t, err)
	assert.Equal(t, int64(42), user.ID)
	assert.Equal(t, "Иван", user.FirstName)
}

func TestVerify_MalformedQuery(t *testing.T) {
	svc := NewService(testBotToken)

	_, err := svc.Verify("%zz=1")
	assert.ErrorIs(t, err, ErrMalformedInitData)
}
