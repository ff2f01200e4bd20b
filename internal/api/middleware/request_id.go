package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type contextKey struct{ name string }

// requestIDKey ключ request id в контексте запроса
var requestIDKey = &contextKey{"RequestID"}

// RequestIDHeader заголовок, в котором клиент может передать свой request id
const RequestIDHeader = "X-Request-ID"

// RequestID прокидывает request id через контекст и заголовок ответа
// Если клиент не прислал свой id, генерируется новый UUID
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}

			w.Header().Set(RequestIDHeader, id)

			ctx := context.WithValue(r.Context(), requestIDKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetRequestID возвращает request id из контекста (пустая строка, если его нет)
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}
