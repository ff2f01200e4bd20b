package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/m04kA/SMC-OrderService/internal/api/handlers"
)

// AdminTokenHeader заголовок со статическим админским токеном
const AdminTokenHeader = "X-Admin-Token"

const (
	msgMissingAdminToken = "Missing admin token"
	msgBadAdminToken     = "Bad admin token"
)

// AdminAuth проверяет статический админский токен
// Сравнение константное по времени, чтобы не давать timing-оракул
func AdminAuth(adminToken string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(AdminTokenHeader)
			if token == "" {
				handlers.RespondUnauthorized(w, msgMissingAdminToken)
				return
			}

			if subtle.ConstantTimeCompare([]byte(token), []byte(adminToken)) != 1 {
				handlers.RespondUnauthorized(w, msgBadAdminToken)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
