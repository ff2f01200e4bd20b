package health

import (
	"context"
	"net/http"
	"time"

	"github.com/m04kA/SMC-OrderService/internal/api/handlers"
)

// Pinger интерфейс проверки доступности БД
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	db Pinger
}

func NewHandler(db Pinger) *Handler {
	return &Handler{db: db}
}

func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		handlers.RespondJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "degraded",
		})
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}
