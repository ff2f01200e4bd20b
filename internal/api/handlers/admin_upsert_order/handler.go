package admin_upsert_order

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-OrderService/internal/api/handlers"
	"github.com/m04kA/SMC-OrderService/internal/api/handlers/admin_upsert_order/models"
	ordersSvc "github.com/m04kA/SMC-OrderService/internal/service/orders"
)

const msgInvalidRequestBody = "неверный формат тела запроса"

type Handler struct {
	service  OrderService
	notifier Notifier
	logger   Logger
}

// NewHandler создает обработчик админского upsert
// notifier может быть nil - тогда уведомления владельцам не отправляются
func NewHandler(service OrderService, notifier Notifier, logger Logger) *Handler {
	return &Handler{
		service:  service,
		notifier: notifier,
		logger:   logger,
	}
}

func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Парсинг request body
	var req models.UpsertOrderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("Failed to decode request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	order, err := h.service.Upsert(r.Context(), req.ToServiceInput())
	if err != nil {
		// Обработка ошибок сервисного слоя
		var vErr *ordersSvc.ValidationError
		if errors.As(err, &vErr) {
			handlers.RespondBadRequest(w, vErr.Field+" is required")
			return
		}
		if errors.Is(err, ordersSvc.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}

		h.logger.Error("Failed to upsert order %q: %v", req.PublicNo, err)
		handlers.RespondInternalError(w)
		return
	}

	// Уведомляем владельца о статусе заказа
	if h.notifier != nil && order.HasOwner() {
		if err := h.notifier.NotifyOrderUpserted(order); err != nil {
			h.logger.Warn("Failed to notify owner of order %q: %v", order.PublicNo, err)
			// Не возвращаем ошибку клиенту, т.к. заказ уже сохранён в БД
		}
	}

	h.logger.Info("Upserted order %q (status: %s)", order.PublicNo, order.Status)

	handlers.RespondJSON(w, http.StatusOK, models.UpsertOrderResponse{Ok: true})
}
