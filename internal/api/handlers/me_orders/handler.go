package me_orders

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-OrderService/internal/api/handlers"
	"github.com/m04kA/SMC-OrderService/internal/api/handlers/me_orders/models"
	"github.com/m04kA/SMC-OrderService/internal/service/webappauth"
)

// InitDataHeader заголовок с сырой строкой Telegram WebApp initData
const InitDataHeader = "X-Telegram-InitData"

// Причина отказа называет провалившуюся проверку, но не содержит
// ни самой подписи, ни токена бота
const (
	msgMissingInitData = "Missing initData"
	msgBadInitData     = "Bad initData"
	msgMissingHash     = "Missing hash"
	msgBadSignature    = "Bad signature"
	msgMissingUser     = "Missing user"
	msgBadUserJSON     = "Bad user json"
)

type Handler struct {
	verifier WebAppVerifier
	orders   OrderService
	profiles ProfileService
	logger   Logger
}

func NewHandler(verifier WebAppVerifier, orders OrderService, profiles ProfileService, logger Logger) *Handler {
	return &Handler{
		verifier: verifier,
		orders:   orders,
		profiles: profiles,
		logger:   logger,
	}
}

func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Проверяем подпись initData до любых обращений к БД
	user, err := h.verifier.Verify(r.Header.Get(InitDataHeader))
	if err != nil {
		h.logger.Warn("Rejected initData: %v", err)
		handlers.RespondUnauthorized(w, authFailureMessage(err))
		return
	}

	// Профиль обновляем по пути - его потеря не должна ломать выдачу заказов
	if err := h.profiles.SaveFromWebApp(r.Context(), user); err != nil {
		h.logger.Warn("Failed to save profile for user %d: %v", user.ID, err)
	}

	outputs, err := h.orders.ListForUser(r.Context(), user.ID)
	if err != nil {
		h.logger.Error("Failed to list orders for user %d: %v", user.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, models.FromServiceOutputs(outputs))
}

// authFailureMessage сопоставляет ошибку верификатора с причиной отказа
func authFailureMessage(err error) string {
	switch {
	case errors.Is(err, webappauth.ErrMissingInitData):
		return msgMissingInitData
	case errors.Is(err, webappauth.ErrMissingHash):
		return msgMissingHash
	case errors.Is(err, webappauth.ErrBadSignature):
		return msgBadSignature
	case errors.Is(err, webappauth.ErrMissingUser):
		return msgMissingUser
	case errors.Is(err, webappauth.ErrBadUserJSON):
		return msgBadUserJSON
	default:
		return msgBadInitData
	}
}
