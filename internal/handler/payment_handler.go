package handler

import (
	"encoding/json"
	"net/http"

	"github.com/EhsanEIK/rythm-bazar-server/internal/usecase"
	"github.com/EhsanEIK/rythm-bazar-server/pkg/response"

	"go.uber.org/zap"
)

type PaymentHandler struct {
	settlementUC *usecase.SettlementUsecase
	logger       *zap.Logger
}

func NewPaymentHandler(settlementUC *usecase.SettlementUsecase, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		settlementUC: settlementUC,
		logger:       logger,
	}
}

// CreateIntent handles POST /payments/create-payment-intent.
func (h *PaymentHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Price float64 `json:"price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	clientSecret, err := h.settlementUC.CreateIntent(r.Context(), req.Price)
	if err != nil {
		h.logger.Error("create payment intent failed",
			zap.Float64("price", req.Price),
			zap.Error(err))
		response.Error(w, statusFromError(err), err.Error())
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"clientSecret": clientSecret})
}

// Confirm handles POST /payments: records the settlement after the client
// completed the charge with the gateway.
func (h *PaymentHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	var req usecase.ConfirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	payment, err := h.settlementUC.Confirm(r.Context(), req)
	if err != nil {
		response.Error(w, statusFromError(err), err.Error())
		return
	}

	response.JSON(w, http.StatusCreated, payment)
}
