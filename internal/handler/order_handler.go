package handler

import (
	"encoding/json"
	"net/http"

	"github.com/EhsanEIK/rythm-bazar-server/internal/usecase"
	"github.com/EhsanEIK/rythm-bazar-server/pkg/middleware"
	"github.com/EhsanEIK/rythm-bazar-server/pkg/response"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type OrderHandler struct {
	orderUC *usecase.OrderUsecase
	logger  *zap.Logger
}

func NewOrderHandler(orderUC *usecase.OrderUsecase, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		orderUC: orderUC,
		logger:  logger,
	}
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	buyerEmail, _ := middleware.GetEmail(r.Context())

	var req struct {
		ProductID string `json:"productId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := h.orderUC.CreateOrder(r.Context(), buyerEmail, req.ProductID)
	if err != nil {
		response.Error(w, statusFromError(err), err.Error())
		return
	}

	response.JSON(w, http.StatusCreated, order)
}

func (h *OrderHandler) MyOrders(w http.ResponseWriter, r *http.Request) {
	buyerEmail, _ := middleware.GetEmail(r.Context())

	orders, err := h.orderUC.BuyerOrders(r.Context(), buyerEmail)
	if err != nil {
		response.Error(w, statusFromError(err), err.Error())
		return
	}

	response.JSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	buyerEmail, _ := middleware.GetEmail(r.Context())
	id := chi.URLParam(r, "id")

	order, err := h.orderUC.GetOrder(r.Context(), id, buyerEmail)
	if err != nil {
		response.Error(w, statusFromError(err), err.Error())
		return
	}

	response.JSON(w, http.StatusOK, order)
}
