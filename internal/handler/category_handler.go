package handler

import (
	"encoding/json"
	"net/http"

	"github.com/EhsanEIK/rythm-bazar-server/internal/usecase"
	"github.com/EhsanEIK/rythm-bazar-server/pkg/response"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CategoryHandler struct {
	catalogUC *usecase.CatalogUsecase
	logger    *zap.Logger
}

func NewCategoryHandler(catalogUC *usecase.CatalogUsecase, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		catalogUC: catalogUC,
		logger:    logger,
	}
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	category, err := h.catalogUC.CreateCategory(r.Context(), req.Name)
	if err != nil {
		response.Error(w, statusFromError(err), err.Error())
		return
	}

	response.JSON(w, http.StatusCreated, category)
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalogUC.ListCategories(r.Context())
	if err != nil {
		response.Error(w, statusFromError(err), err.Error())
		return
	}

	response.JSON(w, http.StatusOK, categories)
}

func (h *CategoryHandler) Products(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "id")

	products, err := h.catalogUC.ProductsByCategory(r.Context(), categoryID)
	if err != nil {
		response.Error(w, statusFromError(err), err.Error())
		return
	}

	response.JSON(w, http.StatusOK, products)
}
