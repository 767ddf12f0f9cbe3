package handler

import (
	"encoding/json"
	"net/http"

	"github.com/EhsanEIK/rythm-bazar-server/internal/domain"
	"github.com/EhsanEIK/rythm-bazar-server/internal/usecase"
	"github.com/EhsanEIK/rythm-bazar-server/pkg/middleware"
	"github.com/EhsanEIK/rythm-bazar-server/pkg/response"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ProductHandler struct {
	catalogUC *usecase.CatalogUsecase
	logger    *zap.Logger
}

func NewProductHandler(catalogUC *usecase.CatalogUsecase, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		catalogUC: catalogUC,
		logger:    logger,
	}
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	sellerEmail, _ := middleware.GetEmail(r.Context())

	var product domain.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	product.SellerEmail = sellerEmail

	created, err := h.catalogUC.CreateProduct(r.Context(), &product)
	if err != nil {
		response.Error(w, statusFromError(err), err.Error())
		return
	}

	response.JSON(w, http.StatusCreated, created)
}

// MyProducts lists the authenticated seller's own listings.
func (h *ProductHandler) MyProducts(w http.ResponseWriter, r *http.Request) {
	sellerEmail, _ := middleware.GetEmail(r.Context())

	products, err := h.catalogUC.SellerProducts(r.Context(), sellerEmail)
	if err != nil {
		response.Error(w, statusFromError(err), err.Error())
		return
	}

	response.JSON(w, http.StatusOK, products)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	sellerEmail, _ := middleware.GetEmail(r.Context())
	id := chi.URLParam(r, "id")

	if err := h.catalogUC.DeleteProduct(r.Context(), id, sellerEmail); err != nil {
		response.Error(w, statusFromError(err), err.Error())
		return
	}

	response.JSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *ProductHandler) Advertise(w http.ResponseWriter, r *http.Request) {
	sellerEmail, _ := middleware.GetEmail(r.Context())
	id := chi.URLParam(r, "id")

	product, err := h.catalogUC.ToggleAdvertise(r.Context(), id, sellerEmail)
	if err != nil {
		response.Error(w, statusFromError(err), err.Error())
		return
	}

	response.JSON(w, http.StatusOK, product)
}

func (h *ProductHandler) Advertised(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogUC.AdvertisedProducts(r.Context())
	if err != nil {
		response.Error(w, statusFromError(err), err.Error())
		return
	}

	response.JSON(w, http.StatusOK, products)
}

func (h *ProductHandler) Report(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.catalogUC.ReportProduct(r.Context(), id); err != nil {
		response.Error(w, statusFromError(err), err.Error())
		return
	}

	response.JSON(w, http.StatusOK, map[string]bool{"reported": true})
}

func (h *ProductHandler) Reported(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogUC.ReportedProducts(r.Context())
	if err != nil {
		response.Error(w, statusFromError(err), err.Error())
		return
	}

	response.JSON(w, http.StatusOK, products)
}
