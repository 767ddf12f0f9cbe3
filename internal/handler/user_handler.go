package handler

import (
	"encoding/json"
	"net/http"

	"github.com/EhsanEIK/rythm-bazar-server/internal/domain"
	"github.com/EhsanEIK/rythm-bazar-server/internal/usecase"
	"github.com/EhsanEIK/rythm-bazar-server/pkg/response"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserHandler struct {
	userUC *usecase.UserUsecase
	logger *zap.Logger
}

func NewUserHandler(userUC *usecase.UserUsecase, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		userUC: userUC,
		logger: logger,
	}
}

// Signup handles PUT /users/{email}: idempotent account upsert, runs before
// the caller has any token.
func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	var req struct {
		Name     string      `json:"name"`
		Role     domain.Role `json:"role"`
		Password string      `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.userUC.Signup(r.Context(), email, req.Name, req.Role, req.Password)
	if err != nil {
		response.Error(w, statusFromError(err), err.Error())
		return
	}

	response.JSON(w, http.StatusOK, user)
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	role := domain.Role(r.URL.Query().Get("role"))

	users, err := h.userUC.List(r.Context(), role)
	if err != nil {
		response.Error(w, statusFromError(err), err.Error())
		return
	}

	response.JSON(w, http.StatusOK, users)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	if err := h.userUC.Delete(r.Context(), email); err != nil {
		response.Error(w, statusFromError(err), err.Error())
		return
	}

	h.logger.Info("user deleted", zap.String("email", email))
	response.JSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *UserHandler) VerifySeller(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	if err := h.userUC.VerifySeller(r.Context(), email); err != nil {
		response.Error(w, statusFromError(err), err.Error())
		return
	}

	response.JSON(w, http.StatusOK, map[string]bool{"verified": true})
}

// Role flag endpoints are unauthenticated client-display lookups; server-side
// authorization never goes through them.

func (h *UserHandler) IsAdmin(w http.ResponseWriter, r *http.Request) {
	h.roleFlag(w, r, domain.RoleAdmin, "isAdmin")
}

func (h *UserHandler) IsSeller(w http.ResponseWriter, r *http.Request) {
	h.roleFlag(w, r, domain.RoleSeller, "isSeller")
}

func (h *UserHandler) IsBuyer(w http.ResponseWriter, r *http.Request) {
	h.roleFlag(w, r, domain.RoleBuyer, "isBuyer")
}

func (h *UserHandler) roleFlag(w http.ResponseWriter, r *http.Request, role domain.Role, field string) {
	email := chi.URLParam(r, "email")

	has, err := h.userUC.HasRole(r.Context(), email, role)
	if err != nil {
		response.Error(w, statusFromError(err), err.Error())
		return
	}

	response.JSON(w, http.StatusOK, map[string]bool{field: has})
}
