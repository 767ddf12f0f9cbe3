package handler

import (
	"encoding/json"
	"net/http"

	"github.com/EhsanEIK/rythm-bazar-server/internal/usecase"
	"github.com/EhsanEIK/rythm-bazar-server/pkg/response"

	"go.uber.org/zap"
)

type AuthHandler struct {
	authUC *usecase.AuthUsecase
	logger *zap.Logger
}

func NewAuthHandler(authUC *usecase.AuthUsecase, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
		logger: logger,
	}
}

// IssueToken handles POST /jwt. The body may carry anything; only email and
// password are read, everything else is dropped before signing.
func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.authUC.IssueToken(r.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Warn("token issuance refused",
			zap.String("email", req.Email),
			zap.Error(err))
		response.Error(w, statusFromError(err), err.Error())
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"token": token})
}
