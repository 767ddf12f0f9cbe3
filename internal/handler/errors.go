package handler

import (
	"errors"
	"net/http"

	xerrors "github.com/EhsanEIK/rythm-bazar-server/pkg/xerrors"
)

// statusFromError maps the error taxonomy to HTTP. Forbidden maps to 401 by
// this API's convention.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, xerrors.ErrInvalidInput),
		errors.Is(err, xerrors.ErrInvalidRequest),
		errors.Is(err, xerrors.ErrEmailRequired),
		errors.Is(err, xerrors.ErrInvalidRole),
		errors.Is(err, xerrors.ErrInvalidAmount):
		return http.StatusBadRequest
	case errors.Is(err, xerrors.ErrUnauthorized),
		errors.Is(err, xerrors.ErrInvalidCredentials),
		errors.Is(err, xerrors.ErrInvalidToken),
		errors.Is(err, xerrors.ErrExpiredToken),
		errors.Is(err, xerrors.ErrForbidden):
		return http.StatusUnauthorized
	case errors.Is(err, xerrors.ErrNotFound),
		errors.Is(err, xerrors.ErrUserNotFound),
		errors.Is(err, xerrors.ErrProductNotFound),
		errors.Is(err, xerrors.ErrOrderNotFound):
		return http.StatusNotFound
	case errors.Is(err, xerrors.ErrPaymentGateway):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
