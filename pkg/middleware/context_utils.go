package middleware

import (
	"context"
	"net/http"

	"github.com/EhsanEIK/rythm-bazar-server/pkg/jwtutil"
)

type contextKey string

const (
	ContextEmail  contextKey = "email"
	ContextClaims contextKey = "claims"
	ContextToken  contextKey = "token"
)

func GetEmail(ctx context.Context) (string, bool) {
	val, ok := ctx.Value(ContextEmail).(string)
	return val, ok
}

func GetClaims(ctx context.Context) (*jwtutil.Claims, bool) {
	val, ok := ctx.Value(ContextClaims).(*jwtutil.Claims)
	return val, ok
}

func GetToken(ctx context.Context) (string, bool) {
	val, ok := ctx.Value(ContextToken).(string)
	return val, ok
}

func setContextValues(r *http.Request, claims *jwtutil.Claims, token string) *http.Request {
	ctx := context.WithValue(r.Context(), ContextEmail, claims.Email)
	ctx = context.WithValue(ctx, ContextClaims, claims)
	ctx = context.WithValue(ctx, ContextToken, token)
	return r.WithContext(ctx)
}
