package middleware

import (
	"net/http"
	"strings"
)

// extractToken pulls the bearer credential out of the Authorization header.
// Protected routes accept the header only; an empty return means the header
// was absent or had no token segment after the scheme.
func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
}
