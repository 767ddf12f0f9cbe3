package jwtutil

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by an access token. Identity only: role and verification
// state live in the user store and are resolved per request, so a stale or
// forged claim can never grant capability.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}
