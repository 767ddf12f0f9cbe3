package middleware

import (
	"context"
	"net/http"

	"github.com/EhsanEIK/rythm-bazar-server/internal/domain"
	"github.com/EhsanEIK/rythm-bazar-server/pkg/jwtutil"
	"github.com/EhsanEIK/rythm-bazar-server/pkg/response"

	"go.uber.org/zap"
)

// UserStore is the single point lookup the role middleware needs.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

type AuthMiddleware struct {
	verifier *jwtutil.Verifier
	users    UserStore
	logger   *zap.Logger
}

func NewAuthMiddleware(verifier *jwtutil.Verifier, users UserStore, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		users:    users,
		logger:   logger,
	}
}

// Authenticate verifies the bearer credential and exposes its claims to
// downstream handlers. Pure signature-and-expiry check; no store access.
func (am *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractToken(r)
		if token == "" {
			response.Error(w, http.StatusUnauthorized, "unauthorized access")
			return
		}

		claims, err := am.verifier.ParseAndValidate(token)
		if err != nil {
			response.Error(w, http.StatusUnauthorized, "unauthorized access")
			return
		}

		next.ServeHTTP(w, setContextValues(r, claims, token))
	})
}

// RequireRole runs after Authenticate. The stored role decides, never the
// credential: a token minted before a role change, or one carrying forged
// claims, proves identity only. 401 is this API's convention for role
// failures as well.
func (am *AuthMiddleware) RequireRole(role domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email, ok := GetEmail(r.Context())
			if !ok || email == "" {
				response.Error(w, http.StatusUnauthorized, "unauthorized access")
				return
			}

			user, err := am.users.FindByEmail(r.Context(), email)
			if err != nil {
				response.Error(w, http.StatusUnauthorized, "forbidden access")
				return
			}
			if user.Role != role {
				am.logger.Warn("role check failed",
					zap.String("email", email),
					zap.String("stored_role", string(user.Role)),
					zap.String("required_role", string(role)))
				response.Error(w, http.StatusUnauthorized, "forbidden access")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (am *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return am.RequireRole(domain.RoleAdmin)(next)
}

func (am *AuthMiddleware) RequireSeller(next http.Handler) http.Handler {
	return am.RequireRole(domain.RoleSeller)(next)
}

func (am *AuthMiddleware) RequireBuyer(next http.Handler) http.Handler {
	return am.RequireRole(domain.RoleBuyer)(next)
}
