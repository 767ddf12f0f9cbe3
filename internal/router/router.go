package router

import (
	"net/http"
	"time"

	"github.com/EhsanEIK/rythm-bazar-server/config"
	"github.com/EhsanEIK/rythm-bazar-server/internal/handler"
	appmw "github.com/EhsanEIK/rythm-bazar-server/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Handlers struct {
	Auth     *handler.AuthHandler
	User     *handler.UserHandler
	Category *handler.CategoryHandler
	Product  *handler.ProductHandler
	Order    *handler.OrderHandler
	Payment  *handler.PaymentHandler
}

func SetupRoutes(
	h Handlers,
	auth *appmw.AuthMiddleware,
	rdb *redis.Client,
	cfg *config.Config,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	rateLimit := appmw.RateLimiter(rdb, cfg.RateLimit.Limit, cfg.RateLimit.Window, cfg.RateLimit.BlockDuration, "jwt")

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("OK"))
		})

		// Credential issuance and signup happen before any token exists
		r.With(rateLimit).Post("/jwt", h.Auth.IssueToken)
		r.Put("/users/{email}", h.User.Signup)

		// Role flags: unauthenticated display-only lookups
		r.Get("/users/admin/{email}", h.User.IsAdmin)
		r.Get("/users/seller/{email}", h.User.IsSeller)
		r.Get("/users/buyer/{email}", h.User.IsBuyer)

		// Public catalog
		r.Get("/categories", h.Category.List)
		r.Get("/products/advertised", h.Product.Advertised)

		// Admin
		r.Group(func(r chi.Router) {
			r.Use(auth.Authenticate, auth.RequireAdmin)
			r.Get("/users", h.User.List)
			r.Delete("/users/{email}", h.User.Delete)
			r.Put("/users/verify/{email}", h.User.VerifySeller)
			r.Post("/categories", h.Category.Create)
			r.Get("/products/reported", h.Product.Reported)
		})

		// Seller
		r.Group(func(r chi.Router) {
			r.Use(auth.Authenticate, auth.RequireSeller)
			r.Post("/products", h.Product.Create)
			r.Get("/products", h.Product.MyProducts)
			r.Delete("/products/{id}", h.Product.Delete)
			r.Put("/products/advertise/{id}", h.Product.Advertise)
		})

		// Buyer
		r.Group(func(r chi.Router) {
			r.Use(auth.Authenticate, auth.RequireBuyer)
			r.Get("/categories/{id}/products", h.Category.Products)
			r.Put("/products/report/{id}", h.Product.Report)
			r.Post("/orders", h.Order.Create)
			r.Get("/orders", h.Order.MyOrders)
			r.Get("/orders/{id}", h.Order.Get)
			r.Post("/payments/create-payment-intent", h.Payment.CreateIntent)
			r.Post("/payments", h.Payment.Confirm)
		})
	})

	return r
}

// LoggerMiddleware logs HTTP requests
func LoggerMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			logger.Info("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
				zap.String("remote_addr", r.RemoteAddr))
		})
	}
}
