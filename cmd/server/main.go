package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/EhsanEIK/rythm-bazar-server/config"
	"github.com/EhsanEIK/rythm-bazar-server/internal/handler"
	"github.com/EhsanEIK/rythm-bazar-server/internal/provider/stripe"
	"github.com/EhsanEIK/rythm-bazar-server/internal/repository"
	"github.com/EhsanEIK/rythm-bazar-server/internal/router"
	"github.com/EhsanEIK/rythm-bazar-server/internal/usecase"
	"github.com/EhsanEIK/rythm-bazar-server/pkg/jwtutil"
	appmw "github.com/EhsanEIK/rythm-bazar-server/pkg/middleware"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	logger.Info("starting rythm bazar server")

	cfg, err := config.Load(logger)
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	logger.Info("configuration loaded",
		zap.String("environment", cfg.Server.Env),
		zap.String("port", cfg.Server.Port))

	// Connect to database
	dbPool, err := pgxpool.New(context.Background(), cfg.Database.DSN())
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer dbPool.Close()

	logger.Info("connected to database",
		zap.String("database", cfg.Database.DBName))

	// Redis backs the rate limiter; the limiter fails open if it is down
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	// Initialize repositories
	store := repository.NewStore(dbPool)
	userRepo := repository.NewUserRepository(store)
	categoryRepo := repository.NewCategoryRepository(store)
	productRepo := repository.NewProductRepository(store)
	orderRepo := repository.NewOrderRepository(store)
	paymentRepo := repository.NewPaymentRepository(store)

	// Token issuer and verifier share the server secret
	signer := jwtutil.NewSigner([]byte(cfg.Auth.JWTSecret), cfg.Auth.Issuer, cfg.Auth.TokenTTL)
	verifier := jwtutil.NewVerifier([]byte(cfg.Auth.JWTSecret), cfg.Auth.Issuer)

	// Payment gateway
	stripeProvider := stripe.NewStripeProvider(cfg.Stripe)

	// Initialize usecases
	authUC := usecase.NewAuthUsecase(userRepo, signer, logger)
	userUC := usecase.NewUserUsecase(userRepo, logger)
	catalogUC := usecase.NewCatalogUsecase(categoryRepo, productRepo, logger)
	orderUC := usecase.NewOrderUsecase(orderRepo, productRepo, logger)
	settlementUC := usecase.NewSettlementUsecase(
		paymentRepo,
		orderRepo,
		productRepo,
		stripeProvider,
		store,
		cfg.Stripe.Currency,
		logger,
	)

	// Initialize handlers
	handlers := router.Handlers{
		Auth:     handler.NewAuthHandler(authUC, logger),
		User:     handler.NewUserHandler(userUC, logger),
		Category: handler.NewCategoryHandler(catalogUC, logger),
		Product:  handler.NewProductHandler(catalogUC, logger),
		Order:    handler.NewOrderHandler(orderUC, logger),
		Payment:  handler.NewPaymentHandler(settlementUC, logger),
	}

	authMiddleware := appmw.NewAuthMiddleware(verifier, userRepo, logger)

	r := router.SetupRoutes(handlers, authMiddleware, rdb, cfg, logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}
