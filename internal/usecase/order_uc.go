package usecase

import (
	"context"

	"github.com/EhsanEIK/rythm-bazar-server/internal/domain"
	"github.com/EhsanEIK/rythm-bazar-server/internal/repository"
	xerrors "github.com/EhsanEIK/rythm-bazar-server/pkg/xerrors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderUsecase struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
	logger   *zap.Logger
}

func NewOrderUsecase(
	orders repository.OrderRepository,
	products repository.ProductRepository,
	logger *zap.Logger,
) *OrderUsecase {
	return &OrderUsecase{
		orders:   orders,
		products: products,
		logger:   logger,
	}
}

// CreateOrder snapshots the product's name and price onto the order, so a
// later listing edit cannot change what the buyer owes.
func (uc *OrderUsecase) CreateOrder(ctx context.Context, buyerEmail, productID string) (*domain.Order, error) {
	if productID == "" {
		return nil, xerrors.ErrInvalidInput
	}

	product, err := uc.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.SalesStatus != domain.StatusAvailable {
		return nil, xerrors.ErrProductNotFound
	}

	order := &domain.Order{
		ID:          uuid.NewString(),
		BuyerEmail:  buyerEmail,
		ProductID:   product.ID,
		ProductName: product.Name,
		Price:       product.Price,
	}
	if err := uc.orders.Insert(ctx, order); err != nil {
		return nil, err
	}

	uc.logger.Info("order created",
		zap.String("order_id", order.ID),
		zap.String("buyer", buyerEmail),
		zap.String("product_id", productID))

	return order, nil
}

func (uc *OrderUsecase) BuyerOrders(ctx context.Context, buyerEmail string) ([]domain.Order, error) {
	return uc.orders.ListByBuyer(ctx, buyerEmail)
}

// GetOrder returns a buyer's own order; other buyers' orders are
// indistinguishable from missing ones.
func (uc *OrderUsecase) GetOrder(ctx context.Context, id, buyerEmail string) (*domain.Order, error) {
	order, err := uc.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.BuyerEmail != buyerEmail {
		return nil, xerrors.ErrOrderNotFound
	}
	return order, nil
}
