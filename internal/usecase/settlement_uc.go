package usecase

import (
	"context"
	"crypto/rand"
	"math"
	"time"

	"github.com/EhsanEIK/rythm-bazar-server/internal/domain"
	"github.com/EhsanEIK/rythm-bazar-server/internal/provider/stripe"
	"github.com/EhsanEIK/rythm-bazar-server/internal/repository"
	xerrors "github.com/EhsanEIK/rythm-bazar-server/pkg/xerrors"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

// PaymentGateway creates card charges with an external processor.
type PaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, amountCents int64, currency string) (*stripe.PaymentIntent, error)
}

// Transactor runs a function inside a single store transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type SettlementUsecase struct {
	payments repository.PaymentRepository
	orders   repository.OrderRepository
	products repository.ProductRepository
	gateway  PaymentGateway
	tx       Transactor
	currency string
	logger   *zap.Logger
}

func NewSettlementUsecase(
	payments repository.PaymentRepository,
	orders repository.OrderRepository,
	products repository.ProductRepository,
	gateway PaymentGateway,
	tx Transactor,
	currency string,
	logger *zap.Logger,
) *SettlementUsecase {
	return &SettlementUsecase{
		payments: payments,
		orders:   orders,
		products: products,
		gateway:  gateway,
		tx:       tx,
		currency: currency,
		logger:   logger,
	}
}

// CreateIntent reserves a card charge for an order's price (major units) and
// returns the gateway's client secret. Nothing is persisted; the caller may
// retry freely.
func (uc *SettlementUsecase) CreateIntent(ctx context.Context, price float64) (string, error) {
	if price <= 0 {
		return "", xerrors.ErrInvalidAmount
	}

	amountCents := int64(math.Round(price * 100))

	intent, err := uc.gateway.CreatePaymentIntent(ctx, amountCents, uc.currency)
	if err != nil {
		uc.logger.Error("payment intent failed",
			zap.Int64("amount_cents", amountCents),
			zap.Error(err))
		return "", err
	}

	uc.logger.Info("payment intent created",
		zap.String("intent_id", intent.ID),
		zap.Int64("amount_cents", amountCents),
		zap.String("currency", uc.currency))

	return intent.ClientSecret, nil
}

// ConfirmRequest is the client's confirmation that the gateway charge
// completed.
type ConfirmRequest struct {
	OrderID       string `json:"orderId"`
	ProductID     string `json:"productId"`
	TransactionID string `json:"transactionId"`
}

// Confirm records a settlement: one Payment row, the Order marked paid with
// its transaction reference, the Product marked sold and pulled from
// advertising. The three writes run in one transaction, so a failure at any
// step leaves no partial settlement behind. A repeat confirmation for an
// already-settled order is accepted and inserts a second Payment row; the
// Order and Product transitions are idempotent.
func (uc *SettlementUsecase) Confirm(ctx context.Context, req ConfirmRequest) (*domain.Payment, error) {
	if req.OrderID == "" || req.ProductID == "" || req.TransactionID == "" {
		return nil, xerrors.ErrInvalidInput
	}

	payment := &domain.Payment{
		ID:            uuid.NewString(),
		PaymentRef:    newPaymentRef(),
		OrderID:       req.OrderID,
		ProductID:     req.ProductID,
		TransactionID: req.TransactionID,
		Currency:      uc.currency,
	}

	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		order, err := uc.orders.FindByID(ctx, req.OrderID)
		if err != nil {
			return err
		}
		payment.AmountCents = int64(math.Round(order.Price * 100))

		if err := uc.payments.Insert(ctx, payment); err != nil {
			return err
		}
		if err := uc.orders.MarkPaid(ctx, req.OrderID, req.TransactionID); err != nil {
			return err
		}
		return uc.products.MarkSold(ctx, req.ProductID)
	})
	if err != nil {
		uc.logger.Error("settlement failed",
			zap.String("order_id", req.OrderID),
			zap.String("product_id", req.ProductID),
			zap.String("transaction_id", req.TransactionID),
			zap.Error(err))
		return nil, err
	}

	uc.logger.Info("payment settled",
		zap.String("payment_ref", payment.PaymentRef),
		zap.String("order_id", payment.OrderID),
		zap.String("product_id", payment.ProductID),
		zap.Int64("amount_cents", payment.AmountCents))

	return payment, nil
}

func newPaymentRef() string {
	id := ulid.MustNew(ulid.Timestamp(time.Now()), ulid.Monotonic(rand.Reader, 0))
	return "pay_" + id.String()
}
