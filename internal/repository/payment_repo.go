package repository

import (
	"context"

	"github.com/EhsanEIK/rythm-bazar-server/internal/domain"
)

type PaymentRepository interface {
	Insert(ctx context.Context, payment *domain.Payment) error
	ListByOrder(ctx context.Context, orderID string) ([]domain.Payment, error)
}

type paymentRepo struct {
	store *Store
}

func NewPaymentRepository(store *Store) PaymentRepository {
	return &paymentRepo{store: store}
}

func (r *paymentRepo) Insert(ctx context.Context, payment *domain.Payment) error {
	query := `
        INSERT INTO payments (
            id, payment_ref, order_id, product_id, transaction_id,
            amount_cents, currency
        ) VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING created_at
    `

	return r.store.q(ctx).QueryRow(ctx, query,
		payment.ID,
		payment.PaymentRef,
		payment.OrderID,
		payment.ProductID,
		payment.TransactionID,
		payment.AmountCents,
		payment.Currency,
	).Scan(&payment.CreatedAt)
}

func (r *paymentRepo) ListByOrder(ctx context.Context, orderID string) ([]domain.Payment, error) {
	query := `
        SELECT id, payment_ref, order_id, product_id, transaction_id,
               amount_cents, currency, created_at
        FROM payments
        WHERE order_id = $1
        ORDER BY created_at
    `

	rows, err := r.store.q(ctx).Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var payment domain.Payment
		err := rows.Scan(
			&payment.ID,
			&payment.PaymentRef,
			&payment.OrderID,
			&payment.ProductID,
			&payment.TransactionID,
			&payment.AmountCents,
			&payment.Currency,
			&payment.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		payments = append(payments, payment)
	}
	return payments, rows.Err()
}
