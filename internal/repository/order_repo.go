package repository

import (
	"context"
	"errors"

	"github.com/EhsanEIK/rythm-bazar-server/internal/domain"
	xerrors "github.com/EhsanEIK/rythm-bazar-server/pkg/xerrors"

	"github.com/jackc/pgx/v5"
)

type OrderRepository interface {
	Insert(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	ListByBuyer(ctx context.Context, buyerEmail string) ([]domain.Order, error)
	MarkPaid(ctx context.Context, id, transactionID string) error
}

type orderRepo struct {
	store *Store
}

func NewOrderRepository(store *Store) OrderRepository {
	return &orderRepo{store: store}
}

func (r *orderRepo) Insert(ctx context.Context, order *domain.Order) error {
	query := `
        INSERT INTO orders (id, buyer_email, product_id, product_name, price)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING paid, transaction_id, created_at
    `

	return r.store.q(ctx).QueryRow(ctx, query,
		order.ID,
		order.BuyerEmail,
		order.ProductID,
		order.ProductName,
		order.Price,
	).Scan(&order.Paid, &order.TransactionID, &order.CreatedAt)
}

func (r *orderRepo) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	query := `
        SELECT id, buyer_email, product_id, product_name, price, paid,
               transaction_id, created_at
        FROM orders
        WHERE id = $1
    `

	var order domain.Order
	err := r.store.q(ctx).QueryRow(ctx, query, id).Scan(
		&order.ID,
		&order.BuyerEmail,
		&order.ProductID,
		&order.ProductName,
		&order.Price,
		&order.Paid,
		&order.TransactionID,
		&order.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, xerrors.ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *orderRepo) ListByBuyer(ctx context.Context, buyerEmail string) ([]domain.Order, error) {
	query := `
        SELECT id, buyer_email, product_id, product_name, price, paid,
               transaction_id, created_at
        FROM orders
        WHERE buyer_email = $1
        ORDER BY created_at DESC
    `

	rows, err := r.store.q(ctx).Query(ctx, query, buyerEmail)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		err := rows.Scan(
			&order.ID,
			&order.BuyerEmail,
			&order.ProductID,
			&order.ProductName,
			&order.Price,
			&order.Paid,
			&order.TransactionID,
			&order.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

// MarkPaid sets the terminal paid state. paid never transitions back to
// false through this repository.
func (r *orderRepo) MarkPaid(ctx context.Context, id, transactionID string) error {
	query := `
        UPDATE orders
        SET paid = TRUE, transaction_id = $1
        WHERE id = $2
    `

	tag, err := r.store.q(ctx).Exec(ctx, query, transactionID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrOrderNotFound
	}
	return nil
}
