package repository

import (
	"context"
	"errors"

	"github.com/EhsanEIK/rythm-bazar-server/internal/domain"
	xerrors "github.com/EhsanEIK/rythm-bazar-server/pkg/xerrors"

	"github.com/jackc/pgx/v5"
)

type ProductRepository interface {
	Insert(ctx context.Context, product *domain.Product) error
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	ListByCategory(ctx context.Context, categoryID string) ([]domain.Product, error)
	ListBySeller(ctx context.Context, sellerEmail string) ([]domain.Product, error)
	ListAdvertised(ctx context.Context) ([]domain.Product, error)
	ListReported(ctx context.Context) ([]domain.Product, error)
	SetAdvertised(ctx context.Context, id string, advertised bool) error
	SetReported(ctx context.Context, id string, reported bool) error
	MarkSold(ctx context.Context, id string) error
	DeleteByID(ctx context.Context, id string) error
}

type productRepo struct {
	store *Store
}

func NewProductRepository(store *Store) ProductRepository {
	return &productRepo{store: store}
}

const productColumns = `
        id, seller_email, category_id, name, description, price,
        original_price, years_of_use, condition, location, phone, image_url,
        sales_status, advertised, reported, posted_at
`

func (r *productRepo) Insert(ctx context.Context, product *domain.Product) error {
	query := `
        INSERT INTO products (
            id, seller_email, category_id, name, description, price,
            original_price, years_of_use, condition, location, phone, image_url,
            sales_status, advertised, reported
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
        RETURNING posted_at
    `

	return r.store.q(ctx).QueryRow(ctx, query,
		product.ID,
		product.SellerEmail,
		product.CategoryID,
		product.Name,
		product.Description,
		product.Price,
		product.OriginalPrice,
		product.YearsOfUse,
		product.Condition,
		product.Location,
		product.Phone,
		product.ImageURL,
		product.SalesStatus,
		product.Advertised,
		product.Reported,
	).Scan(&product.PostedAt)
}

func (r *productRepo) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	product, err := scanProduct(r.store.q(ctx).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, xerrors.ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (r *productRepo) ListByCategory(ctx context.Context, categoryID string) ([]domain.Product, error) {
	query := `
        SELECT ` + productColumns + `
        FROM products
        WHERE category_id = $1 AND sales_status = 'available'
        ORDER BY posted_at DESC
    `
	return r.list(ctx, query, categoryID)
}

func (r *productRepo) ListBySeller(ctx context.Context, sellerEmail string) ([]domain.Product, error) {
	query := `
        SELECT ` + productColumns + `
        FROM products
        WHERE seller_email = $1
        ORDER BY posted_at DESC
    `
	return r.list(ctx, query, sellerEmail)
}

func (r *productRepo) ListAdvertised(ctx context.Context) ([]domain.Product, error) {
	query := `
        SELECT ` + productColumns + `
        FROM products
        WHERE advertised = TRUE AND sales_status = 'available'
        ORDER BY posted_at DESC
    `
	return r.list(ctx, query)
}

func (r *productRepo) ListReported(ctx context.Context) ([]domain.Product, error) {
	query := `
        SELECT ` + productColumns + `
        FROM products
        WHERE reported = TRUE
        ORDER BY posted_at DESC
    `
	return r.list(ctx, query)
}

func (r *productRepo) SetAdvertised(ctx context.Context, id string, advertised bool) error {
	query := `UPDATE products SET advertised = $1 WHERE id = $2`
	return r.exec(ctx, query, advertised, id)
}

func (r *productRepo) SetReported(ctx context.Context, id string, reported bool) error {
	query := `UPDATE products SET reported = $1 WHERE id = $2`
	return r.exec(ctx, query, reported, id)
}

// MarkSold is the settlement-side product transition: sold items leave the
// catalog and stop being advertised in one update.
func (r *productRepo) MarkSold(ctx context.Context, id string) error {
	query := `
        UPDATE products
        SET sales_status = 'sold', advertised = FALSE
        WHERE id = $1
    `
	return r.exec(ctx, query, id)
}

func (r *productRepo) DeleteByID(ctx context.Context, id string) error {
	query := `DELETE FROM products WHERE id = $1`
	return r.exec(ctx, query, id)
}

func (r *productRepo) exec(ctx context.Context, query string, args ...any) error {
	tag, err := r.store.q(ctx).Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrProductNotFound
	}
	return nil
}

func (r *productRepo) list(ctx context.Context, query string, args ...any) ([]domain.Product, error) {
	rows, err := r.store.q(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *product)
	}
	return products, rows.Err()
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var product domain.Product
	err := row.Scan(
		&product.ID,
		&product.SellerEmail,
		&product.CategoryID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.OriginalPrice,
		&product.YearsOfUse,
		&product.Condition,
		&product.Location,
		&product.Phone,
		&product.ImageURL,
		&product.SalesStatus,
		&product.Advertised,
		&product.Reported,
		&product.PostedAt,
	)
	if err != nil {
		return nil, err
	}
	return &product, nil
}
