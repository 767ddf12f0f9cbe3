package repository

import (
	"context"
	"errors"

	"github.com/EhsanEIK/rythm-bazar-server/internal/domain"
	xerrors "github.com/EhsanEIK/rythm-bazar-server/pkg/xerrors"

	"github.com/jackc/pgx/v5"
)

type CategoryRepository interface {
	Insert(ctx context.Context, category *domain.Category) error
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
}

type categoryRepo struct {
	store *Store
}

func NewCategoryRepository(store *Store) CategoryRepository {
	return &categoryRepo{store: store}
}

func (r *categoryRepo) Insert(ctx context.Context, category *domain.Category) error {
	query := `INSERT INTO categories (id, name) VALUES ($1, $2)`

	_, err := r.store.q(ctx).Exec(ctx, query, category.ID, category.Name)
	return err
}

func (r *categoryRepo) FindByID(ctx context.Context, id string) (*domain.Category, error) {
	query := `SELECT id, name FROM categories WHERE id = $1`

	var category domain.Category
	err := r.store.q(ctx).QueryRow(ctx, query, id).Scan(&category.ID, &category.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, xerrors.ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	query := `SELECT id, name FROM categories ORDER BY name`

	rows, err := r.store.q(ctx).Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}
