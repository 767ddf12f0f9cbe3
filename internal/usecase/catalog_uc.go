package usecase

import (
	"context"

	"github.com/EhsanEIK/rythm-bazar-server/internal/domain"
	"github.com/EhsanEIK/rythm-bazar-server/internal/repository"
	xerrors "github.com/EhsanEIK/rythm-bazar-server/pkg/xerrors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CatalogUsecase struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
	logger     *zap.Logger
}

func NewCatalogUsecase(
	categories repository.CategoryRepository,
	products repository.ProductRepository,
	logger *zap.Logger,
) *CatalogUsecase {
	return &CatalogUsecase{
		categories: categories,
		products:   products,
		logger:     logger,
	}
}

func (uc *CatalogUsecase) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	if name == "" {
		return nil, xerrors.ErrInvalidInput
	}

	category := &domain.Category{
		ID:   uuid.NewString(),
		Name: name,
	}
	if err := uc.categories.Insert(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (uc *CatalogUsecase) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return uc.categories.List(ctx)
}

func (uc *CatalogUsecase) ProductsByCategory(ctx context.Context, categoryID string) ([]domain.Product, error) {
	if _, err := uc.categories.FindByID(ctx, categoryID); err != nil {
		return nil, err
	}
	return uc.products.ListByCategory(ctx, categoryID)
}

func (uc *CatalogUsecase) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if product.Name == "" || product.CategoryID == "" || product.Price <= 0 {
		return nil, xerrors.ErrInvalidInput
	}
	if _, err := uc.categories.FindByID(ctx, product.CategoryID); err != nil {
		return nil, err
	}

	product.ID = uuid.NewString()
	product.SalesStatus = domain.StatusAvailable
	product.Advertised = false
	product.Reported = false

	if err := uc.products.Insert(ctx, product); err != nil {
		return nil, err
	}

	uc.logger.Info("product listed",
		zap.String("product_id", product.ID),
		zap.String("seller", product.SellerEmail))

	return product, nil
}

func (uc *CatalogUsecase) SellerProducts(ctx context.Context, sellerEmail string) ([]domain.Product, error) {
	return uc.products.ListBySeller(ctx, sellerEmail)
}

func (uc *CatalogUsecase) DeleteProduct(ctx context.Context, id, sellerEmail string) error {
	product, err := uc.products.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if product.SellerEmail != sellerEmail {
		return xerrors.ErrForbidden
	}
	return uc.products.DeleteByID(ctx, id)
}

// ToggleAdvertise flips the advertised flag on a seller's own listing.
func (uc *CatalogUsecase) ToggleAdvertise(ctx context.Context, id, sellerEmail string) (*domain.Product, error) {
	product, err := uc.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product.SellerEmail != sellerEmail {
		return nil, xerrors.ErrForbidden
	}

	if err := uc.products.SetAdvertised(ctx, id, !product.Advertised); err != nil {
		return nil, err
	}
	product.Advertised = !product.Advertised
	return product, nil
}

func (uc *CatalogUsecase) AdvertisedProducts(ctx context.Context) ([]domain.Product, error) {
	return uc.products.ListAdvertised(ctx)
}

func (uc *CatalogUsecase) ReportProduct(ctx context.Context, id string) error {
	return uc.products.SetReported(ctx, id, true)
}

func (uc *CatalogUsecase) ReportedProducts(ctx context.Context) ([]domain.Product, error) {
	return uc.products.ListReported(ctx)
}
