package repositories

import (
	"context"

	"github.com/minivyapar/vyapar_ledger/internal/core/domain"
)

// ProductRepository persists catalog products.
type ProductRepository interface {
	// SaveProduct inserts or updates a product by its id.
	SaveProduct(ctx context.Context, product domain.Product) error

	// SaveProducts persists a batch of products.
	SaveProducts(ctx context.Context, products []domain.Product) error

	// FindProductByID returns apperrors.ErrNotFound when the id is absent.
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// ListProducts returns every product, order unspecified.
	ListProducts(ctx context.Context) ([]domain.Product, error)

	// DeleteProduct reports whether the product existed.
	DeleteProduct(ctx context.Context, productID string) (bool, error)
}
