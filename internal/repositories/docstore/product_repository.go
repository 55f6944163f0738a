// Package docstore implements the typed repository ports over the generic
// DocumentStore: each repository marshals its persistence model to JSON and
// delegates storage to the underlying engine.
package docstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/minivyapar/vyapar_ledger/internal/core/domain"
	portsrepo "github.com/minivyapar/vyapar_ledger/internal/core/ports/repositories"
	"github.com/minivyapar/vyapar_ledger/internal/models"
	"github.com/minivyapar/vyapar_ledger/internal/utils/mapping"
)

type productRepository struct {
	store portsrepo.DocumentStore
}

// NewProductRepository creates a repository for catalog products.
func NewProductRepository(store portsrepo.DocumentStore) portsrepo.ProductRepository {
	return &productRepository{store: store}
}

// Ensure implementation matches interface
var _ portsrepo.ProductRepository = (*productRepository)(nil)

// SaveProduct inserts or updates a product by its id.
func (r *productRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	model := mapping.ToModelProduct(product)
	data, err := json.Marshal(model)
	if err != nil {
		return fmt.Errorf("failed to encode product %s: %w", product.ProductID, err)
	}
	if _, err := r.store.Put(ctx, portsrepo.CollectionProducts, product.ProductID, data); err != nil {
		return fmt.Errorf("failed to save product %s: %w", product.ProductID, err)
	}
	return nil
}

// SaveProducts persists a batch of products.
func (r *productRepository) SaveProducts(ctx context.Context, products []domain.Product) error {
	for _, product := range products {
		if err := r.SaveProduct(ctx, product); err != nil {
			return err
		}
	}
	return nil
}

// FindProductByID retrieves a product by its id.
func (r *productRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	data, err := r.store.Get(ctx, portsrepo.CollectionProducts, productID)
	if err != nil {
		return nil, err
	}
	var model models.Product
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, fmt.Errorf("failed to decode product %s: %w", productID, err)
	}
	product := mapping.ToDomainProduct(model)
	return &product, nil
}

// ListProducts returns every product, order unspecified.
func (r *productRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	docs, err := r.store.GetAll(ctx, portsrepo.CollectionProducts)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	ms := make([]models.Product, 0, len(docs))
	for _, doc := range docs {
		var model models.Product
		if err := json.Unmarshal(doc.Data, &model); err != nil {
			return nil, fmt.Errorf("failed to decode product %s: %w", doc.ID, err)
		}
		ms = append(ms, model)
	}
	return mapping.ToDomainProductSlice(ms), nil
}

// DeleteProduct reports whether the product existed.
func (r *productRepository) DeleteProduct(ctx context.Context, productID string) (bool, error) {
	found, err := r.store.Delete(ctx, portsrepo.CollectionProducts, productID)
	if err != nil {
		return false, fmt.Errorf("failed to delete product %s: %w", productID, err)
	}
	return found, nil
}
