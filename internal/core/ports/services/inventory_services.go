package services

import (
	"context"

	"github.com/minivyapar/vyapar_ledger/internal/core/domain"
	"github.com/minivyapar/vyapar_ledger/internal/dto"
)

// InventoryReaderSvc defines read operations over the product catalog.
type InventoryReaderSvc interface {
	// GetProduct retrieves a product by id.
	GetProduct(ctx context.Context, productID string) (*domain.Product, error)

	// ListProducts retrieves the whole catalog.
	ListProducts(ctx context.Context) ([]domain.Product, error)

	// SearchProducts filters the catalog by a case-insensitive substring
	// match over name, category, supplier and code.
	SearchProducts(ctx context.Context, query string) ([]domain.Product, error)

	// LowStockProducts returns products at or below their low-stock
	// threshold, most urgent (lowest stock) first, ties broken by name.
	LowStockProducts(ctx context.Context) ([]domain.Product, error)
}

// InventoryWriterSvc defines catalog mutations.
type InventoryWriterSvc interface {
	// CreateProduct validates and persists a new product, applying
	// defaults for absent optional fields.
	CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error)

	// UpdateProduct merges a partial patch and re-validates invariants.
	UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest) (*domain.Product, error)

	// DeleteProduct removes a product. Deleting an absent id returns
	// apperrors.ErrNotFound, which callers treat as a normal outcome.
	DeleteProduct(ctx context.Context, productID string) error

	// AdjustStock applies a signed stock correction (restock or shrinkage).
	// The resulting stock must stay non-negative.
	AdjustStock(ctx context.Context, productID string, delta int) (*domain.Product, error)
}

// StockReconcilerSvc applies a sale's stock impact.
type StockReconcilerSvc interface {
	// ReconcileSale validates every request against current stock before
	// mutating anything; if any line falls short it returns an
	// *apperrors.InsufficientStockError and no stock changes. On success
	// every line's stock is decremented and the updated products returned.
	ReconcileSale(ctx context.Context, requests []domain.StockRequest) ([]domain.Product, error)
}

// InventorySvcFacade combines all inventory ledger interfaces.
type InventorySvcFacade interface {
	InventoryReaderSvc
	InventoryWriterSvc
	StockReconcilerSvc
}
